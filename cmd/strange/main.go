package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/lmittmann/tint"
	"github.com/pkg/profile"
	"github.com/san-kum/strange/internal/analysis"
	"github.com/san-kum/strange/internal/attractor"
	"github.com/san-kum/strange/internal/config"
	"github.com/san-kum/strange/internal/dynamo"
	"github.com/san-kum/strange/internal/export"
	"github.com/san-kum/strange/internal/palette"
	"github.com/san-kum/strange/internal/raster"
	"github.com/san-kum/strange/internal/tui"
	"github.com/spf13/cobra"
)

var (
	coeffA     float64
	coeffB     float64
	coeffC     float64
	coeffD     float64
	startX     float64
	startY     float64
	samples    int
	imgWidth   int
	imgHeight  int
	palName    string
	shading    string
	background string
	outPath    string
	configFile string
	preset     string
	themeName  string
	profileCPU bool
	perturb    float64
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "strange",
		Short: "strange attractor explorer",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
				Level:      level,
				TimeFormat: time.Kitchen,
			})))
		},
		RunE: runExplore,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().StringVar(&themeName, "theme", "ember", "TUI theme (ember, ice, mono)")
	addGenFlags(rootCmd)

	renderCmd := &cobra.Command{
		Use:   "render [map]",
		Short: "render an attractor to a PNG image",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	addGenFlags(renderCmd)
	renderCmd.Flags().IntVar(&imgWidth, "width", config.DefaultWidth, "image width in pixels")
	renderCmd.Flags().IntVar(&imgHeight, "height", config.DefaultHeight, "image height in pixels")
	renderCmd.Flags().StringVar(&background, "background", "#000000", "background color")
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (default <map>.png)")
	renderCmd.Flags().BoolVar(&profileCPU, "profile", false, "write a CPU profile")

	traceCmd := &cobra.Command{
		Use:   "trace [map]",
		Short: "plot the x coordinate series in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTrace,
	}
	addGenFlags(traceCmd)

	csvCmd := &cobra.Command{
		Use:   "export-csv [map]",
		Short: "write the trajectory as x,y CSV to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExportCSV,
	}
	addGenFlags(csvCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets [map]",
		Short: "list presets, or all maps when none given",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPresets,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [map]",
		Short: "measure generation throughput",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBench,
	}
	addGenFlags(benchCmd)

	lyapunovCmd := &cobra.Command{
		Use:   "lyapunov [map]",
		Short: "estimate the largest Lyapunov exponent",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLyapunov,
	}
	addGenFlags(lyapunovCmd)
	lyapunovCmd.Flags().Float64Var(&perturb, "perturbation", 1e-9, "initial orbit separation")

	rootCmd.AddCommand(renderCmd, traceCmd, csvCmd, presetsCmd, benchCmd, lyapunovCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addGenFlags(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&coeffA, "a", "a", 0, "coefficient a")
	cmd.Flags().Float64VarP(&coeffB, "b", "b", 0, "coefficient b")
	cmd.Flags().Float64VarP(&coeffC, "c", "c", 0, "coefficient c")
	cmd.Flags().Float64VarP(&coeffD, "d", "d", 0, "coefficient d")
	cmd.Flags().Float64Var(&startX, "x0", 0, "initial x")
	cmd.Flags().Float64Var(&startY, "y0", 0, "initial y")
	cmd.Flags().IntVarP(&samples, "samples", "n", config.DefaultSamples, "number of samples")
	cmd.Flags().StringVar(&palName, "palette", config.DefaultPalette, "color ramp")
	cmd.Flags().StringVar(&shading, "shading", config.DefaultShading, "shading mode (linear, log, cbrt, eq_hist)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "named preset")
}

// buildConfig resolves the layered configuration: defaults, then preset,
// then config file, then explicitly set CLI flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	mapName := cfg.Map
	if len(args) > 0 {
		mapName = args[0]
		cfg.Map = mapName
		if m, err := attractor.Lookup(mapName); err != nil {
			return nil, err
		} else if c, ok := m.(dynamo.Configurable); ok {
			coeffs := c.Coeffs()
			cfg.Coeffs = config.CoeffConfig{A: coeffs["a"], B: coeffs["b"], C: coeffs["c"], D: coeffs["d"]}
		}
	}

	if preset != "" {
		p := config.GetPreset(mapName, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(mapName))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("a") {
		cfg.Coeffs.A = coeffA
	}
	if flags.Changed("b") {
		cfg.Coeffs.B = coeffB
	}
	if flags.Changed("c") {
		cfg.Coeffs.C = coeffC
	}
	if flags.Changed("d") {
		cfg.Coeffs.D = coeffD
	}
	if flags.Changed("x0") {
		cfg.Start.X = startX
	}
	if flags.Changed("y0") {
		cfg.Start.Y = startY
	}
	if flags.Changed("samples") {
		cfg.Samples = samples
	}
	if flags.Changed("palette") {
		cfg.Palette = palName
	}
	if flags.Changed("shading") {
		cfg.Shading = shading
	}
	if flags.Lookup("width") != nil && flags.Changed("width") {
		cfg.Width = imgWidth
	}
	if flags.Lookup("height") != nil && flags.Changed("height") {
		cfg.Height = imgHeight
	}
	if flags.Lookup("background") != nil && flags.Changed("background") {
		cfg.Background = background
	}

	return cfg, nil
}

func generate(cfg *config.Config) (dynamo.Map, *dynamo.Trajectory, error) {
	m, err := cfg.BuildMap()
	if err != nil {
		return nil, nil, err
	}

	start := time.Now()
	traj, err := dynamo.Generate(m, cfg.Start.X, cfg.Start.Y, cfg.Samples)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("generated trajectory",
		"map", m.Name(), "samples", traj.Len(), "elapsed", time.Since(start))
	return m, traj, nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	m, err := cfg.BuildMap()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewExplorer(m, cfg.Samples, cfg.Palette, cfg.Shading, themeName))
	_, err = p.Run()
	return err
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if profileCPU {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	bg, err := palette.ParseHex(cfg.Background)
	if err != nil {
		return err
	}
	shade, err := raster.ShaderByName(cfg.Shading)
	if err != nil {
		return err
	}

	m, traj, err := generate(cfg)
	if err != nil {
		return err
	}

	grid := raster.NewGrid(cfg.Width, cfg.Height)
	grid.Accumulate(traj, traj.Bounds().Pad(0.05))
	img := raster.Render(grid, shade, palette.Get(cfg.Palette), bg)

	path := outPath
	if path == "" {
		path = m.Name() + ".png"
	}
	if err := export.WritePNG(path, img); err != nil {
		return err
	}

	slog.Info("rendered attractor",
		"map", m.Name(), "samples", traj.Len(),
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"occupancy", fmt.Sprintf("%.1f%%", grid.Occupancy()*100),
		"out", path)
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if cfg.Samples > 2000 {
		cfg.Samples = 2000
	}

	m, traj, err := generate(cfg)
	if err != nil {
		return err
	}

	fmt.Println(asciigraph.Plot(traj.X,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s x[i], first %d iterations", m.Name(), traj.Len())),
	))
	return nil
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	_, traj, err := generate(cfg)
	if err != nil {
		return err
	}
	return export.WriteCSV(os.Stdout, traj)
}

func runPresets(cmd *cobra.Command, args []string) error {
	maps := attractor.Names()
	if len(args) > 0 {
		maps = args
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MAP\tPRESET\tA\tB\tC\tD\tPALETTE")
	for _, name := range maps {
		for _, p := range config.ListPresets(name) {
			cfg := config.GetPreset(name, p)
			fmt.Fprintf(w, "%s\t%s\t%+.3f\t%+.3f\t%+.3f\t%+.3f\t%s\n",
				name, p, cfg.Coeffs.A, cfg.Coeffs.B, cfg.Coeffs.C, cfg.Coeffs.D, cfg.Palette)
		}
	}
	return w.Flush()
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	m, err := cfg.BuildMap()
	if err != nil {
		return err
	}

	counts := []int{100_000, 1_000_000, 10_000_000}

	fmt.Printf("benchmarking %s\n\n", m.Name())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SAMPLES\tTIME\tSAMPLES/SEC")

	for _, n := range counts {
		start := time.Now()
		traj, err := dynamo.Generate(m, cfg.Start.X, cfg.Start.Y, n)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)
		fmt.Fprintf(w, "%d\t%v\t%.0f\n",
			traj.Len(), elapsed.Truncate(time.Microsecond),
			float64(traj.Len())/elapsed.Seconds())
	}
	return w.Flush()
}

func runLyapunov(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	m, err := cfg.BuildMap()
	if err != nil {
		return err
	}

	steps := cfg.Samples
	if steps > 1_000_000 {
		steps = 1_000_000
	}

	lambda := analysis.LargestLyapunov(m, cfg.Start.X, cfg.Start.Y, steps, perturb)
	fmt.Printf("map: %s\n", m.Name())
	fmt.Printf("largest lyapunov exponent: %.6f\n", lambda)
	if lambda > 0 {
		fmt.Println("orbit is chaotic (positive exponent)")
	} else {
		fmt.Println("orbit is not chaotic at these coefficients")
	}
	return nil
}
