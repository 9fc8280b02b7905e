package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/strange/internal/dynamo"
)

func TestWriteCSV(t *testing.T) {
	traj := &dynamo.Trajectory{
		X: []float64{0, 1.5},
		Y: []float64{0.25, -2},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, traj); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "x,y" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "0.000000,0.250000" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "1.500000,-2.000000" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestWritePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0xff, A: 0xff})

	path := filepath.Join(t.TempDir(), "out.png")
	if err := WritePNG(path, img); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}

func TestTrajectorySVG(t *testing.T) {
	traj := &dynamo.Trajectory{
		X: []float64{0, 0.5, 1},
		Y: []float64{0, 0.5, 1},
	}
	b := dynamo.Bounds{XMin: 0, XMax: 1, YMin: 0, YMax: 1}

	svg := TrajectorySVG(traj, b, 100, 100, "#ff8800")
	if !strings.HasPrefix(svg, "<?xml") {
		t.Error("missing xml header")
	}
	if strings.Count(svg, "<circle") != 3 {
		t.Errorf("want 3 circles, got %d", strings.Count(svg, "<circle"))
	}
	if !strings.Contains(svg, `fill="#ff8800"`) {
		t.Error("fill color not applied")
	}
}

func TestTrajectorySVG_Empty(t *testing.T) {
	if TrajectorySVG(&dynamo.Trajectory{}, dynamo.Bounds{}, 10, 10, "#fff") != "" {
		t.Error("empty trajectory should yield empty output")
	}
}
