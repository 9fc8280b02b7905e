package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/strange/internal/dynamo"
)

// TrajectorySVG renders a subsampled trajectory as SVG dots. Intended for
// small sample counts; the raster pipeline is the right tool past a few
// hundred thousand points.
func TrajectorySVG(t *dynamo.Trajectory, b dynamo.Bounds, width, height int, fill string) string {
	if t.Len() == 0 || b.Width() <= 0 || b.Height() <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#000000"/>
<g fill="%s" fill-opacity="0.35">
`, width, height, width, height, fill))

	for i := range t.X {
		x, y := t.X[i], t.Y[i]
		if !b.Contains(x, y) {
			continue
		}
		cx := (x - b.XMin) / b.Width() * float64(width)
		cy := float64(height) - (y-b.YMin)/b.Height()*float64(height)
		sb.WriteString(fmt.Sprintf("<circle cx=\"%.2f\" cy=\"%.2f\" r=\"0.6\"/>\n", cx, cy))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
