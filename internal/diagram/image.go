package diagram

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportElevation draws frames projected on pl into filename. The format
// follows the extension (.png, .svg or .pdf); any other name gets .png
// appended. It returns the path written.
func ExportElevation(frames []Frame, pl Plane, title, filename string) (string, error) {
	if len(frames) == 0 {
		return "", errors.New("no frames to draw")
	}
	hAxis, vAxis := pl.Axes()

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = hAxis
	p.Y.Label.Text = vAxis

	joints := map[string]plotter.XY{}
	for _, f := range frames {
		x1, y1 := pl.Project(f.Start)
		x2, y2 := pl.Project(f.End)
		line, err := plotter.NewLine(plotter.XYs{{X: x1, Y: y1}, {X: x2, Y: y2}})
		if err != nil {
			return "", err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = color.Black
		p.Add(line)

		joints[f.I] = plotter.XY{X: x1, Y: y1}
		joints[f.J] = plotter.XY{X: x2, Y: y2}
	}

	// Joints
	pts := make(plotter.XYs, 0, len(joints))
	for _, xy := range joints {
		pts = append(pts, xy)
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return "", err
	}
	scatter.GlyphStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	scatter.GlyphStyle.Radius = vg.Points(3)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)

	// Frame names at mid-span
	labels := plotter.XYLabels{}
	for _, f := range frames {
		x1, y1 := pl.Project(f.Start)
		x2, y2 := pl.Project(f.End)
		labels.XYs = append(labels.XYs, plotter.XY{X: (x1 + x2) / 2, Y: (y1 + y2) / 2})
		labels.Labels = append(labels.Labels, f.Name)
	}
	l, err := plotter.NewLabels(labels)
	if err != nil {
		return "", err
	}
	p.Add(l)

	// Keep a margin around the structure
	minH, maxH, minV, maxV := bounds(frames, pl)
	pad := 0.1 * max(maxH-minH, maxV-minV, 1)
	p.X.Min, p.X.Max = minH-pad, maxH+pad
	p.Y.Min, p.Y.Max = minV-pad, maxV+pad

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output folder: %w", err)
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	if err := p.Save(8*vg.Inch, 6*vg.Inch, filename); err != nil {
		return "", err
	}
	return filename, nil
}
