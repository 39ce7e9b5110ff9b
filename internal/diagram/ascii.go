package diagram

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// DrawASCIIElevation sketches frames projected on pl in a width x height
// character grid. Joints are drawn as 'o' and members with - | / or \.
func DrawASCIIElevation(frames []Frame, pl Plane, width, height int) string {
	if len(frames) == 0 || width < 2 || height < 2 {
		return ""
	}
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	minH, maxH, minV, maxV := bounds(frames, pl)
	// Equal scale on both axes so members keep their slope
	scale := math.Inf(1)
	if span := maxH - minH; span > 0 {
		scale = float64(width-1) / span
	}
	if span := maxV - minV; span > 0 {
		scale = min(scale, float64(height-1)/span)
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}

	cell := func(p Point) (col, row int) {
		h, v := pl.Project(p)
		col = int(math.Round((h - minH) * scale))
		row = height - 1 - int(math.Round((v-minV)*scale))
		return col, row
	}

	for _, f := range frames {
		c1, r1 := cell(f.Start)
		c2, r2 := cell(f.End)
		line(grid, c1, r1, c2, r2, stroke(c1, r1, c2, r2))
	}
	for _, f := range frames {
		for _, p := range []Point{f.Start, f.End} {
			c, r := cell(p)
			put(grid, c, r, 'o')
		}
	}

	var sb strings.Builder
	hAxis, vAxis := pl.Axes()
	sb.WriteString(fmt.Sprintf("  %s\n  ▲\n", vAxis))
	for _, row := range grid {
		sb.WriteString("  │")
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("  └%s► %s\n", strings.Repeat("─", width), hAxis))
	return sb.String()
}

// stroke picks the character that best follows a member's slope. Rows grow
// downwards.
func stroke(c1, r1, c2, r2 int) rune {
	dc, dr := c2-c1, r2-r1
	switch {
	case dr == 0:
		return '-'
	case dc == 0:
		return '|'
	case math.Abs(float64(dr)) > 2*math.Abs(float64(dc)):
		return '|'
	case math.Abs(float64(dc)) > 2*math.Abs(float64(dr)):
		return '-'
	case (dc > 0) == (dr < 0):
		return '/'
	}
	return '\\'
}

// line draws with Bresenham's algorithm.
func line(grid [][]rune, c1, r1, c2, r2 int, ch rune) {
	dc := abs(c2 - c1)
	dr := -abs(r2 - r1)
	sc, sr := 1, 1
	if c1 > c2 {
		sc = -1
	}
	if r1 > r2 {
		sr = -1
	}
	e := dc + dr
	for {
		put(grid, c1, r1, ch)
		if c1 == c2 && r1 == r2 {
			return
		}
		e2 := 2 * e
		if e2 >= dr {
			e += dr
			c1 += sc
		}
		if e2 <= dc {
			e += dc
			r1 += sr
		}
	}
}

func put(grid [][]rune, col, row int, ch rune) {
	if row < 0 || row >= len(grid) || col < 0 || col >= len(grid[row]) {
		return
	}
	grid[row][col] = ch
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// FrameTable lists frames with their joints and lengths.
func FrameTable(frames []Frame) []string {
	sorted := append([]Frame(nil), frames...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	lines := make([]string, len(sorted))
	for i, f := range sorted {
		lines[i] = fmt.Sprintf("%-8s %6s → %-6s L = %.3f", f.Name, f.I, f.J, f.Length())
	}
	return lines
}

// Length is the distance between the frame's end joints.
func (f Frame) Length() float64 {
	dx, dy, dz := f.End.X-f.Start.X, f.End.Y-f.Start.Y, f.End.Z-f.Start.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// DrawSummaryBox creates a boxed summary
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
