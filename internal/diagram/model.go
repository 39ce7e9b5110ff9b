// Package diagram draws frame models read back from the application, as an
// image through gonum/plot or as a character sketch.
package diagram

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gosap/internal/com"
	"github.com/alexiusacademia/gosap/internal/sap"
)

// Point is a joint position in global coordinates.
type Point struct {
	X, Y, Z float64
}

// Frame is a member between joints I and J.
type Frame struct {
	Name       string
	I, J       string
	Start, End Point
}

// Plane selects the two global axes a drawing uses.
type Plane string

const (
	PlaneXZ Plane = "xz"
	PlaneYZ Plane = "yz"
	PlaneXY Plane = "xy"
)

// ParsePlane accepts xz, yz or xy.
func ParsePlane(s string) (Plane, error) {
	switch p := Plane(strings.ToLower(strings.TrimSpace(s))); p {
	case PlaneXZ, PlaneYZ, PlaneXY:
		return p, nil
	}
	return "", fmt.Errorf("unknown plane %q, want xz, yz or xy", s)
}

// Project maps p onto the plane's horizontal and vertical axes.
func (pl Plane) Project(p Point) (h, v float64) {
	switch pl {
	case PlaneYZ:
		return p.Y, p.Z
	case PlaneXY:
		return p.X, p.Y
	}
	return p.X, p.Z
}

// Axes names the horizontal and vertical axes.
func (pl Plane) Axes() (h, v string) {
	switch pl {
	case PlaneYZ:
		return "Y", "Z"
	case PlaneXY:
		return "X", "Y"
	}
	return "X", "Z"
}

// ReadFrames reads the end joints of each named frame and their coordinates.
// Joints shared between frames are read once.
func ReadFrames(frames sap.FrameObjV14, points sap.PointObjV14, names []string) ([]Frame, error) {
	coords := map[string]Point{}
	coord := func(joint string) (Point, error) {
		if p, ok := coords[joint]; ok {
			return p, nil
		}
		x, y, z := com.NewRef(0.0), com.NewRef(0.0), com.NewRef(0.0)
		status, err := points.GetCoordCartesian(joint, x, y, z)
		if err := sap.Check("PointObj.GetCoordCartesian "+joint, status, err); err != nil {
			return Point{}, err
		}
		p := Point{X: x.Get(), Y: y.Get(), Z: z.Get()}
		coords[joint] = p
		return p, nil
	}

	out := make([]Frame, 0, len(names))
	for _, name := range names {
		i, j := com.NewRef(""), com.NewRef("")
		status, err := frames.GetPoints(name, i, j)
		if err := sap.Check("FrameObj.GetPoints "+name, status, err); err != nil {
			return nil, err
		}
		f := Frame{Name: name, I: i.Get(), J: j.Get()}
		if f.Start, err = coord(f.I); err != nil {
			return nil, err
		}
		if f.End, err = coord(f.J); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// bounds is the extent of frames projected on pl.
func bounds(frames []Frame, pl Plane) (minH, maxH, minV, maxV float64) {
	first := true
	for _, f := range frames {
		for _, p := range []Point{f.Start, f.End} {
			h, v := pl.Project(p)
			if first {
				minH, maxH, minV, maxV = h, h, v, v
				first = false
				continue
			}
			minH, maxH = min(minH, h), max(maxH, h)
			minV, maxV = min(minV, v), max(maxV, v)
		}
	}
	return minH, maxH, minV, maxV
}
