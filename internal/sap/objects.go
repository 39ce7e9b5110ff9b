package sap

import (
	"github.com/alexiusacademia/gosap/internal/com"
	"github.com/alexiusacademia/gosap/internal/sap/enums"
)

// PointObjV14 manages joints.
type PointObjV14 interface {
	AddCartesian(x, y, z float64, name *com.StringRef, userName string) (int, error)
	GetCoordCartesian(name string, x, y, z *com.DoubleRef) (int, error)
	// SetRestraint takes the six translational and rotational restraints.
	// Boolean arrays cannot be marshaled yet, so every call fails with
	// com.ErrUnsupportedRefType before reaching the application.
	SetRestraint(name string, value *com.ArrayRef[bool]) (int, error)
	// SetLoadForce assigns the six force components in value.
	SetLoadForce(name, loadPat string, value *com.ArrayRef[float64], replace bool) (int, error)
	Count() (int, error)
}

type PointObjV15 interface {
	PointObjV14
}

type pointObj struct{ t *com.Target }

func (p pointObj) AddCartesian(x, y, z float64, name *com.StringRef, userName string) (int, error) {
	return p.t.CallInt("AddCartesian", x, y, z, name, userName)
}

func (p pointObj) GetCoordCartesian(name string, x, y, z *com.DoubleRef) (int, error) {
	return p.t.CallInt("GetCoordCartesian", name, x, y, z)
}

func (p pointObj) SetRestraint(name string, value *com.ArrayRef[bool]) (int, error) {
	return p.t.CallInt("SetRestraint", name, value)
}

func (p pointObj) SetLoadForce(name, loadPat string, value *com.ArrayRef[float64], replace bool) (int, error) {
	return p.t.CallInt("SetLoadForce", name, loadPat, value, replace)
}

func (p pointObj) Count() (int, error) {
	return p.t.CallInt("Count")
}

// FrameObjV14 manages frame members.
type FrameObjV14 interface {
	AddByPoint(point1, point2 string, name *com.StringRef, propName, userName string) (int, error)
	AddByCoord(xi, yi, zi, xj, yj, zj float64, name *com.StringRef, propName, userName string) (int, error)
	GetPoints(name string, point1, point2 *com.StringRef) (int, error)
	SetLoadDistributed(name, loadPat string, myType enums.DistributedLoadType, dir enums.Dir,
		dist1, dist2, val1, val2 float64) (int, error)
	SetLoadPoint(name, loadPat string, myType enums.PointLoadType, dir enums.Dir, dist, value float64) (int, error)
	Count() (int, error)
}

type FrameObjV15 interface {
	FrameObjV14
}

type frameObj struct{ t *com.Target }

func (f frameObj) AddByPoint(point1, point2 string, name *com.StringRef, propName, userName string) (int, error) {
	return f.t.CallInt("AddByPoint", point1, point2, name, propName, userName)
}

func (f frameObj) AddByCoord(xi, yi, zi, xj, yj, zj float64, name *com.StringRef, propName, userName string) (int, error) {
	return f.t.CallInt("AddByCoord", xi, yi, zi, xj, yj, zj, name, propName, userName)
}

func (f frameObj) GetPoints(name string, point1, point2 *com.StringRef) (int, error) {
	return f.t.CallInt("GetPoints", name, point1, point2)
}

func (f frameObj) SetLoadDistributed(name, loadPat string, myType enums.DistributedLoadType, dir enums.Dir,
	dist1, dist2, val1, val2 float64) (int, error) {
	return f.t.CallInt("SetLoadDistributed", name, loadPat, myType, dir, dist1, dist2, val1, val2)
}

func (f frameObj) SetLoadPoint(name, loadPat string, myType enums.PointLoadType, dir enums.Dir, dist, value float64) (int, error) {
	return f.t.CallInt("SetLoadPoint", name, loadPat, myType, dir, dist, value)
}

func (f frameObj) Count() (int, error) {
	return f.t.CallInt("Count")
}
