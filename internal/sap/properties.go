package sap

import (
	"github.com/alexiusacademia/gosap/internal/com"
	"github.com/alexiusacademia/gosap/internal/sap/enums"
)

// PropMaterialV14 defines material properties.
type PropMaterialV14 interface {
	// SetMaterial adds a material, or changes the type of an existing one.
	SetMaterial(name string, matType enums.MatType) (int, error)
	// GetMaterial reports the type and display attributes of a material.
	// matType receives an enums.MatType identifier.
	GetMaterial(name string, matType, color *com.IntRef, notes, guid *com.StringRef) (int, error)
	AddQuick(name string, matType enums.MatType, steelType, concreteType int) (int, error)
	ChangeName(name, newName string) (int, error)
	Count() (int, error)
	Delete(name string) (int, error)
	SetMPIsotropic(name string, e, u, a float64) (int, error)
	GetMPIsotropic(name string, e, u, a, g *com.DoubleRef) (int, error)
	SetWeightAndMass(name string, option enums.WeightOrMass, value float64) (int, error)
	SetOConcrete1(name string, fc float64, isLightweight bool, fcsFactor float64, ssType, ssHysType int,
		strainAtFc, strainUltimate, finalSlope, frictionAngle, dilatationalAngle float64) (int, error)
}

type PropMaterialV15 interface {
	PropMaterialV14
	// Deprecated: AddQuick is kept for backward compatibility; use
	// AddMaterial.
	AddQuick(name string, matType enums.MatType, steelType, concreteType int) (int, error)
	// AddMaterial adds a material from the built-in library. name receives
	// the name the program assigned.
	AddMaterial(name *com.StringRef, matType enums.MatType, region, standard, grade string) (int, error)
}

type propMaterial struct{ t *com.Target }

func (p propMaterial) SetMaterial(name string, matType enums.MatType) (int, error) {
	return p.t.CallInt("SetMaterial", name, matType)
}

func (p propMaterial) GetMaterial(name string, matType, color *com.IntRef, notes, guid *com.StringRef) (int, error) {
	return p.t.CallInt("GetMaterial", name, matType, color, notes, guid)
}

func (p propMaterial) AddQuick(name string, matType enums.MatType, steelType, concreteType int) (int, error) {
	return p.t.CallInt("AddQuick", name, matType, steelType, concreteType)
}

func (p propMaterial) ChangeName(name, newName string) (int, error) {
	return p.t.CallInt("ChangeName", name, newName)
}

func (p propMaterial) Count() (int, error) {
	return p.t.CallInt("Count")
}

func (p propMaterial) Delete(name string) (int, error) {
	return p.t.CallInt("Delete", name)
}

func (p propMaterial) SetMPIsotropic(name string, e, u, a float64) (int, error) {
	return p.t.CallInt("SetMPIsotropic", name, e, u, a)
}

func (p propMaterial) GetMPIsotropic(name string, e, u, a, g *com.DoubleRef) (int, error) {
	return p.t.CallInt("GetMPIsotropic", name, e, u, a, g)
}

func (p propMaterial) SetWeightAndMass(name string, option enums.WeightOrMass, value float64) (int, error) {
	return p.t.CallInt("SetWeightAndMass", name, option, value)
}

func (p propMaterial) SetOConcrete1(name string, fc float64, isLightweight bool, fcsFactor float64, ssType, ssHysType int,
	strainAtFc, strainUltimate, finalSlope, frictionAngle, dilatationalAngle float64) (int, error) {
	return p.t.CallInt("SetOConcrete_1", name, fc, isLightweight, fcsFactor, ssType, ssHysType,
		strainAtFc, strainUltimate, finalSlope, frictionAngle, dilatationalAngle)
}

type propMaterialV15 struct{ propMaterial }

// Deprecated: AddQuick is kept for backward compatibility; use AddMaterial.
func (p propMaterialV15) AddQuick(name string, matType enums.MatType, steelType, concreteType int) (int, error) {
	return p.propMaterial.AddQuick(name, matType, steelType, concreteType)
}

func (p propMaterialV15) AddMaterial(name *com.StringRef, matType enums.MatType, region, standard, grade string) (int, error) {
	return p.t.CallInt("AddMaterial", name, matType, region, standard, grade)
}

// PropMaterialTDV14 holds time-dependent material properties.
type PropMaterialTDV14 interface {
	SetConcreteCEBFIP90(name string, considerAge, considerCreep, considerShrinkage bool,
		coefficient, relativeHumidity, notionalSize, shrinkageCoefficient, shrinkageStartAge float64,
		useSeries, numberSeriesTerms int) (int, error)
	GetConcreteCEBFIP90(name string, considerAge, considerCreep, considerShrinkage *com.BoolRef,
		coefficient, relativeHumidity, notionalSize, shrinkageCoefficient, shrinkageStartAge *com.DoubleRef,
		useSeries, numberSeriesTerms *com.IntRef) (int, error)
}

type PropMaterialTDV15 interface {
	PropMaterialTDV14
}

type propMaterialTD struct{ t *com.Target }

func (p propMaterialTD) SetConcreteCEBFIP90(name string, considerAge, considerCreep, considerShrinkage bool,
	coefficient, relativeHumidity, notionalSize, shrinkageCoefficient, shrinkageStartAge float64,
	useSeries, numberSeriesTerms int) (int, error) {
	return p.t.CallInt("SetConcreteCEBFIP90", name, considerAge, considerCreep, considerShrinkage,
		coefficient, relativeHumidity, notionalSize, shrinkageCoefficient, shrinkageStartAge,
		useSeries, numberSeriesTerms)
}

func (p propMaterialTD) GetConcreteCEBFIP90(name string, considerAge, considerCreep, considerShrinkage *com.BoolRef,
	coefficient, relativeHumidity, notionalSize, shrinkageCoefficient, shrinkageStartAge *com.DoubleRef,
	useSeries, numberSeriesTerms *com.IntRef) (int, error) {
	return p.t.CallInt("GetConcreteCEBFIP90", name, considerAge, considerCreep, considerShrinkage,
		coefficient, relativeHumidity, notionalSize, shrinkageCoefficient, shrinkageStartAge,
		useSeries, numberSeriesTerms)
}

// PropFrameV14 defines frame section properties.
type PropFrameV14 interface {
	SetRectangle(name, matProp string, t3, t2 float64) (int, error)
	GetRectangle(name string, fileName, matProp *com.StringRef, t3, t2 *com.DoubleRef,
		color *com.IntRef, notes, guid *com.StringRef) (int, error)
	SetCircle(name, matProp string, t3 float64) (int, error)
	// SetModifiers assigns the eight section property modifiers.
	SetModifiers(name string, value *com.ArrayRef[float64]) (int, error)
	GetModifiers(name string, value *com.ArrayRef[float64]) (int, error)
	Count() (int, error)
}

type PropFrameV15 interface {
	PropFrameV14
}

type propFrame struct{ t *com.Target }

func (p propFrame) SetRectangle(name, matProp string, t3, t2 float64) (int, error) {
	return p.t.CallInt("SetRectangle", name, matProp, t3, t2)
}

func (p propFrame) GetRectangle(name string, fileName, matProp *com.StringRef, t3, t2 *com.DoubleRef,
	color *com.IntRef, notes, guid *com.StringRef) (int, error) {
	return p.t.CallInt("GetRectangle", name, fileName, matProp, t3, t2, color, notes, guid)
}

func (p propFrame) SetCircle(name, matProp string, t3 float64) (int, error) {
	return p.t.CallInt("SetCircle", name, matProp, t3)
}

func (p propFrame) SetModifiers(name string, value *com.ArrayRef[float64]) (int, error) {
	return p.t.CallInt("SetModifiers", name, value)
}

func (p propFrame) GetModifiers(name string, value *com.ArrayRef[float64]) (int, error) {
	return p.t.CallInt("GetModifiers", name, value)
}

func (p propFrame) Count() (int, error) {
	return p.t.CallInt("Count")
}
