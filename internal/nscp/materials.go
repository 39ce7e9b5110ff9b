package nscp

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/gosap/internal/sap"
	"github.com/alexiusacademia/gosap/internal/sap/enums"
)

// NSCP 2015 Material Constants

const (
	// Beta1 factors for equivalent rectangular stress block
	// Section 410.2.7.3
	Beta1Max = 0.85 // for f'c <= 28 MPa
	Beta1Min = 0.65 // minimum value

	// Strain limits
	EpsilonCU = 0.003 // Ultimate concrete strain (Section 410.2.2.1)
	EpsilonC0 = 0.002 // Strain at f'c

	PoissonConcrete = 0.2
	AlphaConcrete   = 9.9e-6 // Thermal coefficient, 1/C
	UnitWeightRC    = 23.6   // Reinforced concrete, kN/m3
)

// Beta1 calculates the factor for equivalent rectangular stress block
// NSCP 2015 Section 410.2.7.3
func Beta1(fc float64) float64 {
	if fc <= 28 {
		return Beta1Max
	}
	// β1 = 0.85 - 0.05(f'c - 28)/7 for f'c > 28 MPa
	beta1 := Beta1Max - 0.05*(fc-28)/7
	return math.Max(beta1, Beta1Min)
}

// Ec is the modulus of elasticity of normal weight concrete in MPa
// NSCP 2015 Section 419.2.2.1
func Ec(fc float64) float64 {
	return 4700 * math.Sqrt(fc)
}

// Concrete holds the properties of a normal weight concrete, in MPa and
// kN/m3.
type Concrete struct {
	Fc         float64
	Ec         float64
	Poisson    float64
	Alpha      float64
	UnitWeight float64
	Beta1      float64
}

func NewConcrete(fc float64) (Concrete, error) {
	if fc < 17 {
		return Concrete{}, fmt.Errorf("f'c = %.1f MPa is below the 17 MPa minimum", fc)
	}
	return Concrete{
		Fc:         fc,
		Ec:         Ec(fc),
		Poisson:    PoissonConcrete,
		Alpha:      AlphaConcrete,
		UnitWeight: UnitWeightRC,
		Beta1:      Beta1(fc),
	}, nil
}

// siScale converts MPa and kN/m3 into the stress and weight density of an
// SI unit system.
type siScale struct {
	stress float64
	weight float64
}

var siScales = map[enums.Units]siScale{
	enums.NmmC:  {stress: 1, weight: 1e-6},
	enums.NcmC:  {stress: 100, weight: 1e-3},
	enums.NmC:   {stress: 1e6, weight: 1e3},
	enums.KNmmC: {stress: 1e-3, weight: 1e-9},
	enums.KNcmC: {stress: 0.1, weight: 1e-6},
	enums.KNmC:  {stress: 1e3, weight: 1},
}

// ErrUnits is returned when the model uses a unit system without an SI
// conversion.
var ErrUnits = errors.New("model units are not newton based SI")

// DefineConcrete adds c to the model as material name, converted into the
// present units of model.
func DefineConcrete(model sap.SapModelV14, mat sap.PropMaterialV14, name string, c Concrete) error {
	units, err := model.GetPresentUnits()
	if err != nil {
		return err
	}
	scale, ok := siScales[units]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnits, units)
	}

	status, err := mat.SetMaterial(name, enums.MatConcrete)
	if err := sap.Check("PropMaterial.SetMaterial", status, err); err != nil {
		return err
	}
	status, err = mat.SetMPIsotropic(name, c.Ec*scale.stress, c.Poisson, c.Alpha)
	if err := sap.Check("PropMaterial.SetMPIsotropic", status, err); err != nil {
		return err
	}
	status, err = mat.SetWeightAndMass(name, enums.WeightPerUnitVolume, c.UnitWeight*scale.weight)
	if err := sap.Check("PropMaterial.SetWeightAndMass", status, err); err != nil {
		return err
	}
	// Parametric simple stress-strain curve with Takeda hysteresis.
	status, err = mat.SetOConcrete1(name, c.Fc*scale.stress, false, 1, 1, 2, EpsilonC0, EpsilonCU, -0.1, 0, 0)
	return sap.Check("PropMaterial.SetOConcrete_1", status, err)
}
