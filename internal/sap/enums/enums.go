// Package enums holds the enumerations of the SAP2000 automation interface.
// Every member carries the identifier the external application uses for it.
package enums

import (
	"strconv"

	"github.com/alexiusacademia/gosap/internal/com"
)

// Units is the eUnits database unit system.
type Units int

const (
	LbInF  Units = 1
	LbFtF  Units = 2
	KipInF Units = 3
	KipFtF Units = 4
	KNmmC  Units = 5
	KNmC   Units = 6
	KgfMmC Units = 7
	KgfMC  Units = 8
	NmmC   Units = 9
	NmC    Units = 10
	TonMmC Units = 11
	TonMC  Units = 12
	KNcmC  Units = 13
	KgfCmC Units = 14
	NcmC   Units = 15
	TonCmC Units = 16
)

var unitNames = map[Units]string{
	LbInF: "lb_in_F", LbFtF: "lb_ft_F", KipInF: "kip_in_F", KipFtF: "kip_ft_F",
	KNmmC: "kN_mm_C", KNmC: "kN_m_C", KgfMmC: "kgf_mm_C", KgfMC: "kgf_m_C",
	NmmC: "N_mm_C", NmC: "N_m_C", TonMmC: "Ton_mm_C", TonMC: "Ton_m_C",
	KNcmC: "kN_cm_C", KgfCmC: "kgf_cm_C", NcmC: "N_cm_C", TonCmC: "Ton_cm_C",
}

func (u Units) SapID() int     { return int(u) }
func (u Units) String() string { return name(unitNames, u) }

var UnitsTable = com.NewEnumTable[int, Units]("Units",
	LbInF, LbFtF, KipInF, KipFtF, KNmmC, KNmC, KgfMmC, KgfMC,
	NmmC, NmC, TonMmC, TonMC, KNcmC, KgfCmC, NcmC, TonCmC)

// MatType is eMatType.
type MatType int

const (
	MatSteel      MatType = 1
	MatConcrete   MatType = 2
	MatNoDesign   MatType = 3
	MatAluminum   MatType = 4
	MatColdFormed MatType = 5
	MatRebar      MatType = 6
	MatTendon     MatType = 7
)

var matTypeNames = map[MatType]string{
	MatSteel: "STEEL", MatConcrete: "CONCRETE", MatNoDesign: "NODESIGN", MatAluminum: "ALUMINUM",
	MatColdFormed: "COLDFORMED", MatRebar: "REBAR", MatTendon: "TENDON",
}

func (m MatType) SapID() int     { return int(m) }
func (m MatType) String() string { return name(matTypeNames, m) }

var MatTypeTable = com.NewEnumTable[int, MatType]("MatType",
	MatSteel, MatConcrete, MatNoDesign, MatAluminum, MatColdFormed, MatRebar, MatTendon)

// WeightOrMass selects how SetWeightAndMass interprets its value.
type WeightOrMass int

const (
	WeightPerUnitVolume WeightOrMass = 1
	MassPerUnitVolume   WeightOrMass = 2
)

func (w WeightOrMass) SapID() int { return int(w) }

func (w WeightOrMass) String() string {
	return name(map[WeightOrMass]string{
		WeightPerUnitVolume: "WEIGHT_PER_UNIT_VOLUME",
		MassPerUnitVolume:   "MASS_PER_UNIT_VOLUME",
	}, w)
}

var WeightOrMassTable = com.NewEnumTable[int, WeightOrMass]("WeightOrMass",
	WeightPerUnitVolume, MassPerUnitVolume)

// Dir is a load direction.
type Dir int

const (
	Local1           Dir = 1
	Local2           Dir = 2
	Local3           Dir = 3
	DirX             Dir = 4
	DirY             Dir = 5
	DirZ             Dir = 6
	ProjectedX       Dir = 7
	ProjectedY       Dir = 8
	ProjectedZ       Dir = 9
	Gravity          Dir = 10
	ProjectedGravity Dir = 11
)

var dirNames = map[Dir]string{
	Local1: "LOCAL_1_AXIS", Local2: "LOCAL_2_AXIS", Local3: "LOCAL_3_AXIS",
	DirX: "X_DIRECTION", DirY: "Y_DIRECTION", DirZ: "Z_DIRECTION",
	ProjectedX: "PROJECTED_X_DIRECTION", ProjectedY: "PROJECTED_Y_DIRECTION", ProjectedZ: "PROJECTED_Z_DIRECTION",
	Gravity: "GRAVITY_DIRECTION", ProjectedGravity: "PROJECTED_GRAVITY_DIRECTION",
}

func (d Dir) SapID() int     { return int(d) }
func (d Dir) String() string { return name(dirNames, d) }

var DirTable = com.NewEnumTable[int, Dir]("Dir",
	Local1, Local2, Local3, DirX, DirY, DirZ, ProjectedX, ProjectedY, ProjectedZ, Gravity, ProjectedGravity)

// LoadPatternType is eLoadPatternType.
type LoadPatternType int

const (
	PatternDead LoadPatternType = iota + 1
	PatternSuperDead
	PatternLive
	PatternReduceLive
	PatternQuake
	PatternWind
	PatternSnow
	PatternOther
	PatternMove
	PatternTemperature
	PatternRoofLive
	PatternNotional
	PatternPatternLive
	PatternWave
	PatternBraking
	PatternCentrifugal
	PatternFriction
	PatternIce
	PatternWindOnLiveLoad
	PatternHorizontalEarthPressure
	PatternVerticalEarthPressure
	PatternEarthSurcharge
	PatternDownDrag
	PatternVehicleCollision
	PatternVesselCollision
	PatternTemperatureGradient
	PatternSettlement
	PatternShrinkage
	PatternCreep
	PatternWaterLoadPressure
	PatternLiveLoadSurcharge
	PatternLockedInForces
	PatternPedestrianLL
	PatternPrestress
	PatternHyperstatic
	PatternBouyancy
	PatternStreamFlow
	PatternImpact
	PatternConstruction
)

var loadPatternNames = []string{
	"DEAD", "SUPERDEAD", "LIVE", "REDUCELIVE", "QUAKE", "WIND", "SNOW", "OTHER", "MOVE",
	"TEMPERATURE", "ROOFLIVE", "NOTIONAL", "PATTERNLIVE", "WAVE", "BRAKING", "CENTRIFUGAL",
	"FRICTION", "ICE", "WINDONLIVELOAD", "HORIZONTALEARTHPRESSURE", "VERTICALEARTHPRESSURE",
	"EARTHSURCHARGE", "DOWNDRAG", "VEHICLECOLLISION", "VESSELCOLLISION", "TEMPERATUREGRADIENT",
	"SETTLEMENT", "SHRINKAGE", "CREEP", "WATERLOADPRESSURE", "LIVELOADSURCHARGE",
	"LOCKEDINFORCES", "PEDESTRIANLL", "PRESTRESS", "HYPERSTATIC", "BOUYANCY", "STREAMFLOW",
	"IMPACT", "CONSTRUCTION",
}

func (p LoadPatternType) SapID() int { return int(p) }

func (p LoadPatternType) String() string {
	if p >= PatternDead && int(p) <= len(loadPatternNames) {
		return loadPatternNames[p-1]
	}
	return unknown(int(p))
}

var LoadPatternTypeTable = func() *com.EnumTable[int, LoadPatternType] {
	members := make([]LoadPatternType, len(loadPatternNames))
	for i := range members {
		members[i] = LoadPatternType(i + 1)
	}
	return com.NewEnumTable[int, LoadPatternType]("LoadPatternType", members...)
}()

// DistributedLoadType is the MyType of SetLoadDistributed.
type DistributedLoadType int

const (
	ForcePerUnitLength  DistributedLoadType = 1
	MomentPerUnitLength DistributedLoadType = 2
)

func (d DistributedLoadType) SapID() int { return int(d) }

func (d DistributedLoadType) String() string {
	return name(map[DistributedLoadType]string{
		ForcePerUnitLength:  "FORCE_PER_UNIT_LENGTH",
		MomentPerUnitLength: "MOMENT_PER_UNIT_LENGTH",
	}, d)
}

var DistributedLoadTypeTable = com.NewEnumTable[int, DistributedLoadType]("DistributedLoadType",
	ForcePerUnitLength, MomentPerUnitLength)

// PointLoadType is the MyType of SetLoadPoint.
type PointLoadType int

const (
	PointForce  PointLoadType = 1
	PointMoment PointLoadType = 2
)

func (p PointLoadType) SapID() int { return int(p) }

func (p PointLoadType) String() string {
	return name(map[PointLoadType]string{PointForce: "FORCE", PointMoment: "MOMENT"}, p)
}

var PointLoadTypeTable = com.NewEnumTable[int, PointLoadType]("PointLoadType", PointForce, PointMoment)

// ComboType is eComboType.
type ComboType int

const (
	LinearAdditive   ComboType = 0
	Envelope         ComboType = 1
	AbsoluteAdditive ComboType = 2
	SRSS             ComboType = 3
	RangeAdditive    ComboType = 4
)

var comboTypeNames = map[ComboType]string{
	LinearAdditive: "LINEAR_ADDITIVE", Envelope: "ENVELOPE", AbsoluteAdditive: "ABSOLUTE_ADDITIVE",
	SRSS: "SRSS", RangeAdditive: "RANGE_ADDITIVE",
}

func (c ComboType) SapID() int     { return int(c) }
func (c ComboType) String() string { return name(comboTypeNames, c) }

var ComboTypeTable = com.NewEnumTable[int, ComboType]("ComboType",
	LinearAdditive, Envelope, AbsoluteAdditive, SRSS, RangeAdditive)

// CType tells SetCaseList whether CName is a load case or a combination.
type CType int

const (
	LoadCase  CType = 0
	LoadCombo CType = 1
)

func (c CType) SapID() int { return int(c) }

func (c CType) String() string {
	return name(map[CType]string{LoadCase: "LOAD_CASE", LoadCombo: "LOAD_COMBO"}, c)
}

var CTypeTable = com.NewEnumTable[int, CType]("CType", LoadCase, LoadCombo)

// ItemType selects what a Name argument refers to.
type ItemType int

const (
	Object          ItemType = 0
	Group           ItemType = 1
	SelectedObjects ItemType = 2
)

func (i ItemType) SapID() int { return int(i) }

func (i ItemType) String() string {
	return name(map[ItemType]string{Object: "OBJECT", Group: "GROUP", SelectedObjects: "SELECTED_OBJECTS"}, i)
}

var ItemTypeTable = com.NewEnumTable[int, ItemType]("ItemType", Object, Group, SelectedObjects)

// E2DFrameType is the template of File.New2DFrame.
type E2DFrameType int

const (
	PortalFrame      E2DFrameType = 0
	ConcentricBraced E2DFrameType = 1
	EccentricBraced  E2DFrameType = 2
)

func (e E2DFrameType) SapID() int { return int(e) }

func (e E2DFrameType) String() string {
	return name(map[E2DFrameType]string{
		PortalFrame: "PORTAL_FRAME", ConcentricBraced: "CONCENTRIC_BRACED", EccentricBraced: "ECCENTRIC_BRACED",
	}, e)
}

var E2DFrameTypeTable = com.NewEnumTable[int, E2DFrameType]("E2DFrameType",
	PortalFrame, ConcentricBraced, EccentricBraced)

// LoadCaseType is eLoadCaseType.
type LoadCaseType int

const (
	LinearStatic          LoadCaseType = 1
	NonlinearStatic       LoadCaseType = 2
	Modal                 LoadCaseType = 3
	ResponseSpectrum      LoadCaseType = 4
	LinearHistory         LoadCaseType = 5
	NonlinearHistory      LoadCaseType = 6
	LinearDynamic         LoadCaseType = 7
	NonlinearDynamic      LoadCaseType = 8
	MovingLoad            LoadCaseType = 9
	Buckling              LoadCaseType = 10
	SteadyState           LoadCaseType = 11
	PowerSpectralDensity  LoadCaseType = 12
	LinearStaticMultistep LoadCaseType = 13
	Hyperstatic           LoadCaseType = 14
)

var loadCaseTypeNames = map[LoadCaseType]string{
	LinearStatic: "LINEAR_STATIC", NonlinearStatic: "NONLINEAR_STATIC", Modal: "MODAL",
	ResponseSpectrum: "RESPONSE_SPECTRUM", LinearHistory: "LINEAR_HISTORY", NonlinearHistory: "NONLINEAR_HISTORY",
	LinearDynamic: "LINEAR_DYNAMIC", NonlinearDynamic: "NONLINEAR_DYNAMIC", MovingLoad: "MOVING_LOAD",
	Buckling: "BUCKLING", SteadyState: "STEADY_STATE", PowerSpectralDensity: "POWER_SPECTRAL_DENSITY",
	LinearStaticMultistep: "LINEAR_STATIC_MULTISTEP", Hyperstatic: "HYPERSTATIC",
}

func (l LoadCaseType) SapID() int     { return int(l) }
func (l LoadCaseType) String() string { return name(loadCaseTypeNames, l) }

var LoadCaseTypeTable = com.NewEnumTable[int, LoadCaseType]("LoadCaseType",
	LinearStatic, NonlinearStatic, Modal, ResponseSpectrum, LinearHistory, NonlinearHistory,
	LinearDynamic, NonlinearDynamic, MovingLoad, Buckling, SteadyState, PowerSpectralDensity,
	LinearStaticMultistep, Hyperstatic)

// LoadType is the kind of load applied in a load case. Its identifier is a
// string.
type LoadType string

const (
	Load  LoadType = "Load"
	Accel LoadType = "Accel"
)

func (l LoadType) SapID() string { return string(l) }

func (l LoadType) String() string {
	switch l {
	case Load:
		return "LOAD"
	case Accel:
		return "ACCEL"
	}
	return string(l)
}

var LoadTypeTable = com.NewEnumTable[string, LoadType]("LoadType", Load, Accel)

// SolverType is the analysis solver.
type SolverType int

const (
	StandardSolver SolverType = 0
	AdvancedSolver SolverType = 1
)

func (s SolverType) SapID() int { return int(s) }

func (s SolverType) String() string {
	return name(map[SolverType]string{StandardSolver: "STANDARD", AdvancedSolver: "ADVANCED"}, s)
}

var SolverTypeTable = com.NewEnumTable[int, SolverType]("SolverType", StandardSolver, AdvancedSolver)

func name[E ~int](names map[E]string, e E) string {
	if s, ok := names[e]; ok {
		return s
	}
	return unknown(int(e))
}

func unknown(id int) string {
	return "UNKNOWN(" + strconv.Itoa(id) + ")"
}
