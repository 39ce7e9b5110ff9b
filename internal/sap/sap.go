// Package sap exposes the SAP2000 automation object model as typed Go
// facades. Each facade method is a single call on a bound external object;
// the capability interfaces fix which operations a program generation
// offers.
package sap

import (
	"fmt"
	"strings"

	"github.com/masterminds/semver"

	"github.com/alexiusacademia/gosap/internal/com"
)

// Generation is a version of the automation interface.
type Generation int

const (
	V14 Generation = 14
	V15 Generation = 15
)

func (g Generation) String() string {
	return fmt.Sprintf("v%d", int(g))
}

// ParseGeneration accepts "v14", "14", "v15" or "15".
func ParseGeneration(s string) (Generation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "v14", "14":
		return V14, nil
	case "v15", "15":
		return V15, nil
	}
	return 0, fmt.Errorf("unknown generation %q, want v14 or v15", s)
}

// DefaultProgram is the registered program name of a generation.
func DefaultProgram(g Generation) string {
	if g == V14 {
		return "Sap2000"
	}
	return "Sap2000v15"
}

// GenerationOf maps the version string reported by SapModel.GetVersion to
// the generation whose interface it implements.
func GenerationOf(version string) (Generation, error) {
	fields := strings.Fields(version)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty program version")
	}
	v, err := semver.NewVersion(fields[0])
	if err != nil {
		return 0, fmt.Errorf("parse program version %q: %w", version, err)
	}
	switch {
	case v.Major() == 14:
		return V14, nil
	case v.Major() >= 15:
		return V15, nil
	}
	return 0, fmt.Errorf("program version %s predates the v14 interface", v)
}

// ObjectV14 is the root of the v14 object model.
type ObjectV14 struct {
	SapObjectV14
	Program  string
	SapModel *ModelV14
}

// ModelV14 groups the v14 sub-objects of the model.
type ModelV14 struct {
	SapModelV14
	File             FileV14
	PropMaterial     PropMaterialV14
	PropMaterialTD   PropMaterialTDV14
	PropFrame        PropFrameV14
	PointObj         PointObjV14
	FrameObj         FrameObjV14
	LoadPatterns     LoadPatternsV14
	LoadCases        LoadCasesV14
	StaticLinear     CaseStaticLinearV14
	RespCombo        RespComboV14
	FuncRS           FuncRSV14
	Analyze          AnalyzeV14
	ResultsSetup     ResultsSetupV14
	SteelChinese2002 SteelChinese2002V14
	View             ViewV14
}

// ObjectV15 is the root of the v15 object model.
type ObjectV15 struct {
	SapObjectV15
	Program  string
	SapModel *ModelV15
}

// ModelV15 groups the v15 sub-objects of the model.
type ModelV15 struct {
	SapModelV15
	File             FileV15
	PropMaterial     PropMaterialV15
	PropMaterialTD   PropMaterialTDV15
	PropFrame        PropFrameV15
	PointObj         PointObjV15
	FrameObj         FrameObjV15
	LoadPatterns     LoadPatternsV15
	LoadCases        LoadCasesV15
	StaticLinear     CaseStaticLinearV15
	RespCombo        RespComboV15
	FuncRS           FuncRSV15
	Analyze          AnalyzeV15
	ResultsSetup     ResultsSetupV15
	SteelChinese2002 SteelChinese2002V15
	View             ViewV15
}

// NewV14 binds every v14 object of program through c. An empty program
// selects DefaultProgram(V14).
func NewV14(c com.Connector, program string) (*ObjectV14, error) {
	if program == "" {
		program = DefaultProgram(V14)
	}
	b := &binder{c: c, program: program}
	obj := &ObjectV14{
		SapObjectV14: sapObject{b.target("SapObject")},
		Program:      program,
		SapModel: &ModelV14{
			SapModelV14:      sapModel{b.target("cSapModel")},
			File:             file{b.target("cFile")},
			PropMaterial:     propMaterial{b.target("cPropMaterial")},
			PropMaterialTD:   propMaterialTD{b.target("cPropMaterialTD")},
			PropFrame:        propFrame{b.target("cPropFrame")},
			PointObj:         pointObj{b.target("cPointObj")},
			FrameObj:         frameObj{b.target("cFrameObj")},
			LoadPatterns:     loadPatterns{b.target("cLoadPatterns")},
			LoadCases:        loadCases{b.target("cLoadCases")},
			StaticLinear:     caseStaticLinear{b.target("cCaseStaticLinear")},
			RespCombo:        respCombo{b.target("cCombo")},
			FuncRS:           funcRS{b.target("cFunctionRS")},
			Analyze:          analyze{b.target("cAnalyze")},
			ResultsSetup:     resultsSetup{b.target("cAnalysisResultsSetup")},
			SteelChinese2002: steelChinese2002{b.target("cDStChinese_2002")},
			View:             view{b.target("cView")},
		},
	}
	if b.err != nil {
		return nil, b.err
	}
	return obj, nil
}

// NewV15 binds every v15 object of program through c. An empty program
// selects DefaultProgram(V15).
func NewV15(c com.Connector, program string) (*ObjectV15, error) {
	if program == "" {
		program = DefaultProgram(V15)
	}
	b := &binder{c: c, program: program}
	obj := &ObjectV15{
		SapObjectV15: sapObjectV15{sapObject{b.target("SapObject")}},
		Program:      program,
		SapModel: &ModelV15{
			SapModelV15:      sapModelV15{sapModel{b.target("cSapModel")}},
			File:             file{b.target("cFile")},
			PropMaterial:     propMaterialV15{propMaterial{b.target("cPropMaterial")}},
			PropMaterialTD:   propMaterialTD{b.target("cPropMaterialTD")},
			PropFrame:        propFrame{b.target("cPropFrame")},
			PointObj:         pointObj{b.target("cPointObj")},
			FrameObj:         frameObj{b.target("cFrameObj")},
			LoadPatterns:     loadPatterns{b.target("cLoadPatterns")},
			LoadCases:        loadCases{b.target("cLoadCases")},
			StaticLinear:     caseStaticLinear{b.target("cCaseStaticLinear")},
			RespCombo:        respCombo{b.target("cCombo")},
			FuncRS:           funcRSV15{funcRS{b.target("cFunctionRS")}},
			Analyze:          analyze{b.target("cAnalyze")},
			ResultsSetup:     resultsSetup{b.target("cAnalysisResultsSetup")},
			SteelChinese2002: steelChinese2002V15{steelChinese2002{b.target("cDStChinese_2002")}},
			View:             view{b.target("cView")},
		},
	}
	if b.err != nil {
		return nil, b.err
	}
	return obj, nil
}

// binder binds "<program>.<class>" names and keeps the first failure.
type binder struct {
	c       com.Connector
	program string
	err     error
}

func (b *binder) target(class string) *com.Target {
	if b.err != nil {
		return nil
	}
	t, err := com.Bind(b.c, b.program+"."+class)
	if err != nil {
		b.err = err
	}
	return t
}

// StatusError is an operation that completed with a non-zero status code.
type StatusError struct {
	Op     string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Op, e.Status)
}

// Check folds a status code into the call error: a failed call keeps its
// error, a non-zero status becomes a *StatusError.
func Check(op string, status int, err error) error {
	if err != nil {
		return err
	}
	if status != 0 {
		return &StatusError{Op: op, Status: status}
	}
	return nil
}
