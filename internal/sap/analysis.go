package sap

import (
	"github.com/alexiusacademia/gosap/internal/com"
	"github.com/alexiusacademia/gosap/internal/sap/enums"
)

type AnalyzeV14 interface {
	CreateAnalysisModel() (int, error)
	RunAnalysis() (int, error)
	// SetRunCaseFlag marks a case to run; with all set, name is ignored
	// and every case is marked.
	SetRunCaseFlag(name string, run, all bool) (int, error)
}

type AnalyzeV15 interface {
	AnalyzeV14
}

type analyze struct{ t *com.Target }

func (a analyze) CreateAnalysisModel() (int, error) {
	return a.t.CallInt("CreateAnalysisModel")
}

func (a analyze) RunAnalysis() (int, error) {
	return a.t.CallInt("RunAnalysis")
}

func (a analyze) SetRunCaseFlag(name string, run, all bool) (int, error) {
	return a.t.CallInt("SetRunCaseFlag", name, run, all)
}

// ResultsSetupV14 selects which cases and combinations report results.
type ResultsSetupV14 interface {
	DeselectAllCasesAndCombosForOutput() (int, error)
	SetCaseSelectedForOutput(name string, selected bool) (int, error)
	SetComboSelectedForOutput(name string, selected bool) (int, error)
}

type ResultsSetupV15 interface {
	ResultsSetupV14
}

type resultsSetup struct{ t *com.Target }

func (r resultsSetup) DeselectAllCasesAndCombosForOutput() (int, error) {
	return r.t.CallInt("DeselectAllCasesAndCombosForOutput")
}

func (r resultsSetup) SetCaseSelectedForOutput(name string, selected bool) (int, error) {
	return r.t.CallInt("SetCaseSelectedForOutput", name, selected)
}

func (r resultsSetup) SetComboSelectedForOutput(name string, selected bool) (int, error) {
	return r.t.CallInt("SetComboSelectedForOutput", name, selected)
}

// SteelChinese2002V14 is the Chinese 2002 steel frame design code.
type SteelChinese2002V14 interface {
	GetOverwrite(name string, item int, value *com.DoubleRef, progDet *com.BoolRef) (int, error)
	SetOverwrite(name string, item int, value float64, itemType enums.ItemType) (int, error)
	GetPreference(item int, value *com.DoubleRef) (int, error)
	SetPreference(item int, value float64) (int, error)
}

type SteelChinese2002V15 interface {
	SteelChinese2002V14
	// Deprecated: GetOverwrite is kept for backward compatibility.
	GetOverwrite(name string, item int, value *com.DoubleRef, progDet *com.BoolRef) (int, error)
}

type steelChinese2002 struct{ t *com.Target }

func (s steelChinese2002) GetOverwrite(name string, item int, value *com.DoubleRef, progDet *com.BoolRef) (int, error) {
	return s.t.CallInt("GetOverwrite", name, item, value, progDet)
}

func (s steelChinese2002) SetOverwrite(name string, item int, value float64, itemType enums.ItemType) (int, error) {
	return s.t.CallInt("SetOverwrite", name, item, value, itemType)
}

func (s steelChinese2002) GetPreference(item int, value *com.DoubleRef) (int, error) {
	return s.t.CallInt("GetPreference", item, value)
}

func (s steelChinese2002) SetPreference(item int, value float64) (int, error) {
	return s.t.CallInt("SetPreference", item, value)
}

type steelChinese2002V15 struct{ steelChinese2002 }

// Deprecated: GetOverwrite is kept for backward compatibility.
func (s steelChinese2002V15) GetOverwrite(name string, item int, value *com.DoubleRef, progDet *com.BoolRef) (int, error) {
	return s.steelChinese2002.GetOverwrite(name, item, value, progDet)
}
