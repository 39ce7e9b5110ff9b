package sap

import (
	"github.com/alexiusacademia/gosap/internal/com"
	"github.com/alexiusacademia/gosap/internal/sap/enums"
)

// LoadPatternsV14 defines load patterns.
type LoadPatternsV14 interface {
	// Add defines a pattern; addLoadCase also creates a linear static case
	// of the same name.
	Add(name string, myType enums.LoadPatternType, selfWTMultiplier float64, addLoadCase bool) (int, error)
	Count() (int, error)
	Delete(name string) (int, error)
	GetLoadType(name string, myType *com.IntRef) (int, error)
	SetSelfWTMultiplier(name string, selfWTMultiplier float64) (int, error)
}

type LoadPatternsV15 interface {
	LoadPatternsV14
}

type loadPatterns struct{ t *com.Target }

func (l loadPatterns) Add(name string, myType enums.LoadPatternType, selfWTMultiplier float64, addLoadCase bool) (int, error) {
	return l.t.CallInt("Add", name, myType, selfWTMultiplier, addLoadCase)
}

func (l loadPatterns) Count() (int, error) {
	return l.t.CallInt("Count")
}

func (l loadPatterns) Delete(name string) (int, error) {
	return l.t.CallInt("Delete", name)
}

func (l loadPatterns) GetLoadType(name string, myType *com.IntRef) (int, error) {
	return l.t.CallInt("GetLoadType", name, myType)
}

func (l loadPatterns) SetSelfWTMultiplier(name string, selfWTMultiplier float64) (int, error) {
	return l.t.CallInt("SetSelfWTMultiplier", name, selfWTMultiplier)
}

// LoadCasesV14 manages load cases of every type.
type LoadCasesV14 interface {
	Count() (int, error)
	Delete(name string) (int, error)
	ChangeName(name, newName string) (int, error)
}

type LoadCasesV15 interface {
	LoadCasesV14
}

type loadCases struct{ t *com.Target }

func (l loadCases) Count() (int, error) {
	return l.t.CallInt("Count")
}

func (l loadCases) Delete(name string) (int, error) {
	return l.t.CallInt("Delete", name)
}

func (l loadCases) ChangeName(name, newName string) (int, error) {
	return l.t.CallInt("ChangeName", name, newName)
}

// CaseStaticLinearV14 defines linear static load cases.
type CaseStaticLinearV14 interface {
	SetCase(name string) (int, error)
}

type CaseStaticLinearV15 interface {
	CaseStaticLinearV14
}

type caseStaticLinear struct{ t *com.Target }

func (c caseStaticLinear) SetCase(name string) (int, error) {
	return c.t.CallInt("SetCase", name)
}

// RespComboV14 defines load combinations.
type RespComboV14 interface {
	Add(name string, comboType enums.ComboType) (int, error)
	// SetCaseList adds cName, scaled by sf, to the combination.
	SetCaseList(name string, cType enums.CType, cName string, sf float64) (int, error)
	Delete(name string) (int, error)
	Count() (int, error)
}

type RespComboV15 interface {
	RespComboV14
}

type respCombo struct{ t *com.Target }

func (r respCombo) Add(name string, comboType enums.ComboType) (int, error) {
	return r.t.CallInt("Add", name, comboType)
}

func (r respCombo) SetCaseList(name string, cType enums.CType, cName string, sf float64) (int, error) {
	return r.t.CallInt("SetCaseList", name, cType, cName, sf)
}

func (r respCombo) Delete(name string) (int, error) {
	return r.t.CallInt("Delete", name)
}

func (r respCombo) Count() (int, error) {
	return r.t.CallInt("Count")
}

// FuncRSV14 defines response spectrum functions.
type FuncRSV14 interface {
	GetChinese2002(name string, alphaMax *com.DoubleRef, si *com.IntRef, tg, ptdf, dampRatio *com.DoubleRef) (int, error)
	SetChinese2002(name string, alphaMax float64, si int, tg, ptdf, dampRatio float64) (int, error)
	GetUser(name string, numberItems *com.IntRef, period, value *com.ArrayRef[float64], dampRatio *com.DoubleRef) (int, error)
	SetUser(name string, numberItems int, period, value *com.ArrayRef[float64], dampRatio float64) (int, error)
}

type FuncRSV15 interface {
	FuncRSV14
	// Deprecated: GetChinese2002 is kept for backward compatibility.
	GetChinese2002(name string, alphaMax *com.DoubleRef, si *com.IntRef, tg, ptdf, dampRatio *com.DoubleRef) (int, error)
	// Deprecated: SetChinese2002 is kept for backward compatibility.
	SetChinese2002(name string, alphaMax float64, si int, tg, ptdf, dampRatio float64) (int, error)
}

type funcRS struct{ t *com.Target }

func (f funcRS) GetChinese2002(name string, alphaMax *com.DoubleRef, si *com.IntRef, tg, ptdf, dampRatio *com.DoubleRef) (int, error) {
	return f.t.CallInt("GetChinese2002", name, alphaMax, si, tg, ptdf, dampRatio)
}

func (f funcRS) SetChinese2002(name string, alphaMax float64, si int, tg, ptdf, dampRatio float64) (int, error) {
	return f.t.CallInt("SetChinese2002", name, alphaMax, si, tg, ptdf, dampRatio)
}

func (f funcRS) GetUser(name string, numberItems *com.IntRef, period, value *com.ArrayRef[float64], dampRatio *com.DoubleRef) (int, error) {
	return f.t.CallInt("GetUser", name, numberItems, period, value, dampRatio)
}

func (f funcRS) SetUser(name string, numberItems int, period, value *com.ArrayRef[float64], dampRatio float64) (int, error) {
	return f.t.CallInt("SetUser", name, numberItems, period, value, dampRatio)
}

type funcRSV15 struct{ funcRS }

// Deprecated: GetChinese2002 is kept for backward compatibility.
func (f funcRSV15) GetChinese2002(name string, alphaMax *com.DoubleRef, si *com.IntRef, tg, ptdf, dampRatio *com.DoubleRef) (int, error) {
	return f.funcRS.GetChinese2002(name, alphaMax, si, tg, ptdf, dampRatio)
}

// Deprecated: SetChinese2002 is kept for backward compatibility.
func (f funcRSV15) SetChinese2002(name string, alphaMax float64, si int, tg, ptdf, dampRatio float64) (int, error) {
	return f.funcRS.SetChinese2002(name, alphaMax, si, tg, ptdf, dampRatio)
}
