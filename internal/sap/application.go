package sap

import (
	"github.com/alexiusacademia/gosap/internal/com"
	"github.com/alexiusacademia/gosap/internal/sap/enums"
)

// SapObjectV14 controls the application process itself.
type SapObjectV14 interface {
	// ApplicationStart starts the program. fileName may be empty.
	ApplicationStart(units enums.Units, visible bool, fileName string) (int, error)
	ApplicationExit(fileSave bool) (int, error)
	Hide() (int, error)
	Unhide() (int, error)
}

type SapObjectV15 interface {
	SapObjectV14
	// GetOAPIVersionNumber returns the version of the automation interface.
	GetOAPIVersionNumber() (float64, error)
}

type sapObject struct{ t *com.Target }

func (s sapObject) ApplicationStart(units enums.Units, visible bool, fileName string) (int, error) {
	return s.t.CallInt("ApplicationStart", units, visible, fileName)
}

func (s sapObject) ApplicationExit(fileSave bool) (int, error) {
	return s.t.CallInt("ApplicationExit", fileSave)
}

func (s sapObject) Hide() (int, error) {
	return s.t.CallInt("Hide")
}

func (s sapObject) Unhide() (int, error) {
	return s.t.CallInt("Unhide")
}

type sapObjectV15 struct{ sapObject }

func (s sapObjectV15) GetOAPIVersionNumber() (float64, error) {
	return s.t.CallDouble("GetOAPIVersionNumber")
}

// SapModelV14 holds model-wide settings.
type SapModelV14 interface {
	InitializeNewModel(units enums.Units) (int, error)
	GetPresentUnits() (enums.Units, error)
	SetPresentUnits(units enums.Units) (int, error)
	GetVersion(version *com.StringRef, versionNumber *com.DoubleRef) (int, error)
	GetModelIsLocked() (bool, error)
	SetModelIsLocked(lockIt bool) (int, error)
	GetModelFilename(includePath bool) (string, error)
}

type SapModelV15 interface {
	SapModelV14
	GetProgramInfo(programName, programVersion, programLevel *com.StringRef) (int, error)
}

type sapModel struct{ t *com.Target }

func (m sapModel) InitializeNewModel(units enums.Units) (int, error) {
	return m.t.CallInt("InitializeNewModel", units)
}

func (m sapModel) GetPresentUnits() (enums.Units, error) {
	return com.CallEnum(m.t, enums.UnitsTable, "GetPresentUnits")
}

func (m sapModel) SetPresentUnits(units enums.Units) (int, error) {
	return m.t.CallInt("SetPresentUnits", units)
}

func (m sapModel) GetVersion(version *com.StringRef, versionNumber *com.DoubleRef) (int, error) {
	return m.t.CallInt("GetVersion", version, versionNumber)
}

func (m sapModel) GetModelIsLocked() (bool, error) {
	return m.t.CallBool("GetModelIsLocked")
}

func (m sapModel) SetModelIsLocked(lockIt bool) (int, error) {
	return m.t.CallInt("SetModelIsLocked", lockIt)
}

func (m sapModel) GetModelFilename(includePath bool) (string, error) {
	return m.t.CallString("GetModelFilename", includePath)
}

type sapModelV15 struct{ sapModel }

func (m sapModelV15) GetProgramInfo(programName, programVersion, programLevel *com.StringRef) (int, error) {
	return m.t.CallInt("GetProgramInfo", programName, programVersion, programLevel)
}

// FileV14 creates, opens and saves model files.
type FileV14 interface {
	NewBlank() (int, error)
	New2DFrame(tempType enums.E2DFrameType, numberStorys int, storyHeight float64, numberBays int, bayWidth float64,
		restraint bool, beam, column, brace string) (int, error)
	OpenFile(fileName string) (int, error)
	Save(fileName string) (int, error)
}

type FileV15 interface {
	FileV14
}

type file struct{ t *com.Target }

func (f file) NewBlank() (int, error) {
	return f.t.CallInt("NewBlank")
}

func (f file) New2DFrame(tempType enums.E2DFrameType, numberStorys int, storyHeight float64, numberBays int, bayWidth float64,
	restraint bool, beam, column, brace string) (int, error) {
	return f.t.CallInt("New2DFrame", tempType, numberStorys, storyHeight, numberBays, bayWidth, restraint, beam, column, brace)
}

func (f file) OpenFile(fileName string) (int, error) {
	return f.t.CallInt("OpenFile", fileName)
}

func (f file) Save(fileName string) (int, error) {
	return f.t.CallInt("Save", fileName)
}

// ViewV14 refreshes the program windows.
type ViewV14 interface {
	RefreshView(window int, zoom bool) (int, error)
	RefreshWindow(window int) (int, error)
}

type ViewV15 interface {
	ViewV14
}

type view struct{ t *com.Target }

func (v view) RefreshView(window int, zoom bool) (int, error) {
	return v.t.CallInt("RefreshView", window, zoom)
}

func (v view) RefreshWindow(window int) (int, error) {
	return v.t.CallInt("RefreshWindow", window)
}
