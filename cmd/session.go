package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gosap/internal/com"
	"github.com/alexiusacademia/gosap/internal/com/fake"
	"github.com/alexiusacademia/gosap/internal/com/ole"
	"github.com/alexiusacademia/gosap/internal/sap"
)

// session is a connection to the application, or to a recorder when
// --dry-run is set.
type session struct {
	conn     com.Connector
	recorder *fake.Connector
	release  func() error
}

func openSession() (*session, error) {
	s := &session{}
	var base com.Connector
	if dryRun {
		// Answer the queries commands depend on with the configured values.
		s.recorder = fake.New().
			On("GetPresentUnits", fake.Returns(int(state.units))).
			On("GetVersion", fake.WritesBack(0, map[int]any{
				0: fmt.Sprintf("%d.0.0", int(state.gen)),
				1: float64(state.gen),
			})).
			On("GetOAPIVersionNumber", fake.Returns(float64(state.gen)))
		base = s.recorder
		s.release = func() error { return nil }
	} else {
		sess, err := ole.Open(ole.Options{DispIDCacheSize: state.cfg.DispIDCache})
		if err != nil {
			return nil, fmt.Errorf("open automation session: %w", err)
		}
		base = sess
		s.release = sess.Close
	}
	s.conn = com.Use(base, com.WithLogging(state.logger), com.WithTimeout(state.cfg.CallTimeout))
	return s, nil
}

// Close prints the recorded calls of a dry run and releases the session.
func (s *session) Close() error {
	if s.recorder != nil {
		out := io.Writer(os.Stdout)
		if jsonOutput() {
			out = os.Stderr
		}
		printCalls(out, s.recorder.Calls())
	}
	return s.release()
}

// closeSession closes s and joins a failure to close into *err.
func closeSession(s *session, err *error) {
	*err = errors.Join(*err, s.Close())
}

// model is the part of the object model the preset commands use. Both
// generations satisfy it.
type model struct {
	app      sap.SapObjectV14
	sapModel sap.SapModelV14
	material sap.PropMaterialV14
	combo    sap.RespComboV14
	frames   sap.FrameObjV14
	points   sap.PointObjV14
}

// bindModel composes the root object of program in the configured
// generation and starts the application when --start is set.
func (s *session) bindModel(program string) (*model, error) {
	var m *model
	switch state.gen {
	case sap.V14:
		obj, err := sap.NewV14(s.conn, program)
		if err != nil {
			return nil, err
		}
		m = &model{obj, obj.SapModel, obj.SapModel.PropMaterial, obj.SapModel.RespCombo, obj.SapModel.FrameObj, obj.SapModel.PointObj}
	default:
		obj, err := sap.NewV15(s.conn, program)
		if err != nil {
			return nil, err
		}
		m = &model{obj, obj.SapModel, obj.SapModel.PropMaterial, obj.SapModel.RespCombo, obj.SapModel.FrameObj, obj.SapModel.PointObj}
	}

	if startApp {
		state.logger.Info("Starting application", "program", program, "units", state.units, "visible", state.cfg.Visible)
		status, err := m.app.ApplicationStart(state.units, state.cfg.Visible, "")
		if err := sap.Check("SapObject.ApplicationStart", status, err); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func printCalls(out io.Writer, calls []fake.Call) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "DRY RUN: %d call(s) recorded\n", len(calls))
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for i, c := range calls {
		args := make([]string, len(c.Args))
		for j, a := range c.Args {
			args[j] = fmt.Sprint(a)
		}
		fmt.Fprintf(w, "  %d\t%s.%s\t(%s)\n", i+1, c.Target, c.Op, strings.Join(args, ", "))
	}
	w.Flush()
	fmt.Fprintln(out)
}
