package script

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gosap/internal/com"
	"github.com/alexiusacademia/gosap/internal/sap"
	"github.com/alexiusacademia/gosap/internal/sap/schema"
)

// Script is a YAML list of operations run in order.
//
//	generation: v15
//	steps:
//	  - call: SapModel.InitializeNewModel
//	    args: [kN_m_C]
//	  - call: PropMaterial.SetMaterial
//	    args: [C28, Concrete]
type Script struct {
	Generation string `yaml:"generation,omitempty"`
	Program    string `yaml:"program,omitempty"`
	Steps      []Step `yaml:"steps"`
}

type Step struct {
	Call string   `yaml:"call"`
	Args []string `yaml:"args,omitempty"`
	// Expect is the status an int result must equal, 0 when unset.
	Expect *int `yaml:"expect,omitempty"`
	// Continue keeps the script running when this step fails.
	Continue bool `yaml:"continue,omitempty"`
}

// Parse decodes a script document.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, errors.New("script has no steps")
	}
	for i, st := range s.Steps {
		if st.Call == "" {
			return nil, fmt.Errorf("step %d: call is required", i+1)
		}
	}
	return &s, nil
}

// LoadFile reads and decodes the script at path.
func LoadFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// StatusError is a completed call whose status code was not the expected
// one.
type StatusError struct {
	Call string
	Code int
	Want int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d, want %d", e.Call, e.Code, e.Want)
}

// StepResult records one executed step.
type StepResult struct {
	Step    int            `json:"step"`
	Call    string         `json:"call"`
	Result  any            `json:"result,omitempty"`
	Outputs map[string]any `json:"outputs,omitempty"`
	Err     error          `json:"-"`
	Error   string         `json:"error,omitempty"`
	Elapsed time.Duration  `json:"elapsed"`

	status bool
}

// Runner executes operations against objects bound through a connector.
type Runner struct {
	conn       com.Connector
	schema     *schema.Schema
	generation sap.Generation
	program    string
	logger     *slog.Logger
	targets    map[string]*com.Target
}

// NewRunner returns a runner for program. An empty program selects
// sap.DefaultProgram(g).
func NewRunner(c com.Connector, s *schema.Schema, g sap.Generation, program string, logger *slog.Logger) *Runner {
	if program == "" {
		program = sap.DefaultProgram(g)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		conn:       c,
		schema:     s,
		generation: g,
		program:    program,
		logger:     logger,
		targets:    make(map[string]*com.Target),
	}
}

func (r *Runner) target(class string) (*com.Target, error) {
	if t, ok := r.targets[class]; ok {
		return t, nil
	}
	t, err := com.Bind(r.conn, r.program+"."+class)
	if err != nil {
		return nil, err
	}
	r.targets[class] = t
	return t, nil
}

// Call runs one "Facade.Op" with text arguments.
func (r *Runner) Call(call string, raw []string) (res StepResult) {
	res = StepResult{Call: call}
	start := time.Now()
	defer func() {
		res.Elapsed = time.Since(start)
	}()

	f, op, err := r.schema.Lookup(call, r.generation)
	if err != nil {
		res.Err = err
		return res
	}
	res.Call = f.Name + "." + op.Name
	if op.DeprecatedIn(r.generation) {
		r.logger.Warn("Operation is deprecated", "call", res.Call, "generation", r.generation)
	}
	args, err := Args(op, raw)
	if err != nil {
		res.Err = err
		return res
	}
	t, err := r.target(f.Class)
	if err != nil {
		res.Err = err
		return res
	}
	out, err := t.Call(op.Name, args...)
	if err != nil {
		res.Err = err
		return res
	}
	res.status = op.Status()
	res.Outputs = Outputs(op, args)
	res.Result, res.Err = Result(op, out)
	return res
}

// Run executes s step by step. It stops at the first failing step unless
// the step allows continuing, and returns every result gathered so far
// together with the failures joined.
func (r *Runner) Run(ctx context.Context, s *Script) ([]StepResult, error) {
	var (
		results []StepResult
		errs    []error
	)
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		r.logger.Debug("Running step", "step", i+1, "call", st.Call)
		res := r.Call(st.Call, st.Args)
		res.Step = i + 1
		if res.Err == nil {
			res.Err = checkStatus(res, st)
		}
		if res.Err != nil {
			res.Error = res.Err.Error()
			r.logger.Error("Step failed", "step", res.Step, "call", res.Call, "error", res.Err)
		} else {
			r.logger.Info("Step done", "step", res.Step, "call", res.Call, "result", res.Result, "elapsed", res.Elapsed)
		}
		results = append(results, res)
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", res.Step, res.Err))
			if !st.Continue {
				break
			}
		}
	}
	return results, errors.Join(errs...)
}

func checkStatus(res StepResult, st Step) error {
	code, ok := res.Result.(int)
	if !res.status || !ok {
		return nil
	}
	want := 0
	if st.Expect != nil {
		want = *st.Expect
	}
	if code != want {
		return &StatusError{Call: res.Call, Code: code, Want: want}
	}
	return nil
}
