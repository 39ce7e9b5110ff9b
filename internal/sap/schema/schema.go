// Package schema describes every facade operation as data: its external
// class, parameter kinds and the generations that offer it. The command line
// uses it to list operations and to build argument lists from text.
package schema

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gosap/internal/sap"
)

//go:embed sap.yaml
var builtin []byte

// Parameter kinds.
const (
	KindInt    = "int"
	KindDouble = "double"
	KindBool   = "bool"
	KindString = "string"
	KindEnum   = "enum"
	KindRef    = "ref"
	KindArray  = "array"
)

// KindCount is an int result that counts items rather than reporting a
// status.
const KindCount = "count"

type Schema struct {
	Facades []Facade `yaml:"facades"`
}

type Facade struct {
	Name  string `yaml:"name"`
	Class string `yaml:"class"`
	Ops   []Op   `yaml:"ops"`
}

type Op struct {
	Name       string  `yaml:"name"`
	Method     string  `yaml:"method,omitempty"`
	Params     []Param `yaml:"params,omitempty"`
	Result     string  `yaml:"result,omitempty"`
	Since      string  `yaml:"since,omitempty"`
	Deprecated string  `yaml:"deprecated,omitempty"`
}

type Param struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Len  int    `yaml:"len,omitempty"`
}

// Kind splits a parameter type such as "ref:double" into its kind and
// element.
func (p Param) Kind() (kind, elem string) {
	kind, elem, _ = strings.Cut(p.Type, ":")
	return kind, elem
}

// Output reports whether the parameter receives a value from the call.
func (p Param) Output() bool {
	kind, _ := p.Kind()
	return kind == KindRef || kind == KindArray
}

// GoMethod is the facade method implementing the operation.
func (o Op) GoMethod() string {
	if o.Method != "" {
		return o.Method
	}
	return o.Name
}

// ResultType is the declared result, "int" when unset.
func (o Op) ResultType() string {
	if o.Result == "" {
		return KindInt
	}
	return o.Result
}

func (o Op) since() sap.Generation {
	g, err := sap.ParseGeneration(o.Since)
	if err != nil {
		return sap.V14
	}
	return g
}

// Status reports whether the result is a status code.
func (o Op) Status() bool {
	return o.ResultType() == KindInt
}

// Available reports whether generation g offers the operation.
func (o Op) Available(g sap.Generation) bool {
	return g >= o.since()
}

// DeprecatedIn reports whether g keeps the operation only for backward
// compatibility.
func (o Op) DeprecatedIn(g sap.Generation) bool {
	if o.Deprecated == "" {
		return false
	}
	d, err := sap.ParseGeneration(o.Deprecated)
	return err == nil && g >= d
}

// Load returns the built-in schema.
func Load() (*Schema, error) {
	return Parse(builtin)
}

// MustLoad is Load for package initialization.
func MustLoad() *Schema {
	s, err := Load()
	if err != nil {
		panic(err)
	}
	return s
}

// Parse decodes and validates a schema document.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks names are unique and every type is well formed.
func (s *Schema) Validate() error {
	var errs []error
	facades := map[string]bool{}
	for _, f := range s.Facades {
		if f.Name == "" || f.Class == "" {
			errs = append(errs, fmt.Errorf("facade %q: name and class are required", f.Name))
			continue
		}
		if facades[f.Name] {
			errs = append(errs, fmt.Errorf("facade %q: defined twice", f.Name))
		}
		facades[f.Name] = true
		ops := map[string]bool{}
		for _, o := range f.Ops {
			where := f.Name + "." + o.Name
			if ops[o.Name] {
				errs = append(errs, fmt.Errorf("%s: defined twice", where))
			}
			ops[o.Name] = true
			for _, g := range []string{o.Since, o.Deprecated} {
				if g == "" {
					continue
				}
				if _, err := sap.ParseGeneration(g); err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", where, err))
				}
			}
			if err := checkResult(o.ResultType()); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", where, err))
			}
			for i, p := range o.Params {
				if err := checkParam(p); err != nil {
					errs = append(errs, fmt.Errorf("%s: parameter %d: %w", where, i, err))
				}
			}
		}
	}
	return errors.Join(errs...)
}

func checkResult(t string) error {
	kind, elem, _ := strings.Cut(t, ":")
	switch kind {
	case KindInt, KindCount, KindDouble, KindBool, KindString:
		if elem == "" {
			return nil
		}
	case KindEnum:
		if elem != "" {
			return nil
		}
	}
	return fmt.Errorf("invalid result type %q", t)
}

func checkParam(p Param) error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	kind, elem := p.Kind()
	switch kind {
	case KindInt, KindDouble, KindBool, KindString:
		if elem == "" && p.Len == 0 {
			return nil
		}
	case KindEnum:
		if elem != "" && p.Len == 0 {
			return nil
		}
	case KindRef:
		switch elem {
		case KindInt, KindDouble, KindBool, KindString:
			if p.Len == 0 {
				return nil
			}
		}
	case KindArray:
		switch elem {
		case KindInt, KindDouble, KindBool, KindString:
			if p.Len >= 0 {
				return nil
			}
		}
	}
	return fmt.Errorf("%s: invalid type %q", p.Name, p.Type)
}

// Facade returns the facade called name, matched without regard to case.
func (s *Schema) Facade(name string) (*Facade, bool) {
	for i := range s.Facades {
		if strings.EqualFold(s.Facades[i].Name, name) {
			return &s.Facades[i], true
		}
	}
	return nil, false
}

// Op returns the operation called name, matched against both the external
// and the Go method name.
func (f *Facade) Op(name string) (*Op, bool) {
	for i := range f.Ops {
		o := &f.Ops[i]
		if strings.EqualFold(o.Name, name) || strings.EqualFold(o.GoMethod(), name) {
			return o, true
		}
	}
	return nil, false
}

// Lookup resolves "Facade.Op" for generation g.
func (s *Schema) Lookup(qualified string, g sap.Generation) (*Facade, *Op, error) {
	fname, oname, ok := strings.Cut(qualified, ".")
	if !ok || fname == "" || oname == "" {
		return nil, nil, fmt.Errorf("operation %q: want Facade.Operation", qualified)
	}
	f, ok := s.Facade(fname)
	if !ok {
		return nil, nil, fmt.Errorf("unknown facade %q", fname)
	}
	o, ok := f.Op(oname)
	if !ok {
		return nil, nil, fmt.Errorf("facade %s has no operation %q", f.Name, oname)
	}
	if !o.Available(g) {
		return nil, nil, fmt.Errorf("%s.%s requires %s, program is %s", f.Name, o.Name, o.since(), g)
	}
	return f, o, nil
}

// Entry is one operation listed with its facade.
type Entry struct {
	Facade     string   `json:"facade"`
	Class      string   `json:"class"`
	Op         string   `json:"op"`
	Params     []string `json:"params"`
	Result     string   `json:"result"`
	Deprecated bool     `json:"deprecated,omitempty"`
}

// Ops lists the operations generation g offers, sorted by facade and name.
func (s *Schema) Ops(g sap.Generation) []Entry {
	var out []Entry
	for _, f := range s.Facades {
		for _, o := range f.Ops {
			if !o.Available(g) {
				continue
			}
			params := make([]string, len(o.Params))
			for i, p := range o.Params {
				params[i] = p.Name + " " + p.Type
			}
			out = append(out, Entry{
				Facade:     f.Name,
				Class:      f.Class,
				Op:         o.Name,
				Params:     params,
				Result:     o.ResultType(),
				Deprecated: o.DeprecatedIn(g),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Facade != out[j].Facade {
			return out[i].Facade < out[j].Facade
		}
		return out[i].Op < out[j].Op
	})
	return out
}
