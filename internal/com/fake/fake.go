// Package fake is an in-memory stand-in for the external application. It
// records every invocation and answers through per-operation handlers.
package fake

import (
	"fmt"
	"sort"
	"sync"

	"github.com/alexiusacademia/gosap/internal/com"
)

// Call is one recorded invocation. Args is a snapshot of the encoded
// arguments as they were sent; by-reference cells are cloned.
type Call struct {
	Target string
	Op     string
	Args   []any
}

// Handler answers one invocation. args holds the live encoded arguments, so
// a handler may write outputs into the *com.Variant cells.
type Handler func(args []any) (any, error)

// Connector hands out dispatchers for any name.
type Connector struct {
	mu       sync.Mutex
	calls    []Call
	targets  []string
	handlers map[string]Handler
	refused  map[string]error
}

func New() *Connector {
	return &Connector{
		handlers: make(map[string]Handler),
		refused:  make(map[string]error),
	}
}

// On answers op on every target with h.
func (c *Connector) On(op string, h Handler) *Connector {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[op] = h
	return c
}

// OnTarget answers op on one target with h. It takes precedence over On.
func (c *Connector) OnTarget(target, op string, h Handler) *Connector {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[target+"|"+op] = h
	return c
}

// Refuse makes Connect fail for name.
func (c *Connector) Refuse(name string, err error) *Connector {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refused[name] = err
	return c
}

func (c *Connector) Connect(name string) (com.Dispatcher, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err, ok := c.refused[name]; ok {
		return nil, err
	}
	c.targets = append(c.targets, name)
	return &dispatcher{c: c, name: name}, nil
}

// Targets lists every name connected so far, sorted.
func (c *Connector) Targets() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := append([]string(nil), c.targets...)
	sort.Strings(out)
	return out
}

func (c *Connector) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Call(nil), c.calls...)
}

// Last returns the most recent call.
func (c *Connector) Last() (Call, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.calls) == 0 {
		return Call{}, false
	}
	return c.calls[len(c.calls)-1], true
}

// Reset forgets recorded calls. Handlers stay installed.
func (c *Connector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = nil
}

func (c *Connector) record(target, op string, args []any) Handler {
	snap := make([]any, len(args))
	for i, a := range args {
		if v, ok := a.(*com.Variant); ok {
			snap[i] = v.Clone()
			continue
		}
		snap[i] = a
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, Call{Target: target, Op: op, Args: snap})
	if h, ok := c.handlers[target+"|"+op]; ok {
		return h
	}
	return c.handlers[op]
}

type dispatcher struct {
	c    *Connector
	name string
}

func (d *dispatcher) Invoke(op string, args []any) (com.Result, error) {
	h := d.c.record(d.name, op, args)
	if h == nil {
		return com.NewResult(op, 0)
	}
	ret, err := h(args)
	if err != nil {
		return com.Result{}, err
	}
	return com.NewResult(op, ret)
}

// Returns answers with ret.
func Returns(ret any) Handler {
	return func([]any) (any, error) { return ret, nil }
}

// Fails answers with err.
func Fails(err error) Handler {
	return func([]any) (any, error) { return nil, err }
}

// WritesBack stores outputs into the by-reference cells at the given
// argument positions, then answers with ret.
func WritesBack(ret any, outputs map[int]any) Handler {
	return func(args []any) (any, error) {
		for i, out := range outputs {
			if i < 0 || i >= len(args) {
				return nil, fmt.Errorf("fake: no argument %d", i)
			}
			cell, ok := args[i].(*com.Variant)
			if !ok {
				return nil, fmt.Errorf("fake: argument %d is %T, not a by-reference cell", i, args[i])
			}
			if err := cell.Put(out); err != nil {
				return nil, err
			}
		}
		return ret, nil
	}
}

// Blocks waits for release before running next.
func Blocks(release <-chan struct{}, next Handler) Handler {
	return func(args []any) (any, error) {
		<-release
		return next(args)
	}
}
