// Package ole connects the marshaling layer to real COM automation servers
// through go-ole. All COM work happens on one OS thread owned by a Session.
package ole

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	goole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/alexiusacademia/gosap/internal/com"
)

// ErrClosed is returned by calls made after Close.
var ErrClosed = errors.New("ole: session closed")

const defaultDispIDCacheSize = 256

// Options tunes a Session.
type Options struct {
	// DispIDCacheSize bounds the number of operation names whose DISPID is
	// remembered per automation object. Zero selects a default.
	DispIDCacheSize int
}

// Session owns a single-threaded COM apartment. It implements
// com.Connector; every object it creates is released by Close.
type Session struct {
	opts  Options
	calls chan func()
	done  chan struct{}

	mu      sync.RWMutex
	closed  bool
	objects []*goole.IDispatch
}

// Open starts the apartment thread and initialises COM on it.
func Open(opts Options) (*Session, error) {
	if opts.DispIDCacheSize <= 0 {
		opts.DispIDCacheSize = defaultDispIDCacheSize
	}
	s := &Session{
		opts:  opts,
		calls: make(chan func()),
		done:  make(chan struct{}),
	}
	ready := make(chan error, 1)
	go s.loop(ready)
	if err := <-ready; err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) loop(ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := goole.CoInitializeEx(0, goole.COINIT_APARTMENTTHREADED); err != nil {
		close(s.done)
		ready <- fmt.Errorf("ole: initialise apartment: %w", err)
		return
	}
	ready <- nil

	for fn := range s.calls {
		fn()
	}

	for _, obj := range s.objects {
		obj.Release()
	}
	s.objects = nil
	goole.CoUninitialize()
	close(s.done)
}

// exec runs fn on the apartment thread and waits for it.
func (s *Session) exec(fn func()) error {
	finished := make(chan struct{})

	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return ErrClosed
	}
	s.calls <- func() {
		defer close(finished)
		fn()
	}
	s.mu.RUnlock()

	<-finished
	return nil
}

// Connect creates the automation object registered under progID.
func (s *Session) Connect(progID string) (com.Dispatcher, error) {
	ids, err := lru.New[string, int32](s.opts.DispIDCacheSize)
	if err != nil {
		return nil, err
	}

	var disp *goole.IDispatch
	var connectErr error
	err = s.exec(func() {
		unknown, err := oleutil.CreateObject(progID)
		if err != nil {
			connectErr = fmt.Errorf("create %s: %w", progID, err)
			return
		}
		defer unknown.Release()

		disp, err = unknown.QueryInterface(goole.IID_IDispatch)
		if err != nil {
			connectErr = fmt.Errorf("query IDispatch on %s: %w", progID, err)
			return
		}
		s.objects = append(s.objects, disp)
	})
	if err != nil {
		return nil, err
	}
	if connectErr != nil {
		return nil, connectErr
	}
	return &object{s: s, name: progID, disp: disp, ids: ids}, nil
}

// Close releases every object, uninitialises COM and stops the apartment
// thread. It waits for calls already queued.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.calls)
	s.mu.Unlock()

	<-s.done
	return nil
}

type object struct {
	s    *Session
	name string
	disp *goole.IDispatch
	ids  *lru.Cache[string, int32]
}

func (o *object) Invoke(op string, args []any) (com.Result, error) {
	var res com.Result
	var callErr error
	err := o.s.exec(func() {
		res, callErr = o.invoke(op, args)
	})
	if err != nil {
		return com.Result{}, err
	}
	return res, callErr
}

// invoke runs on the apartment thread.
func (o *object) invoke(op string, args []any) (com.Result, error) {
	id, err := o.dispID(op)
	if err != nil {
		return com.Result{}, err
	}

	b, err := bindArgs(args)
	if err != nil {
		return com.Result{}, err
	}
	defer b.clear()

	ret, err := o.disp.Invoke(id, goole.DISPATCH_METHOD, b.params...)
	if err != nil {
		return com.Result{}, err
	}
	defer goole.VariantClear(ret)

	if err := b.readBack(); err != nil {
		return com.Result{}, err
	}
	return com.NewResult(op, ret.Value())
}

func (o *object) dispID(op string) (int32, error) {
	if id, ok := o.ids.Get(op); ok {
		return id, nil
	}
	id, err := o.disp.GetSingleIDOfName(op)
	if err != nil {
		return 0, fmt.Errorf("resolve %s: %w", op, err)
	}
	o.ids.Add(op, id)
	return id, nil
}
