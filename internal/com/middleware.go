package com

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Middleware decorates the dispatcher of one named target.
type Middleware func(target string, next Dispatcher) Dispatcher

// Use returns a Connector applying mws to every dispatcher c resolves. The
// first middleware is the outermost.
func Use(c Connector, mws ...Middleware) Connector {
	return ConnectorFunc(func(name string) (Dispatcher, error) {
		d, err := c.Connect(name)
		if err != nil {
			return nil, err
		}
		for i := len(mws) - 1; i >= 0; i-- {
			d = mws[i](name, d)
		}
		return d, nil
	})
}

// WithTimeout fails an invocation that has not returned within d. The
// abandoned invocation keeps running; since the caller never reaches the
// decode pass, its late writes land only in the encoded cells.
// A non-positive d disables the limit.
func WithTimeout(d time.Duration) Middleware {
	return func(target string, next Dispatcher) Dispatcher {
		if d <= 0 {
			return next
		}
		return DispatcherFunc(func(op string, args []any) (Result, error) {
			type reply struct {
				res Result
				err error
			}
			done := make(chan reply, 1)
			go func() {
				res, err := next.Invoke(op, args)
				done <- reply{res, err}
			}()

			timer := time.NewTimer(d)
			defer timer.Stop()
			select {
			case r := <-done:
				return r.res, r.err
			case <-timer.C:
				return Result{}, &ExternalCallError{
					Target: target,
					Op:     op,
					Err:    fmt.Errorf("%w after %s", ErrCallTimeout, d),
				}
			}
		})
	}
}

// WithLogging logs every invocation at debug level and failures at error
// level. Each call gets its own id so overlapping timeouts stay traceable.
func WithLogging(logger *slog.Logger) Middleware {
	return func(target string, next Dispatcher) Dispatcher {
		return DispatcherFunc(func(op string, args []any) (Result, error) {
			log := logger.With("call_id", uuid.NewString(), "target", target, "op", op)
			log.Debug("Invoking external operation", "args", len(args))

			start := time.Now()
			res, err := next.Invoke(op, args)
			elapsed := time.Since(start)
			if err != nil {
				log.Error("External operation failed", "error", err, "elapsed", elapsed)
				return res, err
			}
			log.Debug("External operation returned", "result", res.String(), "elapsed", elapsed)
			return res, nil
		})
	}
}
