package owned

import (
	"sync"

	"go.uber.org/zap"
)

// Lazy holds a process wide value that is constructed on first access and
// never reconstructed, even if construction failed. It is safe to be used
// concurrently.
type Lazy[T any] struct {
	_    noCopy
	once sync.Once
	init func() (T, error)
	val  T
	err  error
}

// NewLazy returns a Lazy that constructs its value with init.
func NewLazy[T any](init func() (T, error)) *Lazy[T] {
	return &Lazy[T]{init: init}
}

// Get returns the value, constructing it if this is the first call. Every
// call returns the same value and error. A panic in init is turned into an
// error so that later calls do not observe a half constructed value.
func (l *Lazy[T]) Get() (T, error) {
	l.once.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				Logger().Debug("lazy initialization panicked", zap.Any("panic", r))
				l.err = Error.New("initialization panicked: %v", r)
			}
		}()
		l.val, l.err = l.init()
		if l.err != nil {
			l.err = Error.Wrap(l.err)
		}
	})
	return l.val, l.err
}

// MustGet is like Get but panics if construction failed.
func (l *Lazy[T]) MustGet() T {
	v, err := l.Get()
	if err != nil {
		panic(err)
	}
	return v
}
