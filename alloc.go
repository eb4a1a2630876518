package owned

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Allocator hands out control blocks for Shared handles of type T and
// recycles them once no Shared or Weak handle refers to them anymore. The zero
// value is ready to use and has no limit. A nil *Allocator is also valid: it
// allocates a fresh block every time and never fails.
type Allocator[T any] struct {
	pool  sync.Pool
	live  atomic.Int64
	limit int64
	log   *zap.Logger
}

// Option configures an Allocator.
type Option func(*options)

type options struct {
	limit int64
	log   *zap.Logger
}

// WithLimit bounds the number of control blocks that may be live at once.
// Allocations past the limit fail with ErrExhausted. A limit <= 0 means no limit.
func WithLimit(n int) Option {
	return func(o *options) { o.limit = int64(n) }
}

// WithLogger sets the logger used by the Allocator. It defaults to Logger().
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// NewAllocator returns an Allocator configured by the options.
func NewAllocator[T any](opts ...Option) *Allocator[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = Logger()
	}
	return &Allocator[T]{
		pool:  sync.Pool{New: func() any { return new(block[T]) }},
		limit: o.limit,
		log:   o.log,
	}
}

// Live returns the number of control blocks that have been handed out and
// not yet freed.
func (a *Allocator[T]) Live() int {
	if a == nil {
		return 0
	}
	return int(a.live.Load())
}

func (a *Allocator[T]) logger() *zap.Logger {
	if a.log == nil {
		return Logger()
	}
	return a.log
}

// get returns a block ready for init. It may be reused from the pool.
func (a *Allocator[T]) get() (*block[T], error) {
	if a == nil {
		return new(block[T]), nil
	}
	if n := a.live.Add(1); a.limit > 0 && n > a.limit {
		a.live.Add(-1)
		a.logger().Debug("control block allocation refused",
			zap.Int64("limit", a.limit))
		return nil, Error.Wrap(ErrExhausted)
	}
	b, _ := a.pool.Get().(*block[T])
	if b == nil {
		b = new(block[T])
	}
	return b, nil
}

// put returns the block to the pool. It is important to not perform any
// operations on the block after it has been put.
func (a *Allocator[T]) put(b *block[T]) {
	if a == nil {
		return
	}
	var zero T
	b.value, b.del, b.alloc = zero, nil, nil
	a.live.Add(-1)
	a.pool.Put(b)
}

// NewShared takes ownership of v and returns a Shared handle to it. If no
// control block can be allocated, v is passed to its deleter before the error
// is returned so that it does not leak.
func (a *Allocator[T]) NewShared(v T, del func(T)) (*Shared[T], error) {
	b, err := a.get()
	if err != nil {
		release(del, v)
		return nil, err
	}
	b.init(v, del, a)
	return &Shared[T]{blk: b}, nil
}

// MakeShared allocates a control block and constructs the value in it with
// ctor. If ctor fails or panics, the block is returned to the Allocator before
// the error is returned wrapped in Error or the panic continues.
func (a *Allocator[T]) MakeShared(ctor func() (T, error), del func(T)) (*Shared[T], error) {
	b, err := a.get()
	if err != nil {
		return nil, err
	}

	ok := false
	defer func() {
		if !ok {
			a.put(b)
		}
	}()

	v, err := ctor()
	if err != nil {
		return nil, Error.Wrap(err)
	}
	ok = true

	b.init(v, del, a)
	return &Shared[T]{blk: b}, nil
}
