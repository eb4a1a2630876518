package owned

import "sync/atomic"

// block is the control block shared by every Shared and Weak handle for a
// single value. The value lives inline so that a block is a single allocation.
type block[T any] struct {
	// strong is the number of live Shared handles. the value is deleted
	// exactly when it goes from 1 to 0.
	strong atomic.Int64

	// weak is the number of live Weak handles plus one while strong is
	// non-zero. the block is freed exactly when it reaches 0, so only one
	// goroutine can ever observe that transition.
	weak atomic.Int64

	value T
	del   func(T) // nil means the default deleter
	alloc *Allocator[T]
}

// init prepares a freshly allocated or recycled block to hold v.
func (b *block[T]) init(v T, del func(T), alloc *Allocator[T]) {
	b.value, b.del, b.alloc = v, del, alloc
	b.strong.Store(1)
	b.weak.Store(1)
}

// incStrong adds a strong reference on behalf of a caller that already holds one.
func (b *block[T]) incStrong() {
	if b.strong.Add(1) <= 1 {
		panic("owned: strong reference added to a released block")
	}
}

// tryAddStrong adds a strong reference only if the value is still alive. It
// is the only way to go from a weak reference to a strong one.
func (b *block[T]) tryAddStrong() bool {
	for {
		n := b.strong.Load()
		if n <= 0 {
			return false
		}
		if b.strong.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// releaseStrong drops a strong reference, deleting the value if it was the last.
func (b *block[T]) releaseStrong() {
	n := b.strong.Add(-1)
	if n > 0 {
		return
	} else if n < 0 {
		panic("owned: too many strong releases")
	}

	// we observed the 1 -> 0 transition so no other goroutine can see the
	// value anymore. the implicit weak reference is dropped even if the
	// deleter panics so the block is not stranded.
	defer b.releaseWeak()

	v, del := b.value, b.del
	var zero T
	b.value, b.del = zero, nil
	release(del, v)
}

// addWeak adds a weak reference. The caller must hold a strong or weak one.
func (b *block[T]) addWeak() {
	if b.weak.Add(1) <= 1 {
		panic("owned: weak reference added to a freed block")
	}
}

// releaseWeak drops a weak reference, freeing the block if it was the last.
func (b *block[T]) releaseWeak() {
	n := b.weak.Add(-1)
	if n > 0 {
		return
	} else if n < 0 {
		panic("owned: too many weak releases")
	}
	b.alloc.put(b)
}

// strongCount reports the number of live Shared handles.
func (b *block[T]) strongCount() int {
	return int(b.strong.Load())
}

// weakCount reports the number of live Weak handles. The two loads are not
// taken atomically together so the result is only advisory.
func (b *block[T]) weakCount() int {
	n := b.weak.Load()
	if b.strong.Load() > 0 {
		n--
	}
	if n < 0 {
		n = 0
	}
	return int(n)
}
