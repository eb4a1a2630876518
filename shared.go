package owned

// Shared is a reference counted owner of a value. Every Shared referring to
// the same value shares one control block; the value is deleted exactly once,
// when the last of them is closed, reset or overwritten. The zero value is an
// empty handle.
//
// Handles only guarantee the lifetime of the value. Concurrent mutation of the
// value through two handles still needs the caller's own synchronization.
//
// Two values that hold Shared handles to each other never reach a count of
// zero and leak. Break such cycles by making one side a Weak.
//
// A Shared must not be copied by value; use Clone or Assign instead.
type Shared[T any] struct {
	_   noCopy
	blk *block[T]
}

// NewShared takes ownership of v and returns a handle with a use count of 1.
// The value is stored inline in its control block, so this costs one
// allocation for the value and control block plus one for the handle. If del
// is nil the value is closed based on its
// dynamic type (Close, Release or Drop methods) if it has one.
func NewShared[T any](v T, del func(T)) *Shared[T] {
	s, _ := (*Allocator[T])(nil).NewShared(v, del)
	return s
}

// MakeShared constructs a value with ctor inside a new control block. If ctor
// fails or panics, nothing is left allocated and the error is returned wrapped in Error.
func MakeShared[T any](ctor func() (T, error), del func(T)) (*Shared[T], error) {
	return (*Allocator[T])(nil).MakeShared(ctor, del)
}

// Get returns a pointer to the shared value, or nil if the handle is empty.
// Counts do not change. The pointer must not be used after the handle that
// produced it is released.
func (s *Shared[T]) Get() *T {
	if s.blk == nil {
		return nil
	}
	return &s.blk.value
}

// Valid reports if the handle refers to a value.
func (s *Shared[T]) Valid() bool { return s.blk != nil }

// UseCount returns the number of Shared handles referring to the value, or 0
// if the handle is empty. With concurrent users the result may be stale as
// soon as it is returned, so it must not be used to decide uniqueness.
func (s *Shared[T]) UseCount() int {
	if s.blk == nil {
		return 0
	}
	return s.blk.strongCount()
}

// WeakCount returns the number of Weak handles observing the value. It is
// advisory in the same way as UseCount.
func (s *Shared[T]) WeakCount() int {
	if s.blk == nil {
		return 0
	}
	return s.blk.weakCount()
}

// Clone returns a new handle sharing the value, incrementing the use count.
// Cloning an empty handle returns an empty handle.
func (s *Shared[T]) Clone() *Shared[T] {
	if s.blk != nil {
		s.blk.incStrong()
	}
	return &Shared[T]{blk: s.blk}
}

// Assign makes s share the value of src. The new reference is taken before
// the old one is dropped, so assigning a handle to itself or to another handle
// of the same value never deletes it.
func (s *Shared[T]) Assign(src *Shared[T]) {
	if s == src || s.blk == src.blk {
		return
	}
	if src.blk != nil {
		src.blk.incStrong()
	}
	old := s.blk
	s.blk = src.blk
	if old != nil {
		old.releaseStrong()
	}
}

// Move returns a new handle taking over the reference held by s, leaving s
// empty. Counts do not change.
func (s *Shared[T]) Move() *Shared[T] {
	blk := s.blk
	s.blk = nil
	return &Shared[T]{blk: blk}
}

// MoveFrom drops the reference held by s, if any, and takes over the one held
// by src, leaving src empty. s.MoveFrom(s) does nothing.
func (s *Shared[T]) MoveFrom(src *Shared[T]) {
	if s == src {
		return
	}
	old := s.blk
	s.blk, src.blk = src.blk, nil
	if old != nil {
		old.releaseStrong()
	}
}

// Weak returns a Weak handle observing the value. It is empty if s is empty.
func (s *Shared[T]) Weak() *Weak[T] { return NewWeak(s) }

// Reset drops the reference held by s, deleting the value if it was the last,
// and leaves s empty.
func (s *Shared[T]) Reset() {
	if blk := s.blk; blk != nil {
		s.blk = nil
		blk.releaseStrong()
	}
}

// ResetTo drops the reference held by s and takes ownership of v in a fresh
// control block with a use count of 1.
func (s *Shared[T]) ResetTo(v T, del func(T)) {
	n := NewShared(v, del)
	s.MoveFrom(n)
}

// Close drops the reference held by s. It is safe to call on an empty handle.
func (s *Shared[T]) Close() { s.Reset() }
