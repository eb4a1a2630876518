package owned

// Weak observes a value owned by Shared handles without keeping it alive. It
// only keeps the control block alive, so it can report whether the value is
// gone and try to obtain a new Shared with Lock. The zero value is an empty
// handle.
//
// A Weak must not be copied by value; use Clone or Assign instead.
type Weak[T any] struct {
	_   noCopy
	blk *block[T]
}

// NewWeak returns a Weak observing the value shared by s. It does not change
// the use count. It returns an empty Weak if s is empty.
func NewWeak[T any](s *Shared[T]) *Weak[T] {
	if s.blk != nil {
		s.blk.addWeak()
	}
	return &Weak[T]{blk: s.blk}
}

// Lock returns a Shared handle to the value if it is still alive, or an empty
// handle if every Shared handle has already been released. The check and the
// increment of the use count happen as one atomic step.
func (w *Weak[T]) Lock() *Shared[T] {
	if w.blk == nil || !w.blk.tryAddStrong() {
		return new(Shared[T])
	}
	return &Shared[T]{blk: w.blk}
}

// Expired reports if the value has been deleted. A false result may be stale
// by the time it is returned; Lock is the race free way to use the value.
func (w *Weak[T]) Expired() bool {
	return w.UseCount() == 0
}

// UseCount returns the number of Shared handles keeping the value alive.
func (w *Weak[T]) UseCount() int {
	if w.blk == nil {
		return 0
	}
	return w.blk.strongCount()
}

// WeakCount returns the number of Weak handles observing the value.
func (w *Weak[T]) WeakCount() int {
	if w.blk == nil {
		return 0
	}
	return w.blk.weakCount()
}

// Clone returns another Weak observing the same value.
func (w *Weak[T]) Clone() *Weak[T] {
	if w.blk != nil {
		w.blk.addWeak()
	}
	return &Weak[T]{blk: w.blk}
}

// Assign makes w observe the same value as src.
func (w *Weak[T]) Assign(src *Weak[T]) {
	if w == src || w.blk == src.blk {
		return
	}
	if src.blk != nil {
		src.blk.addWeak()
	}
	old := w.blk
	w.blk = src.blk
	if old != nil {
		old.releaseWeak()
	}
}

// Move returns a new Weak taking over the reference held by w, leaving w empty.
func (w *Weak[T]) Move() *Weak[T] {
	blk := w.blk
	w.blk = nil
	return &Weak[T]{blk: blk}
}

// MoveFrom drops the reference held by w, if any, and takes over the one held
// by src, leaving src empty. w.MoveFrom(w) does nothing.
func (w *Weak[T]) MoveFrom(src *Weak[T]) {
	if w == src {
		return
	}
	old := w.blk
	w.blk, src.blk = src.blk, nil
	if old != nil {
		old.releaseWeak()
	}
}

// Reset drops the reference held by w and leaves it empty.
func (w *Weak[T]) Reset() {
	if blk := w.blk; blk != nil {
		w.blk = nil
		blk.releaseWeak()
	}
}

// Close drops the reference held by w. It is safe to call on an empty handle.
func (w *Weak[T]) Close() { w.Reset() }
