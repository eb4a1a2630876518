package owned

// Unique is an exclusive owner of a single value. At most one Unique refers to
// a given value: it has no way to be cloned, and ownership only moves with
// Move or MoveFrom, which leave the source empty. The zero value is an empty
// handle that uses the default deleter.
//
// A Unique must not be copied by value; go vet reports such copies.
//
// The value is stored inline, so a Unique is a single allocation. Moving it to
// another handle copies the value into that handle.
type Unique[T any] struct {
	_   noCopy
	val T
	ok  bool
	del func(T)
}

// NewUnique takes ownership of v. When the handle is closed or reset, del is
// called with the value exactly once. If del is nil, the value is closed based
// on its dynamic type (Close, Release or Drop methods) if it has one.
func NewUnique[T any](v T, del func(T)) *Unique[T] {
	return &Unique[T]{val: v, ok: true, del: del}
}

// MakeUnique constructs a value with ctor and takes ownership of it. If ctor
// fails, no handle is created and the error is returned wrapped in Error.
func MakeUnique[T any](ctor func() (T, error), del func(T)) (*Unique[T], error) {
	v, err := ctor()
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return NewUnique(v, del), nil
}

// Get returns a pointer to the owned value, or nil if the handle is empty.
// Ownership does not change. The pointer is only valid until the value is
// moved out of u or deleted.
func (u *Unique[T]) Get() *T {
	if !u.ok {
		return nil
	}
	return &u.val
}

// Valid reports if the handle owns a value.
func (u *Unique[T]) Valid() bool { return u.ok }

// take empties u and returns what it owned.
func (u *Unique[T]) take() (v T, ok bool) {
	var zero T
	v, ok = u.val, u.ok
	u.val, u.ok = zero, false
	return v, ok
}

// Reset deletes the owned value, if any, leaving the handle empty.
func (u *Unique[T]) Reset() {
	if v, ok := u.take(); ok {
		release(u.del, v)
	}
}

// ResetTo deletes the owned value, if any, and takes ownership of v using the
// deleter the handle was created with.
func (u *Unique[T]) ResetTo(v T) {
	old, ok := u.take()
	u.val, u.ok = v, true
	if ok {
		release(u.del, old)
	}
}

// Release gives up ownership without deleting the value. The caller becomes
// responsible for it. It reports false if the handle was empty.
func (u *Unique[T]) Release() (T, bool) {
	return u.take()
}

// Move returns a new handle owning the value and its deleter, leaving u empty.
func (u *Unique[T]) Move() *Unique[T] {
	v, ok := u.take()
	return &Unique[T]{val: v, ok: ok, del: u.del}
}

// MoveFrom deletes the value owned by u, if any, and takes over the value and
// deleter owned by src, leaving src empty. u.MoveFrom(u) does nothing.
func (u *Unique[T]) MoveFrom(src *Unique[T]) {
	if u == src {
		return
	}
	old, ok := u.take()
	oldDel := u.del
	u.val, u.ok = src.take()
	u.del = src.del
	if ok {
		release(oldDel, old)
	}
}

// Share moves the owned value into a new Shared handle with the same deleter,
// leaving u empty. It returns an empty Shared if u is empty.
func (u *Unique[T]) Share() *Shared[T] {
	v, ok := u.take()
	if !ok {
		return new(Shared[T])
	}
	return NewShared(v, u.del)
}

// Close deletes the owned value, if any. It is safe to call on an empty handle.
func (u *Unique[T]) Close() { u.Reset() }
