package owned

import "go.uber.org/zap"

// noCopy may be embedded into structs which must not be copied after first
// use. go vet's copylocks check reports copies of any value containing it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Dropper is implemented by values that need cleanup but cannot fail.
type Dropper interface {
	Drop()
}

// release deletes v with del, or if del is nil, by dispatching on the dynamic
// type of v. The dispatch happens on the value itself so that an
// interface-typed handle still closes the concrete type.
func release[T any](del func(T), v T) {
	if del != nil {
		del(v)
		return
	}
	destroy(v)
}

func destroy[T any](v T) {
	switch r := any(v).(type) {
	case interface{ Close() error }:
		if err := r.Close(); err != nil {
			Logger().Warn("resource close failed", zap.Error(err))
		}
	case interface{ Close() }:
		r.Close()
	case interface{ Release() }:
		r.Release()
	case Dropper:
		r.Drop()
	}
}
