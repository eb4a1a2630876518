// package owned provides handles that track who owns a resource and release it
// exactly once.
//
// Some values need a deterministic release step that the garbage collector
// cannot provide: files, pooled buffers, connections, leases. When such a value
// is passed around, it must be clear who is responsible for releasing it. This
// package expresses the three possible answers as three distinct types:
//
//	Unique[T]  owns the value alone. It cannot be cloned; Move hands it off.
//	Shared[T]  owns the value together with its clones. The last one to be
//	           closed releases it.
//	Weak[T]    observes a value owned by Shared handles without keeping it
//	           alive. Lock returns a Shared if the value is still there.
//
// For example:
//
//	f, err := owned.MakeShared(func() (*os.File, error) {
//		return os.Open(path)
//	}, nil)
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//
//	go func(f *owned.Shared[*os.File]) {
//		defer f.Close()
//		consume(*f.Get())
//	}(f.Clone())
//
// The file is closed once, by whichever of the two handles is closed last. A
// nil deleter means the value is released according to its dynamic type:
// Close, Release and Drop methods are recognized, in that order.
//
// Shared handles keep their counts in a control block that also stores the
// value, so a Shared costs a single allocation. Blocks may come from an
// Allocator, which recycles them and can bound how many are live at once:
//
//	alloc := owned.NewAllocator[*Conn](owned.WithLimit(128))
//	conn, err := alloc.MakeShared(dial, nil)
//	if errors.Is(err, owned.ErrExhausted) {
//		...
//	}
//
// Handles are always used through pointers and must not be copied by value;
// go vet reports such copies. The method names map onto the usual special
// operations: Close is the destructor, Clone and Assign copy, Move and MoveFrom
// transfer and leave the source empty. Assigning or moving a handle onto itself
// does nothing.
//
// A type that holds resources only through these handles needs no special
// operations of its own beyond a Close that closes its handles. A type that
// holds a raw resource directly, like Buffer, has to provide all of them.
//
// Reference counts do not detect cycles: two values holding Shared handles to
// each other are never released. Make one side of such a cycle a Weak.
package owned
