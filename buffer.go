package owned

import (
	"sync"
	"sync/atomic"
)

// slabs is a pool of byte slabs handed out to Buffers.
var slabs = sync.Pool{New: func() any { return new([]byte) }}

// outstanding counts slabs checked out of the pool and not yet returned.
var outstanding atomic.Int64

// getSlab returns a slab of length n. It may be reused from the pool.
func getSlab(n int) *[]byte {
	slab, _ := slabs.Get().(*[]byte)
	if cap(*slab) < n {
		*slab = make([]byte, n)
	}
	*slab = (*slab)[:n]
	outstanding.Add(1)
	return slab
}

// putSlab returns the slab to the pool. The slab must not be used afterwards.
func putSlab(slab *[]byte) {
	outstanding.Add(-1)
	slabs.Put(slab)
}

// Buffer directly owns a pooled byte slab, bypassing the handle types, and so
// has to implement every copy, move and destroy operation itself: Close
// returns the slab, Clone and CopyFrom duplicate it, and Move and MoveFrom
// transfer it and leave the source empty.
//
// Types that own resources only through Unique, Shared and Weak handles need
// none of this; their Close just closes their handles.
type Buffer struct {
	_    noCopy
	slab *[]byte
}

// NewBuffer returns a Buffer owning a zeroed slab of n bytes.
func NewBuffer(n int) *Buffer {
	slab := getSlab(n)
	clear(*slab)
	return &Buffer{slab: slab}
}

// Bytes returns the owned bytes, or nil if the Buffer is empty. The slice
// must not be retained past Close, MoveFrom or CopyFrom.
func (b *Buffer) Bytes() []byte {
	if b.slab == nil {
		return nil
	}
	return *b.slab
}

// Len returns the number of owned bytes.
func (b *Buffer) Len() int { return len(b.Bytes()) }

// Valid reports if the Buffer owns a slab.
func (b *Buffer) Valid() bool { return b.slab != nil }

// Clone returns a new Buffer owning a copy of the bytes.
func (b *Buffer) Clone() *Buffer {
	if b.slab == nil {
		return new(Buffer)
	}
	slab := getSlab(len(*b.slab))
	copy(*slab, *b.slab)
	return &Buffer{slab: slab}
}

// CopyFrom replaces the bytes owned by b with a copy of the bytes owned by
// src. The copy is made before the old slab is returned, so b.CopyFrom(b)
// leaves b unchanged.
func (b *Buffer) CopyFrom(src *Buffer) {
	if b == src {
		return
	}
	var slab *[]byte
	if src.slab != nil {
		slab = getSlab(len(*src.slab))
		copy(*slab, *src.slab)
	}
	old := b.slab
	b.slab = slab
	if old != nil {
		putSlab(old)
	}
}

// Move returns a new Buffer owning the slab, leaving b empty.
func (b *Buffer) Move() *Buffer {
	slab := b.slab
	b.slab = nil
	return &Buffer{slab: slab}
}

// MoveFrom returns the slab owned by b, if any, and takes over the slab owned
// by src, leaving src empty. b.MoveFrom(b) does nothing.
func (b *Buffer) MoveFrom(src *Buffer) {
	if b == src {
		return
	}
	old := b.slab
	b.slab, src.slab = src.slab, nil
	if old != nil {
		putSlab(old)
	}
}

// Close returns the slab to the pool. It is safe to call more than once.
func (b *Buffer) Close() {
	if slab := b.slab; slab != nil {
		b.slab = nil
		putSlab(slab)
	}
}
