package owned

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestBlock(t *testing.T) {
	del, n := counter[int]()
	b := new(block[int])
	b.init(5, del, nil)
	assert.Equal(t, b.strongCount(), 1)
	assert.Equal(t, b.weakCount(), 0)

	b.incStrong()
	b.addWeak()
	assert.Equal(t, b.strongCount(), 2)
	assert.Equal(t, b.weakCount(), 1)

	b.releaseStrong()
	assert.Equal(t, n.Load(), int64(0))
	b.releaseStrong()
	assert.Equal(t, n.Load(), int64(1))
	assert.Equal(t, b.strongCount(), 0)
	assert.Equal(t, b.weakCount(), 1)
	assert.Equal(t, b.value, 0)

	assert.That(t, !b.tryAddStrong())
	assert.Equal(t, b.strongCount(), 0)

	b.releaseWeak()
	assert.Equal(t, b.weakCount(), 0)
	assert.Equal(t, n.Load(), int64(1))
}

func TestBlockTryAddStrong(t *testing.T) {
	b := new(block[string])
	b.init("x", nil, nil)
	assert.That(t, b.tryAddStrong())
	assert.Equal(t, b.strongCount(), 2)
}

func TestBlockOverRelease(t *testing.T) {
	b := new(block[int])
	b.init(1, nil, nil)
	b.addWeak()
	b.releaseStrong()
	assert.Equal(t, catch(b.releaseStrong), "owned: too many strong releases")

	b = new(block[int])
	b.init(1, nil, nil)
	b.releaseStrong()
	assert.Equal(t, catch(b.releaseWeak), "owned: too many weak releases")
}

func TestBlockDeleterPanic(t *testing.T) {
	alloc := NewAllocator[int]()
	s, err := alloc.NewShared(1, func(int) { panic("boom") })
	assert.NoError(t, err)
	assert.Equal(t, catch(s.Close), "boom")
	assert.Equal(t, alloc.Live(), 0)
}
