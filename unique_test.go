package owned

import (
	"errors"
	"reflect"
	"testing"

	"github.com/zeebo/assert"
)

func TestUnique(t *testing.T) {
	u := NewUnique("x", nil)
	v := u.Move()
	assert.That(t, u.Get() == nil)
	assert.That(t, !u.Valid())
	assert.Equal(t, *v.Get(), "x")

	u.Close()
	v.Close()
	assert.That(t, v.Get() == nil)
}

func TestUniqueDeletesOnce(t *testing.T) {
	del, n := counter[int]()
	u := NewUnique(1, del)
	u.Close()
	u.Close()
	u.Reset()
	assert.Equal(t, n.Load(), int64(1))
}

func TestUniqueMoveFrom(t *testing.T) {
	delA, na := counter[string]()
	delB, nb := counter[string]()
	a := NewUnique("a", delA)
	b := NewUnique("b", delB)

	// a's value is deleted with a's deleter, and a adopts b's deleter.
	a.MoveFrom(b)
	assert.Equal(t, na.Load(), int64(1))
	assert.Equal(t, nb.Load(), int64(0))
	assert.Equal(t, *a.Get(), "b")
	assert.That(t, b.Get() == nil)

	a.MoveFrom(a)
	assert.Equal(t, *a.Get(), "b")
	assert.Equal(t, nb.Load(), int64(0))

	a.Close()
	assert.Equal(t, nb.Load(), int64(1))
	b.Close()
	assert.Equal(t, nb.Load(), int64(1))
}

func TestUniqueMoveTransfersValue(t *testing.T) {
	del, n := counter[[4]int]()
	u := NewUnique([4]int{1, 2, 3, 4}, del)
	v := u.Move()
	assert.That(t, u.Get() == nil)
	assert.Equal(t, *v.Get(), [4]int{1, 2, 3, 4})

	u.Close()
	assert.Equal(t, n.Load(), int64(0))
	v.Close()
	assert.Equal(t, n.Load(), int64(1))
}

func TestUniqueReset(t *testing.T) {
	del, n := counter[int]()
	u := NewUnique(1, del)

	u.ResetTo(2)
	assert.Equal(t, n.Load(), int64(1))
	assert.Equal(t, *u.Get(), 2)

	u.Reset()
	assert.Equal(t, n.Load(), int64(2))
	assert.That(t, !u.Valid())

	u.ResetTo(3)
	assert.Equal(t, *u.Get(), 3)
	u.Close()
	assert.Equal(t, n.Load(), int64(3))
}

func TestUniqueRelease(t *testing.T) {
	del, n := counter[int]()
	u := NewUnique(7, del)
	v, ok := u.Release()
	assert.That(t, ok)
	assert.Equal(t, v, 7)
	assert.That(t, !u.Valid())
	u.Close()
	assert.Equal(t, n.Load(), int64(0))

	_, ok = u.Release()
	assert.That(t, !ok)
}

func TestUniqueMake(t *testing.T) {
	u, err := MakeUnique(func() ([]int, error) { return []int{1}, nil }, nil)
	assert.NoError(t, err)
	assert.Equal(t, len(*u.Get()), 1)
	u.Close()

	boom := errors.New("boom")
	u2, err := MakeUnique(func() (int, error) { return 0, boom }, nil)
	assert.That(t, u2 == nil)
	assert.That(t, errors.Is(err, boom))
	assert.That(t, Error.Has(err))
}

func TestUniqueZeroValue(t *testing.T) {
	c := new(closer)
	var u Unique[*closer]
	assert.That(t, !u.Valid())
	u.ResetTo(c)
	u.Close()
	assert.Equal(t, c.closed.Load(), int64(1))
}

func TestUniqueShare(t *testing.T) {
	del, n := counter[string]()
	u := NewUnique("x", del)
	s := u.Share()
	assert.That(t, !u.Valid())
	assert.Equal(t, s.UseCount(), 1)
	assert.Equal(t, *s.Get(), "x")

	c := s.Clone()
	s.Close()
	assert.Equal(t, n.Load(), int64(0))
	c.Close()
	assert.Equal(t, n.Load(), int64(1))

	assert.That(t, !u.Share().Valid())
}

func TestUniqueHasNoCopyOperation(t *testing.T) {
	typ := reflect.TypeOf(new(Unique[int]))
	for _, name := range []string{"Clone", "Assign", "CopyFrom"} {
		_, ok := typ.MethodByName(name)
		assert.That(t, !ok)
	}
}
