package copies

import "github.com/zeebo/owned"

func byValue(u owned.Unique[int]) int { return *u.Get() }

func deref(u *owned.Unique[int]) *owned.Unique[int] {
	v := *u
	return &v
}

func moved(u *owned.Unique[int]) *owned.Unique[int] { return u.Move() }
