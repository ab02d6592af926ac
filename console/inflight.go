package console

import "sync/atomic"

// noInflight marks the refresh slot as free. Backend ids are non-negative,
// so a negative sentinel keeps the slot unambiguous.
const noInflight = -1

// inflightID is the single shared refresh slot: at most one row shows a
// busy indicator at a time. Begin is last-write-wins: only the
// refreshing row's own control is disabled, other rows may still start a
// refresh and take over the slot. End releases the slot only while it
// still belongs to the finishing refresh, so an older refresh cannot
// clear a newer row's marker.
type inflightID struct {
	v atomic.Int64
}

func newInflightID() *inflightID {
	i := &inflightID{}
	i.v.Store(noInflight)

	return i
}

func (i *inflightID) Begin(id int64) {
	i.v.Store(id)
}

func (i *inflightID) End(id int64) {
	i.v.CompareAndSwap(id, noInflight)
}

// Current returns the id holding the slot and whether it is taken.
func (i *inflightID) Current() (int64, bool) {
	v := i.v.Load()

	return v, v != noInflight
}
