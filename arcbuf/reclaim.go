package arcbuf

// Reclaim is a non-counted capability over one allocation. While it is
// outstanding, the allocation is not freed even after every strong handle
// has been released; instead it is parked until the Reclaim takes it back as
// a fresh BufMut, avoiding a new allocation entirely. Releasing the Reclaim
// gives the allocation up: if no strong handles remain at that point, it is
// freed immediately.
type Reclaim struct {
	buf allocation
}

// TryReclaim attempts to reacquire sole ownership of the allocation. It
// succeeds only if no strong handle exists at the instant of the internal
// compare-and-swap, and then returns a full-range, empty BufMut over the
// same allocation: the session is reset, but bytes initialized by earlier
// sessions stay initialized. For a zero-size allocation it trivially
// succeeds with a fresh static buffer.
//
// On success the Reclaim stays valid and can reclaim again after the new
// session's handles are all released.
func (r *Reclaim) TryReclaim() (*BufMut, bool) {
	if r.buf.meta == nil {
		return &BufMut{}, true
	}

	if !r.buf.meta.refCount.tryReclaim() {
		return nil, false
	}

	poolReclaims.Add(1)
	return &BufMut{
		inner: bufferRef{
			buf:   r.buf,
			start: 0,
			end:   r.buf.size(),
			tail:  true,
		},
	}, true
}

// CanReclaim is an advisory probe: it reports whether the allocation had no
// strong handles at observation time. TryReclaim is authoritative; a handle
// may appear between the two calls.
func (r *Reclaim) CanReclaim() bool {
	if r.buf.meta == nil {
		return true
	}
	return r.buf.meta.refCount.canReclaim()
}

// RefCount observes the reference state of the allocation.
func (r *Reclaim) RefCount() RefCount {
	return r.buf.refCount()
}

// Release gives up the reclaim capability. If no strong handle remains, the
// allocation is freed here. Releasing twice is harmless.
func (r *Reclaim) Release() {
	if r.buf.meta == nil {
		return
	}
	if r.buf.meta.refCount.clearReclaim() {
		r.buf.deallocate()
	}
	r.buf = allocation{}
}
