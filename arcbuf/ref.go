package arcbuf

import "fmt"

// bufferRef is a range-scoped strong reference into an allocation. The zero
// value is the sentinel default: a zero-size, non-counted, non-tail handle.
type bufferRef struct {
	buf   allocation
	start int
	end   int

	// tail is true for the one handle that represents the still-growing
	// frontier of the allocation. Only the tail may read or advance
	// metadata.initialized; every other handle covers a range that is fully
	// initialized by construction. A zero-size handle is never tail, since
	// the sentinel has no metadata to track a cursor in.
	tail bool
}

// refFromAllocation builds the initial full-range tail handle. The strong
// count is whatever the caller encoded at allocation time; no increment
// happens here.
func refFromAllocation(buf allocation) bufferRef {
	end := buf.size()
	return bufferRef{
		buf:   buf,
		start: 0,
		end:   end,
		tail:  end != 0,
	}
}

func (r *bufferRef) len() int {
	return r.end - r.start
}

// clone adds a strong reference and copies the handle as-is. Callers are
// responsible for not ending up with two live tail handles; only splitAt and
// shrink demote tail status.
func (r *bufferRef) clone() bufferRef {
	if r.buf.meta != nil {
		r.buf.meta.refCount.increment()
	}
	return *r
}

// release drops this handle's strong reference and deallocates the backing
// block when the count reaches zero. The handle becomes the sentinel.
func (r *bufferRef) release() {
	if r.buf.meta != nil {
		if r.buf.meta.refCount.decrement() {
			r.buf.deallocate()
		}
	}
	*r = bufferRef{}
}

// take moves the handle out, leaving the sentinel behind. The reference count
// is untouched: ownership transfers to the returned value.
func (r *bufferRef) take() bufferRef {
	out := *r
	*r = bufferRef{}
	return out
}

// raw returns the handle's whole [start, end) range, including bytes past
// the initialized boundary, which may hold stale data from a previous
// session. Callers must not treat those as meaningful.
func (r *bufferRef) raw() []byte {
	if r.buf.data == nil {
		return nil
	}
	return r.buf.data[r.start:r.end]
}

// splitAt splits the handle into a left half [start, start+at), which is
// returned, and the retained right half [start+at, end). The left half is
// never tail; the right half keeps the handle's tail status. at == 0 returns
// the sentinel without touching the count, at == len moves the whole handle
// out.
func (r *bufferRef) splitAt(at int) bufferRef {
	if at < 0 || at > r.len() {
		panic(fmt.Sprintf("arcbuf: split offset %d is out of bounds for a handle of length %d", at, r.len()))
	}

	switch at {
	case 0:
		return bufferRef{}
	case r.len():
		return r.take()
	default:
		left := r.clone()
		left.end = r.start + at
		left.tail = false
		r.start += at
		return left
	}
}

// shrink narrows the handle to the handle-relative range [start, end).
// Shrinking to an empty range releases the strong reference and replaces the
// handle with the sentinel: emptied handles stop participating in reference
// counting regardless of whether the allocation lives on under other
// handles.
func (r *bufferRef) shrink(start, end int) {
	newStart := r.start + start
	newEnd := r.start + end

	if start < 0 || end < start || newEnd > r.end {
		panic(fmt.Sprintf("arcbuf: shrink range [%d, %d) is out of bounds for a handle of length %d", start, end, r.len()))
	}

	if newStart == newEnd {
		r.release()
		return
	}

	r.start = newStart
	r.end = newEnd
}

// initializedEnd returns the absolute offset up to which this handle's range
// is initialized. Non-tail handles are fully initialized by construction.
func (r *bufferRef) initializedEnd() int {
	if !r.tail {
		return r.end
	}

	initialized := r.buf.meta.initialized
	if initialized < r.start || initialized > r.end {
		panic(fmt.Sprintf("arcbuf: handle is tail, but the initialized cursor %d is outside its range [%d, %d)", initialized, r.start, r.end))
	}
	return initialized
}

// setInitializedTo advances the shared initialized cursor to the
// handle-relative offset to. The cursor is monotonic: it never moves
// backward. On a non-tail handle this is a no-op, since its whole range is
// already initialized.
func (r *bufferRef) setInitializedTo(to int) {
	to += r.start
	if to > r.end {
		panic(fmt.Sprintf("arcbuf: initialized cursor target %d is past the end of the handle %d", to-r.start, r.len()))
	}

	if !r.tail {
		return
	}

	initialized := r.buf.meta.initialized
	if initialized < r.start || initialized > r.end {
		panic(fmt.Sprintf("arcbuf: handle is tail, but the initialized cursor %d is outside its range [%d, %d)", initialized, r.start, r.end))
	}

	if to > initialized {
		r.buf.meta.initialized = to
	}
}

// fullyInitialize zero-fills from the current initialized boundary to the end
// of the handle and advances the cursor to match. No-op on non-tail handles,
// which are fully initialized already.
func (r *bufferRef) fullyInitialize() {
	if !r.tail {
		return
	}

	initialized := r.initializedEnd()
	clear(r.buf.data[initialized:r.end])
	r.buf.meta.initialized = r.end
}

// initializedSlice returns the prefix of the handle's range that is
// guaranteed to hold defined bytes.
func (r *bufferRef) initializedSlice() []byte {
	end := r.initializedEnd()
	if r.buf.data == nil {
		return nil
	}
	return r.buf.data[r.start:end]
}

func (r *bufferRef) refCount() RefCount {
	return r.buf.refCount()
}
