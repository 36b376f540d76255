package reader

import (
	"io"
)

// Reader wraps another Reader to keep track of the current offset.
type Reader struct {
	inner  io.Reader
	offset int64
	err    error
}

var _ io.Reader = &Reader{}

// New wraps the given Reader.
func New(inner io.Reader) *Reader {
	return &Reader{
		inner:  inner,
		offset: 0,
		err:    nil,
	}
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}

	n, err := r.inner.Read(p)
	r.offset += int64(n)
	r.err = err
	return n, err
}

// Offset of the next byte to be read.
func (r *Reader) Offset() int64 {
	return r.offset
}

// Err that has been returned by the last Read.
func (r *Reader) Err() error {
	return r.err
}
