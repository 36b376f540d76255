package reader

import (
	"io"
	"strings"
	"testing"
)

func TestReaderOffset(t *testing.T) {
	r := New(strings.NewReader("firmware"))

	buf := make([]byte, 4)
	if _, err := io.ReadFull(r, buf); err != nil {
		t.Fatalf("ReadFull() returned error: %v", err)
	}
	if r.Offset() != 4 {
		t.Errorf("Offset() = %d, want 4", r.Offset())
	}

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() returned error: %v", err)
	}
	if string(data) != "ware" {
		t.Errorf("remaining data = %q, want %q", data, "ware")
	}
	if r.Offset() != 8 {
		t.Errorf("Offset() = %d, want 8", r.Offset())
	}
}

func TestReaderStickyError(t *testing.T) {
	r := New(strings.NewReader(""))

	if _, err := r.Read(make([]byte, 1)); err != io.EOF {
		t.Fatalf("Read() = %v, want io.EOF", err)
	}
	if r.Err() != io.EOF {
		t.Errorf("Err() = %v, want io.EOF", r.Err())
	}
	if _, err := r.Read(make([]byte, 1)); err != io.EOF {
		t.Errorf("second Read() = %v, want io.EOF", err)
	}
}
