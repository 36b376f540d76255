package lpcvtcksum

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/kolod/lpcvtcksum/reader"
)

// ErrTooSmall is returned when an image cannot contain the 8-word vector table.
var ErrTooSmall = errors.New("image too small")

// Firmware describes a patched firmware image.
type Firmware struct {
	Checksum   Hex32
	Size       int64
	PaddedSize int64

	data []byte
}

// CheckFirmware reads a firmware image, writes the vector table checksum into
// its reserved slot and pads it with zeros to the next BlockSize boundary.
//
// Every byte of the input other than the checksum slot is preserved in the
// returned image.
func CheckFirmware(input io.Reader) (*Firmware, error) {
	inputReader := reader.New(input)

	data, err := io.ReadAll(inputReader)
	if err != nil {
		return nil, fmt.Errorf("firmware: failed to read image: %w", err)
	}

	size := inputReader.Offset()
	checksum, err := Patch(data)
	if err != nil {
		return nil, err
	}
	data = Pad(data, BlockSize)

	return &Firmware{
		Checksum:   Hex32(checksum),
		Size:       size,
		PaddedSize: int64(len(data)),
		data:       data,
	}, nil
}

// Patch computes the vector table checksum of image and writes it as a
// little-endian 32-bit word at ChecksumOffset, overwriting the previous
// content of the reserved slot. No other byte is modified.
func Patch(image []byte) (uint32, error) {
	if len(image) < VectorTableSize {
		return 0, fmt.Errorf("firmware: %w: vector table needs at least %d bytes, got %d",
			ErrTooSmall, VectorTableSize, len(image))
	}

	vectors := make([]uint32, VectorCount)
	for i := range vectors {
		vectors[i] = binary.LittleEndian.Uint32(image[4*i:])
	}

	checksum, err := Checksum(vectors)
	if err != nil {
		return 0, err
	}

	binary.LittleEndian.PutUint32(image[ChecksumOffset:], checksum)
	return checksum, nil
}

// Pad appends zero bytes to image until its length is a multiple of
// blockSize. An already aligned image is returned unchanged.
func Pad(image []byte, blockSize int) []byte {
	if rem := len(image) % blockSize; rem != 0 {
		image = append(image, make([]byte, blockSize-rem)...)
	}
	return image
}

// Bytes returns the patched and padded image.
func (f *Firmware) Bytes() []byte {
	return f.data
}

// WriteTo implements io.WriterTo.
func (f *Firmware) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.data)
	return int64(n), err
}
