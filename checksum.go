package lpcvtcksum

import (
	"errors"
	"fmt"
)

// Layout of the image expected by the LPC boot ROM.
const (
	// VectorCount is the number of vector table entries covered by the checksum.
	VectorCount = 7

	// ChecksumOffset is the byte offset of the reserved checksum slot (word 7).
	ChecksumOffset = 4 * VectorCount

	// VectorTableSize is the minimum image size, enough for 8 words.
	VectorTableSize = ChecksumOffset + 4

	// BlockSize is the flash sector boundary images are padded to.
	BlockSize = 4096
)

// ErrVectorCount is returned by Checksum when it is not given exactly 7 words.
var ErrVectorCount = errors.New("vector table checksum requires exactly 7 words")

// Checksum computes the value of the reserved eighth vector table word from
// the first seven.
//
// The sum of the seven words is taken with unsigned 32-bit wraparound, then
// negated, so that all eight words sum to zero modulo 2^32. This is the
// validation performed by the boot ROM before it executes an image.
func Checksum(vectors []uint32) (uint32, error) {
	if len(vectors) != VectorCount {
		return 0, fmt.Errorf("%w, got %d", ErrVectorCount, len(vectors))
	}

	var sum uint32
	for _, vector := range vectors {
		sum += vector
	}
	return -sum, nil
}
