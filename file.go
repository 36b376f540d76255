package lpcvtcksum

import (
	"fmt"
	"os"
	"path/filepath"
)

// CheckFile patches the firmware image at src and writes the result to dst.
// The two paths may be equal, in which case the image is modified in place.
// An existing file at dst is replaced.
func CheckFile(src, dst string) (*Firmware, error) {
	input, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("firmware: failed to load image: %w", err)
	}
	firmware, err := CheckFirmware(input)
	input.Close()
	if err != nil {
		return nil, err
	}

	err = firmware.Save(dst)
	if err != nil {
		return nil, err
	}
	return firmware, nil
}

// Save writes the patched image to path, replacing any existing file.
//
// The image is first written to a temporary file in the same directory and
// then renamed over path, so a failed write never leaves a truncated file at
// the destination.
func (f *Firmware) Save(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("firmware: failed to save image: %w", err)
	}

	_, err = tmp.Write(f.data)
	if err == nil {
		err = tmp.Chmod(0644)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), path)
	}
	if err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("firmware: failed to save image: %w", err)
	}
	return nil
}
