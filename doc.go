// Package lpcvtcksum computes and inserts the boot-time vector table checksum
// required by NXP LPC43xx/LPC18xx ARM microcontrollers.
//
// The boot ROM of those parts refuses to execute a flashed image unless the
// first eight 32-bit words of its vector table sum to zero modulo 2^32. The
// eighth word is reserved for that purpose: this package computes the
// two's-complement of the sum of the first seven words, writes it into the
// reserved slot, and pads the image with zeros to the next 4096-byte flash
// sector boundary. Every other byte of the image is preserved.
//
// This package comes with a CLI. You can install it like this:
//   go get github.com/kolod/lpcvtcksum/cmd/lpcvtcksum
package lpcvtcksum
