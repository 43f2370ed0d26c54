// Package program represents a decoded PLC program.
package program

import (
	"encoding/binary"
	"hash/crc32"
)

// Line is one output line of the decoded program: an instruction, an
// error annotation or both for an instruction decoded with an unresolved
// jump target.
type Line struct {
	Offset int      // absolute word offset of the first word
	Words  []uint16 // program words covered by this line

	Label   string // "Pn:" when a jump pointer is defined at this offset
	Code    string // formatted instruction text, empty for pure error lines
	Comment string // error annotation or extra context
}

// Program is the presentation independent result of decoding a program
// image, consumed by the listing writer and by verification.
type Program struct {
	Lines []Line

	// Labels maps pointer numbers to the index of the defining line.
	Labels map[uint8]int

	// Checksum is the CRC32 of the program word buffer in little endian
	// byte order, identifying the capture the listing was generated from.
	Checksum uint32
}

// New creates an empty program for the given word buffer.
func New(words []uint16) *Program {
	return &Program{
		Labels:   map[uint8]int{},
		Checksum: checksum(words),
	}
}

func checksum(words []uint16) uint32 {
	buf := make([]byte, 2*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint16(buf[2*i:], w)
	}
	return crc32.ChecksumIEEE(buf)
}
