package fx3u

import (
	"errors"
	"fmt"
	"slices"
)

// Label definition word pattern: high byte 0xB0, pointer number 0-127 in
// the low byte. Words outside this pattern are not label definitions.
const (
	labelWordMask  = 0xFF80
	labelWordValue = 0xB000
)

// isLabelWord reports whether the word defines a jump pointer label.
func isLabelWord(w uint16) bool {
	return w&labelWordMask == labelWordValue
}

// labelWord returns the definition word for the given pointer number.
func labelWord(pointer uint8) uint16 {
	return labelWordValue | uint16(pointer)
}

// LabelTable maps pointer numbers to the absolute word offset of their
// label definition. It is built once by Prescan, read-only afterwards and
// safe to share across decode sessions.
type LabelTable struct {
	offsets    map[uint8]int
	duplicates map[int]MalformedError // second definitions, keyed by their offset
}

// Lookup returns the definition offset of the given pointer number.
func (t *LabelTable) Lookup(pointer uint8) (int, bool) {
	offset, ok := t.offsets[pointer]
	return offset, ok
}

// Len returns the number of defined pointers.
func (t *LabelTable) Len() int {
	return len(t.offsets)
}

// Pointers returns all defined pointer numbers in ascending order.
func (t *LabelTable) Pointers() []uint8 {
	pointers := make([]uint8, 0, len(t.offsets))
	for pointer := range t.offsets {
		pointers = append(pointers, pointer)
	}
	slices.Sort(pointers)
	return pointers
}

// definitionError returns the duplicate definition error recorded at the
// given offset during the prescan.
func (t *LabelTable) definitionError(offset int) (MalformedError, bool) {
	err, ok := t.duplicates[offset]
	return err, ok
}

// Prescan scans every word offset for label definition words and builds
// the label table. The scan is deliberately not instruction boundary
// aware: label words identify themselves by bit pattern, which keeps the
// prescan robust over undocumented opcodes elsewhere in the stream.
//
// A duplicate definition for a pointer is returned as a MalformedError and
// never overwrites the first definition. The returned table is valid even
// when an error is returned.
func Prescan(mem Memory) (*LabelTable, error) {
	table := &LabelTable{
		offsets:    map[uint8]int{},
		duplicates: map[int]MalformedError{},
	}

	var errs []error
	for offset, w := range mem.words {
		if !isLabelWord(w) {
			continue
		}
		pointer := uint8(w & 0xFF)
		if _, ok := table.offsets[pointer]; ok {
			dup := MalformedError{
				Offset: offset,
				Reason: fmt.Sprintf("duplicate definition of pointer P%d", pointer),
			}
			table.duplicates[offset] = dup
			errs = append(errs, dup)
			continue
		}
		table.offsets[pointer] = offset
	}

	return table, errors.Join(errs...)
}
