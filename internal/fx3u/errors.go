package fx3u

import (
	"errors"
	"fmt"
)

// ErrEndOfProgram is returned when a read reaches past the end of program
// memory. It terminates a decode sequence and is never reported as a
// per-instruction error.
var ErrEndOfProgram = errors.New("end of program")

// UnknownOpcodeError reports a word that matches no documented opcode
// pattern. It is recoverable: decoding continues at the following word.
type UnknownOpcodeError struct {
	Offset int
	Word   uint16
}

func (e UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode %04X at offset %d", e.Word, e.Offset)
}

// TruncatedOperandError reports an instruction whose declared length
// exceeds the program memory bounds.
type TruncatedOperandError struct {
	Offset int
}

func (e TruncatedOperandError) Error() string {
	return fmt.Sprintf("truncated operand at offset %d", e.Offset)
}

// UnresolvedPointerError reports a CJ or CALL instruction referencing a
// pointer that has no label definition. It is scoped to the referencing
// instruction and does not invalidate the rest of the decode.
type UnresolvedPointerError struct {
	Pointer uint8
}

func (e UnresolvedPointerError) Error() string {
	return fmt.Sprintf("unresolved pointer P%d", e.Pointer)
}

// MalformedError reports invalid instruction contents, like a duplicate
// label definition or an operand envelope with an invalid type tag.
type MalformedError struct {
	Offset int
	Reason string
}

func (e MalformedError) Error() string {
	return fmt.Sprintf("malformed word at offset %d: %s", e.Offset, e.Reason)
}
