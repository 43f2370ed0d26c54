package fx3u

// Instruction is a decoded program instruction with fully resolved
// operands.
type Instruction struct {
	Offset   int       // word offset the instruction was decoded at
	Length   int       // number of words consumed
	Mnemonic Mnemonic  // stable enumerated identifier
	Operands []Operand // ordered, 0-3 entries

	// RawWords holds the instruction's words as read from program memory,
	// retained for round-trip verification.
	RawWords []uint16
}
