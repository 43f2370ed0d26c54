package fx3u

// The instruction set encoded as data. Only documented opcode values are
// listed; gaps in the tables classify as unknown opcodes instead of being
// extrapolated from neighboring entries.

// controlOpcodes are the exact match zero operand stack and control words.
var controlOpcodes = map[uint16]Mnemonic{
	0x000F: End,
	0xF7FF: Ret,
	0xFFF8: Anb,
	0xFFF9: Orb,
	0xFFFA: Mps,
	0xFFFB: Mrd,
	0xFFFC: Mpp,
	0xFFFD: Inv,
}

// bitOp describes one basic bit instruction high byte: the operation, the
// device area it addresses and the bank base added to the low address byte.
type bitOp struct {
	mnemonic Mnemonic
	device   Device
	base     uint16
}

// basicBitOpcodes maps the documented basic bit instruction high bytes.
// The M relay area spans several banks of 256, the special relays M8000+
// have their own column for LD and LDI only. The second Y column (0xC5,
// 0xD5, 0xE5) continues the output area past one address byte.
var basicBitOpcodes = map[uint8]bitOp{
	// LD
	0x20: {Ld, DeviceS, 0},
	0x24: {Ld, DeviceX, 0},
	0x26: {Ld, DeviceTS, 0},
	0x28: {Ld, DeviceM, 0},
	0x29: {Ld, DeviceM, 256},
	0x2A: {Ld, DeviceM, 512},
	0x2B: {Ld, DeviceM, 768},
	0x2C: {Ld, DeviceM, 1024},
	0x2D: {Ld, DeviceM, 1280},
	0x2E: {Ld, DeviceCS, 0},
	0x2F: {Ld, DeviceM, 8000},

	// LDI
	0x30: {Ldi, DeviceS, 0},
	0x34: {Ldi, DeviceX, 0},
	0x36: {Ldi, DeviceTS, 0},
	0x38: {Ldi, DeviceM, 0},
	0x39: {Ldi, DeviceM, 256},
	0x3A: {Ldi, DeviceM, 512},
	0x3B: {Ldi, DeviceM, 768},
	0x3C: {Ldi, DeviceM, 1024},
	0x3D: {Ldi, DeviceM, 1280},
	0x3E: {Ldi, DeviceCS, 0},
	0x3F: {Ldi, DeviceM, 8000},

	// AND
	0x40: {And, DeviceS, 0},
	0x44: {And, DeviceX, 0},
	0x46: {And, DeviceTS, 0},
	0x48: {And, DeviceM, 0},
	0x49: {And, DeviceM, 256},
	0x4A: {And, DeviceM, 512},
	0x4B: {And, DeviceM, 768},
	0x4C: {And, DeviceM, 1024},
	0x4D: {And, DeviceM, 1280},
	0x4E: {And, DeviceCS, 0},

	// ANI
	0x50: {Ani, DeviceS, 0},
	0x54: {Ani, DeviceX, 0},
	0x56: {Ani, DeviceTS, 0},
	0x58: {Ani, DeviceM, 0},
	0x59: {Ani, DeviceM, 256},
	0x5A: {Ani, DeviceM, 512},
	0x5B: {Ani, DeviceM, 768},
	0x5C: {Ani, DeviceM, 1024},
	0x5D: {Ani, DeviceM, 1280},
	0x5E: {Ani, DeviceCS, 0},

	// OR
	0x60: {Or, DeviceS, 0},
	0x64: {Or, DeviceX, 0},
	0x66: {Or, DeviceTS, 0},
	0x68: {Or, DeviceM, 0},
	0x69: {Or, DeviceM, 256},
	0x6A: {Or, DeviceM, 512},
	0x6B: {Or, DeviceM, 768},
	0x6C: {Or, DeviceM, 1024},
	0x6D: {Or, DeviceM, 1280},
	0x6E: {Or, DeviceCS, 0},

	// ORI
	0x70: {Ori, DeviceS, 0},
	0x74: {Ori, DeviceX, 0},
	0x76: {Ori, DeviceTS, 0},
	0x78: {Ori, DeviceM, 0},
	0x79: {Ori, DeviceM, 256},
	0x7A: {Ori, DeviceM, 512},
	0x7B: {Ori, DeviceM, 768},
	0x7C: {Ori, DeviceM, 1024},
	0x7D: {Ori, DeviceM, 1280},
	0x7E: {Ori, DeviceCS, 0},

	// OUT
	0xC0: {Out, DeviceS, 0},
	0xC4: {Out, DeviceY, 0},
	0xC5: {Out, DeviceY, 256},
	0xC6: {Out, DeviceT, 0},
	0xC8: {Out, DeviceM, 0},
	0xC9: {Out, DeviceM, 256},
	0xCA: {Out, DeviceM, 512},
	0xCB: {Out, DeviceM, 768},
	0xCC: {Out, DeviceM, 1024},
	0xCD: {Out, DeviceM, 1280},
	0xCE: {Out, DeviceC, 0},

	// SET
	0xD0: {Set, DeviceS, 0},
	0xD4: {Set, DeviceY, 0},
	0xD5: {Set, DeviceY, 256},
	0xD8: {Set, DeviceM, 0},
	0xD9: {Set, DeviceM, 256},
	0xDA: {Set, DeviceM, 512},
	0xDB: {Set, DeviceM, 768},
	0xDC: {Set, DeviceM, 1024},
	0xDD: {Set, DeviceM, 1280},

	// RST
	0xE0: {Rst, DeviceS, 0},
	0xE4: {Rst, DeviceY, 0},
	0xE5: {Rst, DeviceY, 256},
	0xE6: {Rst, DeviceT, 0},
	0xE8: {Rst, DeviceM, 0},
	0xE9: {Rst, DeviceM, 256},
	0xEA: {Rst, DeviceM, 512},
	0xEB: {Rst, DeviceM, 768},
	0xEC: {Rst, DeviceM, 1024},
	0xED: {Rst, DeviceM, 1280},
	0xEE: {Rst, DeviceC, 0},
}

// extendedBitOpcodes are the two word bit instructions addressing the
// banked device ranges (M2000+, M8000+, S500+) through their second word.
var extendedBitOpcodes = map[uint16]Mnemonic{
	0x01C2: Ld,
	0x01C3: Ldi,
	0x01C4: And,
	0x01C5: Ani,
	0x01C6: Or,
	0x01C7: Ori,
	0x0002: Out,
	0x0003: Set,
	0x0004: Rst,
	0x0005: Out,
	0x0006: Set,
	0x0007: Rst,
}

// pulsedBitOpcodes are the two word edge triggered bit instructions,
// sharing the banked second word coding with the extended bit family.
var pulsedBitOpcodes = map[uint16]Mnemonic{
	0x01CA: Ldp,
	0x01CB: Ldf,
	0x01CC: Andp,
	0x01CD: Andf,
	0x01CE: Orp,
	0x01CF: Orf,
}

// envelopeOp describes an instruction followed by a fixed number of two
// word operand envelopes.
type envelopeOp struct {
	mnemonic Mnemonic
	operands int
}

// compareOpcodes are the five word load/and compare instructions.
var compareOpcodes = map[uint16]envelopeOp{
	0x01D0: {LdEq, 2},
	0x01D2: {LdGt, 2},
	0x01D4: {LdLt, 2},
	0x01DA: {LdLe, 2},
	0x01DC: {LdGe, 2},
	0x01E0: {AndEq, 2},
	0x01E2: {AndGt, 2},
	0x01E4: {AndLt, 2},
	0x01EA: {AndLe, 2},
	0x01EC: {AndGe, 2},
}

// applicationOpcodes are the data transfer and arithmetic instructions.
// Bit 0x1000 of the base opcode selects the pulsed variant.
var applicationOpcodes = map[uint16]envelopeOp{
	0x0028: {Mov, 2},
	0x1028: {Movp, 2},
	0x0038: {Add, 3},
	0x1038: {Addp, 3},
	0x003A: {Sub, 3},
	0x103A: {Subp, 3},
	0x003C: {Mul, 3},
	0x103C: {Mulp, 3},
	0x003E: {Div, 3},
	0x103E: {Divp, 3},
}

// controlFlowOpcodes are the pointer referencing jump and call
// instructions, followed by a single pointer tagged operand envelope.
var controlFlowOpcodes = map[uint16]Mnemonic{
	0x0010: Cj,
	0x0012: Call,
}

// Remaining documented opcode patterns.
const (
	opcodeRstTimerCounter = 0x000C // RST T/C, one tagged word follows
	opcodeOutTimer        = 0x0600 // OUT Tn with preset envelope, masked 0xFF00
	opcodeOutCounter      = 0x0E00 // OUT Cn with preset envelope, masked 0xFF00

	// RST T/C second word tags
	rstTagTimer   = 0x86
	rstTagCounter = 0x8E
)
