// Package fx3u implements decoding of FX3U PLC programs into structured
// instruction records.
//
// # Program Encoding
//
// FX3U ladder programs are stored as a linear array of 16 bit words using a
// bit-packed, variable length instruction encoding:
//
//   - one word basic bit instructions: the high byte selects the operation
//     and device area, the low byte is the bit address within the area
//   - one word stack and control tokens (MPS/MRD/MPP/ORB/ANB/INV, RET, END)
//   - one word label definitions (0xB000|n) marking jump pointer Pn
//   - two word extended and edge triggered bit instructions whose second
//     word is a (bank, offset) device address pair
//   - multi word application instructions (MOV, ADD, CMP, CJ, ...) whose
//     operands use a two word tagged envelope encoding
//
// # Decoding
//
// Decoding runs in two passes. Prescan walks every word offset and collects
// label definitions into a LabelTable; label words identify themselves by
// bit pattern, so the prescan does not need to understand the surrounding
// instructions. The main pass classifies instructions through a prioritized
// opcode table and resolves CJ/CALL pointer operands against the table.
//
// ProgramDecoder drives both passes and yields a sequence of Result values
// that interleaves decoded instructions with error annotations. Unknown or
// malformed words never stop a decode: analysis of a captured program has
// to continue past opcodes that are not documented yet.
//
// The package never executes instructions and renders no text; presentation
// is left to consumers of the Instruction records.
package fx3u
