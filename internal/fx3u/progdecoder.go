package fx3u

import (
	"errors"
	"iter"
)

// Result is one element of a decoded program sequence: a decoded
// instruction, an error annotation for the words that produced it, or both
// for an instruction with an unresolved pointer operand.
type Result struct {
	Offset      int
	Words       []uint16 // program words covered by this element
	Instruction Instruction
	Err         error
}

// ProgramDecoder drives instruction decoding across a whole program. It
// runs the label prescan once, then decodes from the start offset until
// the stream is exhausted or an END instruction is reached; trailing words
// beyond END belong to a different region and are not decoded. Decode
// errors are yielded in-stream so callers see the entire annotated
// program, the sequence never stops at a bad word.
type ProgramDecoder struct {
	mem     Memory
	labels  *LabelTable
	decoder *Decoder

	offset int
	done   bool
}

// NewProgramDecoder creates a program decoder starting at offset 0,
// running the label prescan on the given memory. Duplicate label
// definitions resurface in the result stream at the offset of the second
// definition.
func NewProgramDecoder(mem Memory) *ProgramDecoder {
	labels, _ := Prescan(mem)
	return NewProgramDecoderAt(mem, labels, 0)
}

// NewProgramDecoderAt creates a program decoder starting at the given
// offset with a cached label table, for example to decode a single
// subroutine of an already prescanned program.
func NewProgramDecoderAt(mem Memory, labels *LabelTable, offset int) *ProgramDecoder {
	return &ProgramDecoder{
		mem:     mem,
		labels:  labels,
		decoder: NewDecoder(mem, labels),
		offset:  offset,
	}
}

// LabelTable returns the label table used for pointer resolution.
func (p *ProgramDecoder) LabelTable() *LabelTable {
	return p.labels
}

// Next returns the next sequence element. The second return value is false
// once the stream is exhausted or an END instruction has been delivered.
func (p *ProgramDecoder) Next() (Result, bool) {
	if p.done || p.offset >= p.mem.Len() {
		return Result{}, false
	}

	start := p.offset
	ins, next, err := p.decoder.DecodeAt(start)
	if errors.Is(err, ErrEndOfProgram) {
		p.done = true
		return Result{}, false
	}
	p.offset = next

	words, wordsErr := p.mem.Words(start, next-start)
	if wordsErr != nil {
		words = nil
	}

	if err == nil && ins.Mnemonic == End {
		p.done = true
	}
	return Result{Offset: start, Words: words, Instruction: ins, Err: err}, true
}

// All returns the remaining sequence as a range iterator. Elements are
// produced lazily; stopping early costs nothing for unread elements.
func (p *ProgramDecoder) All() iter.Seq[Result] {
	return func(yield func(Result) bool) {
		for {
			result, ok := p.Next()
			if !ok {
				return
			}
			if !yield(result) {
				return
			}
		}
	}
}
