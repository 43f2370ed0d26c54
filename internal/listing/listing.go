// Package listing builds the text listing of a decoded program.
package listing

import (
	"fmt"

	"github.com/retroenv/fxgodisasm/internal/fx3u"
	"github.com/retroenv/fxgodisasm/internal/options"
	"github.com/retroenv/fxgodisasm/internal/program"
	"github.com/retroenv/retrogolib/set"
)

// Build converts a decoded result sequence into the program output model.
// Decode errors become comment annotations on their line, label
// definitions become label lines, jump pointers never referenced by a
// CJ or CALL are marked.
func Build(words []uint16, results []fx3u.Result, opts options.Listing) *program.Program {
	app := program.New(words)
	referenced := referencedPointers(results)

	for _, result := range results {
		line := program.Line{Offset: result.Offset, Words: result.Words}
		ins := result.Instruction

		switch {
		case result.Err != nil && ins.Length == 0:
			line.Comment = result.Err.Error()

		case ins.Mnemonic == fx3u.Label:
			pointer, ok := labelPointer(ins)
			if !ok {
				break
			}
			if opts.Labels {
				line.Label = fmt.Sprintf("P%d:", pointer)
			}
			if !referenced.Contains(pointer) {
				line.Comment = "no references"
			}
			app.Labels[pointer] = len(app.Lines)

		default:
			line.Code = Format(ins)
			if result.Err != nil {
				line.Comment = result.Err.Error()
			}
		}

		app.Lines = append(app.Lines, line)
	}

	return app
}

// referencedPointers collects the pointer numbers referenced by jump and
// call instructions, including unresolved ones.
func referencedPointers(results []fx3u.Result) set.Set[uint8] {
	referenced := set.New[uint8]()
	for _, result := range results {
		ins := result.Instruction
		if ins.Mnemonic != fx3u.Cj && ins.Mnemonic != fx3u.Call {
			continue
		}
		if pointer, ok := labelPointer(ins); ok {
			referenced.Add(pointer)
		}
	}
	return referenced
}

func labelPointer(ins fx3u.Instruction) (uint8, bool) {
	if len(ins.Operands) != 1 {
		return 0, false
	}
	pointer, ok := ins.Operands[0].(fx3u.PointerLabel)
	return pointer.Number, ok
}
