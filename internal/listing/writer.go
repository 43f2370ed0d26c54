package listing

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/fxgodisasm/internal/options"
	"github.com/retroenv/fxgodisasm/internal/program"
)

// Writer renders a program to its text listing.
type Writer struct {
	app     *program.Program
	options options.Listing
	writer  io.Writer
}

// NewWriter creates a new listing writer.
func NewWriter(app *program.Program, writer io.Writer, opts options.Listing) *Writer {
	return &Writer{
		app:     app,
		options: opts,
		writer:  writer,
	}
}

// Write writes the listing: a checksum header, then one line per decoded
// instruction or error annotation, label lines unindented.
func (w *Writer) Write() error {
	if _, err := fmt.Fprintf(w.writer, "; program checksum $%08X\n\n", w.app.Checksum); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, line := range w.app.Lines {
		if line.Label != "" {
			if _, err := fmt.Fprintln(w.writer, line.Label); err != nil {
				return fmt.Errorf("writing label: %w", err)
			}
		}

		text := w.formatLine(line)
		if text == "" {
			continue
		}
		if _, err := fmt.Fprintln(w.writer, text); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	return nil
}

func (w *Writer) formatLine(line program.Line) string {
	comment := w.comment(line)

	switch {
	case line.Code == "" && comment == "":
		return ""
	case line.Code == "":
		return "  ; " + comment
	case comment == "":
		return "  " + line.Code
	default:
		return fmt.Sprintf("  %-24s ; %s", line.Code, comment)
	}
}

// comment builds the comment column: word offset, raw instruction words
// and the line annotation, each part optional.
func (w *Writer) comment(line program.Line) string {
	// lines without code carry only their annotation
	if line.Code == "" && line.Comment == "" {
		return ""
	}

	var parts []string
	if w.options.OffsetComments {
		parts = append(parts, fmt.Sprintf("%04X:", line.Offset))
	}
	if w.options.HexComments && len(line.Words) > 0 {
		words := make([]string, 0, len(line.Words))
		for _, word := range line.Words {
			words = append(words, fmt.Sprintf("%04X", word))
		}
		parts = append(parts, strings.Join(words, " "))
	}
	if line.Comment != "" {
		parts = append(parts, line.Comment)
	}
	return strings.Join(parts, " ")
}
