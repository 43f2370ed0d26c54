// Package loader reads program word images from disk.
package loader

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/retroenv/fxgodisasm/internal/options"
)

// Loader reads program images and returns their word buffer.
type Loader struct{}

// New creates a new program image loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the input file of the given options and returns the program
// words. The image is either raw binary, two bytes per word little
// endian, or whitespace separated hexadecimal words; the format is forced
// by the -binary/-hex flags or detected from the file extension, text
// extensions read as hex. "-" reads from stdin, defaulting to binary.
func (l *Loader) Load(opts options.Program) ([]uint16, error) {
	var reader io.Reader
	if opts.Input == "-" {
		reader = os.Stdin
	} else {
		file, err := os.Open(opts.Input)
		if err != nil {
			return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
		}
		defer func() { _ = file.Close() }()
		reader = file
	}

	if hexInput(opts) {
		words, err := readHex(reader)
		if err != nil {
			return nil, fmt.Errorf("reading hex image %s: %w", opts.Input, err)
		}
		return words, nil
	}

	words, err := readBinary(reader)
	if err != nil {
		return nil, fmt.Errorf("reading binary image %s: %w", opts.Input, err)
	}
	return words, nil
}

func hexInput(opts options.Program) bool {
	if opts.Hex {
		return true
	}
	if opts.Binary || opts.Input == "-" {
		return false
	}
	switch strings.ToLower(filepath.Ext(opts.Input)) {
	case ".hex", ".txt":
		return true
	default:
		return false
	}
}

func readBinary(reader io.Reader) ([]uint16, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("odd image size %d, expected two bytes per word", len(data))
	}

	words := make([]uint16, len(data)/2)
	for i := range words {
		words[i] = binary.LittleEndian.Uint16(data[2*i:])
	}
	return words, nil
}

// readHex parses whitespace separated hexadecimal words, one or more per
// line. Everything after a ';' is a comment.
func readHex(reader io.Reader) ([]uint16, error) {
	var words []uint16

	scanner := bufio.NewScanner(reader)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if i := strings.IndexByte(line, ';'); i >= 0 {
			line = line[:i]
		}

		for _, token := range strings.Fields(line) {
			value, err := strconv.ParseUint(strings.TrimPrefix(token, "0x"), 16, 16)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid word %q: %w", lineNumber, token, err)
			}
			words = append(words, uint16(value))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	return words, nil
}
