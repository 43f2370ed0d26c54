package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/fxgodisasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestNew(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.loader)
}

func TestExecuteWithWords(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	words := []uint16{
		0xB005,
		0x2400,
		0x0010, 0x8805, 0x8000,
		0x000F,
	}

	opts := options.Program{
		Quiet:   true,
		Listing: options.NewListing(),
	}

	var buf bytes.Buffer
	app, err := p.ExecuteWithWords(context.Background(), words, opts, &buf)
	assert.NoError(t, err)
	assert.NotNil(t, app)
	assert.Len(t, app.Lines, 4)

	output := buf.String()
	assert.Contains(t, output, "P5:")
	assert.Contains(t, output, "LD X0")
	assert.Contains(t, output, "CJ P5")
	assert.Contains(t, output, "END")
}

func TestExecute(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	// LD X0, OUT Y0, END as little endian binary
	tmpFile := filepath.Join(t.TempDir(), "test.bin")
	data := []byte{0x00, 0x24, 0x00, 0xC4, 0x0F, 0x00}
	assert.NoError(t, os.WriteFile(tmpFile, data, 0600))

	opts := options.Program{
		Input:   tmpFile,
		Quiet:   true,
		Verify:  true,
		Listing: options.NewListing(),
	}

	var buf bytes.Buffer
	app, err := p.Execute(context.Background(), opts, &buf)
	assert.NoError(t, err)
	assert.Len(t, app.Lines, 3)
	assert.Contains(t, buf.String(), "OUT Y0")
}

func TestExecuteLoadError(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	opts := options.Program{
		Input: "/nonexistent/file.bin",
		Quiet: true,
	}

	var buf bytes.Buffer
	_, err := p.Execute(context.Background(), opts, &buf)
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "loading program image"))
}

func TestExecuteCancelled(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := options.Program{
		Quiet:   true,
		Listing: options.NewListing(),
	}

	var buf bytes.Buffer
	_, err := p.ExecuteWithWords(ctx, []uint16{0x2400, 0x000F}, opts, &buf)
	assert.True(t, errors.Is(err, context.Canceled))
}
