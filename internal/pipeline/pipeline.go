// Package pipeline orchestrates the disassembly workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/retroenv/fxgodisasm/internal/fx3u"
	"github.com/retroenv/fxgodisasm/internal/listing"
	"github.com/retroenv/fxgodisasm/internal/loader"
	"github.com/retroenv/fxgodisasm/internal/options"
	"github.com/retroenv/fxgodisasm/internal/program"
	"github.com/retroenv/fxgodisasm/internal/verification"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete disassembly workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new disassembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute runs the complete disassembly pipeline: load the program image,
// decode it, write the listing and optionally verify the round trip.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, writer io.Writer) (*program.Program, error) {
	words, err := p.loader.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("loading program image: %w", err)
	}
	return p.ExecuteWithWords(ctx, words, opts, writer)
}

// ExecuteWithWords runs the disassembly pipeline with an already loaded
// word buffer, for testing and programmatic usage.
func (p *Pipeline) ExecuteWithWords(ctx context.Context, words []uint16, opts options.Program,
	writer io.Writer) (*program.Program, error) {

	p.printInfo(opts, words)

	results, err := p.decode(ctx, words)
	if err != nil {
		return nil, err
	}

	app := listing.Build(words, results, opts.Listing)

	if err := listing.NewWriter(app, writer, opts.Listing).Write(); err != nil {
		return nil, fmt.Errorf("writing listing: %w", err)
	}

	if opts.Verify {
		if err := verification.Verify(p.logger, results); err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		if !opts.Quiet {
			p.logger.Info("Verification successful")
		}
	}

	return app, nil
}

// decode runs the program decoder, checking for cancellation between
// instructions so that decoding a huge capture aborts on Ctrl+C.
func (p *Pipeline) decode(ctx context.Context, words []uint16) ([]fx3u.Result, error) {
	dec := fx3u.NewProgramDecoder(fx3u.NewMemory(words))

	var results []fx3u.Result
	decodeErrors := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("decoding interrupted: %w", err)
		}

		result, ok := dec.Next()
		if !ok {
			break
		}
		if result.Err != nil {
			decodeErrors++
			p.logger.Debug("Decode error",
				log.Hex("offset", result.Offset),
				log.Err(result.Err))
		}
		results = append(results, result)
	}

	if decodeErrors > 0 {
		p.logger.Warn("Program decoded with errors",
			log.String("errors", strconv.Itoa(decodeErrors)))
	}
	return results, nil
}

func (p *Pipeline) printInfo(opts options.Program, words []uint16) {
	if opts.Quiet {
		return
	}
	p.logger.Info("Processing program image",
		log.String("file", opts.Input),
		log.String("words", strconv.Itoa(len(words))),
	)
}
