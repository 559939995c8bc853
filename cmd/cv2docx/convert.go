package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	cv2docx "github.com/alnah/go-cv2docx"
)

// runConvert turns a rendered HTML file into a document.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	if len(positional) == 0 {
		return fmt.Errorf("%w: HTML input file", ErrMissingArgument)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected one input file, got %d", ErrInvalidFlags, len(positional))
	}
	input := positional[0]

	s, err := newSession(flags.common, flags.assets, env)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadHTML, err)
	}
	var css string
	if flags.css != "" {
		if css, err = readCSS(flags.css); err != nil {
			return err
		}
	}

	output := flags.output
	if output == "" {
		output = documentPath(input, s.cfg.Output.DefaultDir)
	}

	conv, err := s.converter()
	if err != nil {
		return err
	}

	start := env.Now()
	doc, err := conv.Convert(ctx, cv2docx.ConvertInput{
		HTML:     string(content),
		CSS:      css,
		Filename: strings.TrimSuffix(filepath.Base(output), filepath.Ext(output)),
	})
	if err != nil {
		return err
	}
	if err := writeOutput(output, doc.Content); err != nil {
		return err
	}

	switch {
	case flags.common.quiet:
	case flags.common.verbose > 0:
		fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", input, output, env.Now().Sub(start).Round(time.Millisecond))
	default:
		fmt.Fprintf(env.Stdout, "Created %s\n", output)
	}
	return nil
}
