package main

import (
	"context"
	"fmt"

	cv2docx "github.com/alnah/go-cv2docx"
)

// runRender expands a template against a data file and writes the HTML.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}

	dataPath := flags.data
	if dataPath == "" && len(positional) > 0 {
		dataPath, positional = positional[0], positional[1:]
	}
	if dataPath == "" {
		return fmt.Errorf("%w: data file (use --data or pass it as an argument)", ErrMissingArgument)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", ErrInvalidFlags, positional)
	}

	s, err := newSession(flags.common, flags.assets, env)
	if err != nil {
		return err
	}
	src, err := s.resolveTemplate(flags.tmpl)
	if err != nil {
		return err
	}
	dateFormat, err := s.dateFormat(flags.tmpl)
	if err != nil {
		return err
	}
	data, err := readData(dataPath, dateFormat)
	if err != nil {
		return err
	}
	conv, err := s.converter()
	if err != nil {
		return err
	}

	result, err := conv.Render(ctx, cv2docx.RenderInput{
		Template: src.Template,
		Data:     data,
		Format:   src.Format,
	})
	if err != nil {
		return err
	}
	logMisses(s.logger, dataPath, result.Misses)

	html := result.HTML
	if flags.full {
		html = conv.FullHTML(html, src.CSS)
	}

	if flags.output == "" {
		_, err := fmt.Fprint(env.Stdout, html)
		return err
	}
	if err := writeOutput(flags.output, []byte(html)); err != nil {
		return err
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", flags.output)
	}
	return nil
}
