package main

import (
	"fmt"
	"path/filepath"

	"github.com/alnah/go-cv2docx/internal/assets"
	"github.com/alnah/go-cv2docx/internal/fileutil"
)

type sampleFile struct {
	name    string
	content []byte
}

// runSample writes a template set and the sample data files into a
// directory, ready to be edited and passed to generate.
func runSample(args []string, env *Environment) error {
	flags, positional, err := parseSampleFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", ErrInvalidFlags, positional)
	}

	if flags.list {
		for _, name := range assets.NewEmbeddedLoader().Names() {
			fmt.Fprintln(env.Stdout, name)
		}
		return nil
	}

	s, err := newSession(flags.common, assetFlags{}, env)
	if err != nil {
		return err
	}
	set, err := s.loader.LoadTemplateSet(flags.set)
	if err != nil {
		return err
	}

	templateFile := "template.html"
	if set.Format == assets.FormatMarkdown {
		templateFile = "template.md"
	}

	files := []sampleFile{
		{templateFile, []byte(set.Template)},
		{"style.css", []byte(set.Style)},
	}
	for _, name := range []string{assets.SampleCandidate, assets.SampleSkeleton} {
		content, err := assets.LoadSample(name)
		if err != nil {
			return err
		}
		files = append(files, sampleFile{name, content})
	}

	if !flags.force {
		for _, f := range files {
			if p := filepath.Join(flags.output, f.name); fileutil.FileExists(p) {
				return fmt.Errorf("%w: %s (use --force to overwrite)", ErrOutputExists, p)
			}
		}
	}

	for _, f := range files {
		p := filepath.Join(flags.output, f.name)
		if err := writeOutput(p, f.content); err != nil {
			return err
		}
		if !flags.common.quiet {
			fmt.Fprintf(env.Stdout, "Created %s\n", p)
		}
	}
	return nil
}
