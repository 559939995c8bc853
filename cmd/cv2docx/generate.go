package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	cv2docx "github.com/alnah/go-cv2docx"
	"github.com/alnah/go-cv2docx/internal/config"
	"github.com/alnah/go-cv2docx/internal/fileutil"
)

// GenerationResult holds the outcome of a single data file.
type GenerationResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// generateJob is a data file decoded and ready for the batch.
type generateJob struct {
	inputPath  string
	outputPath string
	input      cv2docx.GenerateInput
}

// runGenerate renders one template against many data files and writes a
// document per file. Files are processed concurrently.
func runGenerate(ctx context.Context, args []string, env *Environment) error {
	flags, dataFiles, err := parseGenerateFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if len(dataFiles) == 0 {
		return fmt.Errorf("%w: at least one data file", ErrMissingArgument)
	}

	s, err := newSession(flags.common, flags.assets, env)
	if err != nil {
		return err
	}
	src, err := s.resolveTemplate(flags.tmpl)
	if err != nil {
		return err
	}
	// A broken template fails the whole run, not each data file.
	if _, err := cv2docx.TemplateVariables(src.Template); err != nil {
		return fmt.Errorf("%s: %w", src.Name, err)
	}
	dateFormat, err := s.dateFormat(flags.tmpl)
	if err != nil {
		return err
	}
	conv, err := s.converter()
	if err != nil {
		return err
	}

	workers := flags.workers
	if workers == 0 {
		workers = s.cfg.Workers
	}
	workers = cv2docx.ResolvePoolSize(workers)
	s.logger.Info().Int("workers", workers).Int("files", len(dataFiles)).Msg("starting generation")

	results := make([]GenerationResult, len(dataFiles))
	var jobs []generateJob
	var jobIndex []int

	for i, path := range dataFiles {
		out := outputPathFor(path, flags.output, s.cfg.Output.DefaultDir, len(dataFiles))
		results[i] = GenerationResult{InputPath: path, OutputPath: out}

		data, err := readData(path, dateFormat)
		if err != nil {
			results[i].Err = err
			continue
		}
		jobs = append(jobs, generateJob{
			inputPath:  path,
			outputPath: out,
			input: cv2docx.GenerateInput{
				Template: src.Template,
				Format:   src.Format,
				Data:     data,
				CSS:      src.CSS,
				Filename: strings.TrimSuffix(filepath.Base(out), filepath.Ext(out)),
			},
		})
		jobIndex = append(jobIndex, i)
	}

	inputs := make([]cv2docx.GenerateInput, len(jobs))
	for i, j := range jobs {
		inputs[i] = j.input
	}

	for k, br := range conv.Batch(ctx, inputs, workers) {
		job := jobs[k]
		r := &results[jobIndex[k]]
		r.Duration = br.Duration
		if br.Err != nil {
			r.Err = br.Err
			continue
		}
		logMisses(s.logger, job.inputPath, br.Result.Misses)
		r.Err = writeGenerated(job.outputPath, br.Result, src.CSS, flags.html, conv)
	}

	failed := printResults(results, flags.common.quiet, flags.common.verbose > 0, env)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d file(s)", ErrConversionFailed, failed, len(results))
	}
	return nil
}

// writeGenerated writes the document and, when withHTML is set, the full
// HTML next to it.
func writeGenerated(path string, res *cv2docx.GenerateResult, css string, withHTML bool, conv *cv2docx.Converter) error {
	if err := writeOutput(path, res.Document.Content); err != nil {
		return err
	}
	if withHTML {
		html := conv.FullHTML(res.HTML, css)
		if err := writeOutput(fileutil.ReplaceExt(path, ".html"), []byte(html)); err != nil {
			return err
		}
	}
	return nil
}

// outputPathFor resolves the document path of one data file.
// Priority: --output (a .docx file when converting a single file, a
// directory otherwise) > config output.defaultDir > next to the data file.
func outputPathFor(input, output, defaultDir string, total int) string {
	if output != "" {
		if total == 1 && strings.EqualFold(filepath.Ext(output), ".docx") {
			return output
		}
		return documentPath(input, output)
	}
	return documentPath(input, defaultDir)
}

// validateWorkers checks that the worker count is within allowed bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0)", ErrInvalidWorkers, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkers, n, config.MaxWorkers)
	}
	return nil
}

// ResultSummary holds the count of successful and failed generations.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults counts successes and failures in generation results.
func countResults(results []GenerationResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs generation results and returns the failure count.
func printResults(results []GenerationResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
