package main

import (
	"errors"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose int
}

// assetFlags holds flags locating templates and images.
type assetFlags struct {
	assetRoot   string // directory "/..." image sources resolve under
	templateDir string // directory of custom template sets
}

// templateFlags holds flags selecting the template and its stylesheet.
type templateFlags struct {
	template   string // template file path or template set name
	format     string // html or markdown, overrides the file extension
	css        string // stylesheet file, overrides the set stylesheet
	noStyle    bool   // ignore every stylesheet
	dateFormat string // date format for data values, overrides the config
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common commonFlags
	assets assetFlags
	tmpl   templateFlags
	data   string
	output string
	full   bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common commonFlags
	assets assetFlags
	css    string
	output string
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common  commonFlags
	assets  assetFlags
	tmpl    templateFlags
	output  string
	workers int
	html    bool // also write the rendered HTML next to each document
}

// varsFlags holds all flags for the vars command.
type varsFlags struct {
	common   commonFlags
	template string // list the variables of a template instead of a data file
}

// sampleFlags holds all flags for the sample command.
type sampleFlags struct {
	common commonFlags
	set    string
	output string
	force  bool
	list   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.CountVarP(&f.verbose, "verbose", "v", "show progress (-vv for debug details)")
}

// addAssetFlags adds asset location flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.assetRoot, "asset-root", "", "directory image sources starting with / resolve under")
	fs.StringVar(&f.templateDir, "template-dir", "", "directory of custom template sets")
}

// addTemplateFlags adds template selection flags to a FlagSet.
func addTemplateFlags(fs *flag.FlagSet, f *templateFlags) {
	fs.StringVarP(&f.template, "template", "t", "", "template file or template set name")
	fs.StringVarP(&f.format, "format", "f", "", "template format: html, markdown")
	fs.StringVar(&f.css, "css", "", "stylesheet file")
	fs.BoolVar(&f.noStyle, "no-style", false, "ignore stylesheets")
	fs.StringVar(&f.dateFormat, "date-format", "", "date format for data values (preset or tokens like \"MMM YYYY\")")
}

// newFlagSet creates a FlagSet that reports errors and usage to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseFlagSet parses args and prints usage on a parse error. pflag only
// prints it for --help when errors are handled by the caller.
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		fs.Usage()
	}
	return err
}

// renderFlagSet registers the render command flags.
func renderFlagSet(w io.Writer) (*renderFlags, *flag.FlagSet) {
	f := &renderFlags{}
	fs := newFlagSet("render", w, printRenderUsage)

	fs.StringVarP(&f.data, "data", "d", "", "data file (.json, .yaml, .yml, .toml)")
	fs.StringVarP(&f.output, "output", "o", "", "output HTML file (default: stdout)")
	fs.BoolVar(&f.full, "full", false, "wrap the fragment in a complete HTML document")
	addTemplateFlags(fs, &f.tmpl)
	addAssetFlags(fs, &f.assets)
	addCommonFlags(fs, &f.common)
	return f, fs
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, w io.Writer) (*renderFlags, []string, error) {
	f, fs := renderFlagSet(w)
	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func convertFlagSet(w io.Writer) (*convertFlags, *flag.FlagSet) {
	f := &convertFlags{}
	fs := newFlagSet("convert", w, printConvertUsage)

	fs.StringVarP(&f.output, "output", "o", "", "output file")
	fs.StringVar(&f.css, "css", "", "stylesheet file")
	addAssetFlags(fs, &f.assets)
	addCommonFlags(fs, &f.common)
	return f, fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	f, fs := convertFlagSet(w)
	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func generateFlagSet(w io.Writer) (*generateFlags, *flag.FlagSet) {
	f := &generateFlags{}
	fs := newFlagSet("generate", w, printGenerateUsage)

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.html, "html", false, "also write the rendered HTML")
	addTemplateFlags(fs, &f.tmpl)
	addAssetFlags(fs, &f.assets)
	addCommonFlags(fs, &f.common)
	return f, fs
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string, w io.Writer) (*generateFlags, []string, error) {
	f, fs := generateFlagSet(w)
	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func varsFlagSet(w io.Writer) (*varsFlags, *flag.FlagSet) {
	f := &varsFlags{}
	fs := newFlagSet("vars", w, printVarsUsage)

	fs.StringVarP(&f.template, "template", "t", "", "list the variables a template file references")
	addCommonFlags(fs, &f.common)
	return f, fs
}

// parseVarsFlags parses vars command flags and returns positional args.
func parseVarsFlags(args []string, w io.Writer) (*varsFlags, []string, error) {
	f, fs := varsFlagSet(w)
	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func snippetFlagSet(w io.Writer) (*commonFlags, *flag.FlagSet) {
	f := &commonFlags{}
	fs := newFlagSet("snippet", w, printSnippetUsage)
	addCommonFlags(fs, f)
	return f, fs
}

// parseSnippetFlags parses snippet command flags and returns positional args.
func parseSnippetFlags(args []string, w io.Writer) (*commonFlags, []string, error) {
	f, fs := snippetFlagSet(w)
	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func sampleFlagSet(w io.Writer) (*sampleFlags, *flag.FlagSet) {
	f := &sampleFlags{}
	fs := newFlagSet("sample", w, printSampleUsage)

	fs.StringVarP(&f.set, "set", "s", "", "template set to copy (default: default)")
	fs.StringVarP(&f.output, "output", "o", ".", "output directory")
	fs.BoolVar(&f.force, "force", false, "overwrite existing files")
	fs.BoolVarP(&f.list, "list", "l", false, "list the built-in template sets")
	addCommonFlags(fs, &f.common)
	return f, fs
}

// parseSampleFlags parses sample command flags and returns positional args.
func parseSampleFlags(args []string, w io.Writer) (*sampleFlags, []string, error) {
	f, fs := sampleFlagSet(w)
	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
