package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2docx <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render a template against a data file to HTML")
	fmt.Fprintln(w, "  convert    Convert an HTML file to a .docx document")
	fmt.Fprintln(w, "  generate   Render and convert one document per data file")
	fmt.Fprintln(w, "  vars       List the variables of a data file or template")
	fmt.Fprintln(w, "  snippet    Print the template text inserting a variable")
	fmt.Fprintln(w, "  sample     Write a starter template set and sample data")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'cv2docx help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags every command accepts.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show progress (-vv for debug details)")
}

func printTemplateUsage(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Template:")
	fmt.Fprintln(w, "  -t, --template <s>        Template file or set name (default: \"default\")")
	fmt.Fprintln(w, "  -f, --format <s>          Template format: html, markdown")
	fmt.Fprintln(w, "      --css <path>          Stylesheet file (replaces the set stylesheet)")
	fmt.Fprintln(w, "      --no-style            Ignore stylesheets")
	fmt.Fprintln(w, "      --date-format <s>     Date format: iso, european, us, long, month, short,")
	fmt.Fprintln(w, "                            or tokens like \"MMM YYYY\"")
}

func printAssetUsage(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --asset-root <dir>    Directory image sources starting with / resolve under")
	fmt.Fprintln(w, "      --template-dir <dir>  Directory of custom template sets")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2docx render [flags] <data>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a template against a data file and print the HTML.")
	fmt.Fprintln(w, "Unresolved placeholders are kept and reported as warnings.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -d, --data <path>         Data file: .json, .yaml, .yml, .toml")
	fmt.Fprintln(w, "  -o, --output <path>       Output HTML file (default: stdout)")
	fmt.Fprintln(w, "      --full                Wrap the result in a complete HTML document")
	printTemplateUsage(w)
	printAssetUsage(w)
	printCommonUsage(w)
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2docx convert [flags] <input.html>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert rendered HTML to a .docx document.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: input name with .docx)")
	fmt.Fprintln(w, "      --css <path>          Stylesheet file")
	printAssetUsage(w)
	printCommonUsage(w)
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2docx generate [flags] <data>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a template against each data file and write one document per file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output directory, or .docx file for a single input")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --html                Also write the rendered HTML")
	printTemplateUsage(w)
	printAssetUsage(w)
	printCommonUsage(w)
}

// printVarsUsage prints usage for the vars command.
func printVarsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2docx vars [flags] <data>")
	fmt.Fprintln(w, "       cv2docx vars --template <file>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List every variable of a data file with its kind and the loops reaching it,")
	fmt.Fprintln(w, "or the variables a template references.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -t, --template <path>     Template file to inspect")
	printCommonUsage(w)
}

// printSnippetUsage prints usage for the snippet command.
func printSnippetUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2docx snippet <data> <path>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the template text inserting the variable at path, wrapped in the")
	fmt.Fprintln(w, "loops that reach it. Example: cv2docx snippet cv.yaml 'projects[0].title'")
	printCommonUsage(w)
}

// printSampleUsage prints usage for the sample command.
func printSampleUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2docx sample [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write a template set, its stylesheet and sample data files to a directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -s, --set <name>          Template set (default: \"default\")")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: .)")
	fmt.Fprintln(w, "      --force               Overwrite existing files")
	fmt.Fprintln(w, "  -l, --list                List the built-in template sets")
	printCommonUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "convert":
		printConvertUsage(env.Stdout)
	case "generate":
		printGenerateUsage(env.Stdout)
	case "vars":
		printVarsUsage(env.Stdout)
	case "snippet":
		printSnippetUsage(env.Stdout)
	case "sample":
		printSampleUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: cv2docx version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: cv2docx help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
