package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	cv2docx "github.com/alnah/go-cv2docx"
)

// Table styles, used only when stdout is a terminal.
var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1F4E79", Dark: "#7FB2E5"})
	kindStyle   = lipgloss.NewStyle().Faint(true)
	loopStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.AdaptiveColor{Light: "#8A5A00", Dark: "#E5C07B"})
)

// runVars lists the variables of a data file, or those a template uses.
func runVars(args []string, env *Environment) error {
	flags, positional, err := parseVarsFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}

	if flags.template != "" {
		content, err := os.ReadFile(flags.template) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: %w", ErrReadTemplate, err)
		}
		names, err := cv2docx.TemplateVariables(string(content))
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Fprintln(env.Stdout, n)
		}
		return nil
	}

	if len(positional) != 1 {
		return fmt.Errorf("%w: exactly one data file", ErrMissingArgument)
	}
	data, err := readData(positional[0], "")
	if err != nil {
		return err
	}

	printVariables(env.Stdout, cv2docx.Variables(data), env.StdoutTTY)
	return nil
}

// printVariables writes the catalog as an aligned table: path, kind and the
// loops reaching the value.
func printVariables(w io.Writer, vars []cv2docx.Variable, styled bool) {
	render := func(st lipgloss.Style, s string) string {
		if !styled {
			return s
		}
		return st.Render(s)
	}

	pathWidth, kindWidth := len("PATH"), len("KIND")
	for _, v := range vars {
		pathWidth = max(pathWidth, lipgloss.Width(v.Path))
		kindWidth = max(kindWidth, len(v.Kind))
	}

	header := fmt.Sprintf("%-*s  %-*s  %s", pathWidth, "PATH", kindWidth, "KIND", "LOOPS")
	fmt.Fprintln(w, render(headerStyle, header))

	for _, v := range vars {
		path := fmt.Sprintf("%-*s", pathWidth, v.Path)
		kind := fmt.Sprintf("%-*s", kindWidth, v.Kind)
		line := render(pathStyle, path) + "  " + render(kindStyle, kind)
		if len(v.Loop) > 0 {
			line += "  " + render(loopStyle, strings.Join(v.Loop, " > "))
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}
