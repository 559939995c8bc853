package main

import (
	"fmt"

	cv2docx "github.com/alnah/go-cv2docx"
)

// runSnippet prints the template text inserting one variable of a data file.
func runSnippet(args []string, env *Environment) error {
	_, positional, err := parseSnippetFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	if len(positional) != 2 {
		return fmt.Errorf("%w: a data file and a variable path", ErrMissingArgument)
	}

	data, err := readData(positional[0], "")
	if err != nil {
		return err
	}
	snippet, err := cv2docx.Snippet(data, positional[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Stdout, snippet)
	return nil
}
