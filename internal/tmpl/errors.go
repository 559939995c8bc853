package tmpl

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed templates.
var (
	ErrUnclosedEach  = errors.New("{{#each}} without matching {{/each}}")
	ErrUnexpectedEnd = errors.New("{{/each}} without matching {{#each}}")
	ErrEmptyEachPath = errors.New("{{#each}} requires a path")
)

// ParseError reports where a template is malformed.
type ParseError struct {
	Pos Pos
	Tag string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s: %v", e.Pos.Line, e.Pos.Col, e.Tag, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
