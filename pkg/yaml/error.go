package yaml

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/printer"
	"github.com/goccy/go-yaml/token"
)

func NewPathBuilder() *yaml.PathBuilder {
	return &yaml.PathBuilder{}
}

// Error is a decoding or validation error, located either by the token where
// it occurred or by a path into the document.
type Error struct {
	Err    error
	Path   *yaml.Path
	Token  *token.Token
	Source []byte
}

// WithSource attaches the document source to err if it is an [*Error], so
// that its message includes the surrounding lines. Other errors are returned
// unchanged.
func WithSource(err error, source []byte) error {
	var yamlErr *Error
	if errors.As(err, &yamlErr) {
		yamlErr.Source = source
	}

	return err
}

func (e *Error) Error() string {
	if e.Err == nil {
		return ""
	}

	switch {
	case e.Token != nil:
		var pp printer.Printer

		return fmt.Sprintf("[%d:%d] %v\n%s", e.Token.Position.Line, e.Token.Position.Column,
			e.Err, pp.PrintErrorToken(e.Token, false))

	case e.Path != nil && len(e.Source) > 0:
		src, err := e.Path.AnnotateSource(e.Source, false)
		if err == nil {
			return fmt.Sprintf("error at %s: %v\n%s", e.Path, e.Err, strings.TrimRight(string(src), "\n"))
		}

		fallthrough

	case e.Path != nil:
		return fmt.Sprintf("error at %s: %v", e.Path, e.Err)
	}

	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
