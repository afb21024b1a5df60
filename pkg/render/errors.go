package render

import (
	"errors"
	"fmt"
)

// ErrUnknownTemplate matches any UnknownTemplateError via errors.Is.
var ErrUnknownTemplate = errors.New("render: unknown template")

// UnknownTemplateError reports a template name outside the fixed set. It is
// the only error the page renderer produces on well formed input.
type UnknownTemplateError struct {
	Name string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("render: unknown template %q", e.Name)
}

// Is lets errors.Is(err, ErrUnknownTemplate) succeed.
func (e *UnknownTemplateError) Is(target error) bool {
	return target == ErrUnknownTemplate
}
