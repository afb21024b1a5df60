package sitefile

import (
	"fmt"
	"strings"
)

// Issue is one failed check. Field is a dotted path ("social.facebook") and
// is empty for document level problems.
type Issue struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.Field == "" {
		return i.Message
	}
	return i.Field + ": " + i.Message
}

// Error collects every issue found in a definition.
type Error struct {
	Location string
	Issues   []Issue
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}
	prefix := "sitefile: invalid definition"
	if e.Location != "" {
		prefix = fmt.Sprintf("sitefile: invalid definition %s", e.Location)
	}
	return prefix + ": " + strings.Join(parts, "; ")
}

// HasField reports whether any issue targets field.
func (e *Error) HasField(field string) bool {
	for _, issue := range e.Issues {
		if issue.Field == field {
			return true
		}
	}
	return false
}
