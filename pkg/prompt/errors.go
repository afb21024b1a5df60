package prompt

import "errors"

// ErrAborted signals the user aborted input (Ctrl+C or declining the final
// confirmation).
var ErrAborted = errors.New("prompt: aborted")
