package sitegen

import (
	"io/fs"

	"github.com/goliatone/go-sitegen/pkg/render"
)

// EmbeddedTemplates exposes the built-in page templates so callers can copy
// and customise them, then pass render.WithTemplatesFS.
func EmbeddedTemplates() fs.FS {
	return render.TemplatesFS()
}

// Templates lists the available pages in display order.
func Templates() []render.Descriptor {
	return render.Catalog()
}
