package sitegen

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-sitegen/pkg/sitefile"
)

// LoadDefinition reads a site definition from disk.
func LoadDefinition(ctx context.Context, path string) (sitefile.Definition, error) {
	return sitefile.Load(ctx, sitefile.SourceFromFile(path))
}

// LoadDefinitionFS reads a site definition from files.
func LoadDefinitionFS(ctx context.Context, files fs.FS, name string) (sitefile.Definition, error) {
	return sitefile.Load(ctx, sitefile.SourceFromFS(files, name))
}
