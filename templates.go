package qrform

import (
	"io/fs"

	"github.com/goliatone/go-qrform/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in vanilla renderer templates so callers
// can copy or extend them and pass the result back through
// vanilla.WithTemplatesFS.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}
