package render

import (
	"context"

	"github.com/goliatone/go-qrform/pkg/generator"
)

// Renderer presents a generator's form through some medium (prompts, a
// full-screen terminal form, HTML) and returns the bytes it produced: the
// payload text for interactive renderers, markup for static ones.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, gen generator.Generator, options RenderOptions) ([]byte, error)
}
