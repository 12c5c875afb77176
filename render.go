package docsite

import (
	"context"
	"fmt"
	"os"

	"github.com/a-h/templ"
)

// RenderToFile renders a templ component to path, fully replacing any prior
// content. A failure here is fatal to the build: the caller gets the error
// with the destination attached.
func RenderToFile(ctx context.Context, path string, cmp templ.Component) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := cmp.Render(ctx, f); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
