// Package textsource provides statement text providers for the pipeline.
package textsource

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// FileProvider reads statement text from plain-text files. Form-feed
// characters separate pages, matching how text dumps of multi-page
// statements are usually produced.
type FileProvider struct{}

// PageTexts reads the file at path and splits it into pages.
func (FileProvider) PageTexts(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading statement file: %w", err)
	}
	return strings.Split(string(data), "\f"), nil
}
