package main

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/google/renameio/v2"
)

// saveJPEG encodes img into a pending file next to path and atomically
// replaces path once the encoder has finished. A failed encode leaves path
// untouched.
func saveJPEG(path string, img image.Image, quality int) error {
	pf, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("creating pending file for %s: %w", path, err)
	}
	defer pf.Cleanup()

	if err := imgio.JPEGEncoder(quality)(pf, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
