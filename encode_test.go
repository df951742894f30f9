package main

import (
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveJPEG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, outputFile)
	a, err := generate(64, 32, synthOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if err := saveJPEG(path, a.img, jpegQuality); err != nil {
		t.Fatalf("saveJPEG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := jpeg.Decode(f)
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 64, 32) {
		t.Fatalf("decoded bounds = %v", img.Bounds())
	}
	if _, ok := img.(*image.YCbCr); !ok {
		t.Fatalf("decoded image is %T, want 3-channel *image.YCbCr", img)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("directory holds %d entries, want only the output file", len(entries))
	}
}

func TestSaveJPEGFailedEncodeKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, outputFile)
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	// image/jpeg refuses dimensions of 1<<16 and above
	tooWide := image.NewRGBA(image.Rect(0, 0, 1<<16, 1))
	if err := saveJPEG(path, tooWide, jpegQuality); err == nil {
		t.Fatal("expected encode error")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "old" {
		t.Fatalf("destination was modified: %q", data)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("pending file left behind: %d entries", len(entries))
	}
}

func TestSaveJPEGMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", outputFile)
	if err := saveJPEG(path, newCanvas(4, 4), jpegQuality); err == nil {
		t.Fatal("expected error for missing directory")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("stat output: %v, want not exist", err)
	}
}
