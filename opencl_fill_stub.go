//go:build !opencl

package main

import (
	"errors"
	"image"
)

func fillAuroraOpenCL(_ *image.RGBA) error {
	return errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}
