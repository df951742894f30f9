package main

import "flag"

// Command-line flags. Only the two size flags change the picture; the rest
// control how it is computed.
var (
	// widthFlag and heightFlag set the output dimensions in pixels.
	widthFlag  = flag.Int("width", defaultWidth, "output image width in pixels")
	heightFlag = flag.Int("height", defaultHeight, "output image height in pixels")

	// workersFlag sets the number of goroutines used for the aurora fill.
	workersFlag = flag.Int("workers", defaultWorkerCount(), "goroutines used for the aurora fill pass")

	// openCLFlag runs the fill pass on an OpenCL device when built with -tags opencl.
	openCLFlag = flag.Bool("opencl", false, "compute the aurora fill on an OpenCL device (requires -tags opencl)")

	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile of the run to this file")
)
