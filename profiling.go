package main

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"
)

// startCPUProfile profiles the rest of the run into path. The returned stop
// function flushes the profile and reports where it was written.
func startCPUProfile(path string) (stop func(), err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating profile file: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			log.Printf("Closing CPU profile %s: %v", path, err)
			return
		}
		log.Printf("CPU profile written to %s", path)
	}, nil
}
