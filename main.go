package main

import (
	"flag"
	"fmt"
	"log"
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("Aurora generation failed: %v", err)
	}
}

// run generates the aurora background and writes it to outputFile.
func run() error {
	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			return fmt.Errorf("starting CPU profile: %w", err)
		}
		defer stop()
	}

	fmt.Println("Generating aurora background image...")
	a, err := generate(*widthFlag, *heightFlag, synthOptions{
		workers:   *workersFlag,
		useOpenCL: *openCLFlag,
	})
	if err != nil {
		return err
	}
	if err := saveJPEG(outputFile, a.img, jpegQuality); err != nil {
		return err
	}
	fmt.Printf("✓ Generated %s\n", outputFile)
	return nil
}
