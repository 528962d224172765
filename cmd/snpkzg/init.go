package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"os"

	"github.com/snpkzg/snpkzg/srs"
)

// runInit generates a fresh structured reference string of the requested
// degree and writes it to the destination path.
func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	degree := fs.Uint("D", 12, "log2 of the number of G1 powers to generate")
	dest := fs.String("d", "pp.bin", "destination path for the public parameters")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := srs.Setup(rand.Reader, *degree)
	if err != nil {
		return fmt.Errorf("generating parameters: %w", err)
	}

	tmp := *dest + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating %s: %w", tmp, err)
	}
	if _, err := s.WriteTo(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, *dest); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming %s to %s: %w", tmp, *dest, err)
	}

	fmt.Printf("wrote degree-%d public parameters to %s\n", *degree, *dest)
	return nil
}
