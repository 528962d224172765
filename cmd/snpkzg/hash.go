package main

import (
	"encoding/hex"
	"flag"
	"fmt"

	"github.com/snpkzg/snpkzg/commitment"
	"github.com/snpkzg/snpkzg/dna"
)

// runHash commits to the polynomial read from a VCF under an rsID filter,
// printing the commitment's hex encoding.
func runHash(args []string) error {
	fs := flag.NewFlagSet("hash", flag.ContinueOnError)
	ppPath := fs.String("pp", "", "path to the public parameters file")
	vcfPath := fs.String("vcf", "", "path to the VCF input (gzip-decoded if it ends in .gz)")
	rsidPath := fs.String("rsid", "", "path to the rsID filter file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *ppPath == "" || *vcfPath == "" || *rsidPath == "" {
		return fmt.Errorf("--pp, --vcf, and --rsid are required")
	}

	s, err := loadSRS(*ppPath)
	if err != nil {
		return err
	}
	filter, err := loadFilter(*rsidPath)
	if err != nil {
		return err
	}
	p, err := dna.ProfileFromVCFFile(*vcfPath, filter)
	if err != nil {
		return err
	}

	c, err := commitment.Commit(s, p)
	if err != nil {
		return fmt.Errorf("committing: %w", err)
	}

	fmt.Println(hex.EncodeToString(c.Bytes()))
	return nil
}
