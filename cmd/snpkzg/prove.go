package main

import (
	"encoding/hex"
	"flag"
	"fmt"

	"github.com/snpkzg/snpkzg/curve"
	"github.com/snpkzg/snpkzg/dna"
	"github.com/snpkzg/snpkzg/proof"
)

// runProve opens the polynomial read from a VCF under an rsID filter at
// the given index, printing the claimed value and the opening proof as
// hex, space-separated: "<value> <proof>".
func runProve(args []string) error {
	fs := flag.NewFlagSet("prove", flag.ContinueOnError)
	ppPath := fs.String("pp", "", "path to the public parameters file")
	vcfPath := fs.String("vcf", "", "path to the VCF input (gzip-decoded if it ends in .gz)")
	rsidPath := fs.String("rsid", "", "path to the rsID filter file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *ppPath == "" || *vcfPath == "" || *rsidPath == "" {
		return fmt.Errorf("--pp, --vcf, and --rsid are required")
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected exactly one positional argument: index")
	}
	index, err := parseIndex(fs.Arg(0))
	if err != nil {
		return err
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

	pf, err := proof.Prove(s, p, index)
	if err != nil {
		return fmt.Errorf("proving: %w", err)
	}

	v, present := p.At(index)
	if !present {
		v.SetZero()
	}

	fmt.Printf("%s %s\n", hex.EncodeToString(curve.EncodeScalar(v)), hex.EncodeToString(pf.Bytes()))
	return nil
}
