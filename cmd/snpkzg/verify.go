package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"

	"github.com/snpkzg/snpkzg/commitment"
	"github.com/snpkzg/snpkzg/curve"
	"github.com/snpkzg/snpkzg/proof"
)

// runVerify checks an opening proof against a commitment. Positional
// arguments are index, hash (the commitment, hex), proof (hex), and value
// (hex). Prints "accept" or "reject" and returns an error for reject so
// the process exit code reflects the verdict.
func runVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	ppPath := fs.String("pp", "", "path to the public parameters file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *ppPath == "" {
		return fmt.Errorf("--pp is required")
	}
	if fs.NArg() != 4 {
		return fmt.Errorf("expected exactly four positional arguments: index hash proof value")
	}

	index, err := parseIndex(fs.Arg(0))
	if err != nil {
		return err
	}
	hashBytes, err := hex.DecodeString(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("invalid hash hex: %w", err)
	}
	proofBytes, err := hex.DecodeString(fs.Arg(2))
	if err != nil {
		return fmt.Errorf("invalid proof hex: %w", err)
	}
	valueBytes, err := hex.DecodeString(fs.Arg(3))
	if err != nil {
		return fmt.Errorf("invalid value hex: %w", err)
	}

	s, err := loadSRS(*ppPath)
	if err != nil {
		return err
	}
	c, err := commitment.FromBytes(hashBytes)
	if err != nil {
		return err
	}
	pf, err := proof.FromBytes(proofBytes)
	if err != nil {
		return err
	}
	v, err := curve.DecodeScalar(valueBytes)
	if err != nil {
		return err
	}

	if err := proof.Verify(s, c, index, v, pf); err != nil {
		if errors.Is(err, proof.ErrVerifyReject) {
			fmt.Println("reject")
			return err
		}
		return err
	}

	fmt.Println("accept")
	return nil
}
