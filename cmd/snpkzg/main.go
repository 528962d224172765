// Command snpkzg is the command-line driver for the genomic variant
// commitment engine: generating public parameters, committing to a VCF
// profile under an rsID filter, proving a single rsID's value, and
// verifying that proof.
//
// Usage:
//
//	snpkzg init -D degree -d out
//	snpkzg hash --pp pp.bin --vcf sample.vcf --rsid filter.txt
//	snpkzg prove --pp pp.bin --vcf sample.vcf --rsid filter.txt <index>
//	snpkzg verify --pp pp.bin <index> <hash> <proof> <value>
package main

import (
	"fmt"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the actual entry point, returning a process exit code. It takes
// CLI arguments without the program name so it can be tested in
// isolation.
func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: snpkzg <init|hash|prove|verify> [flags]")
		return 2
	}

	cmd, rest := args[0], args[1:]
	var err error
	switch cmd {
	case "init":
		err = runInit(rest)
	case "hash":
		err = runHash(rest)
	case "prove":
		err = runProve(rest)
	case "verify":
		err = runVerify(rest)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		return 2
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "snpkzg %s: %v\n", cmd, err)
		return 1
	}
	return 0
}
