// Enumerates sequence variants of a reference sequence and prints
// them, one per line, in lexicographic order.
package main

import (
	"flag"
	"fmt"
	"os"

	"freebarcodes/seqs"
	"freebarcodes/variants"
)

var mode = flag.String("mode", "mm", "variant mode (del, ins, cins, mm, comp, rand, pam, region, bundles)")
var num = flag.Int("n", 1, "number of edits")
var width = flag.Int("w", 3, "stretch width (comp, rand)")
var inslen = flag.Int("inslen", 1, "insertion block length (cins)")
var start = flag.Int("start", 0, "region start (region)")
var end = flag.Int("end", 0, "region end (region)")
var pamlen = flag.Int("pam", 3, "PAM length (pam)")
var randlen = flag.Int("rand", 4, "randomized length (pam)")
var p3 = flag.Bool("3p", false, "randomize the 3' end instead of the 5' end (pam)")

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: genvar [options] <sequence>\n")
		flag.PrintDefaults()
		os.Exit(2)
	}

	seq := flag.Arg(0)
	if !seqs.Valid(seq) {
		fmt.Fprintf(os.Stderr, "Error: invalid sequence: %s\n", seq)
		os.Exit(1)
	}

	var out variants.Set
	var err error

	switch *mode {
	default:
		err = fmt.Errorf("invalid mode: %s", *mode)

	case "del":
		out, err = variants.Deletions(seq, *num)

	case "ins":
		out, err = variants.Insertions(seq, *num)

	case "cins":
		out, err = variants.ContiguousInsertions(seq, *inslen)

	case "mm":
		if *end > *start {
			out, err = variants.MismatchesInRegion(seq, *start, *end, *num)
		} else {
			out, err = variants.Mismatches(seq, *num)
		}

	case "comp":
		out, err = variants.StretchComplements(seq, *width)

	case "rand":
		out, err = variants.RandomizedStretches(seq, *width)

	case "pam":
		e := variants.End5p
		if *p3 {
			e = variants.End3p
		}
		out, err = variants.RandomizedPAM(seq, *pamlen, *randlen, e)

	case "region":
		out, err = variants.RandomizedRegion(seq, *start, *end)

	case "bundles":
		out = variants.ComplementBundles(seq)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, v := range out.Sorted() {
		fmt.Println(v)
	}
}
