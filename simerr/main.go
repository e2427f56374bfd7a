// Simulates sequencing errors over a pool of sequences and reports the
// distribution of observed edit distances.
//
// The pool is either read from a file (see the pool package) or
// generated at random. Each round injects a fixed budget of mixed
// errors into every sequence and records the Levenshtein distance
// between the original and the mutated read.
package main

import (
	"flag"
	"fmt"
	"os"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"freebarcodes/errgen"
	"freebarcodes/pool"
	"freebarcodes/seqs"
)

var poolfile = flag.String("pool", "", "pool file to read (empty: generate a random pool)")
var olen = flag.Int("olen", 24, "oligo length for the generated pool")
var onum = flag.Int("onum", 100, "number of oligos in the generated pool")
var nerr = flag.Int("nerr", 2, "error budget per read")
var iternum = flag.Int("iternum", 100, "number of rounds over the pool")
var seed = flag.Int64("s", 0, "random generator seed")
var plotfile = flag.String("plot", "", "write an edit-distance histogram PNG to this file")

func main() {
	flag.Parse()

	gen := errgen.New(*seed)

	var ols []string
	if *poolfile != "" {
		var err error

		ols, err = pool.Read(*poolfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		for i := 0; i < *onum; i++ {
			ols = append(ols, gen.Random(*olen))
		}
	}

	if len(ols) == 0 {
		fmt.Fprintf(os.Stderr, "Error: empty pool\n")
		os.Exit(1)
	}

	dists := make([]float64, 0, len(ols)*(*iternum))
	for it := 0; it < *iternum; it++ {
		for _, ol := range ols {
			r, err := gen.FreeEdit(ol, *nerr)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}

			dists = append(dists, float64(seqs.Distance(ol, r)))
		}
	}

	mean, std := stat.MeanStdDev(dists, nil)
	fmt.Printf("reads %d budget %d mean %.3f stddev %.3f\n", len(dists), *nerr, mean, std)

	if *plotfile != "" {
		if err := plotHist(dists, *plotfile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func plotHist(dists []float64, fname string) error {
	p := plot.New()
	p.Title.Text = "Simulated read errors"
	p.X.Label.Text = "edit distance"
	p.Y.Label.Text = "reads"

	h, err := plotter.NewHist(plotter.Values(dists), 16)
	if err != nil {
		return err
	}

	p.Add(h)
	return p.Save(6*vg.Inch, 4*vg.Inch, fname)
}
