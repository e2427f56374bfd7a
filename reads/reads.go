// The reads package reads line-oriented read-name records and groups
// read names by the sequences they were observed with. Each line of a
// record file is a sequence followed by whitespace-separated read
// names:
//
//	<sequence> <read name> <read name> ...
//
// Files may be gzip compressed.
package reads

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"freebarcodes/seqs"
)

// SeqFilter decides whether a sequence from a record file is worth
// collecting.
type SeqFilter func(seq string) bool

// Parses a read-names-by-sequence file, calling process once per
// non-empty line with the sequence and its read names.
func Parse(fname string, process func(seq string, names []string)) (err error) {
	var r io.Reader

	f, e := os.Open(fname)
	if e != nil {
		err = e
		return
	}
	defer f.Close()

	if cf, err := gzip.NewReader(f); err == nil {
		r = cf
	} else {
		r = f
		f.Seek(0, 0)
	}

	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		words := strings.Fields(sc.Text())
		if len(words) == 0 {
			continue
		}

		process(words[0], words[1:])
	}

	return sc.Err()
}

// Collects the read names of interesting sequences from a record file.
//
// For every line whose sequence passes the interesting filter, the read
// names present in the allowed set are recorded under that sequence.
// Additionally the sequence is scanned for its nearest len(target)-wide
// window; if the window's Hamming distance to the target is at most
// maxham, the same read names are also recorded under the window
// sequence itself.
//
// When verbose is set, a progress dot is written to stderr every 10000
// lines.
func BuildReadNames(target, fname string, allowed map[string]bool, interesting SeqFilter, maxham int, verbose bool) (map[string]map[string]bool, error) {
	ret := make(map[string]map[string]bool)
	record := func(seq string, names []string) {
		rn := ret[seq]
		if rn == nil {
			rn = make(map[string]bool)
			ret[seq] = rn
		}

		for _, nm := range names {
			rn[nm] = true
		}
	}

	n := 0
	err := Parse(fname, func(seq string, names []string) {
		n++
		if verbose && n%10000 == 0 {
			fmt.Fprintf(os.Stderr, ".")
		}

		if !interesting(seq) {
			return
		}

		var keep []string
		for _, nm := range names {
			if allowed[nm] {
				keep = append(keep, nm)
			}
		}

		record(seq, keep)

		pos, window, dist := seqs.NearestWindow(target, seq)
		if pos < 0 {
			// read too short to contain the target
			return
		}

		if dist <= maxham {
			record(window, keep)
		}
	})

	if err != nil {
		return nil, err
	}

	return ret, nil
}
