// The pool package reads and writes barcode pool files. A pool file
// has one line per sequence:
//
//	<sequence> <index>
//
// followed by a trailing integrity line:
//
//	#crc64 <16 hex digits>
//
// holding the CRC64-ISO checksum of everything before it. Files with a
// .gz suffix are written gzip compressed; reading sniffs the
// compression regardless of the name.
package pool

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/snksoft/crc"

	"freebarcodes/seqs"
)

const crcPrefix = "#crc64 "

// Writes the pool to the specified file
func Write(fname string, ols []string) (err error) {
	var buf bytes.Buffer

	for i, ol := range ols {
		if !seqs.Valid(ol) {
			return fmt.Errorf("invalid sequence %d: %s", i, ol)
		}

		fmt.Fprintf(&buf, "%s %d\n", ol, i)
	}

	sum := crc.CalculateCRC(crc.CRC64ISO, buf.Bytes())

	f, err := os.Create(fname)
	if err != nil {
		return
	}
	defer f.Close()

	var w io.Writer = f
	var zw *gzip.Writer
	if strings.HasSuffix(fname, ".gz") {
		zw = gzip.NewWriter(f)
		w = zw
	}

	if _, err = w.Write(buf.Bytes()); err != nil {
		return
	}

	if _, err = fmt.Fprintf(w, "%s%016x\n", crcPrefix, sum); err != nil {
		return
	}

	if zw != nil {
		err = zw.Close()
	}

	return
}

// Reads a pool file, verifying the sequences and, if present, the
// trailing checksum
func Read(fname string) (ols []string, err error) {
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

	var payload bytes.Buffer
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, crcPrefix) {
			var sum uint64

			sum, err = strconv.ParseUint(line[len(crcPrefix):], 16, 64)
			if err != nil {
				err = fmt.Errorf("invalid checksum line: %s", line)
				return nil, err
			}

			if got := crc.CalculateCRC(crc.CRC64ISO, payload.Bytes()); got != sum {
				return nil, fmt.Errorf("checksum mismatch: %016x expected %016x", got, sum)
			}

			continue
		}

		n++
		payload.WriteString(line)
		payload.WriteByte('\n')

		ls := strings.Split(line, " ")
		if len(ls) < 2 {
			return nil, fmt.Errorf("%d: invalid line: %s", n, line)
		}

		if !seqs.Valid(ls[0]) {
			return nil, fmt.Errorf("%d: invalid sequence: %s", n, ls[0])
		}

		idx, e := strconv.ParseUint(ls[1], 10, 32)
		if e != nil {
			return nil, fmt.Errorf("%d: invalid index: %v: %v", n, ls[1], e)
		}

		if int(idx) != len(ols) {
			return nil, fmt.Errorf("%d: index out of order: %d", n, idx)
		}

		ols = append(ols, ls[0])
	}

	err = sc.Err()
	return
}
