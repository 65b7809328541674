// Package dbscanio parses whitespace-separated point data files for
// the approximate DBSCAN engine, following the preflight-then-read
// convention of the original Rust implementation's data_io module:
// a first pass over the file determines dimensionality and point
// count, a second pass reads the actual coordinates.
package dbscanio

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// Preflight scans a point file and reports its dimensionality (token
// count on the first non-blank line) and cardinality (number of
// non-blank lines). It does not validate later lines against the
// first line's token count; that is Read's job, one line at a time.
func Preflight(path string) (dim int, cardinality int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("dbscanio: opening %q: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	seenFirst := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !seenFirst {
			dim = len(strings.Fields(line))
			seenFirst = true
		}
		cardinality++
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, fmt.Errorf("dbscanio: scanning %q: %w", path, err)
	}
	return dim, cardinality, nil
}

// Read parses a point file into dim-length coordinate rows. Blank
// lines are skipped. A line with fewer than dim tokens is zero-filled
// for the remaining coordinates; a line with more than dim tokens has
// its excess tokens ignored. A non-numeric token is replaced with zero.
// Each of these conditions emits one diagnostic via log.Printf
// and parsing continues rather than aborting the whole file.
func Read(path string, dim int) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dbscanio: opening %q: %w", path, err)
	}
	defer f.Close()

	var points [][]float64
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tokens := strings.Fields(line)
		if len(tokens) > dim {
			log.Printf("dbscanio: %s:%d: line has %d tokens, expected %d; ignoring excess", path, lineNo, len(tokens), dim)
			tokens = tokens[:dim]
		}
		point := make([]float64, dim)
		for i, tok := range tokens {
			v, perr := strconv.ParseFloat(tok, 64)
			if perr != nil {
				log.Printf("dbscanio: %s:%d: token %q is not numeric; using 0", path, lineNo, tok)
				v = 0
			}
			point[i] = v
		}
		if len(tokens) < dim {
			log.Printf("dbscanio: %s:%d: line has %d tokens, expected %d; zero-filling the rest", path, lineNo, len(tokens), dim)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dbscanio: scanning %q: %w", path, err)
	}
	return points, nil
}
