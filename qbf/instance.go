package qbf

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"

	"github.com/katalvlaran/qbftp/matrix"
)

// MaxOrder is the largest instance order ReadInstance accepts. It keeps the
// n×n coefficient matrix under 800 MB.
const MaxOrder = 10000

// ReadInstance parses an instance from r: the order n followed by the
// n·(n+1)/2 upper-triangle coefficients in row-major order. Entries below the
// diagonal are absent from the input and are 0. Trailing tokens after the
// last coefficient are ignored.
//
// Coefficients are collected before the matrix is allocated, so a header
// announcing more entries than the input holds fails with
// ErrTruncatedInstance without reserving n² storage.
//
// Errors: ErrMalformedInstance for non-numeric tokens or n outside
// [1, MaxOrder], ErrTruncatedInstance when the input ends early, or the
// reader's own error.
// Complexity: O(n²).
func ReadInstance(r io.Reader) (*Evaluator, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	next := func(what string) (float64, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("ReadInstance: %s: %w", what, err)
			}
			return 0, fmt.Errorf("ReadInstance: %s: %w", what, ErrTruncatedInstance)
		}
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("ReadInstance: %s: token %q: %w", what, sc.Text(), ErrMalformedInstance)
		}
		return v, nil
	}

	size, err := next("order")
	if err != nil {
		return nil, err
	}
	if size < 1 || size > MaxOrder || size != math.Trunc(size) {
		return nil, fmt.Errorf("ReadInstance: order %v not in [1,%d]: %w", size, MaxOrder, ErrMalformedInstance)
	}
	n := int(size)

	var (
		i, j   int
		v      float64
		coeffs []float64 // upper triangle, row-major; grows with the input
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if v, err = next(fmt.Sprintf("A[%d][%d]", i, j)); err != nil {
				return nil, err
			}
			coeffs = append(coeffs, v)
		}
	}

	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("ReadInstance: %w", err)
	}
	k := 0
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if err = d.Set(i, j, coeffs[k]); err != nil {
				return nil, fmt.Errorf("ReadInstance: %w", err)
			}
			k++
		}
	}

	return newEvaluatorFromDense(d)
}

// LoadInstance opens path and parses it with ReadInstance.
func LoadInstance(path string) (*Evaluator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadInstance: %w", err)
	}
	defer f.Close()

	ev, err := ReadInstance(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("LoadInstance %s: %w", path, err)
	}

	return ev, nil
}

// WriteInstance writes e in the format read by ReadInstance: n on the first
// line, then row i's upper-triangle entries A[i][i..n−1] on line i+2.
func WriteInstance(w io.Writer, e *Evaluator) error {
	if err := e.checkLoaded(); err != nil {
		return fmt.Errorf("WriteInstance: %w", err)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, e.n); err != nil {
		return fmt.Errorf("WriteInstance: %w", err)
	}

	var (
		i, j int
		buf  []byte
	)
	for i = 0; i < e.n; i++ {
		buf = buf[:0]
		for j = i; j < e.n; j++ {
			if j > i {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendFloat(buf, e.rows[i][j], 'g', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("WriteInstance: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteInstance: %w", err)
	}

	return nil
}

// RandomInstance returns an order-n instance whose upper-triangle entries are
// integers drawn uniformly from [lo, hi] using rng.
//
// Errors: matrix.ErrInvalidDimensions for n outside [1, MaxOrder],
// ErrInvalidRange for lo > hi.
func RandomInstance(n, lo, hi int, rng *rand.Rand) (*Evaluator, error) {
	if lo > hi {
		return nil, fmt.Errorf("RandomInstance: [%d,%d]: %w", lo, hi, ErrInvalidRange)
	}
	if n > MaxOrder {
		return nil, fmt.Errorf("RandomInstance: order %d > %d: %w", n, MaxOrder, matrix.ErrInvalidDimensions)
	}
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("RandomInstance: %w", err)
	}

	span := hi - lo + 1
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if err = d.Set(i, j, float64(lo+rng.Intn(span))); err != nil {
				return nil, fmt.Errorf("RandomInstance: %w", err)
			}
		}
	}

	return newEvaluatorFromDense(d)
}
