package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/hupe1980/pkmeans"
)

// ErrMalformedInput is returned when the token stream does not describe a
// valid instance.
var ErrMalformedInput = errors.New("malformed input")

// maxTokenSize bounds a single token (names included).
const maxTokenSize = 1 << 20

// Instance is a parsed clustering problem.
type Instance struct {
	K             int
	MaxIterations int
	Dim           int
	HasNames      bool
	// Points are numbered 0..n-1 in input order.
	Points []*pkmeans.Point
}

// Read parses an instance from r.
func Read(r io.Reader) (*Instance, error) {
	s := &scanner{sc: bufio.NewScanner(r)}
	s.sc.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	s.sc.Split(bufio.ScanWords)

	n, err := s.int("point count")
	if err != nil {
		return nil, err
	}
	dim, err := s.int("dimensionality")
	if err != nil {
		return nil, err
	}
	k, err := s.int("k")
	if err != nil {
		return nil, err
	}
	maxIter, err := s.int("max iterations")
	if err != nil {
		return nil, err
	}
	hasNames, err := s.int("name flag")
	if err != nil {
		return nil, err
	}

	switch {
	case n < 0:
		return nil, fmt.Errorf("%w: negative point count %d", ErrMalformedInput, n)
	case dim <= 0:
		return nil, fmt.Errorf("%w: dimensionality must be positive, got %d", ErrMalformedInput, dim)
	case hasNames != 0 && hasNames != 1:
		return nil, fmt.Errorf("%w: name flag must be 0 or 1, got %d", ErrMalformedInput, hasNames)
	}

	inst := &Instance{
		K:             k,
		MaxIterations: maxIter,
		Dim:           dim,
		HasNames:      hasNames == 1,
		Points:        make([]*pkmeans.Point, 0, n),
	}

	coords := make([]float64, dim)
	for i := range n {
		for j := range coords {
			if coords[j], err = s.float(i, j); err != nil {
				return nil, err
			}
		}

		var name string
		if inst.HasNames {
			if name, err = s.token(fmt.Sprintf("name of point %d", i)); err != nil {
				return nil, err
			}
		}
		inst.Points = append(inst.Points, pkmeans.NewPoint(i, coords, name))
	}

	return inst, nil
}

type scanner struct {
	sc *bufio.Scanner
}

func (s *scanner) token(what string) (string, error) {
	if s.sc.Scan() {
		return s.sc.Text(), nil
	}
	if err := s.sc.Err(); err != nil {
		return "", fmt.Errorf("read %s: %w", what, err)
	}
	return "", fmt.Errorf("%w: unexpected end of input reading %s", ErrMalformedInput, what)
}

func (s *scanner) int(what string) (int, error) {
	tok, err := s.token(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not an integer", ErrMalformedInput, what, tok)
	}
	return v, nil
}

func (s *scanner) float(point, dim int) (float64, error) {
	what := fmt.Sprintf("coordinate %d of point %d", dim, point)
	tok, err := s.token(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not a number", ErrMalformedInput, what, tok)
	}
	return v, nil
}
