package edgelist

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlmax/core"
)

// Option configures Read.
type Option func(*readOptions)

type readOptions struct {
	mode      Mode
	graphOpts []core.GraphOption
}

// WithMode restricts the accepted line form. Default ModeAuto.
func WithMode(m Mode) Option {
	return func(o *readOptions) { o.mode = m }
}

// WithGraphOptions passes options to core.NewGraph (for example core.WithSimple).
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(o *readOptions) { o.graphOpts = append(o.graphOpts, opts...) }
}

// maxLine bounds a single input line.
const maxLine = 1 << 20

// Read parses an edge list into a new graph. Vertices are interned in
// first-appearance order. In spatial mode every endpoint gets the
// coordinates of its latest occurrence.
//
// Errors:
//   - *MalformedInputError (errors.Is ErrMalformedInput): wrong token count,
//     unparsable identifier or coordinate, or a mix of forms. No partial graph is returned.
//   - graph errors from core (only with core.WithSimple), wrapped with the line number.
//   - read errors from r.
func Read[V cmp.Ordered](r io.Reader, parse IDParser[V], opts ...Option) (*core.Graph[V], error) {
	var o readOptions
	for _, opt := range opts {
		opt(&o)
	}
	g := core.NewGraph[V](o.graphOpts...)
	mode := o.mode

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '%' || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		bad := func(reason string) error {
			return &MalformedInputError{Line: n, Text: line, Reason: reason}
		}

		if mode == ModeAuto {
			switch len(fields) {
			case plainTokens:
				mode = ModePlain
			case spatialTokens:
				mode = ModeSpatial
			default:
				return nil, bad(fmt.Sprintf("want %d or %d fields, got %d", plainTokens, spatialTokens, len(fields)))
			}
		}

		var (
			u, v   V
			pu, pv core.Position
			err    error
		)
		switch mode {
		case ModePlain:
			if len(fields) != plainTokens {
				return nil, bad(fmt.Sprintf("plain edge wants %d fields, got %d", plainTokens, len(fields)))
			}
			if u, err = parse(fields[0]); err != nil {
				return nil, bad("bad vertex id: " + err.Error())
			}
			if v, err = parse(fields[1]); err != nil {
				return nil, bad("bad vertex id: " + err.Error())
			}
		case ModeSpatial:
			if len(fields) != spatialTokens {
				return nil, bad(fmt.Sprintf("spatial edge wants %d fields, got %d", spatialTokens, len(fields)))
			}
			if u, err = parse(fields[0]); err != nil {
				return nil, bad("bad vertex id: " + err.Error())
			}
			if v, err = parse(fields[3]); err != nil {
				return nil, bad("bad vertex id: " + err.Error())
			}
			if pu, err = parsePosition(fields[1], fields[2]); err != nil {
				return nil, bad("bad coordinate: " + err.Error())
			}
			if pv, err = parsePosition(fields[4], fields[5]); err != nil {
				return nil, bad("bad coordinate: " + err.Error())
			}
		default:
			return nil, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
		}

		if err = g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("edgelist: line %d: %w", n, err)
		}
		if mode == ModeSpatial {
			g.SetPosition(u, pu)
			g.SetPosition(v, pv)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}

	return g, nil
}

// ReadFile opens path and calls Read.
func ReadFile[V cmp.Ordered](path string, parse IDParser[V], opts ...Option) (*core.Graph[V], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}
	defer f.Close()

	return Read(f, parse, opts...)
}

func parsePosition(xs, ys string) (core.Position, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return core.Position{}, err
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return core.Position{}, err
	}

	return core.Position{X: x, Y: y}, nil
}
