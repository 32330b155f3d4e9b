package edgelist

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/lvlmax/core"
)

// Write emits every edge of g once, in insertion order. A spatial graph is
// written in the spatial form, any other graph in the plain form.
// Coordinates use the shortest representation that round-trips.
func Write[V cmp.Ordered](w io.Writer, g *core.Graph[V]) error {
	bw := bufio.NewWriter(w)
	spatial := g.Spatial()
	for _, e := range g.Edges() {
		var err error
		if spatial {
			pu, _ := g.Position(e.From)
			pv, _ := g.Position(e.To)
			_, err = fmt.Fprintf(bw, "%v %s %s %v %s %s\n",
				e.From, ftoa(pu.X), ftoa(pu.Y), e.To, ftoa(pv.X), ftoa(pv.Y))
		} else {
			_, err = fmt.Fprintf(bw, "%v %v\n", e.From, e.To)
		}
		if err != nil {
			return fmt.Errorf("edgelist: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("edgelist: write: %w", err)
	}

	return nil
}

// WriteFile creates path and calls Write.
func WriteFile[V cmp.Ordered](path string, g *core.Graph[V]) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("edgelist: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("edgelist: %w", cerr)
		}
	}()

	return Write(f, g)
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
