package display

import (
	"io"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"alphactl/core"
)

// Format selects the raster/vector output Render produces.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

func (f Format) graphvizFormat() graphviz.Format {
	switch f {
	case SVG:
		return graphviz.SVG
	default:
		return graphviz.PNG
	}
}

// Render parses the DOT text for l (with p's chosen transitions
// highlighted, per DOT) and writes the rendered diagram to out.
func Render(out io.Writer, l *core.LTS, p core.Policy, format Format) error {
	gv := graphviz.New()
	defer func() { _ = gv.Close() }()

	graph, err := cgraph.ParseBytes([]byte(DOT(l, p)))
	if err != nil {
		return err
	}
	defer func() { _ = graph.Close() }()

	return gv.Render(graph, format.graphvizFormat(), out)
}
