package spanning

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/puzzlekit/search"
)

var (
	// ErrDisconnected indicates that no single tree covers every vertex.
	ErrDisconnected = errors.New("spanning: graph is disconnected")

	// ErrNilGraph is returned by Prim for a nil graph.
	ErrNilGraph = errors.New("spanning: graph is nil")
)

// Edge is an undirected weighted edge.
type Edge[K comparable, C search.Cost] struct {
	From, To K
	Weight   C
}

func (e Edge[K, C]) String() string {
	return fmt.Sprintf("%v-%v(%v)", e.From, e.To, e.Weight)
}

// Total returns the summed weight of edges.
func Total[K comparable, C search.Cost](edges []Edge[K, C]) C {
	var sum C
	for _, e := range edges {
		sum += e.Weight
	}

	return sum
}
