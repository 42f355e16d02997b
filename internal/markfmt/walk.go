package markfmt

import (
	"github.com/emmetio/py-emmet/internal/abbr"
	"github.com/emmetio/py-emmet/internal/config"
	"github.com/emmetio/py-emmet/internal/outstream"
)

// state threads the output sink, config, and the next available field
// index through a walk, mirroring format/walk.py's WalkState.
type state struct {
	out   *outstream.Stream
	cfg   *config.Config
	field int
}

// elementFunc renders one node. It is responsible for recursing into
// node's own children (via walkChildren) at whatever point its own
// output shape requires, the same way html.py's element() interleaves
// child output with the node's own value tokens.
type elementFunc func(node *abbr.Node, index int, items []*abbr.Node, ancestors []*abbr.Node, st *state, render elementFunc)

// walkChildren renders each of nodes in order, passing itself through as
// render so nested calls can recurse without re-threading the function.
func walkChildren(nodes []*abbr.Node, ancestors []*abbr.Node, st *state, render elementFunc) {
	for i, n := range nodes {
		render(n, i, nodes, ancestors, st, render)
	}
}

func parentOf(ancestors []*abbr.Node) *abbr.Node {
	if len(ancestors) == 0 {
		return nil
	}
	return ancestors[len(ancestors)-1]
}
