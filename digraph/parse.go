package digraph

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseEdgeList parses a compact edge list such as "0>1, 0>2 1->3".
// Tokens are separated by commas, semicolons and/or whitespace; each token is
// "u>v" or "u->v" with non-negative decimal endpoints.
func ParseEdgeList(s string) ([]Edge, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	edges := make([]Edge, 0, len(fields))
	for _, tok := range fields {
		e, err := parseEdge(tok)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}

	return edges, nil
}

func parseEdge(tok string) (Edge, error) {
	sep := "->"
	if !strings.Contains(tok, sep) {
		sep = ">"
	}
	lhs, rhs, ok := strings.Cut(tok, sep)
	if !ok {
		return Edge{}, fmt.Errorf("%w: %q: missing '>'", ErrBadEdgeSyntax, tok)
	}
	from, err := parseVertex(lhs)
	if err != nil {
		return Edge{}, fmt.Errorf("%w: %q: %v", ErrBadEdgeSyntax, tok, err)
	}
	to, err := parseVertex(rhs)
	if err != nil {
		return Edge{}, fmt.Errorf("%w: %q: %v", ErrBadEdgeSyntax, tok, err)
	}

	return Edge{From: from, To: to}, nil
}

func parseVertex(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("negative vertex %d", v)
	}

	return v, nil
}
