// Package lib holds the toposort command so it can be driven in-process by
// tests with explicit argument and stream plumbing.
package lib

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/toposort/dfs"
	"github.com/katalvlaran/toposort/digraph"
	"github.com/katalvlaran/toposort/gen"
)

// Main runs the command exactly as the binary would. args excludes the
// program name. The return value is the process exit code.
func Main(args []string, stdin io.Reader, stdout, stderr io.Writer) (exitcode int) {
	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cmd := NewCmd(logrus.NewEntry(logger))
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		logger.WithError(err).Error("toposort failed")
		return 1
	}

	return 0
}

type sortCmd struct {
	edges     string
	vertices  int
	file      string
	strict    bool
	recursive bool
	debug     bool

	logger *logrus.Entry
}

// NewCmd returns the root toposort command.
func NewCmd(logger *logrus.Entry) *cobra.Command {
	s := sortCmd{logger: logger}
	cmd := &cobra.Command{
		Use:   "toposort",
		Short: "print a topological order of a directed graph",
		Long: `Print a topological order of a directed graph over vertices 0..n-1.

The graph comes from one of:
  --edges "0>1,0>2,1>3"   compact edge list (n inferred unless -n is set)
  --file graph.yaml       YAML or JSON document; "-" reads stdin
  -n 4                    n isolated vertices
  (nothing)               the demo DAG 0>1, 0>2, 1>3, 2>3, 3>4

Cyclic input still prints a permutation unless --strict is set.
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			if s.debug {
				s.logger.Logger.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.run(cmd)
		},
	}

	cmd.Flags().StringVarP(&s.edges, "edges", "e", "", `edge list, e.g. "0>1,1>2"`)
	cmd.Flags().IntVarP(&s.vertices, "vertices", "n", 0, "vertex count (default: inferred from --edges)")
	cmd.Flags().StringVarP(&s.file, "file", "f", "", `graph document (YAML or JSON); "-" reads stdin`)
	cmd.Flags().BoolVar(&s.strict, "strict", false, "fail on cyclic input instead of printing a permutation")
	cmd.Flags().BoolVar(&s.recursive, "recursive", false, "use the recursive traversal instead of the explicit stack")
	cmd.Flags().BoolVar(&s.debug, "debug", false, "enable debug logging")
	cmd.MarkFlagsMutuallyExclusive("file", "edges")
	cmd.MarkFlagsMutuallyExclusive("file", "vertices")

	return cmd
}

func (s *sortCmd) run(cmd *cobra.Command) error {
	g, n, source, err := s.load(cmd)
	if err != nil {
		return err
	}

	var opts []dfs.Option
	strategy := "iterative"
	if s.recursive {
		opts = append(opts, dfs.WithRecursion())
		strategy = "recursive"
	}
	if s.strict {
		opts = append(opts, dfs.WithCycleDetection())
	}
	opts = append(opts, dfs.WithContext(cmd.Context()))

	log := s.logger.WithFields(logrus.Fields{"source": source, "vertices": n, "strategy": strategy, "strict": s.strict})
	log.Debug("sorting graph")
	start := time.Now()

	order, err := dfs.TopologicalSort(g, n, opts...)
	if err != nil {
		return err
	}
	log.WithField("elapsed", time.Since(start)).Debug("sorted graph")

	return writeOrder(cmd.OutOrStdout(), order)
}

// load resolves the input flags into a graph and its vertex count.
func (s *sortCmd) load(cmd *cobra.Command) (dfs.Graph, int, string, error) {
	nSet := cmd.Flags().Changed("vertices")
	if nSet && s.vertices < 0 {
		return nil, 0, "", fmt.Errorf("--vertices must be >= 0, got %d", s.vertices)
	}

	switch {
	case s.file != "":
		data, err := s.readFile(cmd.InOrStdin())
		if err != nil {
			return nil, 0, "", err
		}
		g, err := digraph.Load(data, digraph.WithLoops())
		if err != nil {
			return nil, 0, "", fmt.Errorf("load %s: %w", s.file, err)
		}
		s.logger.WithFields(logrus.Fields{"file": s.file, "edges": g.EdgeCount()}).Debug("loaded graph document")
		return g, g.Order(), "file", nil

	case s.edges != "":
		edges, err := digraph.ParseEdgeList(s.edges)
		if err != nil {
			return nil, 0, "", err
		}
		n := digraph.InferOrder(edges)
		if nSet {
			n = s.vertices
		}
		g, err := digraph.FromEdges(n, edges, digraph.WithLoops())
		if err != nil {
			return nil, 0, "", err
		}
		return g, n, "edges", nil

	case nSet:
		g, err := gen.Empty(s.vertices)
		if err != nil {
			return nil, 0, "", err
		}
		return g, s.vertices, "vertices", nil
	}

	adj, n := gen.Demo()
	return adj, n, "demo", nil
}

func (s *sortCmd) readFile(stdin io.Reader) ([]byte, error) {
	if s.file == "-" {
		if stdin == nil {
			return nil, errors.New("no stdin to read the graph from")
		}
		return io.ReadAll(stdin)
	}

	return os.ReadFile(s.file)
}

// writeOrder prints the header line and the space-separated order.
func writeOrder(w io.Writer, order []int) error {
	parts := make([]string, len(order))
	for i, v := range order {
		parts[i] = strconv.Itoa(v)
	}
	_, err := fmt.Fprintf(w, "Topological order:\n%s\n", strings.Join(parts, " "))

	return err
}
