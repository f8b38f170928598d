package engine

import (
	"bufio"
	"fmt"
	"os"

	"github.com/solventlabs/beliefgrid/strategy"
)

// export writes a solved strategy chain to "<path>.chain.txt" (an explicit
// transition listing) and "<path>.dot" (a Graphviz graph), per
// SPEC_FULL.md §4.10. It is pure formatting over an already-built Chain,
// grounded on the teacher's adjacency/incidence-matrix-to-graph conversion
// style: no parsing, only I/O errors are possible.
func export(chain *strategy.Chain, path string) (chainPath, dotPath string, err error) {
	chainPath = path + ".chain.txt"
	if err := writeChainTxt(chain, chainPath); err != nil {
		return "", "", err
	}

	dotPath = path + ".dot"
	if err := writeDot(chain, dotPath); err != nil {
		return "", "", err
	}
	return chainPath, dotPath, nil
}

func writeChainTxt(chain *strategy.Chain, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("engine: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i, s := range chain.States {
		fmt.Fprintf(w, "%d so=%d bu=%v reward=%.6f target=%v\n", i, s.Belief.So, s.Belief.Bu, s.Reward, s.Target)
		for _, t := range s.Out {
			fmt.Fprintf(w, "  %d -> %d [%s] (%.6f)\n", i, t.To, s.ActionLabel, t.Prob)
		}
	}
	return w.Flush()
}

func writeDot(chain *strategy.Chain, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("engine: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "digraph strategy {")
	for i, s := range chain.States {
		shape := "circle"
		if s.Target {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "  n%d [shape=%s label=\"%s r=%.3f\"];\n", i, shape, s.Belief, s.Reward)
	}
	for i, s := range chain.States {
		for _, t := range s.Out {
			fmt.Fprintf(w, "  n%d -> n%d [label=\"%s %.3f\"];\n", i, t.To, s.ActionLabel, t.Prob)
		}
	}
	fmt.Fprintln(w, "}")
	return w.Flush()
}
