package visualization

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/anggasct/trafficlight"
)

// DOTGenerator generates Graphviz DOT format representations of a phase table
type DOTGenerator struct {
	table   trafficlight.Table
	options DOTOptions
}

// DOTOptions configures the DOT generation
type DOTOptions struct {
	ShowDurations    bool
	RankDirection    string // "TB", "LR", "BT", "RL"
	NodeShape        string
	HighlightCurrent bool
	Current          trafficlight.Phase
}

// DefaultDOTOptions returns sensible default options for DOT generation
func DefaultDOTOptions() DOTOptions {
	return DOTOptions{
		ShowDurations: true,
		RankDirection: "LR",
		NodeShape:     "circle",
	}
}

// NewDOTGenerator creates a new DOT generator for the given table
func NewDOTGenerator(table trafficlight.Table, options ...DOTOptions) *DOTGenerator {
	opts := DefaultDOTOptions()
	if len(options) > 0 {
		opts = options[0]
	}

	return &DOTGenerator{
		table:   table,
		options: opts,
	}
}

// ForController creates a generator that highlights the controller's active phase
func ForController(c *trafficlight.Controller) *DOTGenerator {
	opts := DefaultDOTOptions()
	opts.HighlightCurrent = true
	opts.Current = c.Current()
	return NewDOTGenerator(c.Table(), opts)
}

// Generate creates a DOT representation of the phase cycle
func (g *DOTGenerator) Generate() (string, error) {
	if err := g.table.Validate(); err != nil {
		return "", fmt.Errorf("invalid phase table: %w", err)
	}

	var dot strings.Builder

	dot.WriteString("digraph TrafficLight {\n")
	dot.WriteString(fmt.Sprintf("  rankdir=%s;\n", g.options.RankDirection))
	dot.WriteString(fmt.Sprintf("  node [shape=%s style=filled];\n", g.options.NodeShape))
	dot.WriteString("  edge [fontsize=10];\n\n")

	dot.WriteString("  // Phases\n")
	for _, phase := range trafficlight.Phases() {
		g.generatePhaseNode(&dot, phase)
	}

	dot.WriteString("\n  // Transitions\n")
	for _, phase := range trafficlight.Phases() {
		dot.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\";\n", phase, g.table.SuccessorOf(phase)))
	}

	dot.WriteString("}\n")

	return dot.String(), nil
}

func (g *DOTGenerator) generatePhaseNode(dot *strings.Builder, phase trafficlight.Phase) {
	label := phase.String()
	if g.options.ShowDurations {
		label += fmt.Sprintf("\\n%dms", g.table.DurationOf(phase))
	}
	if phase == trafficlight.Red {
		label += "\\n(initial)"
	}

	penwidth := 1
	if g.options.HighlightCurrent && phase == g.options.Current {
		penwidth = 3
	}

	dot.WriteString(fmt.Sprintf("  \"%s\" [fillcolor=%s penwidth=%d label=\"%s\"];\n",
		phase, fillColor(phase), penwidth, label))
}

func fillColor(phase trafficlight.Phase) string {
	switch phase {
	case trafficlight.Red:
		return "lightcoral"
	case trafficlight.Yellow:
		return "lightyellow"
	case trafficlight.Green:
		return "lightgreen"
	default:
		return "lightgray"
	}
}

// GenerateToFile writes the DOT representation to a file
func (g *DOTGenerator) GenerateToFile(filename string) error {
	content, err := g.Generate()
	if err != nil {
		return err
	}

	return os.WriteFile(filename, []byte(content), 0644)
}

// GenerateSVG renders the DOT output through the Graphviz dot command
func (g *DOTGenerator) GenerateSVG() (string, error) {
	dotContent, err := g.Generate()
	if err != nil {
		return "", err
	}

	cmd := exec.Command("dot", "-Tsvg")
	cmd.Stdin = strings.NewReader(dotContent)

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to execute dot command: %w (make sure Graphviz is installed)", err)
	}

	return out.String(), nil
}
