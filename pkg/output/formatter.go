package output

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/kardel/brep2graph/pkg/hetero"
)

// PrintSummary prints a nicely formatted conversion summary with colors
func PrintSummary(scene string, g *hetero.Graph) {
	// Color definitions
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	// Header
	bold.Println("B-Rep to Graph - Conversion Summary")
	bold.Println("===================================")
	fmt.Printf("Scene: %s\n", scene)
	fmt.Println()

	// Node counts per type
	cyan.Println("NODES:")
	fmt.Printf("  vertices:       %d\n", g.NumNodes(hetero.KindVertex))
	fmt.Printf("  edges:          %d\n", g.NumNodes(hetero.KindEdge))
	fmt.Printf("  faces:          %d\n", g.NumNodes(hetero.KindFace))
	fmt.Printf("  control points: %d\n", g.NumNodes(hetero.KindControlPoint))
	fmt.Println()

	// Relation counts
	cyan.Println("RELATIONS:")
	for _, rel := range g.Relations() {
		idx := g.Index(rel)
		line := fmt.Sprintf("  %s -%s-> %s: %d", rel.Src, rel.Name, rel.Dst, idx.Len())
		if idx.Len() == 0 {
			yellow.Println(line)
		} else {
			fmt.Println(line)
		}
	}
	fmt.Println()

	total := g.NumNodes(hetero.KindVertex) + g.NumNodes(hetero.KindEdge) +
		g.NumNodes(hetero.KindFace) + g.NumNodes(hetero.KindControlPoint)
	green.Printf("✓ Converted %d entities\n", total)
}
