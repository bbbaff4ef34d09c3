package dispatchers

// Leaves returns every ArgumentCommand reachable from node, depth first in
// registration order.
func Leaves(node Node) []*ArgumentCommand {
	var out []*ArgumentCommand
	collectLeafCommands(node, &out)
	return out
}

func collectLeafCommands(node Node, out *[]*ArgumentCommand) {
	switch n := node.(type) {
	case *ArgumentCommand:
		*out = append(*out, n)
	case *ParentCommand:
		for _, child := range n.children {
			collectLeafCommands(child, out)
		}
	}
}

// HelpLine is one entry of a help listing.
type HelpLine struct {
	Usage   string
	Summary string
}

// HelpLines lists the usage of every leaf below the given nodes.
func HelpLines(nodes ...Node) []HelpLine {
	var lines []HelpLine
	for _, node := range nodes {
		for _, leaf := range Leaves(node) {
			lines = append(lines, HelpLine{Usage: leaf.Usage(), Summary: leaf.Summary()})
		}
	}
	return lines
}
