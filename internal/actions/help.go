package actions

import (
	"strings"

	"github.com/footprint-tools/cmdtree/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/ui"
)

// Help lists the usage of every command the actor may run, aligned, with
// its summary.
func Help(deps Deps) dispatchers.Handler {
	return func(actor dispatchers.Actor, _ []dispatchers.Value) bool {
		var visible []dispatchers.Node
		for _, node := range deps.Commands() {
			if p := permissionOf(node); p == "" || actor.HasPermission(p) {
				visible = append(visible, node)
			}
		}

		lines := dispatchers.HelpLines(visible...)

		width := 0
		for _, line := range lines {
			width = max(width, len(line.Usage))
		}

		actor.SendMessage(deps.Styler.Header("Commands"))
		for _, line := range lines {
			pad := strings.Repeat(" ", width-len(line.Usage)+2)
			actor.SendMessage("  " + ui.FormatUsage(deps.Styler, line.Usage) + pad + deps.Styler.Muted(line.Summary))
		}
		return true
	}
}

func permissionOf(node dispatchers.Node) string {
	switch n := node.(type) {
	case *dispatchers.ParentCommand:
		return n.Permission()
	case *dispatchers.ArgumentCommand:
		return n.Permission()
	}
	return ""
}
