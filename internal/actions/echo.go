package actions

import (
	"strings"

	"github.com/footprint-tools/cmdtree/dispatchers"
)

// Echo sends every supplied token back, including overflow tokens past the
// declared argument.
func Echo(_ Deps) dispatchers.Handler {
	return func(actor dispatchers.Actor, values []dispatchers.Value) bool {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = v.Raw()
		}
		actor.SendMessage(strings.Join(parts, " "))
		return true
	}
}
