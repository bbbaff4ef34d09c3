package config

import (
	"fmt"

	"github.com/footprint-tools/cmdtree/dispatchers"
)

// Unset removes values[0] from the rc file; the key falls back to its default.
func Unset(deps Deps) dispatchers.Handler {
	return func(actor dispatchers.Actor, values []dispatchers.Value) bool {
		key := values[0].String()

		if err := deps.Config.Unset(key); err != nil {
			actor.SendMessage(deps.Styler.Error(fmt.Sprintf("Could not unset %s: %v", key, err)))
			return false
		}

		if value, found := deps.Config.Get(key); found {
			actor.SendMessage(deps.Styler.Muted(fmt.Sprintf("%s reset to %q", key, value)))
		} else {
			actor.SendMessage(deps.Styler.Muted(fmt.Sprintf("%s removed", key)))
		}
		return true
	}
}
