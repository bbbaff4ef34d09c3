package config

import (
	"fmt"

	"github.com/footprint-tools/cmdtree/dispatchers"
)

// Get sends the effective value of values[0].
func Get(deps Deps) dispatchers.Handler {
	return func(actor dispatchers.Actor, values []dispatchers.Value) bool {
		key := values[0].String()

		value, found := deps.Config.Get(key)
		if !found {
			actor.SendMessage(deps.Styler.Error(fmt.Sprintf("'%s' is not a configuration key.", key)))
			return false
		}

		actor.SendMessage(value)
		return true
	}
}
