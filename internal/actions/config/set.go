package config

import (
	"fmt"

	"github.com/footprint-tools/cmdtree/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
)

// Set writes values[0]=values[1]. Unknown keys are refused so typos do not
// end up in the rc file.
func Set(deps Deps) dispatchers.Handler {
	return func(actor dispatchers.Actor, values []dispatchers.Value) bool {
		key, value := values[0].String(), values[1].String()

		if !domain.IsValidConfigKey(key) {
			actor.SendMessage(deps.Styler.Error(fmt.Sprintf("'%s' is not a configuration key.", key)))
			return false
		}

		if msg := rejection(key, value); msg != "" {
			actor.SendMessage(deps.Styler.Error(msg))
			return false
		}

		if err := deps.Config.Set(key, value); err != nil {
			actor.SendMessage(deps.Styler.Error(fmt.Sprintf("Could not save %s: %v", key, err)))
			return false
		}

		actor.SendMessage(deps.Styler.Success(fmt.Sprintf("%s=%s", key, value)))
		return true
	}
}
