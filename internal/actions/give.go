package actions

import (
	"fmt"

	"github.com/footprint-tools/cmdtree/dispatchers"
)

// Give handles `give <amount> <silent>`. A silent give succeeds without
// telling the actor.
func Give(deps Deps) dispatchers.Handler {
	return func(actor dispatchers.Actor, values []dispatchers.Value) bool {
		amount := values[0].Int()
		silent := values[1].Bool()

		if amount <= 0 {
			actor.SendMessage(deps.Styler.Error("Amount must be positive."))
			return false
		}

		if !silent {
			actor.SendMessage(deps.Styler.Success(fmt.Sprintf("Gave %d.", amount)))
		}
		return true
	}
}
