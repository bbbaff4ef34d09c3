package config

import (
	"fmt"

	"github.com/footprint-tools/cmdtree/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
)

// List sends every visible key grouped by section.
func List(deps Deps) dispatchers.Handler {
	return func(actor dispatchers.Actor, _ []dispatchers.Value) bool {
		configMap, err := deps.Config.GetAll()
		if err != nil {
			actor.SendMessage(deps.Styler.Error(fmt.Sprintf("Could not read configuration: %v", err)))
			return false
		}

		bySection := domain.ConfigKeysBySection()
		for _, section := range domain.ConfigSections() {
			keys := bySection[section]
			if len(keys) == 0 {
				continue
			}

			actor.SendMessage(deps.Styler.Header(section))
			for _, key := range keys {
				actor.SendMessage(fmt.Sprintf("  %s=%s", key.Name, configMap[key.Name]))
			}
		}
		return true
	}
}
