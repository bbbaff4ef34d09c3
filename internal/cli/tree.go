// Package cli declares the built-in command tree and the host's own flags.
package cli

import (
	"slices"

	"github.com/footprint-tools/cmdtree/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/actions"
	configactions "github.com/footprint-tools/cmdtree/internal/actions/config"
	"github.com/footprint-tools/cmdtree/internal/domain"
)

const (
	PermissionGive        = "cmdtree.give"
	PermissionConfigWrite = "cmdtree.config.write"
)

const defaultHistoryLimit = "10"

// BuildTree returns the built-in top-level commands, ready to register
// with app.Router.
func BuildTree(app *domain.Application) []dispatchers.Node {
	deps := actions.Deps{
		Store:    app.Store,
		Commands: app.Router.Commands,
		Styler:   app.Styler,
	}
	configDeps := configactions.Deps{
		Config: app.Config,
		Styler: app.Styler,
	}

	return []dispatchers.Node{
		configTree(configDeps),
		dispatchers.MustCommand(dispatchers.CommandSpec{
			Name:            "give",
			Summary:         "Give an amount",
			Permission:      PermissionGive,
			InteractiveOnly: true,
			Args: []dispatchers.ArgSpec{
				{Name: "amount", Type: dispatchers.ArgInteger},
				{
					Name:        "silent",
					Type:        dispatchers.ArgBoolean,
					Default:     dispatchers.DefaultValue(dispatchers.ArgBoolean, "false"),
					Completions: []string{"true", "false"},
				},
			},
			Handler: actions.Give(deps),
		}),
		dispatchers.MustCommand(dispatchers.CommandSpec{
			Name:    "history",
			Aliases: []string{"hist"},
			Summary: "Show recently run commands",
			Args: []dispatchers.ArgSpec{
				{
					Name:    "limit",
					Type:    dispatchers.ArgInteger,
					Default: dispatchers.DefaultValue(dispatchers.ArgInteger, defaultHistoryLimit),
				},
				{
					Name:        "filter",
					Type:        dispatchers.ArgString,
					Default:     dispatchers.DefaultValue(dispatchers.ArgString, actions.HistoryAll),
					Completions: actions.HistoryFilters,
				},
			},
			Handler: actions.History(deps),
		}),
		dispatchers.MustCommand(dispatchers.CommandSpec{
			Name:    "help",
			Aliases: []string{"?"},
			Summary: "List the available commands",
			Handler: actions.Help(deps),
		}),
		dispatchers.MustCommand(dispatchers.CommandSpec{
			Name:    "echo",
			Summary: "Print the given text",
			Args: []dispatchers.ArgSpec{
				{Name: "text", Type: dispatchers.ArgString},
			},
			Handler: actions.Echo(deps),
		}),
	}
}

func configTree(deps configactions.Deps) *dispatchers.ParentCommand {
	keys := domain.ConfigKeyNames()

	config := dispatchers.Parent(dispatchers.ParentSpec{
		Name:          "config",
		Aliases:       []string{"cfg"},
		Summary:       "Manage configuration",
		ChildrenLabel: "action",
	})

	dispatchers.MustCommand(dispatchers.CommandSpec{
		Name:    "get",
		Summary: "Print a configuration value",
		Parent:  config,
		Args: []dispatchers.ArgSpec{
			{Name: "key", Type: dispatchers.ArgString, Completions: keys},
		},
		Handler: configactions.Get(deps),
	})

	dispatchers.MustCommand(dispatchers.CommandSpec{
		Name:       "set",
		Summary:    "Set a configuration value",
		Permission: PermissionConfigWrite,
		Parent:     config,
		Args: []dispatchers.ArgSpec{
			{Name: "key", Type: dispatchers.ArgString, Completions: keys},
			{Name: "value", Type: dispatchers.ArgString, Completions: allowedConfigValues(keys)},
		},
		Handler: configactions.Set(deps),
	})

	dispatchers.MustCommand(dispatchers.CommandSpec{
		Name:       "unset",
		Aliases:    []string{"reset"},
		Summary:    "Restore a configuration value to its default",
		Permission: PermissionConfigWrite,
		Parent:     config,
		Args: []dispatchers.ArgSpec{
			{Name: "key", Type: dispatchers.ArgString, Completions: keys},
		},
		Handler: configactions.Unset(deps),
	})

	dispatchers.MustCommand(dispatchers.CommandSpec{
		Name:    "list",
		Aliases: []string{"ls"},
		Summary: "List every configuration value",
		Parent:  config,
		Handler: configactions.List(deps),
	})

	return config
}

// allowedConfigValues merges the closed value sets of every key. Completion
// lists are static per slot, so `config set` offers all of them.
func allowedConfigValues(keys []string) []string {
	var values []string
	for _, key := range keys {
		for _, v := range configactions.AllowedValues(key) {
			if !slices.Contains(values, v) {
				values = append(values, v)
			}
		}
	}
	slices.Sort(values)
	return values
}
