// Package config implements the `config get|set|unset|list` commands.
package config

import "github.com/footprint-tools/cmdtree/internal/domain"

type Deps struct {
	Config domain.ConfigProvider
	Styler domain.Styler
}
