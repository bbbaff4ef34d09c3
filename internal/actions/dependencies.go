// Package actions implements the handlers behind the built-in commands.
package actions

import (
	"time"

	"github.com/footprint-tools/cmdtree/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
)

type Deps struct {
	// Store is nil when auditing is disabled.
	Store domain.AuditStore

	// Commands returns the registered top-level commands.
	Commands func() []dispatchers.Node

	Styler domain.Styler

	// Now defaults to time.Now.
	Now func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}
