package console

import (
	"slices"
	"strings"

	"github.com/footprint-tools/cmdtree/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/log"
	"github.com/footprint-tools/cmdtree/internal/manifest"
	"github.com/footprint-tools/cmdtree/usage"
)

type binding struct {
	dispatch dispatchers.DispatchFunc
	complete dispatchers.CompleteFunc
}

// Platform accepts bindings for the top-level commands its manifest
// declares and routes console input to them.
type Platform struct {
	manifest *manifest.Manifest
	bindings map[string]binding
	logger   domain.Logger
}

func NewPlatform(m *manifest.Manifest, logger domain.Logger) *Platform {
	if logger == nil {
		logger = log.NopLogger{}
	}
	return &Platform{
		manifest: m,
		bindings: make(map[string]binding),
		logger:   logger,
	}
}

// Bind implements dispatchers.Platform.
func (p *Platform) Bind(name string, dispatch dispatchers.DispatchFunc, complete dispatchers.CompleteFunc) error {
	name = strings.ToLower(name)

	if !p.manifest.Declares(name) {
		p.logger.Warn("console: refused undeclared command %s", name)
		return usage.UndeclaredCommand(name)
	}
	if _, exists := p.bindings[name]; exists {
		return usage.DuplicateCommand(name)
	}

	p.bindings[name] = binding{dispatch: dispatch, complete: complete}
	p.logger.Debug("console: bound %s", name)
	return nil
}

// Labels returns the bound command names, sorted.
func (p *Platform) Labels() []string {
	labels := make([]string, 0, len(p.bindings))
	for name := range p.bindings {
		labels = append(labels, name)
	}
	slices.Sort(labels)
	return labels
}

func (p *Platform) resolve(label string) (manifest.Command, binding, bool) {
	cmd, ok := p.manifest.Lookup(label)
	if !ok {
		return manifest.Command{}, binding{}, false
	}
	b, ok := p.bindings[cmd.Name]
	return cmd, b, ok
}

// Dispatch runs label, which may be a manifest alias. A declared
// permission the actor lacks is refused here, before the tree sees it.
func (p *Platform) Dispatch(actor dispatchers.Actor, label string, args []string) bool {
	cmd, b, ok := p.resolve(label)
	if !ok {
		return false
	}

	if cmd.Permission != "" && !actor.HasPermission(cmd.Permission) {
		actor.SendMessage(usage.MissingPermission().Error())
		return true
	}

	return b.dispatch(actor, cmd.Name, args)
}

// Complete returns candidates for the last of args.
func (p *Platform) Complete(actor dispatchers.Actor, label string, args []string) ([]string, bool) {
	cmd, b, ok := p.resolve(label)
	if !ok {
		return nil, false
	}
	if cmd.Permission != "" && !actor.HasPermission(cmd.Permission) {
		return []string{}, true
	}
	return b.complete(actor, cmd.Name, args)
}

var _ dispatchers.Platform = (*Platform)(nil)
