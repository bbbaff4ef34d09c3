package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdtree/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/manifest"
	"github.com/footprint-tools/cmdtree/internal/ui/style"
)

const testManifest = `
commands:
  config:
    aliases: [cfg]
  give:
    permission: test.give
  paint: {}
  unbound: {}
`

type fixture struct {
	router   *dispatchers.Router
	platform *Platform
	actor    *Actor
	out      *bytes.Buffer
	session  *Session
	gave     []int
}

func newFixture(t *testing.T, perms ...string) *fixture {
	t.Helper()

	m, err := manifest.Parse([]byte(testManifest))
	require.NoError(t, err)

	f := &fixture{out: &bytes.Buffer{}}
	f.platform = NewPlatform(m, nil)
	f.router = dispatchers.NewRouter(dispatchers.WithPlatform(f.platform))

	cfg := dispatchers.Parent(dispatchers.ParentSpec{Name: "config", ChildrenLabel: "action"})
	dispatchers.MustCommand(dispatchers.CommandSpec{
		Name:   "get",
		Parent: cfg,
		Args:   []dispatchers.ArgSpec{{Name: "key", Type: dispatchers.ArgString, Completions: []string{"color", "log_level", "log_enabled"}}},
		Handler: func(actor dispatchers.Actor, values []dispatchers.Value) bool {
			actor.SendMessage("value of " + values[0].String())
			return true
		},
	})
	dispatchers.MustCommand(dispatchers.CommandSpec{Name: "list", Parent: cfg})

	give := dispatchers.MustCommand(dispatchers.CommandSpec{
		Name: "give",
		Args: []dispatchers.ArgSpec{{Name: "amount", Type: dispatchers.ArgInteger}},
		Handler: func(_ dispatchers.Actor, values []dispatchers.Value) bool {
			f.gave = append(f.gave, values[0].Int())
			return true
		},
	})

	paint := dispatchers.MustCommand(dispatchers.CommandSpec{
		Name: "paint",
		Args: []dispatchers.ArgSpec{{Name: "color", Type: dispatchers.ArgString, Completions: []string{"red", "rose", "blue"}}},
	})

	for _, node := range []dispatchers.Node{cfg, give, paint} {
		require.NoError(t, f.router.Register(node))
	}

	f.actor = NewActor(ActorOptions{
		Kind:        dispatchers.ActorInteractive,
		Permissions: perms,
		Out:         f.out,
		Styler:      style.NopStyler{},
	})
	f.session = NewSession(f.platform, f.actor, f.router, nil)
	return f
}
