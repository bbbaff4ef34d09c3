package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatches_CaseInsensitive(t *testing.T) {
	group := Parent(ParentSpec{Name: "Group"})

	for _, candidate := range []string{"group", "GROUP", "Group", "gRoUp"} {
		require.True(t, group.Matches(candidate), candidate)
	}
	require.False(t, group.Matches("groups"))
	require.Equal(t, "Group", group.Name())
}

func TestMatches_Aliases(t *testing.T) {
	cmd := MustCommand(CommandSpec{Name: "remove", Aliases: []string{"RM", "del", "rm"}})

	require.True(t, cmd.Matches("rm"))
	require.True(t, cmd.Matches("Del"))
	require.Equal(t, []string{"remove", "rm", "del"}, cmd.Aliases())
}

func TestExecute_Preconditions(t *testing.T) {
	tests := []struct {
		name            string
		interactiveOnly bool
		permission      string
		actor           *testActor
		wantOK          bool
		wantMessages    []string
	}{
		{
			name:   "no requirements",
			actor:  newConsole(),
			wantOK: true,
		},
		{
			name:            "interactive only rejects console",
			interactiveOnly: true,
			actor:           newConsole(),
			wantMessages:    []string{"Only interactive actors can execute this command."},
		},
		{
			name:            "interactive only accepts player",
			interactiveOnly: true,
			actor:           newPlayer(),
			wantOK:          true,
		},
		{
			name:         "missing permission",
			permission:   "shop.buy",
			actor:        newPlayer(),
			wantMessages: []string{"You do not have the permission for this command."},
		},
		{
			name:       "granted permission",
			permission: "shop.buy",
			actor:      newPlayer("shop.buy"),
			wantOK:     true,
		},
		{
			name:            "actor kind is checked before permission",
			interactiveOnly: true,
			permission:      "shop.buy",
			actor:           &testActor{kind: ActorNonInteractive},
			wantMessages:    []string{"Only interactive actors can execute this command."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			cmd := MustCommand(CommandSpec{
				Name:            "buy",
				Permission:      tt.permission,
				InteractiveOnly: tt.interactiveOnly,
				Handler: func(Actor, []Value) bool {
					called = true
					return true
				},
			})

			got := cmd.Execute(tt.actor, nil)
			require.Equal(t, tt.wantOK, got)
			require.Equal(t, tt.wantOK, called)
			require.Equal(t, tt.wantMessages, tt.actor.messages)
		})
	}
}

func TestSendUsage(t *testing.T) {
	parent := Parent(ParentSpec{Name: "team", ChildrenLabel: "action"})
	actor := newPlayer()

	parent.SendUsage(actor)
	require.Equal(t, []string{"Usage: /team <action>"}, actor.messages)
}
