package actions

import (
	"fmt"
	"strings"
	"time"

	"github.com/footprint-tools/cmdtree/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
)

const historyTimeFormat = "2006-01-02 15:04:05"

// History filter words. Anything else is taken as a command label.
const (
	HistoryAll      = "all"
	HistoryFailures = "failures"
	HistoryMine     = "mine"
	HistoryToday    = "today"
)

// HistoryFilters lists the filter words offered as completions.
var HistoryFilters = []string{HistoryAll, HistoryFailures, HistoryMine, HistoryToday}

// History handles `history <limit> <filter>`, listing the newest matching
// dispatches first.
func History(deps Deps) dispatchers.Handler {
	return func(actor dispatchers.Actor, values []dispatchers.Value) bool {
		if deps.Store == nil {
			actor.SendMessage(deps.Styler.Warning("Auditing is disabled (audit_enabled=false)."))
			return false
		}

		limit := values[0].Int()
		if limit <= 0 {
			actor.SendMessage(deps.Styler.Error("Limit must be positive."))
			return false
		}

		filter := domain.AuditFilter{Limit: limit}
		if len(values) > 1 {
			var ok bool
			if filter, ok = historyFilter(deps, actor, values[1].String(), limit); !ok {
				return false
			}
		}

		entries, err := deps.Store.Query(filter)
		if err != nil {
			actor.SendMessage(deps.Styler.Error(fmt.Sprintf("Could not read history: %v", err)))
			return false
		}

		if len(entries) == 0 {
			actor.SendMessage(deps.Styler.Muted("No commands recorded yet."))
			return true
		}

		for _, e := range entries {
			actor.SendMessage(formatEntry(deps, e))
		}

		total, err := deps.Store.Count(filter)
		if err != nil {
			actor.SendMessage(deps.Styler.Error(fmt.Sprintf("Could not count history: %v", err)))
			return false
		}
		if hidden := total - int64(len(entries)); hidden > 0 {
			actor.SendMessage(deps.Styler.Muted(fmt.Sprintf("%d more not shown.", hidden)))
		}
		return true
	}
}

func historyFilter(deps Deps, actor dispatchers.Actor, word string, limit int) (domain.AuditFilter, bool) {
	filter := domain.AuditFilter{Limit: limit}

	switch word = strings.ToLower(word); word {
	case "", HistoryAll:
	case HistoryFailures:
		filter.FailuresOnly = true
	case HistoryMine:
		id, ok := actor.(dispatchers.Identified)
		if !ok || id.ID() == "" {
			actor.SendMessage(deps.Styler.Error("This actor has no identity to filter by."))
			return filter, false
		}
		filter.ActorID = id.ID()
	case HistoryToday:
		now := deps.now()
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		filter.Since = &midnight
	default:
		filter.Label = word
	}

	return filter, true
}

func formatEntry(deps Deps, e domain.AuditEntry) string {
	var status string
	switch {
	case !e.Handled:
		status = deps.Styler.Warning("unknown")
	case e.Success:
		status = deps.Styler.Success("ok")
	default:
		status = deps.Styler.Error("failed")
	}

	line := "/" + e.Label
	if len(e.Args) > 0 {
		line += " " + strings.Join(e.Args, " ")
	}

	return fmt.Sprintf("%s  %s  %s",
		deps.Styler.Muted(e.At.Local().Format(historyTimeFormat)),
		status,
		line,
	)
}
