package dispatchers

import (
	"fmt"
	"strings"
	"time"

	"github.com/footprint-tools/cmdtree/usage"
)

// DispatchFunc is the hook a platform calls when a top-level command is run.
// It reports whether the label was handled.
type DispatchFunc func(actor Actor, label string, args []string) bool

// CompleteFunc is the hook a platform calls for tab completion. The boolean
// is false when the label is not handled.
type CompleteFunc func(actor Actor, label string, args []string) ([]string, bool)

// Platform is the host's command registration API.
type Platform interface {
	Bind(name string, dispatch DispatchFunc, complete CompleteFunc) error
}

// Logger is the logging surface the router writes to.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// DispatchRecord describes one routed command.
type DispatchRecord struct {
	ActorID   string
	ActorKind ActorKind
	Label     string
	Args      []string
	Handled   bool
	Success   bool
	At        time.Time
}

// Recorder receives a record of every dispatch, handled or not.
type Recorder interface {
	Record(rec DispatchRecord) error
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Router owns the top-level commands and is the single entry point for
// dispatch and completion. It is built once at startup and is not safe for
// registration concurrent with dispatch.
type Router struct {
	commands []Node
	platform Platform
	logger   Logger
	recorder Recorder
	now      func() time.Time
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithPlatform binds every registered command to the platform's hooks.
func WithPlatform(p Platform) RouterOption {
	return func(r *Router) {
		r.platform = p
	}
}

func WithLogger(l Logger) RouterOption {
	return func(r *Router) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithRecorder sets where dispatch records are sent.
func WithRecorder(rec Recorder) RouterOption {
	return func(r *Router) {
		r.recorder = rec
	}
}

// WithClock overrides the time source used for dispatch records.
func WithClock(now func() time.Time) RouterOption {
	return func(r *Router) {
		r.now = now
	}
}

func NewRouter(opts ...RouterOption) *Router {
	r := &Router{
		logger: nopLogger{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a top-level command and binds it to the platform under its
// name. A name already answered by a registered command is rejected.
func (r *Router) Register(node Node) error {
	if node == nil {
		return fmt.Errorf("router: nil command")
	}

	if existing := r.Lookup(node.Name()); existing != nil {
		return usage.DuplicateCommand(node.Name())
	}

	if r.platform != nil {
		if err := r.platform.Bind(node.Name(), r.Dispatch, r.Complete); err != nil {
			return fmt.Errorf("router: bind %s: %w", node.Name(), err)
		}
	}

	r.commands = append(r.commands, node)
	r.logger.Debug("router: registered %s", node.Name())
	return nil
}

// Commands returns the registered top-level commands in registration order.
func (r *Router) Commands() []Node {
	out := make([]Node, len(r.commands))
	copy(out, r.commands)
	return out
}

// Lookup returns the registered command answering to label, or nil.
func (r *Router) Lookup(label string) Node {
	for _, node := range r.commands {
		if node.Matches(label) {
			return node
		}
	}
	return nil
}

// Run executes label and reports whether it was handled and whether the
// command succeeded.
func (r *Router) Run(actor Actor, label string, args []string) (handled, success bool) {
	node := r.Lookup(label)
	if node == nil {
		r.logger.Debug("router: unhandled command %q", label)
		r.record(actor, label, args, false, false)
		return false, false
	}

	r.logger.Debug("router: dispatch %s %s", node.Name(), strings.Join(args, " "))
	success = node.Execute(actor, args)
	if !success {
		r.logger.Info("router: %s %s did not succeed", node.Name(), strings.Join(args, " "))
	}

	r.record(actor, node.Name(), args, true, success)
	return true, success
}

// Dispatch is the platform's raw command hook. It returns false only for
// labels no registered command answers to.
func (r *Router) Dispatch(actor Actor, label string, args []string) bool {
	handled, _ := r.Run(actor, label, args)
	return handled
}

// Complete is the platform's raw completion hook. Candidates from the tree
// are filtered once, here, to those starting with the last token.
func (r *Router) Complete(actor Actor, label string, args []string) ([]string, bool) {
	node := r.Lookup(label)
	if node == nil {
		return nil, false
	}

	if len(args) == 0 {
		return []string{}, true
	}

	last := args[len(args)-1]
	candidates := node.TabList(args)

	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if strings.HasPrefix(c, last) {
			out = append(out, c)
		}
	}

	r.logger.Debug("router: complete %s %q -> %d candidates", node.Name(), last, len(out))
	return out, true
}

// Suggest returns registered commands close to an unknown label, as
// space-separated paths. Subcommands are offered when label is their name.
func (r *Router) Suggest(label string) []string {
	var paths []string
	for _, node := range r.commands {
		paths = append(paths, CollectAllCommands(node, "")...)
	}
	return similarPaths(label, paths, defaultSuggestionsCount)
}

func (r *Router) record(actor Actor, label string, args []string, handled, success bool) {
	if r.recorder == nil {
		return
	}

	rec := DispatchRecord{
		ActorID:   actorID(actor),
		ActorKind: actor.Kind(),
		Label:     label,
		Args:      append([]string(nil), args...),
		Handled:   handled,
		Success:   success,
		At:        r.now(),
	}
	if err := r.recorder.Record(rec); err != nil {
		r.logger.Warn("router: record dispatch of %s: %v", label, err)
	}
}
