// Package app wires the configuration, logging, audit store, command tree
// and console together.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/footprint-tools/cmdtree/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/cli"
	"github.com/footprint-tools/cmdtree/internal/config"
	"github.com/footprint-tools/cmdtree/internal/console"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/log"
	"github.com/footprint-tools/cmdtree/internal/manifest"
	"github.com/footprint-tools/cmdtree/internal/paths"
	"github.com/footprint-tools/cmdtree/internal/store"
	"github.com/footprint-tools/cmdtree/internal/ui/style"
)

// Options configures the application factory. Empty fields fall back to
// the rc file and then to the defaults.
type Options struct {
	// ConfigPath is the rc file. Empty means paths.ConfigFilePath().
	ConfigPath string

	// AuditPath is the sqlite database. Empty means paths.AuditDBPath().
	AuditPath string

	// LogPath is the log file. Empty means paths.LogFilePath().
	LogPath string

	LogLevel  string
	ActorKind string

	NoColor bool
	IsTTY   bool

	Out io.Writer
}

// Console is an Application bound to a console platform and its actor.
type Console struct {
	*domain.Application

	Platform *console.Platform
	Actor    *console.Actor
	Session  *console.Session
}

// New creates a Console with all dependencies wired up.
func New(opts Options) (*Console, error) {
	configPath := opts.ConfigPath
	if configPath == "" {
		p, err := paths.ConfigFilePath()
		if err != nil {
			return nil, fmt.Errorf("locate config: %w", err)
		}
		configPath = p
	}
	cfg := config.NewProvider(configPath)

	logger := newLogger(cfg, opts)

	colorMode, _ := cfg.Get("color")
	if opts.NoColor {
		colorMode = "never"
	}
	style.Init(style.Resolve(colorMode, opts.IsTTY))

	var audit domain.AuditStore
	if enabled, _ := cfg.Get("audit_enabled"); enabled == "true" {
		auditPath := opts.AuditPath
		if auditPath == "" {
			auditPath = paths.AuditDBPath()
		}
		s, err := store.New(auditPath)
		if err != nil {
			_ = logger.Close()
			return nil, fmt.Errorf("open audit store: %w", err)
		}
		audit = s
		pruneAudit(cfg, audit, logger, time.Now())
	}

	m, err := loadManifest(cfg)
	if err != nil {
		closeAll(logger, audit)
		return nil, err
	}

	kindValue := opts.ActorKind
	if kindValue == "" {
		kindValue, _ = cfg.Get("actor_kind")
	}
	kind, err := console.ParseActorKind(kindValue)
	if err != nil {
		closeAll(logger, audit)
		return nil, err
	}
	perms, _ := cfg.Get("permissions")

	c, err := assemble(assembly{
		manifest: m,
		config:   cfg,
		store:    audit,
		logger:   logger,
		styler:   style.NewStyler(),
		actor: console.ActorOptions{
			Kind:        kind,
			Permissions: console.ParsePermissions(perms),
			Out:         opts.Out,
		},
	})
	if err != nil {
		closeAll(logger, audit)
		return nil, err
	}

	logger.Debug("app: started as %s actor %s", kind, c.Actor.ID())
	return c, nil
}

// NewForTesting creates a Console suitable for testing: the builtin
// manifest, an in-memory audit store, a NopLogger and no styling. The
// actor holds every permission.
func NewForTesting(configPath string, kind dispatchers.ActorKind, out io.Writer) (*Console, error) {
	s, err := store.New(":memory:")
	if err != nil {
		return nil, err
	}

	c, err := assemble(assembly{
		manifest: manifest.Builtin(),
		config:   config.NewProvider(configPath),
		store:    s,
		logger:   log.NopLogger{},
		styler:   style.NopStyler{},
		actor: console.ActorOptions{
			Kind:        kind,
			Permissions: []string{"*"},
			Out:         out,
		},
	})
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	return c, nil
}

type assembly struct {
	manifest *manifest.Manifest
	config   domain.ConfigProvider
	store    domain.AuditStore
	logger   domain.Logger
	styler   domain.Styler
	actor    console.ActorOptions
}

func assemble(a assembly) (*Console, error) {
	platform := console.NewPlatform(a.manifest, a.logger)

	routerOpts := []dispatchers.RouterOption{
		dispatchers.WithPlatform(platform),
		dispatchers.WithLogger(a.logger),
	}
	if a.store != nil {
		routerOpts = append(routerOpts, dispatchers.WithRecorder(a.store))
	}
	router := dispatchers.NewRouter(routerOpts...)

	application := &domain.Application{
		Router: router,
		Store:  a.store,
		Config: a.config,
		Logger: a.logger,
		Styler: a.styler,
	}

	for _, node := range cli.BuildTree(application) {
		if err := router.Register(node); err != nil {
			return nil, err
		}
	}

	if a.actor.Out == nil {
		a.actor.Out = os.Stdout
	}
	a.actor.Styler = a.styler
	actor := console.NewActor(a.actor)

	return &Console{
		Application: application,
		Platform:    platform,
		Actor:       actor,
		Session:     console.NewSession(platform, actor, router, a.logger),
	}, nil
}

func newLogger(cfg domain.ConfigProvider, opts Options) domain.Logger {
	if enabled, _ := cfg.Get("log_enabled"); enabled != "true" {
		return log.NopLogger{}
	}

	level := opts.LogLevel
	if level == "" {
		level, _ = cfg.Get("log_level")
	}

	logPath := opts.LogPath
	if logPath == "" {
		logPath = paths.LogFilePath()
	}

	l, err := log.New(logPath, log.ParseLevel(level))
	if err != nil {
		// Fall back to NopLogger on error
		return log.NopLogger{}
	}
	log.SetDefault(l)
	return l
}

// pruneAudit drops entries older than audit_retention_days. Zero keeps
// everything; failures are logged and never stop startup.
func pruneAudit(cfg domain.ConfigProvider, s domain.AuditStore, logger domain.Logger, now time.Time) {
	value, _ := cfg.Get("audit_retention_days")
	days, err := strconv.Atoi(value)
	if err != nil || days < 0 {
		logger.Warn("app: ignoring audit_retention_days=%q", value)
		return
	}
	if days == 0 {
		return
	}

	removed, err := s.Prune(now.AddDate(0, 0, -days))
	if err != nil {
		logger.Warn("app: prune audit: %v", err)
		return
	}
	if removed > 0 {
		logger.Info("app: pruned %d audit entries older than %d days", removed, days)
	}
}

// loadManifest reads the manifest named in the rc file, then the one in
// the app data directory, then falls back to the builtin one.
func loadManifest(cfg domain.ConfigProvider) (*manifest.Manifest, error) {
	if path, _ := cfg.Get("manifest"); path != "" {
		return manifest.Load(path)
	}

	path := paths.ManifestPath()
	if _, err := os.Stat(path); err == nil {
		return manifest.Load(path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return manifest.Builtin(), nil
}

func closeAll(logger domain.Logger, s domain.AuditStore) {
	if s != nil {
		_ = s.Close()
	}
	_ = logger.Close()
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app == nil {
		return nil
	}
	var errs []error
	if app.Store != nil {
		errs = append(errs, app.Store.Close())
	}
	if app.Logger != nil {
		errs = append(errs, app.Logger.Close())
	}
	return errors.Join(errs...)
}
