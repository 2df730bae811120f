// Package module wires the rollover worker service and exposes its ports
package module

import (
	"reclaim/internal/modkit"
	"reclaim/internal/modkit/httpkit"
	dom "reclaim/internal/services/rollover/domain"
	"reclaim/internal/services/rollover/service"
)

// Module defines the rollover worker module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the rollover worker module with its ports
func New(deps modkit.Deps, overrides Options, badges dom.BadgeUnlocker) *Module {
	// Load defaults, then apply non-zero overrides
	opts := FromConfig(deps.Cfg)

	if overrides.Concurrency != 0 {
		opts.Concurrency = overrides.Concurrency
	}
	if overrides.BatchSize != 0 {
		opts.BatchSize = overrides.BatchSize
	}
	if overrides.Tick != 0 {
		opts.Tick = overrides.Tick
	}
	if overrides.Lease != 0 {
		opts.Lease = overrides.Lease
	}
	if overrides.Timezone != "" {
		opts.Timezone = overrides.Timezone
	}

	svc := service.New(deps, service.Config{
		Concurrency: opts.Concurrency,
		BatchSize:   opts.BatchSize,
		Tick:        opts.Tick,
		Lease:       opts.Lease,
		Timezone:    opts.Timezone,
	}, badges)

	m := &Module{deps: deps}
	m.ports = Ports{Worker: svc}
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "rollover" }

// Prefix returns the module route prefix (none for worker-only service)
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
