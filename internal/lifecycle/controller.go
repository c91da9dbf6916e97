// Package lifecycle drives the plugin through its life inside the host
// process: creation, startup handoff to the native core, and teardown.
package lifecycle

import (
	"sync"
	"sync/atomic"

	goversion "github.com/hashicorp/go-version"
	"github.com/npillmayer/pinsearch"
	"github.com/npillmayer/pinsearch/internal/config"
	"github.com/npillmayer/pinsearch/internal/core"
	"github.com/npillmayer/pinsearch/internal/factory"
	"github.com/npillmayer/pinsearch/internal/host"
	"github.com/npillmayer/pinsearch/internal/offsets"
	"github.com/npillmayer/pinsearch/internal/version"
	"github.com/npillmayer/pinsearch/phonetic"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("pinsearch.lifecycle")
}

// HostLocator finds the host's IPC window.
type HostLocator interface {
	Discover(instance string) (host.Address, error)
}

// HostFunc adapts a function to HostLocator.
type HostFunc func(instance string) (host.Address, error)

func (f HostFunc) Discover(instance string) (host.Address, error) { return f(instance) }

// Options are the collaborators of a Controller. Zero fields select the
// production defaults.
type Options struct {
	Config       *config.Config      // explicit configuration; loaded from ConfigPath if nil
	ConfigPath   string              // "" for the default location
	InstanceName string              // named host instance, "" for the default one
	Hosted       bool                // running inside the plugin host
	Host         HostLocator         // defaults to host.Discover
	Offsets      offsets.Provider    // defaults to scanning the current executable
	Core         core.Core           // defaults to core.Native()
	Resources    *phonetic.Resources // defaults to phonetic.Default()
	Version      string              // plugin version, defaults to version.Version
}

// Controller owns the plugin state. Create it with New.
type Controller struct {
	mu       sync.Mutex
	state    State
	cfg      config.Config
	opts     Options
	addrOnce sync.Once
	addr     atomic.Pointer[host.Address]
	offsets  offsets.Offsets
	factory  *factory.Factory
	core     core.Core
}

// New creates a controller. Creation never fails: a missing or broken
// configuration falls back to defaults, and a missing host address or
// failed offset discovery only disable the features depending on them.
func New(opts Options) *Controller {
	c := &Controller{
		state: StateCreated,
		opts:  opts,
		core:  opts.Core,
	}
	if c.core == nil {
		c.core = core.Native()
	}
	c.cfg = resolveConfig(opts)
	if isPrerelease(opts.Version) {
		yes := true
		c.cfg.Update.Prerelease = &yes
	}

	locator := opts.Host
	if locator == nil {
		locator = HostFunc(host.Discover)
	}
	if addr, err := locator.Discover(opts.InstanceName); err == nil {
		c.SetHostAddress(addr)
	} else {
		tracer().Debugf("host address not available yet: %v", err)
	}

	provider := opts.Offsets
	if provider == nil {
		provider = offsets.CurrentExe{Signatures: offsets.DefaultSignatures}
	}
	if offs, err := provider.Offsets(); err != nil {
		tracer().Errorf("failed to get offsets from current exe: %v", err)
	} else {
		tracer().Debugf("process offsets: %v", offs)
		c.offsets = offs
	}

	res := opts.Resources
	if res == nil {
		res = phonetic.Default()
	}
	c.factory = factory.New(c.cfg, res)
	return c
}

func resolveConfig(opts Options) config.Config {
	if opts.Config != nil {
		cfg := *opts.Config
		if _, err := config.Validate(cfg); err != nil {
			tracer().Errorf("explicit configuration rejected, using defaults: %v", err)
			return config.Default()
		}
		return cfg
	}
	loaded, err := config.Load(opts.ConfigPath)
	if err != nil {
		tracer().Errorf("cannot load configuration, using defaults: %v", err)
		return config.Default()
	}
	for _, w := range loaded.Warnings {
		tracer().Infof("config: %s", w.Message)
	}
	return loaded.Config
}

func isPrerelease(v string) bool {
	if v == "" {
		return version.IsPrerelease()
	}
	parsed, err := goversion.NewVersion(v)
	if err != nil {
		tracer().Errorf("cannot parse plugin version %q: %v", v, err)
		return false
	}
	return parsed.Prerelease() != ""
}

// SetHostAddress records the host address. Only the first call has an
// effect; hosts which create their IPC window late report it this way.
func (c *Controller) SetHostAddress(addr host.Address) {
	c.addrOnce.Do(func() {
		tracer().Infof("host: %s", addr)
		c.addr.Store(&addr)
	})
}

// HostAddress returns the host address, if known.
func (c *Controller) HostAddress() (host.Address, bool) {
	addr := c.addr.Load()
	if addr == nil {
		return host.Address{}, false
	}
	return *addr, true
}

// Version returns the negotiated host version. Calling it before the host
// address is known is a programming error.
func (c *Controller) Version() *goversion.Version {
	addr := c.addr.Load()
	if addr == nil || addr.Version == nil {
		panic("lifecycle: host version queried before the host address is known")
	}
	return addr.Version
}

// Config returns the configuration in effect.
func (c *Controller) Config() config.Config {
	return c.cfg
}

// Offsets returns the discovered process offsets, nil if discovery failed.
func (c *Controller) Offsets() offsets.Offsets {
	return c.offsets
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Compile builds a matcher for pattern from the configuration in effect.
func (c *Controller) Compile(pattern string) *pinsearch.Matcher {
	return c.factory.Compile(pattern)
}

// Derived returns the configuration handed to the native core on Start.
func (c *Controller) Derived() config.Derived {
	d := config.Fixup(c.cfg)
	if c.offsets == nil {
		d.QuickSelect.ResultList.Enable = false
	} else {
		d = d.WithOffsets(c.offsets)
	}
	return d
}

// Start derives the native core configuration and hands it to the native
// core together with the host address. Failures of the native core are
// logged; they do not change the outcome of Start.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := Transition(c.state, EventStart)
	if err != nil {
		return err
	}
	d := c.Derived()
	if c.offsets == nil {
		tracer().Infof("quick select in the result list is disabled: no process offsets")
	}
	text, err := d.JSON()
	if err != nil {
		return err
	}
	var window uintptr
	if addr, ok := c.HostAddress(); ok {
		window = addr.Window
	}
	handoff := core.NewHandoff(c.opts.Hosted, text, window, c.opts.InstanceName)
	if err := handoff.Start(c.core); err != nil {
		tracer().Errorf("native core start: %v", err)
	}
	c.state = next
	return nil
}

// Stop calls the native core's stop entry point. It may be called once;
// the controller must not be used afterwards.
func (c *Controller) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := Transition(c.state, EventStop)
	if err != nil {
		return err
	}
	if err := c.core.Stop(); err != nil {
		tracer().Errorf("native core stop: %v", err)
	}
	c.state = next
	return nil
}
