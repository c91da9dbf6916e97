package main

import (
	"sync"

	"github.com/npillmayer/pinsearch/internal/bridge"
	"github.com/npillmayer/pinsearch/internal/host"
	"github.com/npillmayer/pinsearch/internal/lifecycle"
)

// plugin holds the state behind the exported entry points. The controller
// is created by plugin_create or, failing that, by plugin_start. A host
// window reported before creation is kept and used instead of discovery.
type plugin struct {
	mu         sync.Mutex
	compilers  *compilerSwitch
	searches   *bridge.Bridge
	controller *lifecycle.Controller
	window     *host.Address
	options    func(hosted bool, instance string) lifecycle.Options
}

func newPlugin() *plugin {
	p := &plugin{
		compilers: &compilerSwitch{},
		options: func(hosted bool, instance string) lifecycle.Options {
			return lifecycle.Options{Hosted: hosted, InstanceName: instance}
		},
	}
	p.searches = bridge.New(p.compilers)
	return p
}

func (p *plugin) create(hosted bool, instance string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.controller != nil {
		tracer().Errorf("plugin created twice")
		return false
	}
	p.createLocked(hosted, instance)
	return true
}

func (p *plugin) createLocked(hosted bool, instance string) {
	opts := p.options(hosted, instance)
	if p.window != nil {
		addr := *p.window
		opts.Host = lifecycle.HostFunc(func(string) (host.Address, error) {
			return addr, nil
		})
		p.window = nil
	}
	p.controller = lifecycle.New(opts)
	p.compilers.use(p.controller)
}

func (p *plugin) setHostWindow(addr host.Address) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.controller == nil {
		if p.window == nil {
			tracer().Debugf("host window reported before plugin creation")
			p.window = &addr
		}
		return
	}
	p.controller.SetHostAddress(addr)
}

// start creates the controller if needed and starts it. hosted and
// instance are ignored for a controller created earlier.
func (p *plugin) start(hosted bool, instance string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.controller == nil {
		p.createLocked(hosted, instance)
	}
	if err := p.controller.Start(); err != nil {
		tracer().Errorf("plugin start: %v", err)
		return false
	}
	return true
}

func (p *plugin) stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.controller == nil {
		tracer().Errorf("plugin stopped before it was created")
		return
	}
	if err := p.controller.Stop(); err != nil {
		tracer().Errorf("plugin stop: %v", err)
	}
	if n := p.searches.Live(); n > 0 {
		tracer().Infof("%d compiled patterns were not freed", n)
	}
}
