//go:build !windows

package core

type tracingCore struct{}

// Native returns a core which only traces its calls. The native core
// library exists for Windows only.
func Native() Core {
	return tracingCore{}
}

func (tracingCore) Start(args *StartArgs) error {
	tracer().Infof("core: no native core on this platform, start ignored")
	return nil
}

func (tracingCore) Stop() error {
	tracer().Infof("core: no native core on this platform, stop ignored")
	return nil
}
