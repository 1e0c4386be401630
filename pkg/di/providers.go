package di

import (
	"github.com/smithfarm/handson/pkg/svc/probe"
	"github.com/smithfarm/handson/pkg/ui/timer"

	"github.com/samber/do/v2"
)

// NewRuntime constructs the shared runtime container used by the root command
// and tests. It registers default implementations for the timer and the EC2
// provider factory.
func NewRuntime() *Runtime {
	return New(
		provideTimer,
		provideProviderFactory,
	)
}

// provideTimer registers the timer dependency with the injector.
func provideTimer(i Injector) error {
	do.Provide(i, func(Injector) (timer.Timer, error) {
		return timer.New(), nil
	})

	return nil
}

// provideProviderFactory registers the EC2 provider factory dependency.
func provideProviderFactory(i Injector) error {
	do.Provide(i, func(Injector) (probe.Factory, error) {
		return probe.DefaultFactory{}, nil
	})

	return nil
}
