package di

import (
	"fmt"

	"github.com/smithfarm/handson/pkg/svc/probe"
	"github.com/smithfarm/handson/pkg/ui/timer"

	"github.com/samber/do/v2"
)

// ResolveTimer retrieves the timer dependency from the injector with
// consistent error handling.
func ResolveTimer(injector Injector) (timer.Timer, error) {
	tmr, err := do.Invoke[timer.Timer](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve timer dependency: %w", err)
	}

	return tmr, nil
}

// ResolveProviderFactory retrieves the EC2 provider factory dependency from
// the injector with consistent error handling.
//
//nolint:ireturn // resolvers return the registered interface
func ResolveProviderFactory(injector Injector) (probe.Factory, error) {
	factory, err := do.Invoke[probe.Factory](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve provider factory dependency: %w", err)
	}

	return factory, nil
}
