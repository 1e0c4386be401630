// Package di wires the shared runtime container used by commands and tests.
package di

import "github.com/samber/do/v2"

// Injector is the dependency injection scope resolved against at runtime.
type Injector = do.Injector

// ProviderFunc registers one dependency into the injector.
type ProviderFunc func(Injector) error

// Runtime is the shared runtime container wired once at process start.
type Runtime struct {
	Injector Injector
}

// New constructs a runtime container from the given providers. Registration
// happens before any user input is processed, so a failing provider is a
// wiring bug and panics.
func New(providers ...ProviderFunc) *Runtime {
	injector := do.New()

	for _, provide := range providers {
		err := provide(injector)
		if err != nil {
			panic(err)
		}
	}

	return &Runtime{Injector: injector}
}
