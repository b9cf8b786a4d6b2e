// Package loader provides the feature loading system.
//
// Each feature implements the Feature interface and mounts its own routes.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager holds the registered features. Register() adds one; LoadAll()
// loads the enabled ones in registration order and stops at the first error.
package loader
