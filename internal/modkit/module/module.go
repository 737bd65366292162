// Package module defines the minimal contract for a modkit module
package module

// Module is implemented by every service module; kept in its own package so a module
// can export its ports type without import cycles
type Module interface {
	Ports() any
	Name() string
}
