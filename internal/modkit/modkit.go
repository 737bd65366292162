package modkit

import "github.com/RodrigoRozasV/contentful-products-api/internal/modkit/module"

// Module is the surface every service module exposes to the composition root
type Module = module.Module

// Builder constructs a Module from shared deps
type Builder func(Deps) Module
