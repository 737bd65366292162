// Package catalog holds the product domain: the Product entity and its predicates, the raw
// and normalized shapes of source entries, the Metadata sum type, and the value objects that
// bound catalog queries (Pagination, PriceRange, DateRange).
//
// Every type here is an immutable value; constructors validate and fail fast, nothing clamps.
package catalog
