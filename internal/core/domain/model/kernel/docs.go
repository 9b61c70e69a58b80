// Package kernel contains shared value objects used across the domain model.
//
// The identifiers in this package follow the value-object pattern: they are
// created through validating constructors and are immutable afterwards.
// TableID identifies the dining table an order originates from; tables are
// implicit and unbounded, so no registry lookup is performed. OrderID is
// assigned by the store on first persistence, which is why — unlike TableID —
// its zero value is legal on a not-yet-persisted aggregate.
package kernel
