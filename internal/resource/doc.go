// Package resource resolves existing resources and provisions new ones.
//
// Every resource kind has a Definition. Resolving walks a fixed chain of
// input sources (argument, option, contextual fallback, interactive choice)
// over the collection returned by the API. Provisioning fulfills the
// definition's requirements in their declared order and hands the
// accumulated values to the definition's creation call. The order of the
// requirements is the dependency graph: a requirement may read the values
// fulfilled before it, never after it.
//
// A requirement may itself resolve or provision another kind through the
// Context, so creating a cache cluster can end up creating a network first.
// When the user declines a required confirmation, ErrCancelled travels up
// unmodified and nothing is created.
package resource
