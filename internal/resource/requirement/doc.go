// Package requirement provides the requirement variants used by resource
// definitions.
//
// Direct input requirements read an argument or option and otherwise prompt.
// Dependent requirements assert that the values they build on were fulfilled
// first. Resource requirements resolve (or provision) another kind through
// the context. Confirmation requirements cancel the command when the user
// declines.
package requirement
