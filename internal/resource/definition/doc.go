// Package definition holds the resource definitions of every kind the CLI
// manages. A definition declares the ordered requirements needed to create
// a resource, performs the creation call and resolves existing resources.
//
// NewLocator registers all of them and is configured once at startup.
package definition
