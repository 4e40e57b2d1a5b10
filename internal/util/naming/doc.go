// Package naming normalises user supplied resource names.
//
// Most resources accept free-form names, but projects, networks, database
// servers and cache clusters are addressed through slugs: lowercase
// alphanumeric words separated by single hyphens. Slug turns arbitrary input
// (typically a directory name) into such a name and IsSlug checks it.
package naming
