// Package model defines the resources managed through the Ymir API.
//
// Every resource implements [Resource]: an integer ID plus a human name.
// Ownership is expressed with read-only back-pointers forming a strict tree
// from Team downward (for example CacheCluster → Network → CloudProvider →
// Team → User).
//
// [Collection] is the queryable, insertion-ordered aggregate returned by list
// queries and consumed by resolution strategies.
package model
