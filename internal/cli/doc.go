// Package cli implements the interactive Pressroom console: a REPL that signs
// an editor in, lets them pick a resource, and run list/search/sort/page plus
// the add/edit/delete/download flows against the backend.
//
// The command surface is deliberately uniform across resources. Every entity
// type is described by a catalog.Schema; the generic page type instantiates
// the list view and form machinery from it, so the REPL itself knows nothing
// about individual entities.
package cli
