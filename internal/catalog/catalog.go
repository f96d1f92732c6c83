// Package catalog declares the per-entity configuration that instantiates
// the generic list/form/client machinery for each resource type. Adding a
// resource to the console means adding one Schema here — no new control flow.
package catalog

import (
	"github.com/pressroomhq/pressroom-cli/internal/form"
	"github.com/pressroomhq/pressroom-cli/internal/view"
)

// Schema wires one entity type into the console: its endpoint path, table
// columns, form fields, attachment handling and delete semantics.
type Schema[T any] struct {
	// Resource is the REST path segment, e.g. "tags" → /api/tags.
	Resource string

	// Title is the singular display name.
	Title string

	// ID extracts the backend-assigned identifier.
	ID func(T) int64

	// Columns defines the table layout; searchable columns also feed the
	// free-text filter.
	Columns []view.Column[T]

	// Fields builds a fresh field list per form instance, so reference-list
	// state is never shared between open forms.
	Fields func() []form.Field[T]

	// FileField is the multipart part name of the entity's attachment
	// ("image", "coverImage"). Empty means text-only JSON submissions.
	FileField string

	// Attachment is the binary sub-resource segment used for downloads
	// ("image", "cover", "attachment"). Empty means none.
	Attachment string

	// SoftDelete switches delete from DELETE to a PATCH setting the deleted
	// flag; the list view then filters flagged rows out.
	SoftDelete bool

	// Keep filters rows out of the list view (soft-deleted records).
	// Nil keeps everything.
	Keep func(T) bool

	// AdminOnly hides the resource from sessions without an admin role.
	AdminOnly bool
}
