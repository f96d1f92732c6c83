package form

// Kind classifies how a field is collected and validated.
type Kind int

const (
	// Text is a single-line string field.
	Text Kind = iota
	// Multiline holds longer text, including rich-text HTML stored opaque.
	Multiline
	// Date is a date-string field; the backend defines the format.
	Date
	// Select picks an entity from a reference list and resyncs the paired
	// denormalized name field.
	Select
	// File stages a local file for multipart upload on submit.
	File
)

// Option is one selectable entry of a reference list.
type Option struct {
	ID   int64
	Name string
}

// Reference binds a Select field to a foreign resource: the paired
// <Foreign>ID/<Foreign>Name columns of the record, plus the loaded options.
// The name copy is resynchronized from the options whenever the ID changes;
// the backend never does this for us.
type Reference[T any] struct {
	// Resource is the path segment of the list the options come from,
	// e.g. "writers".
	Resource string

	GetID   func(*T) int64
	SetID   func(*T, int64)
	SetName func(*T, string)

	options []Option
	loaded  bool
}

// Field describes one form field of the record type T. Get/Set move string
// values in and out of the typed record; Select fields use Ref instead.
type Field[T any] struct {
	Name     string
	Label    string
	Kind     Kind
	Required bool

	Get func(*T) string
	Set func(*T, string)

	// SlugOf names the source field this slug derives from. The slug is
	// regenerated only when that source field's value actually changes;
	// manual slug edits survive otherwise.
	SlugOf string

	Ref *Reference[T]
}
