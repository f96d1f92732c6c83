// Package form implements the create/edit form shared by every resource page:
// a declarative field schema over a typed record, required-field validation,
// dependent-field resync, file staging with preview, and a small state
// machine that serializes submissions.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/pressroomhq/pressroom-cli/internal/models"
)

// State is the lifecycle of one form instance.
//
//	Idle → Loading (edit fetch) → Ready → Validating → Submitting → Succeeded
//	                                         │                         │
//	                                         └──── Failed ◄────────────┘
//
// Failed keeps the entered values so the user can retry; Succeeded is
// terminal for the instance (the caller resets or navigates away).
type State int

const (
	Idle State = iota
	Loading
	Ready
	Validating
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Validating:
		return "validating"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

var (
	// ErrSubmitInFlight rejects a second submission while one is pending.
	ErrSubmitInFlight = errors.New("submission already in progress")

	// ErrNotReady rejects operations on a form that has not been initialized
	// (or already succeeded).
	ErrNotReady = errors.New("form is not ready")
)

// ValidationError lists the required fields that are missing. It is produced
// before any network call is made.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "required: " + strings.Join(e.Missing, ", ")
}

// StagedFile is a user-selected file held in memory until submit. Nothing is
// uploaded at selection time; the preview is available immediately.
type StagedFile struct {
	Name        string
	Size        int64
	ContentType string
	Data        []byte
}

// Preview is the displayable summary shown as soon as a file is selected.
func (f *StagedFile) Preview() string {
	return fmt.Sprintf("%s (%d bytes, %s)", f.Name, f.Size, f.ContentType)
}

// SubmitFunc performs the actual create/update call for the collected record.
type SubmitFunc[T any] func(ctx context.Context, record T, file *StagedFile) error

// Form holds the field state of one create/edit instance.
type Form[T any] struct {
	mu     sync.Mutex
	fields []Field[T]
	record T
	state  State
	file   *StagedFile
}

func New[T any](fields []Field[T]) *Form[T] {
	return &Form[T]{fields: fields, state: Idle}
}

// Begin initializes an empty record for a create flow.
func (f *Form[T]) Begin() {
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero T
	f.record = zero
	f.file = nil
	f.state = Ready
}

// BeginEdit marks the form loading while the initial record fetch runs.
func (f *Form[T]) BeginEdit() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = Loading
}

// FinishEdit applies the fetched record, or returns the form to Idle when the
// fetch failed.
func (f *Form[T]) FinishEdit(record T, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = Idle
		return
	}
	f.record = record
	f.state = Ready
}

func (f *Form[T]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Record returns a copy of the current field state.
func (f *Form[T]) Record() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record
}

func (f *Form[T]) Fields() []Field[T] { return f.fields }

func (f *Form[T]) fieldByName(name string) *Field[T] {
	for i := range f.fields {
		if f.fields[i].Name == name {
			return &f.fields[i]
		}
	}
	return nil
}

// Value reads the current value of a text-like field.
func (f *Form[T]) Value(name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fld := f.fieldByName(name)
	if fld == nil || fld.Get == nil {
		return "", fmt.Errorf("no such field: %s", name)
	}
	return fld.Get(&f.record), nil
}

// SetValue writes a text-like field. When the field is the source of a slug
// field and the value actually changed, the slug is regenerated; setting the
// slug field itself is always taken verbatim (manual edit).
func (f *Form[T]) SetValue(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	fld := f.fieldByName(name)
	if fld == nil || fld.Set == nil {
		return fmt.Errorf("no such field: %s", name)
	}

	previous := ""
	if fld.Get != nil {
		previous = fld.Get(&f.record)
	}
	fld.Set(&f.record, value)

	if value != previous {
		for i := range f.fields {
			slug := &f.fields[i]
			if slug.SlugOf == name && slug.Set != nil {
				slug.Set(&f.record, models.Slugify(value))
			}
		}
	}
	return nil
}

// SetOptions installs the loaded reference list for a Select field. If the
// record already carries an ID whose name could not be resolved before the
// list arrived, the name is resynced now.
func (f *Form[T]) SetOptions(name string, options []Option) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	fld := f.fieldByName(name)
	if fld == nil || fld.Ref == nil {
		return fmt.Errorf("no reference field: %s", name)
	}
	fld.Ref.options = options
	fld.Ref.loaded = true

	if id := fld.Ref.GetID(&f.record); id != 0 {
		fld.Ref.SetName(&f.record, optionName(options, id))
	}
	return nil
}

// Options returns the loaded reference list of a Select field and whether it
// has been loaded yet.
func (f *Form[T]) Options(name string) ([]Option, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fld := f.fieldByName(name)
	if fld == nil || fld.Ref == nil {
		return nil, false
	}
	return fld.Ref.options, fld.Ref.loaded
}

// Select applies a reference choice: the ID is stored and the paired
// denormalized name is resynced from the loaded list. Selecting 0 (the
// placeholder) clears both. If the list has not loaded yet, the name stays
// blank until SetOptions delivers it.
func (f *Form[T]) Select(name string, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	fld := f.fieldByName(name)
	if fld == nil || fld.Ref == nil {
		return fmt.Errorf("no reference field: %s", name)
	}

	fld.Ref.SetID(&f.record, id)
	if id == 0 {
		fld.Ref.SetName(&f.record, "")
		return nil
	}
	if !fld.Ref.loaded {
		fld.Ref.SetName(&f.record, "")
		return nil
	}
	fld.Ref.SetName(&f.record, optionName(fld.Ref.options, id))
	return nil
}

func optionName(options []Option, id int64) string {
	for _, o := range options {
		if o.ID == id {
			return o.Name
		}
	}
	return ""
}

// StageFile holds a selected file in memory for upload on submit, replacing
// any previously staged file.
func (f *Form[T]) StageFile(file StagedFile) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.file = &file
}

// ClearFile discards the staged file and its preview.
func (f *Form[T]) ClearFile() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.file = nil
}

// File returns the currently staged file, nil if none.
func (f *Form[T]) File() *StagedFile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.file
}

// missingLocked lists the labels of required fields that have no value.
func (f *Form[T]) missingLocked() []string {
	var missing []string
	for i := range f.fields {
		fld := &f.fields[i]
		if !fld.Required {
			continue
		}
		switch fld.Kind {
		case Select:
			if fld.Ref != nil && fld.Ref.GetID(&f.record) == 0 {
				missing = append(missing, fld.Label)
			}
		case File:
			existing := ""
			if fld.Get != nil {
				existing = fld.Get(&f.record)
			}
			if f.file == nil && existing == "" {
				missing = append(missing, fld.Label)
			}
		default:
			if fld.Get == nil || strings.TrimSpace(fld.Get(&f.record)) == "" {
				missing = append(missing, fld.Label)
			}
		}
	}
	return missing
}

// Submit validates and, if the record is complete, runs fn exactly once.
// While a submission is in flight any further Submit returns
// ErrSubmitInFlight, so a double trigger cannot produce a second call.
// A validation failure makes no call at all and returns *ValidationError.
func (f *Form[T]) Submit(ctx context.Context, fn SubmitFunc[T]) error {
	f.mu.Lock()
	switch f.state {
	case Submitting:
		f.mu.Unlock()
		return ErrSubmitInFlight
	case Ready, Failed:
		// allowed
	default:
		f.mu.Unlock()
		return ErrNotReady
	}

	f.state = Validating
	if missing := f.missingLocked(); len(missing) > 0 {
		f.state = Ready
		f.mu.Unlock()
		return &ValidationError{Missing: missing}
	}

	f.state = Submitting
	record := f.record
	file := f.file
	f.mu.Unlock()

	err := fn(ctx, record, file)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		// Entered values are preserved; the user can fix and retry.
		f.state = Failed
		return err
	}
	f.state = Succeeded
	return nil
}

// Reset returns a succeeded create form to a fresh Ready state.
func (f *Form[T]) Reset() {
	f.Begin()
}
