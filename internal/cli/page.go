package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/pressroomhq/pressroom-cli/internal/api"
	"github.com/pressroomhq/pressroom-cli/internal/catalog"
	"github.com/pressroomhq/pressroom-cli/internal/filex"
	"github.com/pressroomhq/pressroom-cli/internal/form"
	"github.com/pressroomhq/pressroom-cli/internal/logging"
	"github.com/pressroomhq/pressroom-cli/internal/view"
)

// resourceClient is the subset of api.Resource the page needs. Tests supply
// an in-memory implementation.
type resourceClient[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, p api.Payload) (T, error)
	Update(ctx context.Context, id int64, p api.Payload) (T, error)
	Patch(ctx context.Context, id int64, p api.Payload) (T, error)
	Delete(ctx context.Context, id int64) error
	Download(ctx context.Context, kind string, id int64, dir string) (string, error)
}

// refLister fetches the options of a reference list, e.g. "writers".
type refLister func(ctx context.Context, resource string) ([]form.Option, error)

// resourcePage is the non-generic surface the App dispatches commands to.
// Each entity type gets one page[T] behind it.
type resourcePage interface {
	title() string
	adminOnly() bool
	refresh(ctx context.Context) error
	render(w io.Writer)
	search(q string)
	sortBy(key string)
	goTo(n int)
	show(ctx context.Context, id int64) error
	add(ctx context.Context) error
	edit(ctx context.Context, id int64) error
	remove(ctx context.Context, id int64) error
	download(ctx context.Context, id int64) error
}

// page binds one schema to its REST client, list view and interactive flows.
type page[T any] struct {
	schema      catalog.Schema[T]
	client      resourceClient[T]
	refs        refLister
	view        *view.View[T]
	notifier    Notifier
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	downloadDir string
}

func newPage[T any](
	schema catalog.Schema[T],
	client resourceClient[T],
	refs refLister,
	pageSize int,
	notifier Notifier,
	log logging.Logger,
	reader *bufio.Reader,
	out io.Writer,
	downloadDir string,
) *page[T] {
	var opts []view.Option[T]
	if schema.Keep != nil {
		opts = append(opts, view.WithRowFilter(schema.Keep))
	}
	return &page[T]{
		schema:      schema,
		client:      client,
		refs:        refs,
		view:        view.New(schema.Columns, pageSize, opts...),
		notifier:    notifier,
		log:         log,
		reader:      reader,
		out:         out,
		downloadDir: downloadDir,
	}
}

func (p *page[T]) title() string   { return p.schema.Title }
func (p *page[T]) adminOnly() bool { return p.schema.AdminOnly }

// refresh refetches the full collection. The generation token from BeginLoad
// makes a late result harmless when a newer refresh has started meanwhile.
func (p *page[T]) refresh(ctx context.Context) error {
	gen := p.view.BeginLoad()
	rows, err := p.client.List(ctx)
	if !p.view.FinishLoad(gen, rows, err) {
		return nil
	}
	if err != nil {
		p.notifier.Error(api.UserMessage(err))
		return err
	}
	return nil
}

func (p *page[T]) search(q string) { p.view.SetQuery(q) }
func (p *page[T]) sortBy(key string) {
	p.view.SortBy(key)
}
func (p *page[T]) goTo(n int) { p.view.SetPage(n) }

func (p *page[T]) show(ctx context.Context, id int64) error {
	record, err := p.client.Get(ctx, id)
	if err != nil {
		p.notifier.Error(api.UserMessage(err))
		return err
	}
	fmt.Fprintf(p.out, "%s %d\n", p.schema.Title, id)
	for _, fld := range p.schema.Fields() {
		switch {
		case fld.Get != nil:
			fmt.Fprintf(p.out, "  %s: %s\n", fld.Label, fld.Get(&record))
		case fld.Kind == form.Select:
			// The denormalized name shows through the matching column.
			for _, col := range p.schema.Columns {
				if col.Key == fld.Name {
					fmt.Fprintf(p.out, "  %s: %s\n", fld.Label, col.Value(record))
				}
			}
		}
	}
	return nil
}

func (p *page[T]) add(ctx context.Context) error {
	frm := form.New(p.schema.Fields())
	frm.Begin()
	if err := p.prefetchRefs(ctx, frm); err != nil {
		p.notifier.Error(api.UserMessage(err))
		return err
	}
	if err := p.promptForm(frm); err != nil {
		return err
	}
	if err := p.submit(ctx, frm, 0); err != nil {
		return err
	}
	p.notifier.Success(p.schema.Title + " created")
	return p.refresh(ctx)
}

func (p *page[T]) edit(ctx context.Context, id int64) error {
	frm := form.New(p.schema.Fields())
	frm.BeginEdit()
	record, err := p.client.Get(ctx, id)
	frm.FinishEdit(record, err)
	if err != nil {
		p.notifier.Error(api.UserMessage(err))
		return err
	}
	if err := p.prefetchRefs(ctx, frm); err != nil {
		p.notifier.Error(api.UserMessage(err))
		return err
	}
	if err := p.promptForm(frm); err != nil {
		return err
	}
	if err := p.submit(ctx, frm, id); err != nil {
		return err
	}
	p.notifier.Success(p.schema.Title + " updated")
	return p.refresh(ctx)
}

// remove asks for confirmation first; a declined prompt makes no call at all.
// Soft-delete resources are patched rather than deleted, so the record stays
// recoverable on the backend. A 404 is reported as already gone and the list
// is refreshed anyway.
func (p *page[T]) remove(ctx context.Context, id int64) error {
	ok, err := Confirm(p.reader, fmt.Sprintf("Delete %s %d?", p.schema.Title, id), p.out)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if p.schema.SoftDelete {
		_, err = p.client.Patch(ctx, id, api.JSON(map[string]bool{"deleted": true}))
	} else {
		err = p.client.Delete(ctx, id)
	}

	switch {
	case err == nil:
		p.notifier.Success(p.schema.Title + " deleted")
	case errors.Is(err, api.ErrNotFound):
		p.notifier.Success(p.schema.Title + " already gone")
	default:
		p.notifier.Error(api.UserMessage(err))
		return err
	}
	return p.refresh(ctx)
}

func (p *page[T]) download(ctx context.Context, id int64) error {
	if p.schema.Attachment == "" {
		p.notifier.Error("no attachment for " + p.schema.Title)
		return nil
	}
	dir, err := filex.EnsureSubDir(p.downloadDir)
	if err != nil {
		return err
	}
	p.notifier.Progress("downloading")
	dest, err := p.client.Download(ctx, p.schema.Attachment, id, dir)
	if err != nil {
		p.notifier.Error(api.UserMessage(err))
		return err
	}
	p.notifier.Success("saved to " + dest)
	return nil
}

// prefetchRefs loads every reference list the form needs, concurrently. One
// failed list fails the whole form open, matching the backend being the
// single source of options.
func (p *page[T]) prefetchRefs(ctx context.Context, frm *form.Form[T]) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, fld := range frm.Fields() {
		if fld.Kind != form.Select || fld.Ref == nil {
			continue
		}
		name, resource := fld.Name, fld.Ref.Resource
		g.Go(func() error {
			options, err := p.refs(ctx, resource)
			if err != nil {
				return fmt.Errorf("load %s: %w", resource, err)
			}
			return frm.SetOptions(name, options)
		})
	}
	return g.Wait()
}

// promptForm walks the fields in order. Empty input keeps the current value,
// so editing a record and pressing Enter through untouched fields changes
// nothing — in particular an unchanged title leaves a hand-tuned slug alone.
func (p *page[T]) promptForm(frm *form.Form[T]) error {
	for _, fld := range frm.Fields() {
		switch fld.Kind {
		case form.Multiline:
			text, err := GetMultiline(p.reader, p.fieldPrompt(frm, fld.Name, fld.Label), p.out)
			if err != nil {
				return err
			}
			if text != "" {
				_ = frm.SetValue(fld.Name, text)
			}

		case form.Select:
			if err := p.promptSelect(frm, fld.Name, fld.Label); err != nil {
				return err
			}

		case form.File:
			if err := p.promptFile(frm, fld.Label); err != nil {
				return err
			}

		default:
			text, err := GetSimpleText(p.reader, p.fieldPrompt(frm, fld.Name, fld.Label), p.out)
			if err != nil {
				return err
			}
			if text != "" {
				_ = frm.SetValue(fld.Name, text)
			}
		}
	}
	return nil
}

func (p *page[T]) fieldPrompt(frm *form.Form[T], name, label string) string {
	if current, err := frm.Value(name); err == nil && current != "" {
		return fmt.Sprintf("%s [%s]", label, current)
	}
	return label
}

func (p *page[T]) promptSelect(frm *form.Form[T], name, label string) error {
	options, loaded := frm.Options(name)
	if !loaded {
		fmt.Fprintf(p.out, "%s: list unavailable\n", label)
		return nil
	}
	fmt.Fprintf(p.out, "%s:\n", label)
	for _, o := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", o.ID, o.Name)
	}
	text, err := GetSimpleText(p.reader, label+" id (0 for none, empty to keep)", p.out)
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		fmt.Fprintln(p.out, "not a number, keeping current value")
		return nil
	}
	return frm.Select(name, id)
}

func (p *page[T]) promptFile(frm *form.Form[T], label string) error {
	path, err := GetSimpleText(p.reader, label+" (file path, empty to skip)", p.out)
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		p.notifier.Error("could not read " + path)
		return nil
	}
	staged := form.StagedFile{
		Name:        filepath.Base(path),
		Size:        int64(len(data)),
		ContentType: contentTypeFor(path),
		Data:        data,
	}
	frm.StageFile(staged)
	fmt.Fprintln(p.out, staged.Preview())
	return nil
}

// submit runs the form's single-flight submission. id 0 means create; any
// other id is a full-record update. The payload is multipart whenever the
// schema carries a file field, JSON otherwise.
func (p *page[T]) submit(ctx context.Context, frm *form.Form[T], id int64) error {
	err := frm.Submit(ctx, func(ctx context.Context, record T, file *form.StagedFile) error {
		var payload api.Payload
		switch {
		case file != nil:
			payload = api.Multipart(record, &api.Attachment{
				Field:       p.schema.FileField,
				Name:        file.Name,
				ContentType: file.ContentType,
				Data:        file.Data,
			})
		case p.schema.FileField != "":
			payload = api.Multipart(record, nil)
		default:
			payload = api.JSON(record)
		}

		var callErr error
		if id == 0 {
			_, callErr = p.client.Create(ctx, payload)
		} else {
			_, callErr = p.client.Update(ctx, id, payload)
		}
		return callErr
	})
	if err != nil {
		var ve *form.ValidationError
		if errors.As(err, &ve) {
			p.notifier.Error(ve.Error())
		} else {
			p.notifier.Error(api.UserMessage(err))
		}
		return err
	}
	return nil
}

func contentTypeFor(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
