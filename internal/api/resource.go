package api

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Resource is the typed client for one entity's REST endpoint family:
//
//	GET    /api/<path>        list
//	POST   /api/<path>        create
//	GET    /api/<path>/<id>   get
//	PUT    /api/<path>/<id>   update (full record)
//	PATCH  /api/<path>/<id>   patch (partial)
//	DELETE /api/<path>/<id>   delete
//
// Update is the house convention for edits; Patch exists for partial updates
// such as toggling a soft-delete flag.
type Resource[T any] struct {
	c    *Client
	path string
}

func NewResource[T any](c *Client, path string) *Resource[T] {
	return &Resource[T]{c: c, path: path}
}

// Path returns the resource's path segment, e.g. "tags".
func (r *Resource[T]) Path() string { return r.path }

func (r *Resource[T]) endpoint(parts ...string) string {
	if len(parts) == 0 {
		return "/api/" + r.path
	}
	return "/api/" + r.path + "/" + strings.Join(parts, "/")
}

// List fetches the full collection in server-provided order.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.c.do(ctx, http.MethodGet, r.endpoint(), nil, &out); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.path, err)
	}
	return out, nil
}

func (r *Resource[T]) Get(ctx context.Context, id int64) (T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodGet, r.endpoint(idSegment(id)), nil, &out); err != nil {
		return out, fmt.Errorf("get %s/%d: %w", r.path, id, err)
	}
	return out, nil
}

func (r *Resource[T]) Create(ctx context.Context, p Payload) (T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPost, r.endpoint(), p, &out); err != nil {
		return out, fmt.Errorf("create %s: %w", r.path, err)
	}
	return out, nil
}

func (r *Resource[T]) Update(ctx context.Context, id int64, p Payload) (T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPut, r.endpoint(idSegment(id)), p, &out); err != nil {
		return out, fmt.Errorf("update %s/%d: %w", r.path, id, err)
	}
	return out, nil
}

func (r *Resource[T]) Patch(ctx context.Context, id int64, p Payload) (T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPatch, r.endpoint(idSegment(id)), p, &out); err != nil {
		return out, fmt.Errorf("patch %s/%d: %w", r.path, id, err)
	}
	return out, nil
}

func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	if err := r.c.do(ctx, http.MethodDelete, r.endpoint(idSegment(id)), nil, nil); err != nil {
		return fmt.Errorf("delete %s/%d: %w", r.path, id, err)
	}
	return nil
}

// Download fetches the binary sub-resource of kind ("image", "cover",
// "attachment") for id and writes it into dir, named after the kind, id and
// the extension implied by the response content type. Returns the written
// file path.
func (r *Resource[T]) Download(ctx context.Context, kind string, id int64, dir string) (string, error) {
	data, contentType, err := r.c.fetch(ctx, r.endpoint(kind, idSegment(id)))
	if err != nil {
		return "", fmt.Errorf("download %s/%s/%d: %w", r.path, kind, id, err)
	}

	name := fmt.Sprintf("%s-%s-%d%s", r.path, kind, id, extensionFor(contentType))
	dest := filepath.Join(dir, name)
	if err := os.WriteFile(dest, data, 0o660); err != nil {
		return "", fmt.Errorf("save %s: %w", dest, err)
	}
	return dest, nil
}

func idSegment(id int64) string { return fmt.Sprintf("%d", id) }

func extensionFor(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ".bin"
	}
	switch mediaType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "application/pdf":
		return ".pdf"
	}
	if exts, err := mime.ExtensionsByType(mediaType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ".bin"
}
