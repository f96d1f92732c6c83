// Package view implements the client-side list view shared by every resource
// page: free-text filtering, locale-aware column sorting and fixed-size
// pagination over a collection fetched in full from the backend. Nothing here
// touches the network; the owner loads rows and hands them over.
package view

import (
	"math"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Column describes one table column for a row type T. Value must be total:
// for a missing underlying field it returns "", which sorts equal to other
// missing values.
type Column[T any] struct {
	Key        string
	Title      string
	Value      func(T) string
	Searchable bool
}

type Direction int

const (
	Ascending Direction = iota
	Descending
)

// View holds the fetched collection plus the user's filter/sort/page state.
// A generation counter guards loads: a result that finishes after a newer
// load began is discarded, so a stale response never overwrites fresh rows.
type View[T any] struct {
	mu       sync.Mutex
	columns  []Column[T]
	pageSize int
	keep     func(T) bool
	coll     *collate.Collator

	rows    []T
	loaded  bool
	loading bool
	err     error
	gen     uint64

	query   string
	sortKey string
	dir     Direction
	page    int
}

type Option[T any] func(*View[T])

// WithRowFilter drops rows the view should never display, e.g. soft-deleted
// records the backend still returns.
func WithRowFilter[T any](keep func(T) bool) Option[T] {
	return func(v *View[T]) { v.keep = keep }
}

func New[T any](columns []Column[T], pageSize int, opts ...Option[T]) *View[T] {
	if pageSize < 1 {
		pageSize = 10
	}
	v := &View[T]{
		columns:  columns,
		pageSize: pageSize,
		coll:     collate.New(language.English, collate.Loose),
		page:     1,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *View[T]) Columns() []Column[T] { return v.columns }

// BeginLoad marks the view loading and returns the generation token the
// caller must pass back to FinishLoad.
func (v *View[T]) BeginLoad() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.gen++
	v.loading = true
	return v.gen
}

// FinishLoad applies a fetch result. It reports false — and changes nothing —
// when gen is stale, i.e. another load started after this one.
func (v *View[T]) FinishLoad(gen uint64, rows []T, err error) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return false
	}
	v.loading = false
	v.err = err
	if err != nil {
		// Failed refresh: show an empty table rather than stale rows.
		v.rows = nil
		v.loaded = false
		return true
	}
	v.rows = rows
	v.loaded = true
	v.clampPageLocked()
	return true
}

func (v *View[T]) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

func (v *View[T]) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// SetQuery installs a free-text filter and resets to the first page.
func (v *View[T]) SetQuery(q string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.query = strings.TrimSpace(q)
	v.page = 1
}

func (v *View[T]) Query() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.query
}

// SortBy orders by the given column key. Sorting the same key again toggles
// the direction; a new key starts ascending. Unknown keys are ignored.
func (v *View[T]) SortBy(key string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.columnByKey(key) == nil {
		return
	}
	if v.sortKey == key {
		if v.dir == Ascending {
			v.dir = Descending
		} else {
			v.dir = Ascending
		}
		return
	}
	v.sortKey = key
	v.dir = Ascending
}

func (v *View[T]) SortState() (string, Direction) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.sortKey, v.dir
}

// SetPage moves to page n, clamped to [1, PageCount].
func (v *View[T]) SetPage(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.page = n
	v.clampPageLocked()
}

// Page returns the rows of the current page of the filtered+sorted set.
func (v *View[T]) Page() []T {
	v.mu.Lock()
	defer v.mu.Unlock()
	rows := v.visibleLocked()
	start := (v.page - 1) * v.pageSize
	if start >= len(rows) {
		return nil
	}
	end := start + v.pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// PageInfo reports the current page number, the page count and the filtered
// row total.
func (v *View[T]) PageInfo() (page, pages, total int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	total = len(v.visibleLocked())
	pages = pageCount(total, v.pageSize)
	return v.page, pages, total
}

func pageCount(total, size int) int {
	if total == 0 {
		return 1
	}
	return int(math.Ceil(float64(total) / float64(size)))
}

func (v *View[T]) clampPageLocked() {
	pages := pageCount(len(v.visibleLocked()), v.pageSize)
	if v.page < 1 {
		v.page = 1
	}
	if v.page > pages {
		v.page = pages
	}
}

func (v *View[T]) columnByKey(key string) *Column[T] {
	for i := range v.columns {
		if v.columns[i].Key == key {
			return &v.columns[i]
		}
	}
	return nil
}

// visibleLocked recomputes filter and sort from the fetched rows on every
// call, so repeated sorts of the same data stay deterministic.
func (v *View[T]) visibleLocked() []T {
	out := make([]T, 0, len(v.rows))
	query := strings.ToLower(v.query)
	for _, row := range v.rows {
		if v.keep != nil && !v.keep(row) {
			continue
		}
		if query != "" && !v.matchesLocked(row, query) {
			continue
		}
		out = append(out, row)
	}

	if col := v.columnByKey(v.sortKey); col != nil {
		sort.SliceStable(out, func(i, j int) bool {
			cmp := v.coll.CompareString(col.Value(out[i]), col.Value(out[j]))
			if v.dir == Descending {
				return cmp > 0
			}
			return cmp < 0
		})
	}
	return out
}

func (v *View[T]) matchesLocked(row T, lowered string) bool {
	for _, col := range v.columns {
		if !col.Searchable {
			continue
		}
		if strings.Contains(strings.ToLower(col.Value(row)), lowered) {
			return true
		}
	}
	return false
}
