// Package view is the generic entity-management engine: fetch a
// collection through the shared cache, narrow it with filters, drive a
// create/edit dialog, offer row actions, and export the visible rows.
// Entity pages configure it; they do not reimplement it.
package view

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/apexsales/admin-console/internal/core/domain"
	"github.com/apexsales/admin-console/internal/export"
	"github.com/apexsales/admin-console/internal/metrics"
	"github.com/apexsales/admin-console/internal/view/cache"
	"github.com/apexsales/admin-console/internal/view/filter"
)

// Column describes one table column. The same definition drives both
// rendering and CSV derivation.
type Column[T any] struct {
	Header       string
	Key          string
	Value        func(T) any
	RightAligned bool
	Type         export.ValueType
}

// Action is a row mutation against the remote API; true means success.
type Action[T any] func(ctx context.Context, row T) bool

// Config wires one entity page into the engine.
type Config[T any] struct {
	// Title doubles as the fetch cache key and the export filename stem.
	Title string
	// Fetch loads the collection; nil result means the fetch failed.
	Fetch   func(ctx context.Context) []T
	Columns []Column[T]
	Filters []filter.Definition[T]
	// Dialog handles create/edit. Nil is allowed for views that never
	// mutate (Readonly implies the dialog is unreachable anyway).
	Dialog Dialog[T]

	OnDelete Action[T]

	// ToggleComplete exposes the complete/incomplete row actions.
	ToggleComplete bool
	OnComplete     Action[T]
	OnIncomplete   Action[T]

	// TogglePaid exposes the paid/due row actions.
	TogglePaid bool
	OnPaid     Action[T]
	OnDue      Action[T]

	// ExportFetch, when set, replaces client-side serialization with a
	// server-assembled payload named ExportName.
	ExportFetch func(ctx context.Context) []byte
	ExportName  string

	// Readonly suppresses add, edit, delete and the toggles.
	Readonly bool
}

// View is one mounted instance of the engine.
type View[T any] struct {
	cfg   Config[T]
	cache *cache.Cache
	log   zerolog.Logger

	mu      sync.Mutex
	rows    []T
	values  filter.Values
	loading bool
	closed  bool
}

// Snapshot is what a front end renders: either a loading placeholder or
// the filtered rows.
type Snapshot[T any] struct {
	Title   string
	Loading bool
	Rows    []T
	Columns []Column[T]
	// Readonly tells the renderer to omit the add button and row menu.
	Readonly bool
}

func New[T any](cfg Config[T], c *cache.Cache, log zerolog.Logger) *View[T] {
	return &View[T]{
		cfg:    cfg,
		cache:  c,
		log:    log,
		values: initialValues(cfg.Filters),
	}
}

func initialValues[T any](defs []filter.Definition[T]) filter.Values {
	return filter.Cleared(defs)
}

// Mount loads the collection, deduplicated by title: concurrent mounts of
// the same title share one in-flight fetch and one cached result. A
// result arriving after Close is discarded.
func (v *View[T]) Mount(ctx context.Context) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.loading = true
	v.mu.Unlock()

	rows := cache.Fetch(v.cache, ctx, v.cfg.Title, v.cfg.Fetch)
	v.apply(rows)
}

func (v *View[T]) apply(rows []T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.rows = rows
	v.loading = false
}

// Close marks the view unmounted. In-flight fetch results are ignored
// from here on; there is no cancellation by contract.
func (v *View[T]) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}

// Snapshot derives the currently visible state. While a fetch is in
// flight it reports Loading and nothing else.
func (v *View[T]) Snapshot() Snapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.loading {
		return Snapshot[T]{Title: v.cfg.Title, Loading: true, Columns: v.cfg.Columns, Readonly: v.cfg.Readonly}
	}
	return Snapshot[T]{
		Title:    v.cfg.Title,
		Rows:     filter.Apply(v.rows, v.cfg.Filters, v.values),
		Columns:  v.cfg.Columns,
		Readonly: v.cfg.Readonly,
	}
}

// SetFilter updates one filter's current value.
func (v *View[T]) SetFilter(key string, value filter.Value) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.values[key] = value
}

// ClearFilters resets every filter to its type-appropriate unset state.
func (v *View[T]) ClearFilters() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.values = filter.Cleared(v.cfg.Filters)
}

// Filters exposes the filter definitions for rendering the filter bar.
func (v *View[T]) Filters() []filter.Definition[T] {
	return v.cfg.Filters
}

// AddNew opens the dialog in create mode. No-op on readonly views.
func (v *View[T]) AddNew() {
	if v.cfg.Readonly || v.cfg.Dialog == nil {
		return
	}
	v.cfg.Dialog.Open(nil, false)
}

// Edit opens the dialog in edit mode, pre-populated from row.
func (v *View[T]) Edit(row T) {
	if v.cfg.Readonly || v.cfg.Dialog == nil {
		return
	}
	v.cfg.Dialog.Open(&row, true)
}

// SubmitDialog validates and submits the open dialog. On success the
// title's cache entry is invalidated and the view re-fetched, so the next
// snapshot reflects the mutation. The returned error is the inline form
// message; it never reaches the toast path.
func (v *View[T]) SubmitDialog(ctx context.Context) error {
	if v.cfg.Dialog == nil {
		return nil
	}
	if err := v.cfg.Dialog.Submit(ctx); err != nil {
		return err
	}
	v.cfg.Dialog.Close()
	v.refetch(ctx)
	return nil
}

// Delete runs the delete action for row. Success invalidates and
// re-fetches before the next snapshot is taken.
func (v *View[T]) Delete(ctx context.Context, row T) bool {
	return v.runAction(ctx, v.cfg.OnDelete, row)
}

func (v *View[T]) Complete(ctx context.Context, row T) bool {
	if !v.cfg.ToggleComplete {
		return false
	}
	return v.runAction(ctx, v.cfg.OnComplete, row)
}

func (v *View[T]) Incomplete(ctx context.Context, row T) bool {
	if !v.cfg.ToggleComplete {
		return false
	}
	return v.runAction(ctx, v.cfg.OnIncomplete, row)
}

func (v *View[T]) Paid(ctx context.Context, row T) bool {
	if !v.cfg.TogglePaid {
		return false
	}
	return v.runAction(ctx, v.cfg.OnPaid, row)
}

func (v *View[T]) Due(ctx context.Context, row T) bool {
	if !v.cfg.TogglePaid {
		return false
	}
	return v.runAction(ctx, v.cfg.OnDue, row)
}

func (v *View[T]) runAction(ctx context.Context, action Action[T], row T) bool {
	if v.cfg.Readonly || action == nil {
		return false
	}
	if !action(ctx, row) {
		return false
	}
	v.refetch(ctx)
	return true
}

// refetch invalidates the title key and loads fresh data. Invalidation
// happens before the fetch so no reader can observe the stale entry.
func (v *View[T]) refetch(ctx context.Context) {
	v.cache.Invalidate(v.cfg.Title)
	rows := cache.Fetch(v.cache, ctx, v.cfg.Title, v.cfg.Fetch)
	v.apply(rows)
}

// Export produces the downloadable file: the server payload when the page
// supplies one, otherwise the currently filtered rows serialized here.
func (v *View[T]) Export(ctx context.Context) (*export.File, error) {
	stem := strings.ToLower(v.cfg.Title)
	metrics.ExportsTotal.WithLabelValues(stem).Inc()

	if v.cfg.ExportFetch != nil {
		data := v.cfg.ExportFetch(ctx)
		if data == nil {
			return nil, domain.ErrUnavailable
		}
		return &export.File{Name: v.cfg.ExportName, Data: data}, nil
	}

	snap := v.Snapshot()
	headers := make([]string, len(v.cfg.Columns))
	for i, col := range v.cfg.Columns {
		headers[i] = col.Header
	}
	rows := make([][]export.Cell, len(snap.Rows))
	for i, row := range snap.Rows {
		cells := make([]export.Cell, len(v.cfg.Columns))
		for j, col := range v.cfg.Columns {
			cells[j] = export.Cell{Value: col.Value(row), Type: col.Type}
		}
		rows[i] = cells
	}
	return &export.File{Name: stem + ".csv", Data: export.CSV(headers, rows)}, nil
}
