package view

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/apexsales/admin-console/internal/export"
	"github.com/apexsales/admin-console/internal/view/cache"
	"github.com/apexsales/admin-console/internal/view/filter"
)

var discardLogger = zerolog.Nop()

type item struct {
	ID   int
	Name string
	Done bool
}

// ---------------------------------------------------------------------------
// Stub dialog
// ---------------------------------------------------------------------------

type stubDialog struct {
	open        bool
	editMode    bool
	opened      *item
	submitErr   error
	submitCalls int
	closeCalls  int
}

func (d *stubDialog) Open(entity *item, editMode bool) {
	d.open = true
	d.editMode = editMode
	d.opened = entity
}

func (d *stubDialog) Close()       { d.open = false; d.closeCalls++ }
func (d *stubDialog) IsOpen() bool { return d.open }

func (d *stubDialog) Submit(context.Context) error {
	d.submitCalls++
	return d.submitErr
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

type fetchCounter struct {
	calls int
	rows  []item
}

func (f *fetchCounter) fetch(context.Context) []item {
	f.calls++
	return f.rows
}

func itemColumns() []Column[item] {
	return []Column[item]{
		{Header: "Name", Key: "name", Value: func(i item) any { return i.Name }},
		{Header: "Done", Key: "done", Value: func(i item) any { return i.Done }, Type: export.TypeBool},
	}
}

func itemFilters() []filter.Definition[item] {
	return []filter.Definition[item]{
		{Key: "name", Kind: filter.KindString, Value: func(i item) any { return i.Name }},
	}
}

func newTestView(cfg Config[item]) *View[item] {
	return New(cfg, cache.New(), discardLogger)
}

// ---------------------------------------------------------------------------
// Mount and snapshot
// ---------------------------------------------------------------------------

func TestView_SnapshotBeforeMountIsEmpty(t *testing.T) {
	f := &fetchCounter{rows: []item{{ID: 1, Name: "a"}}}
	v := newTestView(Config[item]{Title: "Items", Fetch: f.fetch, Columns: itemColumns()})

	snap := v.Snapshot()
	if snap.Loading {
		t.Error("unmounted view is not loading")
	}
	if len(snap.Rows) != 0 {
		t.Errorf("expected no rows before mount, got %d", len(snap.Rows))
	}
	if f.calls != 0 {
		t.Error("snapshot must not trigger a fetch")
	}
}

func TestView_MountLoadsRows(t *testing.T) {
	f := &fetchCounter{rows: []item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}}
	v := newTestView(Config[item]{Title: "Items", Fetch: f.fetch, Columns: itemColumns()})

	v.Mount(context.Background())

	snap := v.Snapshot()
	if snap.Loading {
		t.Fatal("mount completed, view must not be loading")
	}
	if len(snap.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(snap.Rows))
	}
	if f.calls != 1 {
		t.Errorf("expected 1 fetch, got %d", f.calls)
	}
}

func TestView_TwoMountsShareOneFetch(t *testing.T) {
	c := cache.New()
	f := &fetchCounter{rows: []item{{ID: 1, Name: "a"}}}
	cfg := Config[item]{Title: "Items", Fetch: f.fetch, Columns: itemColumns()}

	a := New(cfg, c, discardLogger)
	b := New(cfg, c, discardLogger)
	a.Mount(context.Background())
	b.Mount(context.Background())

	if f.calls != 1 {
		t.Fatalf("same title must share one fetch, got %d", f.calls)
	}
	if len(b.Snapshot().Rows) != 1 {
		t.Error("second mount must see the shared result")
	}
}

func TestView_ResultAfterCloseIsDiscarded(t *testing.T) {
	f := &fetchCounter{rows: []item{{ID: 1, Name: "late"}}}
	v := newTestView(Config[item]{Title: "Items", Fetch: f.fetch, Columns: itemColumns()})

	v.Close()
	v.Mount(context.Background())

	snap := v.Snapshot()
	if len(snap.Rows) != 0 {
		t.Fatalf("closed view must discard results, got %d rows", len(snap.Rows))
	}
}

// ---------------------------------------------------------------------------
// Filters
// ---------------------------------------------------------------------------

func TestView_SetFilterNarrowsSnapshot(t *testing.T) {
	f := &fetchCounter{rows: []item{{Name: "Smith"}, {Name: "Jones"}, {Name: "Smithers"}}}
	v := newTestView(Config[item]{Title: "Items", Fetch: f.fetch, Columns: itemColumns(), Filters: itemFilters()})
	v.Mount(context.Background())

	v.SetFilter("name", filter.String("smi"))
	if got := len(v.Snapshot().Rows); got != 2 {
		t.Fatalf("expected 2 filtered rows, got %d", got)
	}

	v.ClearFilters()
	if got := len(v.Snapshot().Rows); got != 3 {
		t.Fatalf("expected all rows after clear, got %d", got)
	}
}

// ---------------------------------------------------------------------------
// Dialog
// ---------------------------------------------------------------------------

func TestView_AddNewOpensCreateMode(t *testing.T) {
	d := &stubDialog{}
	v := newTestView(Config[item]{Title: "Items", Fetch: (&fetchCounter{}).fetch, Dialog: d})

	v.AddNew()
	if !d.open || d.editMode || d.opened != nil {
		t.Fatalf("dialog state wrong: open=%v edit=%v entity=%v", d.open, d.editMode, d.opened)
	}
}

func TestView_EditOpensWithRow(t *testing.T) {
	d := &stubDialog{}
	v := newTestView(Config[item]{Title: "Items", Fetch: (&fetchCounter{}).fetch, Dialog: d})

	v.Edit(item{ID: 7, Name: "x"})
	if !d.open || !d.editMode {
		t.Fatal("expected edit-mode dialog")
	}
	if d.opened == nil || d.opened.ID != 7 {
		t.Errorf("entity = %v", d.opened)
	}
}

func TestView_ReadonlySuppressesDialogAndActions(t *testing.T) {
	d := &stubDialog{}
	deleted := 0
	f := &fetchCounter{rows: []item{{ID: 1}}}
	v := newTestView(Config[item]{
		Title:    "Items",
		Fetch:    f.fetch,
		Dialog:   d,
		Readonly: true,
		OnDelete: func(context.Context, item) bool { deleted++; return true },
	})
	v.Mount(context.Background())

	v.AddNew()
	v.Edit(item{ID: 1})
	if d.open {
		t.Error("readonly view must not open the dialog")
	}
	if v.Delete(context.Background(), item{ID: 1}) {
		t.Error("readonly view must not delete")
	}
	if deleted != 0 {
		t.Errorf("delete action ran %d times", deleted)
	}
}

func TestView_SubmitDialogSuccessClosesAndRefetches(t *testing.T) {
	d := &stubDialog{}
	f := &fetchCounter{rows: []item{{ID: 1}}}
	v := newTestView(Config[item]{Title: "Items", Fetch: f.fetch, Dialog: d})
	v.Mount(context.Background())

	v.AddNew()
	if err := v.SubmitDialog(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.open {
		t.Error("dialog must close after a successful submit")
	}
	if f.calls != 2 {
		t.Errorf("expected a refetch after submit, got %d fetches", f.calls)
	}
}

func TestView_SubmitDialogErrorKeepsDialogOpen(t *testing.T) {
	d := &stubDialog{submitErr: errors.New("first name is required")}
	f := &fetchCounter{}
	v := newTestView(Config[item]{Title: "Items", Fetch: f.fetch, Dialog: d})
	v.Mount(context.Background())

	v.AddNew()
	if err := v.SubmitDialog(context.Background()); err == nil {
		t.Fatal("expected the validation error back")
	}
	if !d.open {
		t.Error("dialog must stay open on a failed submit")
	}
	if f.calls != 1 {
		t.Errorf("failed submit must not refetch, got %d fetches", f.calls)
	}
}

// ---------------------------------------------------------------------------
// Row actions
// ---------------------------------------------------------------------------

func TestView_DeleteSuccessRefetches(t *testing.T) {
	f := &fetchCounter{rows: []item{{ID: 1}, {ID: 2}}}
	v := newTestView(Config[item]{
		Title:    "Items",
		Fetch:    f.fetch,
		OnDelete: func(context.Context, item) bool { return true },
	})
	v.Mount(context.Background())

	if !v.Delete(context.Background(), item{ID: 1}) {
		t.Fatal("expected delete to succeed")
	}
	if f.calls != 2 {
		t.Errorf("expected invalidate+refetch, got %d fetches", f.calls)
	}
}

func TestView_DeleteFailureDoesNotRefetch(t *testing.T) {
	f := &fetchCounter{rows: []item{{ID: 1}}}
	v := newTestView(Config[item]{
		Title:    "Items",
		Fetch:    f.fetch,
		OnDelete: func(context.Context, item) bool { return false },
	})
	v.Mount(context.Background())

	if v.Delete(context.Background(), item{ID: 1}) {
		t.Fatal("expected delete to fail")
	}
	if f.calls != 1 {
		t.Errorf("failed delete must keep the cached rows, got %d fetches", f.calls)
	}
}

func TestView_TogglesRequireEnablement(t *testing.T) {
	ran := 0
	action := func(context.Context, item) bool { ran++; return true }
	f := &fetchCounter{}
	v := newTestView(Config[item]{
		Title:        "Items",
		Fetch:        f.fetch,
		OnComplete:   action,
		OnIncomplete: action,
		OnPaid:       action,
		OnDue:        action,
	})
	v.Mount(context.Background())

	if v.Complete(context.Background(), item{}) || v.Incomplete(context.Background(), item{}) {
		t.Error("complete toggle must be off without ToggleComplete")
	}
	if v.Paid(context.Background(), item{}) || v.Due(context.Background(), item{}) {
		t.Error("paid toggle must be off without TogglePaid")
	}
	if ran != 0 {
		t.Errorf("actions ran %d times", ran)
	}
}

func TestView_PaidToggleRuns(t *testing.T) {
	f := &fetchCounter{}
	v := newTestView(Config[item]{
		Title:      "Items",
		Fetch:      f.fetch,
		TogglePaid: true,
		OnPaid:     func(context.Context, item) bool { return true },
	})
	v.Mount(context.Background())

	if !v.Paid(context.Background(), item{ID: 1}) {
		t.Fatal("expected paid action to run")
	}
}

// ---------------------------------------------------------------------------
// Export
// ---------------------------------------------------------------------------

func TestView_ExportClientSideUsesFilteredRows(t *testing.T) {
	f := &fetchCounter{rows: []item{{Name: "Smith", Done: true}, {Name: "Jones"}}}
	v := newTestView(Config[item]{Title: "Items", Fetch: f.fetch, Columns: itemColumns(), Filters: itemFilters()})
	v.Mount(context.Background())
	v.SetFilter("name", filter.String("smith"))

	file, err := v.Export(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file.Name != "items.csv" {
		t.Errorf("name = %q", file.Name)
	}
	got := string(file.Data)
	want := "Name,Done\r\n\"Smith\",\"Yes\"\r\n"
	if got != want {
		t.Errorf("data = %q, want %q", got, want)
	}
	if strings.Contains(got, "Jones") {
		t.Error("filtered-out rows must not be exported")
	}
}

func TestView_ExportServerSideUsesFixedName(t *testing.T) {
	payload := []byte("a,b\r\n")
	v := newTestView(Config[item]{
		Title:       "Items",
		Fetch:       (&fetchCounter{}).fetch,
		ExportFetch: func(context.Context) []byte { return payload },
		ExportName:  "items_export.csv",
	})

	file, err := v.Export(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file.Name != "items_export.csv" {
		t.Errorf("name = %q", file.Name)
	}
	if string(file.Data) != "a,b\r\n" {
		t.Errorf("data = %q", file.Data)
	}
}

func TestView_ExportServerFailure(t *testing.T) {
	v := newTestView(Config[item]{
		Title:       "Items",
		Fetch:       (&fetchCounter{}).fetch,
		ExportFetch: func(context.Context) []byte { return nil },
		ExportName:  "items_export.csv",
	})

	if _, err := v.Export(context.Background()); err == nil {
		t.Fatal("expected an error when the server export fails")
	}
}
