package catalog

import (
	"errors"
	"strings"
	"testing"

	cberrors "github.com/DiegoGarzaro/cookbook-2.0/pkg/errors"
	"github.com/DiegoGarzaro/cookbook-2.0/pkg/receipt"
	"github.com/DiegoGarzaro/cookbook-2.0/pkg/store"
)

// fakeStore keeps records in memory and counts adapter calls, so tests
// can assert exactly one persistence operation per mutation.
type fakeStore struct {
	recs     []store.Record
	appends  int
	rewrites int
	missing  bool
	fail     error
}

func (f *fakeStore) LoadAll() ([]store.Record, error) {
	if f.missing {
		return nil, cberrors.ErrNoStore
	}
	return append([]store.Record(nil), f.recs...), nil
}

func (f *fakeStore) Append(rec store.Record) error {
	if f.fail != nil {
		return f.fail
	}
	f.appends++
	f.recs = append(f.recs, rec)
	return nil
}

func (f *fakeStore) RewriteAll(recs []store.Record) error {
	if f.fail != nil {
		return f.fail
	}
	f.rewrites++
	f.recs = append([]store.Record(nil), recs...)
	return nil
}

func summaries(c *Catalog) []Summary {
	var out []Summary
	for s := range c.Summaries() {
		out = append(out, s)
	}
	return out
}

func str(s string) *string { return &s }

func TestLoadMissingStoreStartsEmpty(t *testing.T) {
	c, err := Load(&fakeStore{missing: true})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty catalog, got %d receipts", c.Len())
	}
	if got := summaries(c); len(got) != 0 {
		t.Fatalf("expected empty summaries, got %v", got)
	}
}

func TestAddIntoEmptyCatalog(t *testing.T) {
	f := &fakeStore{missing: true}
	c, err := Load(f)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if _, err := c.Add("Banana", "peel it"); err != nil {
		t.Fatalf("add: %v", err)
	}

	got := summaries(c)
	if len(got) != 1 || got[0].ID != 0 || got[0].Name != "Banana" {
		t.Fatalf("expected [(0, Banana)], got %v", got)
	}
	if f.appends != 1 || f.rewrites != 0 {
		t.Fatalf("add must append exactly once, got %d appends %d rewrites", f.appends, f.rewrites)
	}
}

func TestLoadAssignsIDsInFileOrder(t *testing.T) {
	f := &fakeStore{recs: []store.Record{
		{Name: "Banana", Body: "peel it"},
		{Name: "Apple pie", Body: "bake it"},
	}}
	c, err := Load(f)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	got := summaries(c)
	if len(got) != 2 {
		t.Fatalf("expected 2 summaries, got %v", got)
	}
	// Sorted by name, ids reflect file order.
	if got[0].ID != 1 || got[0].Name != "Apple pie" {
		t.Fatalf("expected (1, Apple pie) first, got %v", got[0])
	}
	if got[1].ID != 0 || got[1].Name != "Banana" {
		t.Fatalf("expected (0, Banana) second, got %v", got[1])
	}
}

func TestIDsStrictlyIncrease(t *testing.T) {
	f := &fakeStore{recs: []store.Record{{Name: "Banana", Body: "b"}}}
	c, err := Load(f)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	r1, err := c.Add("Apple", "a")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if r1.ID != 1 {
		t.Fatalf("expected first fresh id to continue past loaded ids, got %d", r1.ID)
	}

	if err := c.Delete(r1.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	r2, err := c.Add("Cherry", "c")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if r2.ID != 2 {
		t.Fatalf("ids must never be reused, expected 2, got %d", r2.ID)
	}
}

func TestAddKeepsCaseInsensitiveOrder(t *testing.T) {
	c := New(&fakeStore{})
	for _, name := range []string{"banana", "Apple", "cherry", "APRICOT"} {
		if _, err := c.Add(name, ""); err != nil {
			t.Fatalf("add %q: %v", name, err)
		}
	}

	var names []string
	for s := range c.Summaries() {
		names = append(names, s.Name)
	}
	want := []string{"Apple", "APRICOT", "banana", "cherry"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, names)
		}
	}
}

func TestAddStableTieBreak(t *testing.T) {
	c := New(&fakeStore{})
	if _, err := c.Add("apple", "first"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := c.Add("Apple", "second"); err != nil {
		t.Fatalf("add: %v", err)
	}

	got := summaries(c)
	if got[0].Name != "apple" || got[1].Name != "Apple" {
		t.Fatalf("equal-comparing names must keep insertion order, got %v", got)
	}
}

func TestAddEmptyNameIsSkipped(t *testing.T) {
	f := &fakeStore{}
	c := New(f)

	for _, name := range []string{"", "\n", "\r\n"} {
		if _, err := c.Add(name, "body"); !errors.Is(err, cberrors.ErrEmptyName) {
			t.Fatalf("add %q: expected ErrEmptyName, got %v", name, err)
		}
	}
	if c.Len() != 0 || f.appends != 0 {
		t.Fatalf("skipped add must not change anything, len=%d appends=%d", c.Len(), f.appends)
	}
}

func TestAddTruncationBoundary(t *testing.T) {
	c := New(&fakeStore{})

	exact := strings.Repeat("a", receipt.MaxNameLen)
	r, err := c.Add(exact, "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if r.Name != exact {
		t.Fatalf("name of max length must be stored untouched, got %q", r.Name)
	}

	r, err = c.Add(exact+"b", "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if r.Name != exact {
		t.Fatalf("expected one-over name truncated to %d bytes, got %d", receipt.MaxNameLen, len(r.Name))
	}
}

func TestViewNotFound(t *testing.T) {
	c := New(&fakeStore{})
	if _, err := c.View(7); !errors.Is(err, cberrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := c.Add("Soup", "boil it"); err != nil {
		t.Fatalf("add: %v", err)
	}
	r, err := c.View(0)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if r.Name != "Soup" || r.Body != "boil it" {
		t.Fatalf("unexpected receipt: %+v", r)
	}
}

func TestUpdateRenameMovesEntry(t *testing.T) {
	f := &fakeStore{recs: []store.Record{
		{Name: "Banana", Body: "peel it"},
		{Name: "Apple pie", Body: "bake it"},
	}}
	c, err := Load(f)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	// id 1 is "Apple pie"; renaming moves it to the end, empty body
	// keeps the current one.
	if err := c.Update(1, str("Zebra cake"), str("")); err != nil {
		t.Fatalf("update: %v", err)
	}

	got := summaries(c)
	if got[len(got)-1].Name != "Zebra cake" || got[len(got)-1].ID != 1 {
		t.Fatalf("expected Zebra cake last, got %v", got)
	}
	r, err := c.View(1)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if r.Body != "bake it" {
		t.Fatalf("body must be unchanged, got %q", r.Body)
	}
	if f.rewrites != 1 {
		t.Fatalf("update must rewrite exactly once, got %d", f.rewrites)
	}
}

func TestUpdateBodyOnlyStillRewrites(t *testing.T) {
	f := &fakeStore{}
	c := New(f)
	if _, err := c.Add("Soup", "boil it"); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := c.Update(0, nil, str("simmer it")); err != nil {
		t.Fatalf("update: %v", err)
	}

	r, _ := c.View(0)
	if r.Body != "simmer it" {
		t.Fatalf("expected body replaced, got %q", r.Body)
	}
	if f.rewrites != 1 {
		t.Fatalf("body-only update must rewrite the store, got %d rewrites", f.rewrites)
	}
}

func TestUpdateSameNameDoesNotResort(t *testing.T) {
	f := &fakeStore{}
	c := New(f)
	if _, err := c.Add("apple", "first"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := c.Add("Apple", "second"); err != nil {
		t.Fatalf("add: %v", err)
	}

	// Byte-identical name is not a change; order must hold.
	if err := c.Update(0, str("apple"), nil); err != nil {
		t.Fatalf("update: %v", err)
	}
	got := summaries(c)
	if got[0].ID != 0 || got[1].ID != 1 {
		t.Fatalf("order changed on a no-op rename: %v", got)
	}
}

func TestUpdateNothingProvidedIsIdempotent(t *testing.T) {
	f := &fakeStore{}
	c := New(f)
	if _, err := c.Add("Soup", "boil it"); err != nil {
		t.Fatalf("add: %v", err)
	}
	f.rewrites = 0

	if err := c.Update(0, nil, nil); err != nil {
		t.Fatalf("update: %v", err)
	}
	if f.rewrites != 0 {
		t.Fatalf("update with nothing provided must not write, got %d rewrites", f.rewrites)
	}
}

func TestUpdateNotFound(t *testing.T) {
	f := &fakeStore{}
	c := New(f)
	if _, err := c.Add("Soup", "boil it"); err != nil {
		t.Fatalf("add: %v", err)
	}
	f.rewrites = 0

	err := c.Update(99, str("New name"), nil)
	if !errors.Is(err, cberrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if f.rewrites != 0 {
		t.Fatalf("not-found update must not write, got %d rewrites", f.rewrites)
	}
}

func TestDeleteRemovesAndRewrites(t *testing.T) {
	f := &fakeStore{}
	c := New(f)
	if _, err := c.Add("Soup", "boil it"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := c.Add("Bread", "knead it"); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := c.Delete(0); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got := summaries(c)
	if len(got) != 1 || got[0].Name != "Bread" {
		t.Fatalf("unexpected remaining receipts: %v", got)
	}
	if len(f.recs) != 1 || f.recs[0].Name != "Bread" {
		t.Fatalf("store not rewritten with the remainder: %v", f.recs)
	}
}

func TestDeleteNotFoundLeavesCatalogUnchanged(t *testing.T) {
	f := &fakeStore{}
	c := New(f)
	if _, err := c.Add("Soup", "boil it"); err != nil {
		t.Fatalf("add: %v", err)
	}
	f.rewrites = 0

	if err := c.Delete(99); !errors.Is(err, cberrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	got := summaries(c)
	if len(got) != 1 || got[0].Name != "Soup" {
		t.Fatalf("catalog changed on a failed delete: %v", got)
	}
	if f.rewrites != 0 {
		t.Fatalf("failed delete must not write, got %d rewrites", f.rewrites)
	}
}

func TestDeleteFromEmptyCatalog(t *testing.T) {
	c := New(&fakeStore{})
	if err := c.Delete(0); !errors.Is(err, cberrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddKeepsReceiptWhenWriteFails(t *testing.T) {
	f := &fakeStore{fail: errors.New("disk full")}
	c := New(f)

	r, err := c.Add("Soup", "boil it")
	if err == nil {
		t.Fatal("expected a write failure")
	}
	if r == nil || c.Len() != 1 {
		t.Fatalf("in-memory state must stay authoritative after a write failure, len=%d", c.Len())
	}
}

func TestSummariesRestartable(t *testing.T) {
	c := New(&fakeStore{})
	for _, name := range []string{"b", "a", "c"} {
		if _, err := c.Add(name, ""); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	seq := c.Summaries()
	first := 0
	for range seq {
		first++
		break // abandon early
	}
	second := 0
	for range seq {
		second++
	}
	if second != 3 {
		t.Fatalf("summaries must be restartable, second pass saw %d", second)
	}
}
