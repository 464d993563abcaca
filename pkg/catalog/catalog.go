// Package catalog owns the in-memory, name-ordered collection of
// receipts and keeps it synchronized with the persisted store: adds are
// appended, updates and deletes rewrite the whole file.
package catalog

import (
	"errors"
	"fmt"
	"iter"
	"sort"
	"strings"

	cberrors "github.com/DiegoGarzaro/cookbook-2.0/pkg/errors"
	"github.com/DiegoGarzaro/cookbook-2.0/pkg/logging"
	"github.com/DiegoGarzaro/cookbook-2.0/pkg/receipt"
	"github.com/DiegoGarzaro/cookbook-2.0/pkg/store"
)

// Catalog is the ordered collection of receipts. It is not safe for
// concurrent use; the cookbook is a single-user, single-session tool.
type Catalog struct {
	receipts []*receipt.Receipt // ascending by name, case-insensitive
	p        store.Persistence

	// nextID is the id generator. It only ever increases and is never
	// persisted, so ids are unique for the process lifetime. Keeping it
	// as catalog state (seeded by Load) means there is no lazy
	// "uninitialized" sentinel to confuse with a legitimate id 0.
	nextID uint64
}

// Summary is the (id, name) pair produced for listings.
type Summary struct {
	ID   uint64
	Name string
}

// New returns an empty catalog writing through p.
func New(p store.Persistence) *Catalog {
	return &Catalog{p: p}
}

// Load reads every persisted record and builds the catalog. Records get
// fresh ids in file order (0, 1, 2, ...) and are inserted through the
// same sorted-insert path as runtime adds. A missing store file is not
// an error; the catalog starts empty.
func Load(p store.Persistence) (*Catalog, error) {
	c := New(p)

	recs, err := p.LoadAll()
	if err != nil {
		if errors.Is(err, cberrors.ErrNoStore) {
			logging.Default().Warn().Msg("receipts file does not exist yet, starting empty")
			return c, nil
		}
		return nil, err
	}

	for _, rec := range recs {
		r := receipt.New(rec.Name, rec.Body)
		r.ID = c.allocateID()
		c.insert(r)
	}

	logging.Default().Info().Int("count", len(recs)).Msg("receipts loaded")
	return c, nil
}

// Len reports how many receipts are in the catalog.
func (c *Catalog) Len() int {
	return len(c.receipts)
}

// Add creates a receipt, inserts it in sorted position and appends it
// to the store. A name that is empty after trimming line terminators is
// skipped with ErrEmptyName and nothing changes. If the append fails
// the receipt stays in the catalog and the write error is returned; the
// in-memory state remains authoritative.
func (c *Catalog) Add(name, body string) (*receipt.Receipt, error) {
	name = strings.Trim(name, "\r\n")
	if name == "" {
		return nil, cberrors.ErrEmptyName
	}

	r := receipt.New(name, body)
	r.ID = c.allocateID()
	c.insert(r)

	if err := c.p.Append(store.Record{Name: r.Name, Body: r.Body}); err != nil {
		logging.Default().Error().Err(err).Str("name", r.Name).Msg("failed to save receipt")
		return r, fmt.Errorf("save receipt %q: %w", r.Name, err)
	}
	logging.Default().Debug().Uint64("id", r.ID).Str("name", r.Name).Msg("receipt added")
	return r, nil
}

// View returns the receipt with the given id, or a NotFoundError.
func (c *Catalog) View(id uint64) (*receipt.Receipt, error) {
	if r := c.find(id); r != nil {
		return r, nil
	}
	return nil, cberrors.NewNotFoundError(id)
}

// Update changes the name and/or body of the receipt with the given id.
// A nil argument means "not provided"; a pointer to the empty string
// means "keep the current value". When both arguments are nil the call
// returns immediately without scanning or writing. A provided name only
// takes effect when it differs byte-for-byte from the current one, in
// which case the receipt is detached and reinserted so the sort order
// holds. Any found-and-provided update rewrites the whole store, body
// changes included.
func (c *Catalog) Update(id uint64, newName, newBody *string) error {
	if newName == nil && newBody == nil {
		logging.Default().Info().Uint64("id", id).Msg("no changes were made")
		return nil
	}

	idx := c.indexOf(id)
	if idx < 0 {
		return cberrors.NewNotFoundError(id)
	}
	r := c.receipts[idx]

	nameChanged := false
	if newName != nil && *newName != "" && *newName != r.Name {
		r.Name = receipt.Truncate(*newName, receipt.MaxNameLen)
		nameChanged = true
	}
	if newBody != nil && *newBody != "" {
		r.Body = receipt.Truncate(*newBody, receipt.MaxBodyLen)
	}

	if nameChanged {
		c.receipts = append(c.receipts[:idx], c.receipts[idx+1:]...)
		c.insert(r)
		logging.Default().Info().Uint64("id", id).Msg("receipt updated and re-sorted")
	} else {
		logging.Default().Info().Uint64("id", id).Msg("receipt updated (order unchanged)")
	}

	if err := c.p.RewriteAll(c.records()); err != nil {
		return fmt.Errorf("rewrite store after update: %w", err)
	}
	return nil
}

// Delete removes the receipt with the given id and rewrites the store
// with the remaining receipts. Deleting from an empty catalog or an
// unknown id is a NotFoundError and leaves everything unchanged.
func (c *Catalog) Delete(id uint64) error {
	if len(c.receipts) == 0 {
		logging.Default().Warn().Msg("cookbook is empty, nothing to delete")
		return cberrors.NewNotFoundError(id)
	}

	idx := c.indexOf(id)
	if idx < 0 {
		return cberrors.NewNotFoundError(id)
	}

	c.receipts = append(c.receipts[:idx], c.receipts[idx+1:]...)
	if err := c.p.RewriteAll(c.records()); err != nil {
		return fmt.Errorf("rewrite store after delete: %w", err)
	}
	logging.Default().Debug().Uint64("id", id).Msg("receipt deleted")
	return nil
}

// Summaries returns a restartable view of (id, name) pairs in the
// current sort order. An empty catalog yields an empty sequence.
func (c *Catalog) Summaries() iter.Seq[Summary] {
	return func(yield func(Summary) bool) {
		for _, r := range c.receipts {
			if !yield(Summary{ID: r.ID, Name: r.Name}) {
				return
			}
		}
	}
}

// insert places r immediately before the first receipt whose name
// compares strictly greater, so receipts with equal-comparing names
// keep their insertion order.
func (c *Catalog) insert(r *receipt.Receipt) {
	idx := sort.Search(len(c.receipts), func(i int) bool {
		return receipt.Compare(c.receipts[i].Name, r.Name) > 0
	})
	c.receipts = append(c.receipts, nil)
	copy(c.receipts[idx+1:], c.receipts[idx:])
	c.receipts[idx] = r
}

func (c *Catalog) find(id uint64) *receipt.Receipt {
	if idx := c.indexOf(id); idx >= 0 {
		return c.receipts[idx]
	}
	return nil
}

// indexOf scans linearly; ids are not indexed and catalogs stay small.
func (c *Catalog) indexOf(id uint64) int {
	for i, r := range c.receipts {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (c *Catalog) allocateID() uint64 {
	id := c.nextID
	c.nextID++
	return id
}

func (c *Catalog) records() []store.Record {
	recs := make([]store.Record, 0, len(c.receipts))
	for _, r := range c.receipts {
		recs = append(recs, store.Record{Name: r.Name, Body: r.Body})
	}
	return recs
}
