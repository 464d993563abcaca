package update

import (
	"context"
	"errors"
	"fmt"

	"github.com/DiegoGarzaro/cookbook-2.0/pkg/catalog"
)

// Update edits a receipt. Name and Body are tri-state: nil means the
// field was not provided at all, a pointer to "" means keep the current
// value.
type Update struct {
	ID   uint64
	Name *string
	Body *string

	Catalog *catalog.Catalog
}

func (n *Update) Do(ctx context.Context) error {
	if n.Catalog == nil {
		return errors.New("can not update, no catalog")
	}

	if err := n.Catalog.Update(n.ID, n.Name, n.Body); err != nil {
		return err
	}

	fmt.Printf("Receipt '%d' is updated.\n", n.ID)
	return nil
}
