package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/DiegoGarzaro/cookbook-2.0/pkg/catalog"
)

type Remove struct {
	ID uint64

	Catalog *catalog.Catalog
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Catalog == nil {
		return errors.New("can not delete, no catalog")
	}

	if err := n.Catalog.Delete(n.ID); err != nil {
		return err
	}

	fmt.Printf("Receipt '%d' is deleted.\n", n.ID)
	return nil
}
