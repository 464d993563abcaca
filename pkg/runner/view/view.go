package view

import (
	"context"
	"errors"

	"github.com/DiegoGarzaro/cookbook-2.0/pkg/catalog"
	"github.com/DiegoGarzaro/cookbook-2.0/pkg/printers"
)

type View struct {
	ID uint64

	Catalog *catalog.Catalog
}

func (n *View) Do(ctx context.Context) error {
	if n.Catalog == nil {
		return errors.New("can not view, no catalog")
	}

	r, err := n.Catalog.View(n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Receipt(r)
	return nil
}
