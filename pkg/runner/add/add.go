package add

import (
	"context"
	"errors"
	"fmt"

	"github.com/DiegoGarzaro/cookbook-2.0/pkg/catalog"
	cberrors "github.com/DiegoGarzaro/cookbook-2.0/pkg/errors"
	"github.com/DiegoGarzaro/cookbook-2.0/pkg/printers"
)

type Add struct {
	Name string
	Body string

	Catalog *catalog.Catalog
}

func (n *Add) Do(ctx context.Context) error {
	if n.Catalog == nil {
		return errors.New("can not add, no catalog")
	}

	r, err := n.Catalog.Add(n.Name, n.Body)
	if err != nil {
		// An empty name is a skip, not a failure.
		if errors.Is(err, cberrors.ErrEmptyName) {
			return nil
		}
		return err
	}

	fmt.Println("New receipt saved!")
	pp := printers.PrettyPrint{}
	pp.Receipt(r)
	return nil
}
