package list

import (
	"context"

	"github.com/DiegoGarzaro/cookbook-2.0/pkg/catalog"
	"github.com/DiegoGarzaro/cookbook-2.0/pkg/printers"
)

type List struct {
	Catalog *catalog.Catalog
}

func (n *List) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	pp.Summaries(n.Catalog)
	return nil
}
