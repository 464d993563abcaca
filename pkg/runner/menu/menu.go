// Package menu drives the interactive cookbook session: a looping
// choice prompt whose actions map one-to-one onto the catalog
// operations.
package menu

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/DiegoGarzaro/cookbook-2.0/pkg/catalog"
	cberrors "github.com/DiegoGarzaro/cookbook-2.0/pkg/errors"
	"github.com/DiegoGarzaro/cookbook-2.0/pkg/logging"
	"github.com/DiegoGarzaro/cookbook-2.0/pkg/printers"
	"github.com/DiegoGarzaro/cookbook-2.0/pkg/runner/add"
	"github.com/DiegoGarzaro/cookbook-2.0/pkg/runner/list"
	"github.com/DiegoGarzaro/cookbook-2.0/pkg/runner/remove"
	"github.com/DiegoGarzaro/cookbook-2.0/pkg/runner/update"
	"github.com/DiegoGarzaro/cookbook-2.0/pkg/runner/view"
)

type Menu struct {
	Catalog *catalog.Catalog
}

type item struct {
	Name string
	Hint string
}

var items = []item{
	{Name: "Display all", Hint: "List every receipt in the cookbook."},
	{Name: "Add receipt", Hint: "Save a new receipt."},
	{Name: "View receipt", Hint: "Show the full text of one receipt."},
	{Name: "Update receipt", Hint: "Change the name or text of a receipt."},
	{Name: "Delete receipt", Hint: "Remove a receipt for good."},
	{Name: "Quit", Hint: "Save and exit."},
}

func (n *Menu) Do(ctx context.Context) error {
	if n.Catalog == nil {
		return errors.New("can not run menu, no catalog")
	}

	fmt.Println("===== Diego's Cookbook =====")

	for {
		choice, err := n.choose()
		if err != nil {
			// Interrupt or EOF ends the session like Quit does.
			break
		}

		if err := n.dispatch(ctx, choice); err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				break
			}
			if errors.Is(err, cberrors.ErrNotFound) {
				logging.Default().Warn().Msg(err.Error())
				continue
			}
			return err
		}

		if choice == len(items)-1 {
			break
		}
	}

	fmt.Println("Saving and exiting... Goodbye!")
	return nil
}

func (n *Menu) choose() (int, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "➜  {{ .Name | bold }}",
		Inactive: "   {{ .Name }}",
		Selected: "{{ .Name | bold }}",
		Details:  "{{ .Hint | faint }}",
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "--- MENU ---",
		Items:     items,
		Templates: templates,
		Size:      len(items),
	}

	i, _, err := prompt.Run()
	return i, err
}

func (n *Menu) dispatch(ctx context.Context, choice int) error {
	pp := printers.PrettyPrint{}

	switch choice {
	case 0:
		logging.Default().Info().Msg("displaying all receipts")
		return (&list.List{Catalog: n.Catalog}).Do(ctx)

	case 1:
		logging.Default().Info().Msg("adding a new receipt")
		name, err := n.prompt("Name")
		if err != nil {
			return err
		}
		body, err := n.prompt("Receipt")
		if err != nil {
			return err
		}
		return (&add.Add{Name: name, Body: body, Catalog: n.Catalog}).Do(ctx)

	case 2:
		pp.Summaries(n.Catalog)
		id, err := n.promptID()
		if err != nil {
			return err
		}
		return (&view.View{ID: id, Catalog: n.Catalog}).Do(ctx)

	case 3:
		logging.Default().Info().Msg("update receipt")
		pp.Summaries(n.Catalog)
		id, err := n.promptID()
		if err != nil {
			return err
		}
		name, err := n.prompt("Name (Press 'Enter' to keep current)")
		if err != nil {
			return err
		}
		body, err := n.prompt("Receipt (Press 'Enter' to keep current)")
		if err != nil {
			return err
		}
		return (&update.Update{ID: id, Name: &name, Body: &body, Catalog: n.Catalog}).Do(ctx)

	case 4:
		logging.Default().Info().Msg("delete receipt")
		pp.Summaries(n.Catalog)
		id, err := n.promptID()
		if err != nil {
			return err
		}
		return (&remove.Remove{ID: id, Catalog: n.Catalog}).Do(ctx)
	}

	return nil
}

func (n *Menu) prompt(label string) (string, error) {
	p := promptui.Prompt{Label: label, AllowEdit: true}
	v, err := p.Run()
	if err != nil {
		return "", err
	}
	return v, nil
}

// promptID asks until the user types a valid unsigned integer.
func (n *Menu) promptID() (uint64, error) {
	p := promptui.Prompt{
		Label: "ID of the receipt (int)",
		Validate: func(s string) error {
			if _, err := parseID(s); err != nil {
				return errors.New("invalid input")
			}
			return nil
		},
	}
	v, err := p.Run()
	if err != nil {
		return 0, err
	}
	return parseID(v)
}

func parseID(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(s), 10, 64)
}
