package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tablekit/internal/model"
	"github.com/Makepad-fr/tablekit/internal/seed"
	"github.com/Makepad-fr/tablekit/internal/shape"
	"github.com/Makepad-fr/tablekit/internal/store"
	"github.com/Makepad-fr/tablekit/internal/tablestate"
	"github.com/Makepad-fr/tablekit/internal/ui"
)

const barWidth = 10

// shapeFuncs has one branch per table shape. Generic code cannot switch on
// a type parameter, so commands hand over one closure per row type.
type shapeFuncs struct {
	generic     func() error
	check       func() error
	columns     func() error
	development func() error
}

func forShape(name string, fns shapeFuncs) error {
	n, err := shape.Lookup(name)
	if err != nil {
		return usageErr(err)
	}
	switch n {
	case shape.Generic:
		return fns.generic()
	case shape.Check:
		return fns.check()
	case shape.Columns:
		return fns.columns()
	default:
		return fns.development()
	}
}

// shapeArg requires exactly one argument naming a known shape.
func shapeArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return usageErr(fmt.Errorf("expected one table shape (%s), got %d arguments", strings.Join(shape.Names(), ", "), len(args)))
	}
	if _, err := shape.Lookup(args[0]); err != nil {
		return usageErr(err)
	}
	return nil
}

// openTable applies config to d and builds a store over the shape's seed.
func openTable[R model.Row[R]](a *app, d shape.Descriptor[R]) (shape.Descriptor[R], *store.Store[R], error) {
	d.PageSize = a.cfg.PageSizeFor(d.Name, d.PageSize)
	rows, err := seed.Resolve[R](d.Name, a.cfg.SeedFor(d.Name))
	if err != nil {
		return d, nil, err
	}
	s := store.New(rows,
		store.WithShape(d.Name),
		store.WithLogger(a.log),
		store.WithValidator(a.validator),
	)
	return d, s, nil
}

// printTable writes one computed page inside a themed panel.
func printTable[R model.Row[R]](w io.Writer, d shape.Descriptor[R], view tablestate.View[R]) {
	title := fmt.Sprintf("%s  %s", ui.C(ui.Current().Title, d.Title), ui.C(ui.Current().Muted, fmt.Sprintf("Total %d", view.Total)))
	lines := []string{title, ""}

	if len(view.Entries) == 0 {
		lines = append(lines, ui.C(ui.Current().Muted, d.EmptyText))
		ui.Panel(w, lines)
		return
	}

	headers := []string{"#"}
	for _, c := range d.Columns {
		headers = append(headers, c.Header)
	}
	rows := make([][]string, 0, len(view.Entries))
	for _, e := range view.Entries {
		row := []string{strconv.Itoa(e.Index + 1)}
		for i, c := range d.Columns {
			cell := c.Value(e.Row)
			switch {
			case i == 0 && d.Checked != nil:
				cell = ui.Box(d.Checked(e.Row)) + " " + cell
			case c.Key == "progress" && d.Progress != nil:
				cell = ui.ProgressBar(d.Progress(e.Row), barWidth)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	lines = append(lines, strings.Split(ui.Grid(headers, rows), "\n")...)
	lines = append(lines, "", ui.C(ui.Current().Muted,
		fmt.Sprintf("page %d/%d · %d of %d rows", view.Page+1, view.PageCount, view.Matched, view.Total)))
	ui.Panel(w, lines)
}
