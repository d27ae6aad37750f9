package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tablekit/internal/model"
	"github.com/Makepad-fr/tablekit/internal/shape"
	"github.com/Makepad-fr/tablekit/internal/tablestate"
)

type showFlags struct {
	search string
	sort   string
	desc   bool
	page   int
	all    bool
}

func newShowCmd(a *app) *cobra.Command {
	var f showFlags
	cmd := &cobra.Command{
		Use:   "show <shape>",
		Short: "Print one page of a table",
		Example: `  tablekit show columns
  tablekit show check --search mark --sort progress --desc
  tablekit show development --page 2`,
		Args:      shapeArg,
		ValidArgs: shape.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.page < 1 {
				return usageErr(fmt.Errorf("--page must be at least 1, got %d", f.page))
			}
			return forShape(args[0], shapeFuncs{
				generic:     func() error { return runShow(a, shape.GenericTable(), f) },
				check:       func() error { return runShow(a, shape.CheckTable(), f) },
				columns:     func() error { return runShow(a, shape.ColumnsTable(), f) },
				development: func() error { return runShow(a, shape.DevelopmentTable(), f) },
			})
		},
	}
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "only rows with a cell containing this text")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort by column key")
	cmd.Flags().BoolVar(&f.desc, "desc", false, "sort descending")
	cmd.Flags().IntVarP(&f.page, "page", "p", 1, "page number, clamped to the last page")
	cmd.Flags().BoolVarP(&f.all, "all", "a", false, "print every row on one page")
	return cmd
}

func runShow[R model.Row[R]](a *app, d shape.Descriptor[R], f showFlags) error {
	d, s, err := openTable(a, d)
	if err != nil {
		return err
	}
	if f.sort != "" && !tablestate.HasColumn(d.Columns, f.sort) {
		return usageErr(fmt.Errorf("unknown sort column %q for %s table", f.sort, d.Name))
	}

	st := tablestate.State{PageSize: d.PageSize}
	if f.all {
		st.PageSize = 0
	}
	st.SetFilter(f.search)
	st.SortKey, st.SortDesc = f.sort, f.desc
	st.Page = f.page - 1

	view := tablestate.Compute(s.Rows(), d.Columns, st)
	a.log.Debug("table shown", "table_id", s.ID(), "matched", view.Matched, "page", view.Page)
	printTable(a.out, d, view)
	return nil
}
