package cli

import (
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tablekit/internal/model"
	"github.com/Makepad-fr/tablekit/internal/shape"
	"github.com/Makepad-fr/tablekit/internal/tablestate"
	"github.com/Makepad-fr/tablekit/internal/ui"
)

func newCheckCmd(a *app) *cobra.Command {
	var assignments []string
	cmd := &cobra.Command{
		Use:   "check <shape>",
		Short: "Validate a row and add it to the table",
		Long: `check builds a row from --set assignments the same way the add form
does, validates it and prints the table with the row appended. Fields that
are not set keep the form defaults. The exit code is 1 when the row is
rejected.`,
		Example: `  tablekit check columns --set name=Widget --set date=2024-03-01 --set progress=150
  tablekit check development --set name=App --set tech=apple,android --set date=2024-01-01`,
		Args:      shapeArg,
		ValidArgs: shape.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return forShape(args[0], shapeFuncs{
				generic:     func() error { return runCheck(a, shape.GenericTable(), assignments) },
				check:       func() error { return runCheck(a, shape.CheckTable(), assignments) },
				columns:     func() error { return runCheck(a, shape.ColumnsTable(), assignments) },
				development: func() error { return runCheck(a, shape.DevelopmentTable(), assignments) },
			})
		},
	}
	cmd.Flags().StringArrayVar(&assignments, "set", nil, "field=value assignment, repeatable")
	return cmd
}

func runCheck[R model.Row[R]](a *app, d shape.Descriptor[R], assignments []string) error {
	d, s, err := openTable(a, d)
	if err != nil {
		return err
	}
	values, err := d.ParseValues(assignments)
	if err != nil {
		return usageErr(err)
	}

	res, err := s.Add(d.Build(values))
	if err != nil {
		ui.Fail(a.errOut, res.Title+": "+res.Description)
		for _, field := range slices.Sorted(maps.Keys(res.Errors)) {
			ui.Hint(a.errOut, "  "+field+": "+res.Errors[field])
		}
		return errRejected
	}
	ui.OK(a.out, res.Title+" "+res.Description)

	view := tablestate.Compute(s.Rows(), d.Columns, tablestate.State{})
	printTable(a.out, d, view)
	return nil
}
