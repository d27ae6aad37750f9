package cli

import (
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tablekit/internal/model"
	"github.com/Makepad-fr/tablekit/internal/shape"
	"github.com/Makepad-fr/tablekit/internal/store"
	"github.com/Makepad-fr/tablekit/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "tui <shape>",
		Short:     "Open a table in the interactive view",
		Args:      shapeArg,
		ValidArgs: shape.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return forShape(args[0], shapeFuncs{
				generic:     func() error { return runTUI(a, shape.GenericTable()) },
				columns:     func() error { return runTUI(a, shape.ColumnsTable()) },
				development: func() error { return runTUI(a, shape.DevelopmentTable()) },
				check: func() error {
					d, s, err := openTable(a, shape.CheckTable())
					if err != nil {
						return err
					}
					toggle := func(index int, checked bool) error {
						return store.SetNameChecked(s, index, checked)
					}
					return tui.Run(d, s, tui.WithLogger(a.log), tui.WithCheckToggle(toggle))
				},
			})
		},
	}
}

func runTUI[R model.Row[R]](a *app, d shape.Descriptor[R]) error {
	d, s, err := openTable(a, d)
	if err != nil {
		return err
	}
	return tui.Run(d, s, tui.WithLogger(a.log))
}
