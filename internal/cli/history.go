package cli

import (
	"dtpick/internal/store"

	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List picks saved with `pick --save`, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return errInvalidArg("--limit", cmd.Flag("limit").Value.String(), "must not be negative")
			}
			picks, err := store.Store{Dir: app.cfg.DataDir}.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if picks == nil {
				picks = []store.Pick{}
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"picks": picks}})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum picks to list (0 = all)")

	return cmd
}
