package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteLogCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-log WORK_LOG_ID",
		Short: "Soft-delete a work log so reports stop counting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.WorkLogs.DeleteWorkLog(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Deleted work log %s\n", args[0])
			return err
		},
	}
}
