package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/teamload/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// ErrImportAborted is returned when a replace import is declined.
var ErrImportAborted = errors.New("import aborted")

func newImportCmd(a *App) *cobra.Command {
	var replace, yes, asJSON bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a JSON snapshot of teams, users, histories, work logs and projects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if replace && !yes {
				if !a.interactive() {
					return fmt.Errorf("--replace deletes all stored data; pass --yes to confirm")
				}
				ok, err := a.confirm(cmd.Context(), "Replace all stored data with "+args[0]+"?")
				if err != nil {
					return err
				}
				if !ok {
					return ErrImportAborted
				}
			}

			result, err := a.Import.Import(cmd.Context(), args[0], replace)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(result))
			return err
		},
	}
	cmd.Flags().BoolVar(&replace, "replace", false, "Delete all stored data before importing")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the replace confirmation")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the import counts as JSON")
	return cmd
}
