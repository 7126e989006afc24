package cli

import (
	"encoding/json"
	"io"

	"github.com/alexanderramin/teamload/internal/calendar"
	"github.com/alexanderramin/teamload/internal/contract"
	"github.com/spf13/cobra"
)

type rangeFlags struct {
	from, to, week string
}

func (f *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "First day of the range (YYYY-MM-DD, default: this week's Monday)")
	cmd.Flags().StringVar(&f.to, "to", "", "Last day of the range (YYYY-MM-DD, default: this week's Friday)")
	cmd.Flags().StringVar(&f.week, "week", "", "ISO week to report on (YYYY-Www), instead of --from/--to")
}

// resolve parses the flags. Without --week, missing bounds default to the
// current Mon–Fri week.
func (f *rangeFlags) resolve(a *App) (contract.DateRange, error) {
	if f.week != "" {
		return contract.ParseRangeOrWeek(f.week, f.from, f.to)
	}
	from, to := f.from, f.to
	monday := calendar.MondayOf(calendar.Truncate(a.now()))
	if from == "" {
		from = calendar.Format(monday)
	}
	if to == "" {
		to = calendar.Format(monday.AddDate(0, 0, 4))
	}
	return contract.ParseDateRange(from, to)
}

type utilizationFlags struct {
	rangeFlags
	team             string
	includeUntracked bool
	asJSON           bool
}

func (f *utilizationFlags) register(cmd *cobra.Command) {
	f.rangeFlags.register(cmd)
	cmd.Flags().StringVar(&f.team, "team", "", "Limit the report to one team ID")
	cmd.Flags().BoolVar(&f.includeUntracked, "include-untracked", false, "Include teams whose work is not tracked")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "Print JSON instead of a table")
}

func (f *utilizationFlags) request(a *App) (contract.UtilizationRequest, error) {
	r, err := f.resolve(a)
	if err != nil {
		return contract.UtilizationRequest{}, err
	}
	return contract.UtilizationRequest{
		Range:            r,
		TeamID:           f.team,
		IncludeUntracked: f.includeUntracked,
	}, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// render writes v as JSON or as the formatted text.
func render(cmd *cobra.Command, asJSON bool, v any, format func() string) error {
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), v)
	}
	_, err := io.WriteString(cmd.OutOrStdout(), format()+"\n")
	return err
}
