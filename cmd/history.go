package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgrindal/ethica/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent classifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		records, err := st.Recent(cmd.Context(), limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintln(out, "No classifications recorded yet.")
			return nil
		}
		for _, rec := range records {
			fmt.Fprintf(out, "%s  %-10s %s\n",
				rec.CreatedAt.Local().Format("2006-01-02 15:04"),
				rec.Verdict,
				rec.Text)
			if len(rec.Principles) > 0 {
				fmt.Fprintf(out, "%18s%s\n", "", strings.Join(rec.Principles, ", "))
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of records to show")
}
