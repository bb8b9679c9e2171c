package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgrindal/ethica/internal/store"
	"github.com/mgrindal/ethica/internal/taxonomy"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <scenario>",
	Short: "Classify a single scenario and print principles + verdict",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			return fmt.Errorf("scenario text is empty")
		}

		p, _, err := trainForInference(cmd)
		if err != nil {
			return err
		}
		threshold, _ := cmd.Flags().GetFloat64("threshold")

		result, err := p.Classify(text, threshold)
		if err != nil {
			return err
		}

		if noSave, _ := cmd.Flags().GetBool("no-save"); !noSave {
			if err := saveRecord(cmd, text, result.Principles, string(result.Verdict), threshold); err != nil {
				fmt.Fprintln(os.Stderr, "history not saved:", err)
			}
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Verdict: %s\n", result.Verdict)
		if len(result.Principles) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Principles: none above threshold")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Principles:")
		for _, id := range result.Principles {
			desc := ""
			if pr := taxonomy.Get(id); pr != nil {
				desc = pr.Description
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %-28s %s\n", id, desc)
		}
		return nil
	},
}

func init() {
	classifyCmd.Flags().Bool("json", false, "Print the result as JSON")
	classifyCmd.Flags().Bool("no-save", false, "Do not record the classification in history")
}

func saveRecord(cmd *cobra.Command, text string, principles []string, verdict string, threshold float64) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()
	return st.Append(cmd.Context(), &store.Record{
		Text:       text,
		Principles: principles,
		Verdict:    verdict,
		Threshold:  threshold,
	})
}
