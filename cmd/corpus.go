package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mgrindal/ethica/internal/corpus"
	"github.com/mgrindal/ethica/internal/taxonomy"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Inspect or validate training corpora",
}

var corpusInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show label statistics for the active corpus",
	RunE: func(cmd *cobra.Command, args []string) error {
		examples, err := loadCorpus(cmd)
		if err != nil {
			return err
		}

		verdictCounts := map[corpus.Verdict]int{}
		principleCounts := map[string]int{}
		for _, ex := range examples {
			verdictCounts[ex.Verdict]++
			for _, id := range ex.Principles {
				principleCounts[id]++
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d scenarios\n\n", len(examples))

		fmt.Fprintln(out, "Verdicts:")
		for _, v := range corpus.Verdicts() {
			fmt.Fprintf(out, "  %-10s %d\n", v, verdictCounts[v])
		}

		fmt.Fprintln(out, "\nPrinciples:")
		w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
		for _, id := range taxonomy.IDs() {
			fmt.Fprintf(w, "  %s\t%d\n", id, principleCounts[id])
		}
		return w.Flush()
	},
}

var corpusCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a JSON corpus file against the schema and taxonomy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		examples, err := corpus.LoadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: OK (%d scenarios)\n", args[0], len(examples))
		return nil
	},
}

func init() {
	corpusCmd.AddCommand(corpusInfoCmd)
	corpusCmd.AddCommand(corpusCheckCmd)
}
