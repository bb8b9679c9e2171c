package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mgrindal/ethica/internal/pipeline"
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Train on a split of the corpus and report hold-out diagnostics",
	RunE: func(cmd *cobra.Command, args []string) error {
		examples, err := loadCorpus(cmd)
		if err != nil {
			return err
		}

		opts := pipeline.DefaultTrainOptions()
		opts.TestFraction, _ = cmd.Flags().GetFloat64("test-fraction")
		opts.Seed, _ = cmd.Flags().GetInt64("seed")
		if opts.TestFraction <= 0 {
			return fmt.Errorf("eval needs a test fraction above 0")
		}

		_, report, err := pipeline.Train(examples, opts)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Trained on %d scenarios, evaluated on %d held out (seed %d).\n\n",
			report.TrainSize, report.TestSize, opts.Seed)

		w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PRINCIPLE\tPRECISION\tRECALL\tSUPPORT")
		for _, st := range report.Principles {
			fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%d\n", st.ID, st.Precision(), st.Recall(), st.Support)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Fprintf(out, "\nVerdict accuracy: %.2f (%d/%d)\n",
			report.VerdictAccuracy, report.VerdictCorrect, report.TestSize)
		return nil
	},
}

func init() {
	defaults := pipeline.DefaultTrainOptions()
	evalCmd.Flags().Float64("test-fraction", defaults.TestFraction, "Fraction of the corpus held out for evaluation")
	evalCmd.Flags().Int64("seed", defaults.Seed, "Seed for the train/test split")
}
