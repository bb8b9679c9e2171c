package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgrindal/ethica/internal/corpus"
	"github.com/mgrindal/ethica/internal/pipeline"
	"github.com/mgrindal/ethica/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "ethica",
	Short: "AI ethics scenario classifier",
	Long: "Ethica labels short descriptions of AI/robotics scenarios with the\n" +
		"ethical principles they implicate and an overall verdict\n" +
		"(ethical / unethical / ambiguous).",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite history database (overrides ETHICA_DB env var)")
	rootCmd.PersistentFlags().String("corpus", "", "Path to a JSON corpus file (default: built-in corpus)")
	rootCmd.PersistentFlags().Float64("threshold", pipeline.DefaultThreshold, "Confidence cutoff for including a principle")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(corpusCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then ETHICA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadCorpus returns the corpus named by --corpus, or the built-in seed.
func loadCorpus(cmd *cobra.Command) ([]corpus.Example, error) {
	path, _ := cmd.Flags().GetString("corpus")
	if path == "" {
		return corpus.Seed(), nil
	}
	examples, err := corpus.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load corpus %s: %w", path, err)
	}
	return examples, nil
}

// trainForInference fits a pipeline on the whole corpus. Hold-out
// evaluation is a separate, explicit step (the eval command); inference
// commands train on every labeled example.
func trainForInference(cmd *cobra.Command) (*pipeline.Pipeline, int, error) {
	examples, err := loadCorpus(cmd)
	if err != nil {
		return nil, 0, err
	}
	opts := pipeline.DefaultTrainOptions()
	opts.TestFraction = 0
	p, _, err := pipeline.Train(examples, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("train pipeline: %w", err)
	}
	return p, len(examples), nil
}
