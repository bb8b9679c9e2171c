package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mgrindal/ethica/internal/store"
	"github.com/mgrindal/ethica/internal/tui"
)

// runSession trains the pipeline, opens the history store, and launches
// the interactive TUI.
func runSession(cmd *cobra.Command) error {
	p, trainSize, err := trainForInference(cmd)
	if err != nil {
		return err
	}
	threshold, _ := cmd.Flags().GetFloat64("threshold")

	opts := tui.Options{
		Pipeline:  p,
		Threshold: threshold,
		TrainSize: trainSize,
	}

	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		st, openErr := store.Open(dbPath)
		if openErr != nil {
			err = openErr
		} else {
			defer st.Close()
			opts.Store = st
		}
	}
	if err != nil {
		// Classification works without history; say so and continue.
		fmt.Fprintln(os.Stderr, "history store unavailable:", err)
	}

	return tui.Run(opts)
}
