package main

import (
	"fmt"

	"github.com/anjiri1684/error_paper/jobs"
	"github.com/spf13/cobra"
)

func newSweepCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Remove practice rows whose error question no longer exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, closeDB, err := setup()
			if err != nil {
				return err
			}
			defer closeDB()

			res, err := jobs.SweepOrphans(cmd.Context(), store)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed %d practice questions and %d practice records\n",
				res.PracticeQuestions, res.PracticeRecords)
			return err
		},
	}
}
