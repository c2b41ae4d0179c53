/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valpere/mdtranslate/internal/store"
)

var historyDBPath string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the run history",
	Long:  `List, summarise, and clear the SQLite history of translation runs.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all recorded translation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.New(historyDBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		runs, err := db.ListRuns(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list runs: %w", err)
		}

		if len(runs) == 0 {
			fmt.Println("No translation runs recorded.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tINPUT\tOUTPUT\tTARGET\tMODEL\tDURATION\tWHEN")
		for _, r := range runs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%dms\t%s\n",
				r.ID, r.InputFile, r.OutputFile, r.TargetLang, r.Model,
				r.DurationMS, r.CreatedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show run history statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.New(historyDBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		stats, err := db.Stats(context.Background())
		if err != nil {
			return fmt.Errorf("failed to get stats: %w", err)
		}

		fmt.Printf("Total runs:    %d\n", stats.TotalRuns)
		fmt.Printf("Verified runs: %d\n", stats.VerifiedRuns)
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all entries from the run history",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.New(historyDBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		n, err := db.ClearRuns(context.Background())
		if err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		fmt.Printf("Cleared %d runs from history.\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.PersistentFlags().StringVar(&historyDBPath, "db", "./mdtranslate.db", "Database path")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyStatsCmd)
	historyCmd.AddCommand(historyClearCmd)
}
