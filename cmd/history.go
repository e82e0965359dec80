package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the most recent audit entries",
	Long:  `List the audit log newest first: who inserted, trashed, restored or purged which movement, and when.`,
	Run: func(cmd *cobra.Command, args []string) {
		deps, err := initializeDependencies()
		if err != nil {
			log.Fatalf("failed to initialize dependencies: %v", err)
		}
		defer deps.Close()

		entries, err := deps.Audit.ListRecent(historyLimit)
		if err != nil {
			log.Fatalf("failed to load audit history: %v", err)
		}

		if len(entries) == 0 {
			fmt.Println("no audit entries")
			return
		}
		for _, e := range entries {
			fmt.Printf("%s  %-8s  %s  %s #%d  %s\n",
				e.CreatedAt.Format("2006-01-02 15:04:05"),
				e.Action,
				e.Username,
				e.Table,
				e.RecordID,
				e.Description)
		}
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 1000, "maximum number of entries to show")
}
