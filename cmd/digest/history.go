package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously summarized documents",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")

		st := store.New()
		if err := st.Initialize(cfg.Store.SQLitePath); err != nil {
			return err
		}
		defer st.Close()

		records, err := st.List(limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, r := range records {
			flag := ""
			if r.Fallback {
				flag = " (fallback)"
			}
			fmt.Fprintf(out, "%s  %-4s  %-5s  %-12s  %s%s\n",
				r.CreatedAt.Format(time.DateTime), r.SourceType, r.Language, r.ReadingTime, r.SourceName, flag)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "number of entries to show; 0 shows all")
}
