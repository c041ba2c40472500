package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/translator"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported target languages",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, code := range translator.Languages() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-6s %s\n", code, translator.LanguageName(code))
		}
	},
}
