package main

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/pkg/chunker"
)

var chunkCmd = &cobra.Command{
	Use:   "chunk <file|->",
	Short: "Split text into sentence-aligned chunks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxChars, _ := cmd.Flags().GetInt("max-chars")

		var (
			data []byte
			err  error
		)
		if args[0] == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		chunks := chunker.Split(string(data), maxChars)
		out := cmd.OutOrStdout()
		for i, c := range chunks {
			fmt.Fprintf(out, "--- chunk %d/%d (%d chars) ---\n%s\n", i+1, len(chunks), utf8.RuneCountInString(c), c)
		}
		return nil
	},
}

func init() {
	chunkCmd.Flags().Int("max-chars", chunker.DefaultMaxChars, "maximum characters per chunk")
}
