package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/processor"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/translator"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/pkg/textsum"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <file|url>",
	Short: "Summarize a web article, PDF or text file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log := newLogger(cfg, os.Stderr)
		defer log.Close()

		ctx := cmd.Context()
		noHistory, _ := cmd.Flags().GetBool("no-history")
		if tok, _ := cmd.Flags().GetString("tokenizer"); tok != "" {
			cfg.Summary.Tokenizer = tok
		}

		deps, closeDeps, err := buildDeps(ctx, cfg, log, !noHistory)
		if err != nil {
			return err
		}
		defer closeDeps()

		req := processor.Request{}
		req.Options.Percentage, _ = cmd.Flags().GetFloat64("percentage")
		req.Options.MinSentences, _ = cmd.Flags().GetInt("min")
		req.Options.MaxSentences, _ = cmd.Flags().GetInt("max")
		req.WordsPerMinute, _ = cmd.Flags().GetInt("wpm")
		req.Language, _ = cmd.Flags().GetString("lang")
		req.OutputDir, _ = cmd.Flags().GetString("out")

		if req.Language != "" {
			if err := translator.ValidateLanguage(req.Language); err != nil {
				return err
			}
		}
		if p := req.Options.Percentage; p < 0 || p > 1 {
			return fmt.Errorf("--percentage must be between 0 and 1")
		}

		res, err := processor.New(cfg, deps, log).Summarize(ctx, args[0], req)
		if err != nil {
			return err
		}

		printResult(cmd, res)
		return nil
	},
}

func init() {
	summarizeCmd.Flags().String("lang", "", "target language code (default translate.target_language)")
	summarizeCmd.Flags().Float64("percentage", 0, fmt.Sprintf("fraction of sentences to keep (default %.1f)", textsum.DefaultPercentage))
	summarizeCmd.Flags().Int("min", 0, fmt.Sprintf("minimum sentences (default %d)", textsum.DefaultMinSentences))
	summarizeCmd.Flags().Int("max", 0, fmt.Sprintf("maximum sentences (default %d)", textsum.DefaultMaxSentences))
	summarizeCmd.Flags().Int("wpm", 0, fmt.Sprintf("reading speed in words per minute (default %d)", textsum.DefaultWordsPerMinute))
	summarizeCmd.Flags().String("out", "", "write <name>.md and <name>.docx into this directory")
	summarizeCmd.Flags().String("tokenizer", "", "sentence splitter: punkt or rule")
	summarizeCmd.Flags().Bool("no-history", false, "do not record the summary in the history database")
}

func printResult(cmd *cobra.Command, res *processor.Result) {
	out := cmd.OutOrStdout()
	doc := res.Document

	fmt.Fprintf(out, "Source: %s (%s)\n", doc.SourceName, doc.SourceType)
	if doc.Pages > 0 {
		fmt.Fprintf(out, "Pages: %d\n", doc.Pages)
	}
	fmt.Fprintf(out, "Sentences: %d of %d\n", len(res.Summary.Sentences), res.Summary.Total)
	fmt.Fprintf(out, "Reading time: %s\n\n", res.ReadingTime)
	fmt.Fprintln(out, res.Summary.Text)

	if res.Language != translator.SourceLanguage {
		fmt.Fprintf(out, "\n[%s, %s]\n", translator.LanguageName(res.Language), res.TranslatedReadingTime)
		fmt.Fprintln(out, res.Translation)
	}

	for _, img := range doc.Images {
		fmt.Fprintf(out, "Image: %s\n", img)
	}
	if res.Output.Markdown != "" {
		fmt.Fprintf(out, "\nSaved: %s\nSaved: %s\n", res.Output.Markdown, res.Output.Docx)
	}
}
