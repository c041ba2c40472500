package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestLanguagesCommand(t *testing.T) {
	out := run(t, "", "languages")
	assert.Contains(t, out, "fr     French")
	assert.Contains(t, out, "zh-CN  Chinese (Simplified)")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 10)
}

func TestChunkCommand(t *testing.T) {
	out := run(t, "One sentence. Two sentence. Three.", "chunk", "-", "--max-chars", "16")
	assert.Contains(t, out, "--- chunk 1/3 (13 chars) ---\nOne sentence.")
	assert.Contains(t, out, "--- chunk 3/3 (6 chars) ---\nThree.")
}

func TestSummarizeCommand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "notes.txt")
	text := "Rivers carry fresh water from mountains down to the sea. " +
		"Many cities were founded along rivers for trade and farming. " +
		"Floods along rivers can destroy homes and farms every spring. " +
		"Engineers build levees to protect cities from river floods. " +
		"Dams on rivers also produce electricity for nearby towns."
	require.NoError(t, os.WriteFile(src, []byte(text), 0644))

	out := run(t, "", "summarize", src, "--tokenizer", "rule", "--no-history", "--lang", "en")
	assert.Contains(t, out, "Source: notes.txt (text)")
	assert.Contains(t, out, "Sentences: 3 of 5")
	assert.Contains(t, out, "Reading time: 1 min read")
}
