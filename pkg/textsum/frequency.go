package textsum

// BuildFrequencyTable counts the content words of a preprocessed document
// and divides every count by the largest one.
func BuildFrequencyTable(tok Tokenizer, preprocessed string) FrequencyTable {
	counts := make(map[string]int)
	highest := 0
	for _, t := range tok.Tokens(preprocessed) {
		if !t.IsContent() {
			continue
		}
		counts[t.Text]++
		highest = max(highest, counts[t.Text])
	}

	table := make(FrequencyTable, len(counts))
	divisor := float64(max(highest, 1))
	for word, n := range counts {
		table[word] = float64(n) / divisor
	}
	return table
}
