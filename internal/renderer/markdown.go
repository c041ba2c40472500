package renderer

import (
	"fmt"
	"strings"

	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/extractor"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/translator"
)

const dateLayout = "2006-01-02 15:04"

// Title names the report after the kind of source it summarizes.
func Title(sourceType string) string {
	switch sourceType {
	case extractor.SourcePDF:
		return "PDF Summary"
	case extractor.SourceText:
		return "Document Summary"
	default:
		return "Article Summary"
	}
}

// Markdown renders a report as markdown.
func Markdown(r Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", Title(r.SourceType))

	label := "Source File"
	if r.SourceType == extractor.SourceURL {
		label = "Source URL"
	}
	fmt.Fprintf(&b, "**%s:** %s\n\n", label, r.SourceName)
	fmt.Fprintf(&b, "**Generated on:** %s\n\n", r.Generated.Format(dateLayout))

	b.WriteString("## Summary (English)\n\n")
	if r.ReadingTime != "" {
		fmt.Fprintf(&b, "Estimated reading time: %s\n\n", r.ReadingTime)
	}
	b.WriteString(strings.TrimSpace(r.Summary))
	b.WriteString("\n")

	if r.Language != "" && r.Language != translator.SourceLanguage && r.Translation != "" {
		fmt.Fprintf(&b, "\n## Summary (%s)\n\n", translator.LanguageName(r.Language))
		if r.TranslatedReadTime != "" {
			fmt.Fprintf(&b, "Estimated reading time: %s\n\n", r.TranslatedReadTime)
		}
		b.WriteString(strings.TrimSpace(r.Translation))
		b.WriteString("\n")
	}

	if len(r.Images) > 0 {
		b.WriteString("\n## Images\n\n")
		for _, img := range r.Images {
			fmt.Fprintf(&b, "- %s\n", img)
		}
	}

	return b.String()
}
