package renderer

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	bodyFont  = "Calibri"
	bodySize  = 11
	textColor = "000000"
	linkColor = "1F4E79"
	noteColor = "595959"
)

var (
	reHeading  = regexp.MustCompile(`^(#{1,2})\s+(.+)$`)
	reLabel    = regexp.MustCompile(`^\*\*(.+?):\*\*\s*(.*)$`)
	reImage    = regexp.MustCompile(`^-\s+(\S+)$`)
	reReadTime = regexp.MustCompile(`^Estimated reading time:`)
)

// style is how one run of text looks.
type style struct {
	size   uint64
	color  string
	bold   bool
	italic bool
}

var (
	titleStyle   = style{size: 18, color: textColor, bold: true}
	sectionStyle = style{size: 14, color: textColor, bold: true}
	labelStyle   = style{size: bodySize, color: textColor, bold: true}
	bodyStyle    = style{size: bodySize, color: textColor}
	noteStyle    = style{size: 10, color: noteColor, italic: true}
	imageStyle   = style{size: 10, color: linkColor}
)

// markdownToDocx lays out the markdown produced by Markdown as a docx
// report. Only the line kinds Markdown emits are recognized; anything else
// becomes a body paragraph.
func markdownToDocx(markdown, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		p := doc.AddParagraph("")
		switch {
		case reHeading.MatchString(line):
			m := reHeading.FindStringSubmatch(line)
			if len(m[1]) == 1 {
				addRun(p, m[2], titleStyle)
			} else {
				addRun(p, m[2], sectionStyle)
			}
		case reLabel.MatchString(line):
			m := reLabel.FindStringSubmatch(line)
			addRun(p, m[1]+": ", labelStyle)
			addRun(p, m[2], bodyStyle)
		case reImage.MatchString(line):
			addRun(p, "• ", bodyStyle)
			addRun(p, reImage.FindStringSubmatch(line)[1], imageStyle)
		case reReadTime.MatchString(line):
			addRun(p, line, noteStyle)
		default:
			addRun(p, stripEmphasis(line), bodyStyle)
		}
	}

	return doc.SaveTo(outputPath)
}

func addRun(p *docx.Paragraph, text string, s style) {
	run := p.AddText(text).Font(bodyFont).Size(s.size).Color(s.color)
	if s.bold {
		run.Bold(true)
	}
	if s.italic {
		run.Italic(true)
	}
}

// stripEmphasis drops markdown emphasis markers that summaries may carry
// over from the source text.
func stripEmphasis(s string) string {
	return strings.NewReplacer("**", "", "__", "", "`", "").Replace(s)
}
