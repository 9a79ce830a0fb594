package processor

import (
	"strings"

	"github.com/gomutex/godocx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// transcriptToDocx renders the assembled speaker-grouped transcript as a
// docx document: a bold title followed by one paragraph per speaker line,
// with the speaker label in bold.
func transcriptToDocx(title, text, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	doc.AddParagraph("").AddText(title).Font(fontName).Size(16).Color("000000").Bold(true)
	doc.AddParagraph("")

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		p := doc.AddParagraph("")
		speaker, rest, found := strings.Cut(line, ": ")
		if found {
			p.AddText(speaker+": ").Font(fontName).Size(fontSize).Color("000000").Bold(true)
			p.AddText(rest).Font(fontName).Size(fontSize).Color("000000")
		} else {
			p.AddText(line).Font(fontName).Size(fontSize).Color("000000")
		}
	}

	return doc.SaveTo(outputPath)
}
