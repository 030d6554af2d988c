package docio

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
)

// readDOCX pulls the text runs out of word/document.xml inside the DOCX
// archive. Paragraph ends become newlines so line-oriented heuristics keep
// working; everything else in the markup is ignored.
func readDOCX(path string) string {
	archive, err := zip.OpenReader(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("docx open failed; returning empty text")
		return ""
	}
	defer archive.Close()

	var doc *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		log.Warn().Str("path", path).Msg("docx missing word/document.xml; returning empty text")
		return ""
	}
	rc, err := doc.Open()
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("docx entry open failed; returning empty text")
		return ""
	}
	defer rc.Close()

	text, err := documentXMLText(rc)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("docx parse failed; returning empty text")
		return ""
	}
	return text
}

// documentXMLText walks the WordprocessingML token stream collecting the
// character data inside <w:t> runs.
func documentXMLText(r io.Reader) (string, error) {
	var b strings.Builder
	dec := xml.NewDecoder(r)
	inRun := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inRun = true
			case "br", "cr":
				b.WriteString("\n")
			case "tab":
				b.WriteString(" ")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inRun {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}
