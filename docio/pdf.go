package docio

import (
	"io"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"
)

// readPDF extracts plain text from a PDF. The decoder panics on some
// malformed files, so the recover turns those into the same degraded-empty
// outcome as ordinary decode errors.
func readPDF(path string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("panic", r).Str("path", path).Msg("pdf decode panicked; returning empty text")
			text = ""
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("pdf open failed; returning empty text")
		return ""
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("pdf text extraction failed; returning empty text")
		return ""
	}
	b, err := io.ReadAll(plain)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("pdf text read failed; returning empty text")
		return ""
	}
	return string(b)
}
