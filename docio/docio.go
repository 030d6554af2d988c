// Package docio is the document-reading collaborator: it abstracts over
// file-format decoding and hands the parsing pipeline raw text. A missing
// file is an error the caller must see; an unsupported extension is the
// ErrUnsupportedFormat sentinel; corrupt content inside a supported format
// is swallowed into empty text with a warning, because degraded input is
// expected and must not stop a batch.
package docio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrUnsupportedFormat is returned when no decoder exists for the file
// extension.
var ErrUnsupportedFormat = fmt.Errorf("unsupported document format")

// ReadFile extracts raw text from a .txt, .md, .html/.htm, .pdf, or .docx
// file. The text is raw in the pipeline sense: normalization happens
// downstream.
func ReadFile(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt", ".md":
		return readText(path), nil
	case ".html", ".htm":
		return readHTML(path), nil
	case ".pdf":
		return readPDF(path), nil
	case ".docx":
		return readDOCX(path), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func readText(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("text read failed; returning empty text")
		return ""
	}
	return string(b)
}
