// Package textsource turns résumé files into the single raw-text string the
// extraction pipeline consumes. Plain text passes through; PDF and DOCX
// files have their text extracted page- and paragraph-wise.
package textsource

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// UnsupportedFormatError marks a file extension no reader can handle
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q: only .txt, .pdf and .docx are supported", e.Extension)
}

// FromFile reads raw résumé text from a file, dispatching on the extension.
// Read failures are hard errors; an unreadable source leaves nothing to
// extract from.
func FromFile(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		return string(data), nil
	case ".pdf":
		return fromPDF(path)
	case ".docx":
		return fromDocx(path)
	default:
		return "", &UnsupportedFormatError{Extension: ext}
	}
}

// fromPDF extracts plain text from every non-empty page
func fromPDF(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer func() { _ = file.Close() }()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from pdf page %d: %w", i, err)
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

// fromDocx extracts the document content of a DOCX file
func fromDocx(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to open docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return doc.Editable().GetContent(), nil
}
