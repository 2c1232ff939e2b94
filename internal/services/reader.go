package services

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

var ErrUnsupportedFormat = errors.New("unsupported document format")

// DocumentReader turns an uploaded file into plain text.
type DocumentReader interface {
	// ExtractText returns the text of the file at path, choosing the parser
	// by extension.
	ExtractText(path string) (string, error)
	// ReadText is ExtractText that logs failures and yields "" instead.
	ReadText(path string) string
}

type documentReader struct {
	logger *zap.Logger
}

func NewDocumentReader(logger *zap.Logger) DocumentReader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &documentReader{logger: logger}
}

func (d *documentReader) ExtractText(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt":
		return extractPlain(path)
	case ".pdf":
		return extractPDF(path)
	case ".docx":
		return extractDOCX(path)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func (d *documentReader) ReadText(path string) string {
	text, err := d.ExtractText(path)
	if err != nil {
		d.logger.Warn("failed to read document", zap.String("file", filepath.Base(path)), zap.Error(err))
		return ""
	}
	return text
}

func extractPlain(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}
	return strings.ToValidUTF8(string(data), ""), nil
}

// extractPDF recovers from parser panics; the pdf package reports some
// malformed cross-reference tables that way.
func extractPDF(path string) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", fmt.Errorf("malformed PDF: %v", rec)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	for pageIndex := 1; pageIndex <= r.NumPage(); pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		// Unreadable pages are skipped; the rest of the document still counts.
		pageText, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			continue
		}

		textBuilder.WriteString(pageText)
		textBuilder.WriteString("\n\n")
	}

	text = textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}
	return text, nil
}

func extractDOCX(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("failed to open DOCX body: %w", err)
		}
		defer rc.Close()
		return docxParagraphs(rc)
	}
	return "", fmt.Errorf("DOCX has no word/document.xml")
}

// docxParagraphs collects the w:t runs of a WordprocessingML body, one line
// per w:p paragraph.
func docxParagraphs(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var (
		out    strings.Builder
		para   strings.Builder
		inText bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse DOCX body: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				para.WriteString("\t")
			case "br", "cr":
				para.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				out.WriteString(para.String())
				out.WriteString("\n")
				para.Reset()
			}
		case xml.CharData:
			if inText {
				para.Write(t)
			}
		}
	}
	out.WriteString(para.String())

	return strings.TrimRight(out.String(), "\n"), nil
}
