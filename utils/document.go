package utils

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DecodeError kinds returned by the document extractor.
const (
	ErrUnsupportedFormat = "unsupported-format"
	ErrCorruptDocument   = "corrupt-document"
	ErrOCRUnavailable    = "ocr-unavailable"
)

// DecodeError describes why a resume file could not be decoded into text.
type DecodeError struct {
	Kind     string
	Filename string
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Filename, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Filename)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DocumentExtractor extracts text from various document formats
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new document extractor
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// ExtractText decodes a resume file into plain text based on its extension.
// Image files fail with an ocr-unavailable DecodeError since no OCR backend
// is wired in.
func (e *DocumentExtractor) ExtractText(content []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".txt":
		return string(content), nil

	case ".pdf":
		return e.extractPDF(content, filename)

	case ".docx":
		return e.extractDocx(content, filename)

	case ".doc":
		return e.extractDocLegacy(content), nil

	case ".jpg", ".jpeg", ".png":
		return "", &DecodeError{
			Kind:     ErrOCRUnavailable,
			Filename: filename,
			Err:      fmt.Errorf("image resumes require OCR, which is not configured"),
		}

	default:
		return "", &DecodeError{
			Kind:     ErrUnsupportedFormat,
			Filename: filename,
			Err:      fmt.Errorf("unsupported extension %q", ext),
		}
	}
}

func (e *DocumentExtractor) extractPDF(content []byte, filename string) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", &DecodeError{Kind: ErrCorruptDocument, Filename: filename, Err: err}
	}

	var sb strings.Builder
	plainText, err := reader.GetPlainText()
	if err != nil {
		return "", &DecodeError{Kind: ErrCorruptDocument, Filename: filename, Err: err}
	}
	if _, err := io.Copy(&sb, plainText); err != nil {
		return "", &DecodeError{Kind: ErrCorruptDocument, Filename: filename, Err: err}
	}
	return sb.String(), nil
}

// docxDocument models the minimal structure of word/document.xml: text runs
// inside paragraphs.
type docxDocument struct {
	Paragraphs []struct {
		Runs []struct {
			Text string `xml:"t"`
		} `xml:"r"`
	} `xml:"body>p"`
}

func (e *DocumentExtractor) extractDocx(content []byte, filename string) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", &DecodeError{Kind: ErrCorruptDocument, Filename: filename, Err: err}
	}

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", &DecodeError{Kind: ErrCorruptDocument, Filename: filename, Err: err}
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", &DecodeError{Kind: ErrCorruptDocument, Filename: filename, Err: err}
		}

		var doc docxDocument
		if err := xml.Unmarshal(data, &doc); err != nil {
			return "", &DecodeError{Kind: ErrCorruptDocument, Filename: filename, Err: err}
		}

		var sb strings.Builder
		for _, p := range doc.Paragraphs {
			for _, r := range p.Runs {
				sb.WriteString(r.Text)
			}
			sb.WriteString("\n")
		}
		return sb.String(), nil
	}

	return "", &DecodeError{
		Kind:     ErrCorruptDocument,
		Filename: filename,
		Err:      fmt.Errorf("word/document.xml not found in archive"),
	}
}

// extractDocLegacy salvages readable ASCII from a legacy .doc binary.
func (e *DocumentExtractor) extractDocLegacy(content []byte) string {
	var sb strings.Builder
	for _, r := range string(content) {
		if r >= 32 && r <= 126 || r == '\n' || r == '\r' || r == '\t' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// IsSupportedFormat checks if the file format is supported
func (e *DocumentExtractor) IsSupportedFormat(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	supportedFormats := []string{".txt", ".pdf", ".doc", ".docx", ".jpg", ".jpeg", ".png"}

	for _, format := range supportedFormats {
		if ext == format {
			return true
		}
	}
	return false
}
