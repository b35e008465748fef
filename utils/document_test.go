package utils

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeErrKind(t *testing.T, err error) string {
	t.Helper()
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	return decodeErr.Kind
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractText_PlainText(t *testing.T) {
	e := NewDocumentExtractor()

	text, err := e.ExtractText([]byte("Jane Doe\nSoftware Engineer"), "resume.txt")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSoftware Engineer", text)
}

func TestExtractText_Docx(t *testing.T) {
	e := NewDocumentExtractor()
	content := buildDocx(t, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Software </w:t></w:r><w:r><w:t>Engineer</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	text, err := e.ExtractText(content, "resume.docx")
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Software Engineer")
}

func TestExtractText_DocxNotAZip(t *testing.T) {
	e := NewDocumentExtractor()

	_, err := e.ExtractText([]byte("this is not a zip archive"), "resume.docx")
	assert.Equal(t, ErrCorruptDocument, decodeErrKind(t, err))
}

func TestExtractText_DocxMissingDocumentXML(t *testing.T) {
	e := NewDocumentExtractor()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/other.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, extractErr := e.ExtractText(buf.Bytes(), "resume.docx")
	assert.Equal(t, ErrCorruptDocument, decodeErrKind(t, extractErr))
}

func TestExtractText_CorruptPDF(t *testing.T) {
	e := NewDocumentExtractor()

	_, err := e.ExtractText([]byte("definitely not a pdf"), "resume.pdf")
	assert.Equal(t, ErrCorruptDocument, decodeErrKind(t, err))
}

func TestExtractText_LegacyDocSalvagesASCII(t *testing.T) {
	e := NewDocumentExtractor()
	content := append([]byte{0x00, 0x01, 0xff}, []byte("Jane Doe Engineer")...)
	content = append(content, 0x02, 0x03)

	text, err := e.ExtractText(content, "resume.doc")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe Engineer", text)
}

func TestExtractText_ImageNeedsOCR(t *testing.T) {
	e := NewDocumentExtractor()

	for _, name := range []string{"scan.jpg", "scan.jpeg", "scan.png"} {
		_, err := e.ExtractText([]byte{0xff, 0xd8}, name)
		assert.Equal(t, ErrOCRUnavailable, decodeErrKind(t, err))
	}
}

func TestExtractText_UnsupportedExtension(t *testing.T) {
	e := NewDocumentExtractor()

	_, err := e.ExtractText([]byte("data"), "resume.xlsx")
	assert.Equal(t, ErrUnsupportedFormat, decodeErrKind(t, err))
}

func TestDecodeError_MessageAndUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &DecodeError{Kind: ErrCorruptDocument, Filename: "a.pdf", Err: inner}

	assert.Equal(t, "corrupt-document: a.pdf: boom", err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestIsSupportedFormat(t *testing.T) {
	e := NewDocumentExtractor()

	assert.True(t, e.IsSupportedFormat("resume.PDF"))
	assert.True(t, e.IsSupportedFormat("resume.docx"))
	assert.True(t, e.IsSupportedFormat("photo.png"))
	assert.False(t, e.IsSupportedFormat("archive.zip"))
	assert.False(t, e.IsSupportedFormat("noextension"))
}
