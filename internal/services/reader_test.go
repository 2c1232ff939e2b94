package services

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const docxBody = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Roe</w:t></w:r></w:p>
    <w:p><w:r><w:t xml:space="preserve">Skills: </w:t></w:r><w:r><w:t>Python</w:t></w:r><w:r><w:tab/><w:t>SQL</w:t></w:r></w:p>
  </w:body>
</w:document>`

func writeDOCX(t *testing.T, path string, body string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	if body != "" {
		w, err := zw.Create("word/document.xml")
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

func TestDocumentReaderPlainText(t *testing.T) {
	dir := t.TempDir()
	r := NewDocumentReader(nil)

	text, err := r.ExtractText(writeFile(t, dir, "cv.TXT", "Python developer"))
	require.NoError(t, err)
	assert.Equal(t, "Python developer", text)
}

func TestDocumentReaderDOCX(t *testing.T) {
	dir := t.TempDir()
	r := NewDocumentReader(nil)

	path := filepath.Join(dir, "cv.docx")
	writeDOCX(t, path, docxBody)

	text, err := r.ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe\nSkills: Python\tSQL", text)

	empty := filepath.Join(dir, "empty.docx")
	writeDOCX(t, empty, "")
	_, err = r.ExtractText(empty)
	assert.Error(t, err)
}

func TestDocumentReaderFailuresYieldEmptyText(t *testing.T) {
	dir := t.TempDir()
	r := NewDocumentReader(nil)

	_, err := r.ExtractText(writeFile(t, dir, "cv.rtf", "text"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	for _, path := range []string{
		filepath.Join(dir, "cv.rtf"),
		filepath.Join(dir, "missing.txt"),
		writeFile(t, dir, "broken.pdf", "not a pdf"),
		writeFile(t, dir, "broken.docx", "not a zip"),
	} {
		assert.Empty(t, r.ReadText(path), path)
	}
}

// danglingXrefPDF has a well-formed trailer whose page tree entry points
// past the end of the file.
func danglingXrefPDF() string {
	body := "%PDF-1.4\n1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n"
	xref := len(body)
	return body +
		"xref\n0 3\n" +
		"0000000000 65535 f \n" +
		"0000000009 00000 n \n" +
		"0000099999 00000 n \n" +
		"trailer\n<< /Size 3 /Root 1 0 R >>\n" +
		fmt.Sprintf("startxref\n%d\n%%%%EOF\n", xref)
}

func TestDocumentReaderMalformedPDF(t *testing.T) {
	dir := t.TempDir()
	r := NewDocumentReader(nil)
	path := writeFile(t, dir, "dangling.pdf", danglingXrefPDF())

	assert.NotPanics(t, func() {
		_, err := r.ExtractText(path)
		assert.Error(t, err)
	})

	var text string
	assert.NotPanics(t, func() { text = r.ReadText(path) })
	assert.Empty(t, text)
}
