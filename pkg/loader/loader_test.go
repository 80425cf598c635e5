package loader

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`))
	require.NoError(t, err)

	w, err = zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

const sampleDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>SERVICE AGREEMENT</w:t></w:r></w:p>
    <w:p><w:r><w:t xml:space="preserve">1. SCOPE: The </w:t></w:r><w:r><w:t>Provider shall deliver.</w:t></w:r></w:p>
    <w:p/>
    <w:p><w:r><w:t>2. FEES:</w:t><w:tab/><w:t>INR 50,000</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestLoadBytesText(t *testing.T) {
	l := New()
	content := []byte("1. Scope\nThe vendor shall deliver goods.\n₹ 10,000 payable.\r\n")

	doc, err := l.LoadBytes(context.Background(), "contract.txt", content)
	require.NoError(t, err)
	assert.Equal(t, FormatTXT, doc.Format)
	assert.Equal(t, "contract.txt", doc.Name)
	assert.Equal(t, string(content), doc.Text)
}

func TestLoadBytesExtensionIsCaseInsensitive(t *testing.T) {
	doc, err := New().LoadBytes(context.Background(), "CONTRACT.TXT", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, FormatTXT, doc.Format)
}

func TestLoadBytesInvalidUTF8(t *testing.T) {
	_, err := New().LoadBytes(context.Background(), "contract.txt", []byte{0xff, 0xfe, 0x41})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestLoadBytesUnsupportedFormat(t *testing.T) {
	for _, name := range []string{"contract.csv", "contract.doc", "contract", "contract.pdf.bak"} {
		_, err := New().LoadBytes(context.Background(), name, []byte("a,b,c"))
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrUnsupportedFormat), name)
	}
}

func TestLoadBytesDOCX(t *testing.T) {
	doc, err := New().LoadBytes(context.Background(), "agreement.docx", buildDOCX(t, sampleDocumentXML))
	require.NoError(t, err)
	assert.Equal(t, FormatDOCX, doc.Format)
	assert.Equal(t, "SERVICE AGREEMENT\n1. SCOPE: The Provider shall deliver.\n\n2. FEES:\tINR 50,000", doc.Text)
}

func TestLoadBytesDOCXMissingDocumentPart(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = New().LoadBytes(context.Background(), "agreement.docx", buf.Bytes())
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestLoadBytesCorruptDOCX(t *testing.T) {
	_, err := New().LoadBytes(context.Background(), "agreement.docx", []byte("not a zip archive"))
	assert.True(t, errors.Is(err, ErrDecode))

	_, err = New().LoadBytes(context.Background(), "agreement.docx", buildDOCX(t, `<w:document xmlns:w="`+wordprocessingNS+`"><w:body><w:p>`))
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestLoadBytesCorruptPDF(t *testing.T) {
	_, err := New().LoadBytes(context.Background(), "agreement.pdf", []byte("this is not a pdf"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestLoadBytesSizeLimit(t *testing.T) {
	l := New(WithMaxBytes(4))
	_, err := l.LoadBytes(context.Background(), "contract.txt", []byte("12345"))
	assert.True(t, errors.Is(err, ErrTooLarge))

	_, err = l.LoadBytes(context.Background(), "contract.txt", []byte("1234"))
	assert.NoError(t, err)
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lease.txt")
	require.NoError(t, os.WriteFile(path, []byte("The lessee shall pay rent."), 0644))

	doc, err := New().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "lease.txt", doc.Name)
	assert.Equal(t, "The lessee shall pay rent.", doc.Text)

	// Unsupported extensions are rejected before the file is opened.
	_, err = New().Load(context.Background(), filepath.Join(dir, "missing.rtf"))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	big := filepath.Join(dir, "big.txt")
	require.NoError(t, os.WriteFile(big, bytes.Repeat([]byte("a"), 16), 0644))
	_, err = New(WithMaxBytes(8)).Load(context.Background(), big)
	assert.True(t, errors.Is(err, ErrTooLarge))
}

func TestSupports(t *testing.T) {
	l := New()
	assert.True(t, l.Supports("a.PDF"))
	assert.True(t, l.Supports("dir/b.docx"))
	assert.False(t, l.Supports("c.html"))
}
