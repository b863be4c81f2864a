package service

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"testing"

	"doc-digest/internal/domain"

	"github.com/stretchr/testify/require"
)

// MockLogger discards everything; it satisfies domain.Logger for tests.
type MockLogger struct{}

func (l *MockLogger) Info(msg string, fields ...interface{})             {}
func (l *MockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *MockLogger) Debug(msg string, fields ...interface{})            {}
func (l *MockLogger) Warn(msg string, fields ...interface{})             {}

var _ domain.Logger = (*MockLogger)(nil)

// fakePageReader returns fixed page texts and counts how often it was used.
type fakePageReader struct {
	pages []string
	err   error
	calls int
}

func (f *fakePageReader) PageTexts([]byte) ([]string, error) {
	f.calls++
	return f.pages, f.err
}

// zipBytes builds an archive with the given members, written in map-key
// order given by names.
func zipBytes(t *testing.T, names []string, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(files[name]))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

const wordNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`

// docxFixture wraps raw body XML into a DOCX archive.
func docxFixture(t *testing.T, bodyXML string) []byte {
	t.Helper()
	doc := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document ` + wordNS + `><w:body>` + bodyXML + `</w:body></w:document>`
	return zipBytes(t, []string{"word/document.xml"}, map[string]string{"word/document.xml": doc})
}

// docxParagraphsFixture builds a DOCX with one simple paragraph per entry.
func docxParagraphsFixture(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var sb strings.Builder
	for _, p := range paragraphs {
		fmt.Fprintf(&sb, `<w:p><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`, p)
	}
	return docxFixture(t, sb.String())
}

const drawingNS = `xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
	`xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" ` +
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`

// slideXML renders one slide; each shape is a list of paragraphs. A nil
// shape renders as a picture with no text body.
func slideXML(shapes ...[]string) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?><p:sld ` + drawingNS + `><p:cSld><p:spTree>`)
	for _, paragraphs := range shapes {
		if paragraphs == nil {
			sb.WriteString(`<p:pic><p:nvPicPr><p:cNvPr id="9" name="Picture"/></p:nvPicPr></p:pic>`)
			continue
		}
		sb.WriteString(`<p:sp><p:txBody>`)
		for _, p := range paragraphs {
			fmt.Fprintf(&sb, `<a:p><a:r><a:t>%s</a:t></a:r></a:p>`, p)
		}
		sb.WriteString(`</p:txBody></p:sp>`)
	}
	sb.WriteString(`</p:spTree></p:cSld></p:sld>`)
	return sb.String()
}

// pptxFixture builds a deck whose presentation.xml lists slides in the given
// order. slides maps slide file numbers to slide XML; the archive stores
// them in ascending file order.
func pptxFixture(t *testing.T, order []int, slides map[int]string) []byte {
	t.Helper()

	files := map[string]string{}
	var names []string

	var rels, ids strings.Builder
	rels.WriteString(`<?xml version="1.0" encoding="UTF-8"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	ids.WriteString(`<?xml version="1.0" encoding="UTF-8"?><p:presentation ` + drawingNS + `><p:sldIdLst>`)
	for i, n := range order {
		fmt.Fprintf(&rels, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, n+100, n)
		fmt.Fprintf(&ids, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, n+100)
	}
	rels.WriteString(`</Relationships>`)
	ids.WriteString(`</p:sldIdLst></p:presentation>`)

	if len(order) > 0 {
		names = append(names, "ppt/presentation.xml", "ppt/_rels/presentation.xml.rels")
		files["ppt/presentation.xml"] = ids.String()
		files["ppt/_rels/presentation.xml.rels"] = rels.String()
	}

	for n := 1; n <= 99; n++ {
		body, ok := slides[n]
		if !ok {
			continue
		}
		name := fmt.Sprintf("ppt/slides/slide%d.xml", n)
		names = append(names, name)
		files[name] = body
	}
	return zipBytes(t, names, files)
}
