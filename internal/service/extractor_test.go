package service

import (
	"errors"
	"strings"
	"testing"

	"doc-digest/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor(pages *fakePageReader) *DocumentExtractor {
	return NewDocumentExtractor(pages, &MockLogger{})
}

func TestExtract_PDFPagesConcatenated(t *testing.T) {
	pages := &fakePageReader{pages: []string{"Intro text.", "Details text."}}

	got, err := newTestExtractor(pages).Extract(&domain.Document{Name: "report.pdf", Bytes: []byte("%PDF")})
	require.NoError(t, err)

	assert.Equal(t, domain.FormatPDF, got.Format)
	assert.Equal(t, "Intro text.Details text.", got.Text)
	assert.Equal(t, 2, got.Units)
}

func TestExtract_PDFBlankPagesSkippedInUnits(t *testing.T) {
	pages := &fakePageReader{pages: []string{"One\n", "", "Three\n"}}

	got, err := newTestExtractor(pages).Extract(&domain.Document{Name: "r.PDF"})
	require.NoError(t, err)
	assert.Equal(t, "One\nThree\n", got.Text)
	assert.Equal(t, 2, got.Units)
}

func TestExtract_DOCX(t *testing.T) {
	doc := &domain.Document{Name: "notes.docx", Bytes: docxParagraphsFixture(t, "First.", "", "Second.")}

	got, err := newTestExtractor(&fakePageReader{}).Extract(doc)
	require.NoError(t, err)
	assert.Equal(t, domain.FormatDOCX, got.Format)
	assert.Equal(t, "First.\n\nSecond.", got.Text)
	assert.Equal(t, 2, got.Units)
}

func TestExtract_PPTX(t *testing.T) {
	deck := pptxFixture(t, []int{1, 2}, map[int]string{
		1: slideXML([]string{"Agenda"}, []string{"Goals", "Risks"}),
		2: slideXML(nil, []string{"Thanks"}),
	})

	got, err := newTestExtractor(&fakePageReader{}).Extract(&domain.Document{Name: "deck.pptx", Bytes: deck})
	require.NoError(t, err)
	assert.Equal(t, domain.FormatPPTX, got.Format)
	assert.Equal(t, "Agenda\nGoals\nRisks\nThanks", got.Text)
	assert.Equal(t, 3, got.Units)
}

func TestExtract_Failures(t *testing.T) {
	emptyDeck := pptxFixture(t, []int{1}, map[int]string{1: slideXML(nil, []string{" "})})

	tests := []struct {
		name  string
		doc   *domain.Document
		pages *fakePageReader
		want  error
	}{
		{name: "nil document", doc: nil, want: domain.ErrMissingInput},
		{name: "blank name", doc: &domain.Document{Name: "  ", Bytes: []byte("x")}, want: domain.ErrMissingInput},
		{name: "unknown format", doc: &domain.Document{Name: "notes.txt", Bytes: []byte("hello")}, want: domain.ErrUnsupportedFormat},
		{name: "no extension", doc: &domain.Document{Name: "README", Bytes: []byte("hello")}, want: domain.ErrUnsupportedFormat},
		{name: "pdf without text", doc: &domain.Document{Name: "scan.pdf"}, pages: &fakePageReader{pages: []string{"", " \n"}}, want: domain.ErrEmptyContent},
		{name: "pdf without pages", doc: &domain.Document{Name: "zero.pdf"}, pages: &fakePageReader{}, want: domain.ErrEmptyContent},
		{name: "pdf engine error", doc: &domain.Document{Name: "bad.pdf"}, pages: &fakePageReader{err: errors.New("corrupt xref")}, want: domain.ErrUnreadableDocument},
		{name: "empty docx", doc: &domain.Document{Name: "blank.docx", Bytes: docxParagraphsFixture(t, "", "  ")}, want: domain.ErrEmptyContent},
		{name: "corrupt docx", doc: &domain.Document{Name: "bad.docx", Bytes: []byte("not a zip")}, want: domain.ErrUnreadableDocument},
		{name: "empty pptx", doc: &domain.Document{Name: "blank.pptx", Bytes: emptyDeck}, want: domain.ErrEmptyContent},
		{name: "corrupt pptx", doc: &domain.Document{Name: "bad.pptx", Bytes: []byte{0x50, 0x4b}}, want: domain.ErrUnreadableDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages := tt.pages
			if pages == nil {
				pages = &fakePageReader{}
			}

			got, err := newTestExtractor(pages).Extract(tt.doc)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExtract_UnknownFormatNeverReadsBytes(t *testing.T) {
	pages := &fakePageReader{pages: []string{"should not be read"}}

	_, err := newTestExtractor(pages).Extract(&domain.Document{Name: "image.png", Bytes: []byte("%PDF")})
	require.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	assert.Zero(t, pages.calls)
}

func TestExtract_SanitizesText(t *testing.T) {
	pages := &fakePageReader{pages: []string{"a\x00b\x07c\td\ne\x7f", "f\xffg"}}

	got, err := newTestExtractor(pages).Extract(&domain.Document{Name: "x.pdf"})
	require.NoError(t, err)
	assert.Equal(t, "abc\td\nefg", got.Text)
}

func TestSanitizeText_OnlyControlCharactersIsEmpty(t *testing.T) {
	assert.Equal(t, "", sanitizeText("\x00\x01\x02"))
}

func TestNewPageReader(t *testing.T) {
	assert.IsType(t, &PurePageReader{}, NewPageReader("pure", &MockLogger{}))
	assert.IsType(t, &PurePageReader{}, NewPageReader("PURE", &MockLogger{}))
	assert.IsType(t, &FitzPageReader{}, NewPageReader("fitz", &MockLogger{}))
	assert.IsType(t, &FitzPageReader{}, NewPageReader("", &MockLogger{}))
}

func TestPurePageReader_RejectsGarbage(t *testing.T) {
	_, err := NewPageReader(PDFEnginePure, &MockLogger{}).PageTexts([]byte("definitely not a pdf"))
	assert.Error(t, err)
}

func TestDetectFormat_CoversSupportedFormats(t *testing.T) {
	for _, format := range domain.SupportedFormats() {
		assert.Equal(t, format, DetectFormat("file."+strings.ToUpper(string(format))))
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		want domain.FormatKind
	}{
		{"report.pdf", domain.FormatPDF},
		{"REPORT.PDF", domain.FormatPDF},
		{"notes.docx", domain.FormatDOCX},
		{"Deck.PpTx", domain.FormatPPTX},
		{"archive.tar.pdf", domain.FormatPDF},
		{"notes.doc", domain.FormatUnknown},
		{"slides.ppt", domain.FormatUnknown},
		{"notes.txt", domain.FormatUnknown},
		{"pdf", domain.FormatUnknown},
		{"", domain.FormatUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.name))
		})
	}
}
