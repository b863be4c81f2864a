package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocxParagraphs(t *testing.T) {
	body := `<w:p><w:r><w:t>Hello </w:t></w:r><w:r><w:t>world</w:t></w:r></w:p>` +
		`<w:p/>` +
		`<w:p><w:r><w:t>a</w:t><w:tab/><w:t>b</w:t><w:br/><w:t>c</w:t></w:r></w:p>` +
		`<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:rPr><w:b/></w:rPr><w:t>Title</w:t></w:r></w:p>`

	paragraphs, err := docxParagraphs(docxFixture(t, body))
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello world", "", "a\tb\nc", "Title"}, paragraphs)
}

func TestDocxParagraphs_Errors(t *testing.T) {
	_, err := docxParagraphs([]byte("not a zip"))
	assert.Error(t, err)

	noDocument := zipBytes(t, []string{"word/styles.xml"}, map[string]string{"word/styles.xml": "<x/>"})
	_, err = docxParagraphs(noDocument)
	assert.Error(t, err)
}

func TestPptxSlides_PresentationOrder(t *testing.T) {
	deck := pptxFixture(t, []int{2, 1}, map[int]string{
		1: slideXML([]string{"Second"}),
		2: slideXML([]string{"First"}),
	})

	slides, err := pptxSlides(deck)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"First"}, {"Second"}}, slides)
}

func TestPptxSlides_NumericFallbackOrder(t *testing.T) {
	// No presentation part: slide10 must come after slide2.
	deck := pptxFixture(t, nil, map[int]string{
		10: slideXML([]string{"ten"}),
		2:  slideXML([]string{"two"}),
		1:  slideXML([]string{"one"}),
	})

	slides, err := pptxSlides(deck)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"one"}, {"two"}, {"ten"}}, slides)
}

func TestPptxSlides_ShapesWithoutTextSkipped(t *testing.T) {
	deck := pptxFixture(t, []int{1}, map[int]string{
		1: slideXML(
			[]string{"Title"},
			nil,
			[]string{"  "},
			[]string{"line one", "line two"},
		),
	})

	slides, err := pptxSlides(deck)
	require.NoError(t, err)
	require.Len(t, slides, 1)
	assert.Equal(t, []string{"Title", "line one\nline two"}, slides[0])
}

func TestPptxSlides_MissingSlidePart(t *testing.T) {
	deck := pptxFixture(t, []int{1, 2}, map[int]string{
		1: slideXML([]string{"only"}),
	})

	_, err := pptxSlides(deck)
	assert.Error(t, err)
}

func TestReadZipFile_CaseInsensitive(t *testing.T) {
	archive := zipBytes(t, []string{"Word/Document.XML"}, map[string]string{"Word/Document.XML": `<w:document ` + wordNS + `><w:body><w:p><w:r><w:t>x</w:t></w:r></w:p></w:body></w:document>`})
	paragraphs, err := docxParagraphs(archive)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, paragraphs)
}
