package service

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// --- DOCX extraction ---

// docxParagraphs returns the text of every paragraph in word/document.xml,
// in document order. Empty paragraphs are kept as empty strings.
func docxParagraphs(docxBytes []byte) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(docxBytes), int64(len(docxBytes)))
	if err != nil {
		return nil, fmt.Errorf("failed to open docx: %w", err)
	}
	body, err := readZipFile(zr, "word/document.xml")
	if err != nil {
		return nil, fmt.Errorf("invalid docx (missing document.xml): %w", err)
	}

	var paragraphs []string
	// Text boxes nest paragraphs inside paragraphs, so keep a stack.
	var open []*strings.Builder
	inText := false

	dec := xml.NewDecoder(bytes.NewReader(body))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid docx xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				open = append(open, &strings.Builder{})
			case "t":
				inText = len(open) > 0
			case "tab":
				if len(open) > 0 {
					open[len(open)-1].WriteByte('\t')
				}
			case "br", "cr":
				if len(open) > 0 {
					open[len(open)-1].WriteByte('\n')
				}
			}
		case xml.CharData:
			if inText {
				open[len(open)-1].Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if len(open) == 0 {
					continue
				}
				current := open[len(open)-1]
				open = open[:len(open)-1]
				paragraphs = append(paragraphs, current.String())
			}
		}
	}
	return paragraphs, nil
}

// --- PPTX extraction ---

var slidePathPattern = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// pptxSlides returns, for each slide in deck order, the text of every
// text-bearing shape in the slide's native shape order.
func pptxSlides(pptxBytes []byte) ([][]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(pptxBytes), int64(len(pptxBytes)))
	if err != nil {
		return nil, fmt.Errorf("failed to open pptx: %w", err)
	}

	slidePaths := slideOrder(zr)
	slides := make([][]string, 0, len(slidePaths))
	for _, p := range slidePaths {
		b, err := readZipFile(zr, p)
		if err != nil {
			return nil, fmt.Errorf("invalid pptx (missing %s): %w", p, err)
		}
		shapes, err := slideShapeTexts(b)
		if err != nil {
			return nil, fmt.Errorf("invalid pptx xml in %s: %w", p, err)
		}
		slides = append(slides, shapes)
	}
	return slides, nil
}

// slideOrder resolves slide part names in presentation order. When the
// presentation part or its relationships are unusable it falls back to the
// numeric order of ppt/slides/slideN.xml.
func slideOrder(zr *zip.Reader) []string {
	if ordered := slideOrderFromPresentation(zr); len(ordered) > 0 {
		return ordered
	}

	type numbered struct {
		n    int
		name string
	}
	var found []numbered
	for _, f := range zr.File {
		m := slidePathPattern.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		found = append(found, numbered{n: n, name: f.Name})
	}
	sort.Slice(found, func(i, j int) bool { return found[i].n < found[j].n })

	out := make([]string, 0, len(found))
	for _, f := range found {
		out = append(out, f.name)
	}
	return out
}

func slideOrderFromPresentation(zr *zip.Reader) []string {
	presentation, err := readZipFile(zr, "ppt/presentation.xml")
	if err != nil {
		return nil
	}
	rels, err := readZipFile(zr, "ppt/_rels/presentation.xml.rels")
	if err != nil {
		return nil
	}

	// Relationship targets are relative to the ppt/ directory.
	targets := map[string]string{}
	relDec := xml.NewDecoder(bytes.NewReader(rels))
	for {
		tok, err := relDec.Token()
		if err != nil {
			break
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Relationship" {
			continue
		}
		var id, target string
		for _, a := range se.Attr {
			switch a.Name.Local {
			case "Id":
				id = a.Value
			case "Target":
				target = a.Value
			}
		}
		if id == "" || target == "" {
			continue
		}
		if strings.HasPrefix(target, "/") {
			targets[id] = strings.TrimPrefix(target, "/")
		} else {
			targets[id] = path.Clean(path.Join("ppt", target))
		}
	}

	var ordered []string
	dec := xml.NewDecoder(bytes.NewReader(presentation))
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "sldId" {
			continue
		}
		for _, a := range se.Attr {
			// The bare "id" attribute is the numeric slide id; the
			// namespaced r:id points into the relationships part.
			if a.Name.Local != "id" || a.Name.Space == "" {
				continue
			}
			if target, ok := targets[a.Value]; ok {
				ordered = append(ordered, target)
			}
		}
	}
	return ordered
}

// slideShapeTexts walks a slide part and returns the text of each shape or
// graphic frame that carries any. Pictures and connectors have no text body
// and are skipped.
func slideShapeTexts(slideXML []byte) ([]string, error) {
	var shapes []string
	var shape *strings.Builder
	shapeDepth := 0
	var paragraph strings.Builder
	inParagraph := false
	inText := false
	paragraphs := 0

	dec := xml.NewDecoder(bytes.NewReader(slideXML))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "sp", "graphicFrame":
				if shape == nil {
					shape = &strings.Builder{}
					paragraphs = 0
				}
				shapeDepth++
			case "p":
				if shape != nil {
					inParagraph = true
					paragraph.Reset()
				}
			case "t":
				inText = inParagraph
			case "br":
				if inParagraph {
					paragraph.WriteByte('\n')
				}
			}
		case xml.CharData:
			if inText {
				paragraph.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if !inParagraph {
					continue
				}
				inParagraph = false
				if paragraphs > 0 {
					shape.WriteByte('\n')
				}
				shape.WriteString(paragraph.String())
				paragraphs++
			case "sp", "graphicFrame":
				if shape == nil {
					continue
				}
				shapeDepth--
				if shapeDepth > 0 {
					continue
				}
				if text := shape.String(); strings.TrimSpace(text) != "" {
					shapes = append(shapes, text)
				}
				shape = nil
			}
		}
	}
	return shapes, nil
}

// readZipFile returns the named archive member, matching exactly first and
// then case-insensitively.
func readZipFile(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name == name {
			return readZipEntry(f)
		}
	}
	lower := strings.ToLower(name)
	for _, f := range zr.File {
		if strings.ToLower(f.Name) == lower {
			return readZipEntry(f)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

func readZipEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
