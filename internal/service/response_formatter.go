package service

import (
	"strings"

	"doc-digest/internal/domain"
)

// Fixed replies used when the backend produced nothing.
const (
	SummaryFailureText = "Summary generation failed."
	QAFailureText      = "Response generation failed."
)

const (
	bulletGlyph    = "•"
	emphasisMarker = "**"
	lineBreak      = "<br>"
	blockSeparator = "\n"
	questionLabel  = "Question:"
	answerLabel    = "Answer:"
)

// FailureText returns the fixed failure reply for a task.
func FailureText(task domain.TaskKind) string {
	if task == domain.TaskQA {
		return QAFailureText
	}
	return SummaryFailureText
}

// FormatReply renders a reply in the mode matching the task.
func FormatReply(task domain.TaskKind, reply *domain.RawReply) string {
	if task == domain.TaskQA {
		return FormatQA(reply)
	}
	return FormatSummary(reply)
}

// --- Summary mode ---

// Segment is a run of bullet text, either plain or strongly emphasized.
type Segment struct {
	Text   string
	Strong bool
}

// Bullet is one summary point.
type Bullet struct {
	Segments []Segment
}

// FormatSummary renders a reply as bullet lines separated by <br>.
func FormatSummary(reply *domain.RawReply) string {
	if reply == nil {
		return SummaryFailureText
	}
	return RenderBullets(ParseBullets(reply.Text))
}

// ParseBullets splits a reply into bullets. Blank lines are dropped, bullet
// markers the backend already emitted are removed, and a line holding
// several • points yields one bullet per point.
func ParseBullets(raw string) []Bullet {
	var bullets []Bullet
	for _, line := range splitLines(raw) {
		for _, point := range strings.Split(line, bulletGlyph) {
			point = stripBulletMarkers(point)
			if point == "" {
				continue
			}
			segments := parseEmphasis(point)
			if len(segments) == 0 {
				continue
			}
			bullets = append(bullets, Bullet{Segments: segments})
		}
	}
	return bullets
}

// RenderBullets prefixes each bullet with one glyph and joins them with <br>.
func RenderBullets(bullets []Bullet) string {
	lines := make([]string, 0, len(bullets))
	for _, b := range bullets {
		var sb strings.Builder
		sb.WriteString(bulletGlyph)
		sb.WriteString(" ")
		for _, seg := range b.Segments {
			if seg.Strong {
				sb.WriteString(strong(escapeText(seg.Text)))
			} else {
				sb.WriteString(escapeText(seg.Text))
			}
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, lineBreak)
}

// stripBulletMarkers removes leading "-", "*" and "•" markers. A leading
// "**" opens emphasis and is kept.
func stripBulletMarkers(s string) string {
	for {
		s = strings.TrimSpace(s)
		switch {
		case strings.HasPrefix(s, bulletGlyph):
			s = strings.TrimPrefix(s, bulletGlyph)
		case strings.HasPrefix(s, emphasisMarker):
			return s
		case strings.HasPrefix(s, "*"), strings.HasPrefix(s, "-"):
			s = s[1:]
		default:
			return s
		}
	}
}

// parseEmphasis splits on "**" and toggles the emphasis flag at every
// marker, so odd segments are strong even when the last marker is never
// closed. Stray single asterisks are dropped.
func parseEmphasis(s string) []Segment {
	var segments []Segment
	inside := false
	for i, part := range strings.Split(s, emphasisMarker) {
		if i > 0 {
			inside = !inside
		}
		part = strings.ReplaceAll(part, "*", "")
		if part == "" {
			continue
		}
		segments = append(segments, Segment{Text: part, Strong: inside})
	}
	if len(segments) > 0 && strings.TrimSpace(joinSegments(segments)) == "" {
		return nil
	}
	return segments
}

func joinSegments(segments []Segment) string {
	var sb strings.Builder
	for _, seg := range segments {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

// --- Q/A mode ---

// QALineKind tells how a line inside a block is rendered.
type QALineKind int

const (
	QALineContinuation QALineKind = iota
	QALineQuestion
	QALineAnswer
)

// QALine is one non-blank line of a block.
type QALine struct {
	Kind QALineKind
	Text string
}

// QABlock is a question with its answer and any continuation lines.
type QABlock struct {
	Lines []QALine
}

// FormatQA renders a reply as one contiguous unit per question/answer block.
func FormatQA(reply *domain.RawReply) string {
	if reply == nil {
		return QAFailureText
	}
	return RenderQA(ParseQA(reply.Text))
}

// ParseQA groups reply lines into blocks. Each "Question:" line closes the
// open block and starts a new one; "Answer:" and any other non-blank line
// join the open block. Lines before the first question open a block of
// their own so nothing is dropped. A trailing block is always closed.
func ParseQA(raw string) []QABlock {
	var blocks []QABlock
	var current *QABlock

	closeBlock := func() {
		if current != nil {
			blocks = append(blocks, *current)
			current = nil
		}
	}

	for _, line := range splitLines(raw) {
		line = normalizeQALine(line)
		if line == "" {
			continue
		}

		kind := QALineContinuation
		switch {
		case strings.HasPrefix(line, questionLabel):
			kind = QALineQuestion
			closeBlock()
		case strings.HasPrefix(line, answerLabel):
			kind = QALineAnswer
		}

		if current == nil {
			current = &QABlock{}
		}
		current.Lines = append(current.Lines, QALine{Kind: kind, Text: line})
	}
	closeBlock()

	return blocks
}

// RenderQA renders question and answer lines as <br><strong>line</strong>,
// continuation lines as plain text, and separates blocks with a newline.
func RenderQA(blocks []QABlock) string {
	var out strings.Builder
	for _, block := range blocks {
		var sb strings.Builder
		for i, line := range block.Lines {
			text := escapeText(line.Text)
			switch line.Kind {
			case QALineQuestion, QALineAnswer:
				sb.WriteString(lineBreak)
				sb.WriteString(strong(text))
			default:
				if i > 0 {
					sb.WriteString(" ")
				}
				sb.WriteString(text)
			}
		}
		out.WriteString(sb.String())
		out.WriteString(blockSeparator)
	}
	return strings.TrimSpace(out.String())
}

// normalizeQALine trims the line and removes the bullet and emphasis
// markers the backend may wrap around labels, e.g. "* **Question:**".
func normalizeQALine(line string) string {
	line = strings.ReplaceAll(line, "*", "")
	line = strings.ReplaceAll(line, bulletGlyph, "")
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "- ") {
		line = strings.TrimSpace(line[2:])
	}
	return line
}

// --- shared ---

func splitLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")
	return strings.Split(strings.TrimSpace(raw), "\n")
}

// markupEscaper escapes only what could open a tag or an entity; quotes and
// apostrophes stay readable.
var markupEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string {
	return markupEscaper.Replace(s)
}

func strong(escaped string) string {
	return "<strong>" + escaped + "</strong>"
}
