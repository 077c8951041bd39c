package markdown

import "regexp"

// SpanKind classifies an inline span.
type SpanKind int

const (
	SpanPlain SpanKind = iota
	SpanCode
	SpanBold
	SpanItalic
	SpanLink
)

// Span is one styled run of text inside a block. URL is set on link spans
// only; it is carried for display, never activated.
type Span struct {
	Kind SpanKind
	Text string
	URL  string
}

// Capture groups: 1 code, 2 bold, 3 italic (star), 4 italic (underscore),
// 5 link text, 6 link url. Alternation order is load-bearing: bold must be
// tried before italic at the same position.
var (
	inlineRe     = regexp.MustCompile("`([^`]+)`|\\*\\*([^*]+)\\*\\*|\\*([^*]+)\\*|_([^_]+)_")
	inlineLinkRe = regexp.MustCompile("`([^`]+)`|\\*\\*([^*]+)\\*\\*|\\*([^*]+)\\*|_([^_]+)_|\\[([^\\]]+)\\]\\(([^)]+)\\)")
)

// ParseInline re-scans a block's text for inline markup, left to right,
// non-overlapping. Nesting between bold and italic markers is not handled;
// unmatched runs become plain spans.
func ParseInline(text string, d Dialect) []Span {
	if text == "" {
		return nil
	}

	re := inlineRe
	if d.Links {
		re = inlineLinkRe
	}

	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []Span{{Kind: SpanPlain, Text: text}}
	}

	spans := make([]Span, 0, len(matches)*2+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			spans = append(spans, Span{Kind: SpanPlain, Text: text[last:m[0]]})
		}
		spans = append(spans, spanFromMatch(text, m))
		last = m[1]
	}
	if last < len(text) {
		spans = append(spans, Span{Kind: SpanPlain, Text: text[last:]})
	}

	return spans
}

func spanFromMatch(text string, m []int) Span {
	group := func(i int) (string, bool) {
		if 2*i+1 >= len(m) || m[2*i] < 0 {
			return "", false
		}
		return text[m[2*i]:m[2*i+1]], true
	}

	if s, ok := group(1); ok {
		return Span{Kind: SpanCode, Text: s}
	}
	if s, ok := group(2); ok {
		return Span{Kind: SpanBold, Text: s}
	}
	if s, ok := group(3); ok {
		return Span{Kind: SpanItalic, Text: s}
	}
	if s, ok := group(4); ok {
		return Span{Kind: SpanItalic, Text: s}
	}
	if s, ok := group(5); ok {
		url, _ := group(6)
		return Span{Kind: SpanLink, Text: s, URL: url}
	}

	return Span{Kind: SpanPlain, Text: text[m[0]:m[1]]}
}
