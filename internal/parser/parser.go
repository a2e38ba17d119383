package parser

import (
	"fmt"
	"sort"
	"strings"

	"catlint/internal/catalog"
	"catlint/internal/diag"
	"catlint/internal/source"
)

// Parser extracts catalog entries from one semi-structured document.
//
// A section starts at a heading line naming an exception/error type and runs
// until the next heading or EOF. Inside a section, prose before a tip label
// is the description and everything after it is the prevention tip. Parsing
// is tolerant: missing fields yield empty strings, and a heading without an
// extractable name is skipped with a warning, never a failure.
type Parser struct {
	file     *source.File
	cur      lineCursor
	opts     Options
	reporter diag.Reporter
	warnings int
}

// Result carries the extracted entries plus parse statistics.
type Result struct {
	Entries  []catalog.Entry
	Sections int // recognized headings, including skipped ones
	Warnings int
}

// New creates a parser over the given document.
func New(file *source.File, opts Options, reporter diag.Reporter) *Parser {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	return &Parser{
		file:     file,
		cur:      newLineCursor(file),
		opts:     opts,
		reporter: reporter,
	}
}

// sectionState accumulates one section while its lines are consumed.
type sectionState struct {
	rawName string
	heading source.Span
	section source.Span
	desc    []string
	tip     []string
	inTip   bool
}

// Parse consumes the whole document and returns entries in document order.
func (p *Parser) Parse() Result {
	var (
		entries []catalog.Entry
		current *sectionState
		skipped bool // внутри секции без имени
		inFence bool
	)
	sections := 0

	flush := func() {
		if current == nil {
			return
		}
		entries = append(entries, catalog.Entry{
			RawName:     current.rawName,
			Name:        catalog.NormalizeName(current.rawName),
			Description: normalizeText(current.desc),
			Tip:         normalizeText(current.tip),
			Heading:     current.heading,
			Section:     current.section,
		})
		current = nil
	}

	for !p.cur.eof() {
		ln := p.cur.next()
		trimmed := strings.TrimSpace(ln.text)

		// Заборы кода: внутри них ни заголовки, ни метки не распознаются.
		if isFenceLine(trimmed) {
			inFence = !inFence
			continue
		}
		if inFence {
			p.appendProse(current, ln.text)
			if current != nil {
				current.section = current.section.Cover(ln.span)
			}
			continue
		}

		if raw, ok := p.matchHeading(trimmed); ok {
			flush()
			skipped = false
			sections++
			if p.opts.MaxSections > 0 && sections > p.opts.MaxSections {
				break
			}
			name := cleanHeadingText(raw)
			if !hasNameRune(name) {
				p.warn(diag.ParseNoName, ln.span,
					fmt.Sprintf("section heading %q has no extractable name", trimmed))
				skipped = true
				continue
			}
			current = &sectionState{
				rawName: name,
				heading: ln.span,
				section: ln.span,
			}
			continue
		}

		if rest, ok := matchLabel(trimmed, p.opts.TipLabels); ok {
			if current == nil {
				if !skipped {
					p.warn(diag.ParseOrphanTip, ln.span, "prevention tip appears outside any section")
				}
				continue
			}
			current.inTip = true
			if rest != "" {
				current.tip = append(current.tip, rest)
			}
			current.section = current.section.Cover(ln.span)
			continue
		}

		if rest, ok := matchLabel(trimmed, p.opts.DescriptionLabels); ok && current != nil {
			current.inTip = false
			if rest != "" {
				current.desc = append(current.desc, rest)
			}
			current.section = current.section.Cover(ln.span)
			continue
		}

		if trimmed == "" || isRuleLine(trimmed) {
			continue
		}

		p.appendProse(current, trimmed)
		if current != nil {
			current.section = current.section.Cover(ln.span)
		}
	}
	flush()

	// Пустой каталог — находка чекера (CatEmptyCatalog), не парсера.
	return Result{Entries: entries, Sections: sections, Warnings: p.warnings}
}

func (p *Parser) appendProse(current *sectionState, text string) {
	if current == nil {
		return // преамбула до первой секции — не ошибка
	}
	if current.inTip {
		current.tip = append(current.tip, text)
	} else {
		current.desc = append(current.desc, text)
	}
}

func (p *Parser) warn(code diag.Code, span source.Span, msg string) {
	p.warnings++
	diag.ReportWarning(p.reporter, code, span, msg).Emit()
}

// matchHeading reports whether the line starts a section and returns the raw
// heading text after the style marker.
func (p *Parser) matchHeading(text string) (string, bool) {
	if p.opts.hasStyle(HeadingMarkdown) {
		if rest, ok := matchMarkdownHeading(text); ok {
			return rest, true
		}
	}
	if p.opts.hasStyle(HeadingNumbered) {
		if rest, ok := matchNumberedHeading(text); ok {
			return rest, true
		}
	}
	return "", false
}

func matchMarkdownHeading(text string) (string, bool) {
	n := 0
	for n < len(text) && text[n] == '#' {
		n++
	}
	if n == 0 || n > 6 {
		return "", false
	}
	rest := text[n:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

func matchNumberedHeading(text string) (string, bool) {
	n := 0
	for n < len(text) && text[n] >= '0' && text[n] <= '9' {
		n++
	}
	if n == 0 || n >= len(text) {
		return "", false
	}
	if text[n] != '.' && text[n] != ')' {
		return "", false
	}
	rest := text[n+1:]
	if rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// cleanHeadingText strips numbering, emphasis markers, backticks and
// trailing '#' runs from a raw heading, leaving the entry name.
func cleanHeadingText(raw string) string {
	s := strings.TrimSpace(raw)

	// "3. Name" внутри markdown-заголовка
	if rest, ok := matchNumberedHeading(s); ok {
		s = rest
	}

	// закрывающие '#' у заголовков вида "# Name #"
	s = strings.TrimRight(s, "#")
	s = strings.TrimSpace(s)

	s = trimEmphasis(s)
	return strings.TrimSpace(s)
}

// trimEmphasis removes matching *, _, ` and ~ runs from both ends.
func trimEmphasis(s string) string {
	for {
		t := strings.TrimSpace(s)
		t = strings.Trim(t, "*_`~")
		if t == s {
			return t
		}
		s = t
	}
}

// hasNameRune reports whether the cleaned heading still carries at least one
// letter or digit.
func hasNameRune(s string) bool {
	for _, r := range s {
		if isLetterOrDigit(r) {
			return true
		}
	}
	return false
}

func isLetterOrDigit(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r > 0x7F
}

// matchLabel checks whether the line starts with one of the labels followed
// by a colon (possibly wrapped in list or emphasis markers) and returns the
// text after the colon. Longer labels win so that "prevention tip" is not
// shadowed by "tip".
func matchLabel(text string, labels []string) (string, bool) {
	if len(labels) == 0 {
		return "", false
	}
	s := stripListMarker(text)
	s = strings.TrimLeft(s, "*_")
	lower := strings.ToLower(s)

	sorted := make([]string, len(labels))
	copy(sorted, labels)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	for _, label := range sorted {
		label = strings.ToLower(strings.TrimSpace(label))
		if label == "" || !strings.HasPrefix(lower, label) {
			continue
		}
		rest := s[len(label):]
		rest = strings.TrimLeft(rest, "*_")
		rest = strings.TrimSpace(rest)
		if rest == "" {
			return "", true
		}
		if rest[0] != ':' {
			continue
		}
		rest = strings.TrimLeft(rest[1:], "*_ \t")
		return strings.TrimSpace(rest), true
	}
	return "", false
}

func stripListMarker(text string) string {
	s := strings.TrimSpace(text)
	for len(s) > 0 && (s[0] == '-' || s[0] == '*' || s[0] == '>' || s[0] == '+') {
		s = strings.TrimSpace(s[1:])
	}
	return s
}

func isFenceLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}

// isRuleLine matches horizontal rules: three or more identical -, * or _.
func isRuleLine(trimmed string) bool {
	if len(trimmed) < 3 {
		return false
	}
	c := trimmed[0]
	if c != '-' && c != '*' && c != '_' {
		return false
	}
	for i := 1; i < len(trimmed); i++ {
		if trimmed[i] != c {
			return false
		}
	}
	return true
}

// normalizeText joins accumulated prose lines into one whitespace-normalized
// string, so that textual equality between duplicate occurrences does not
// depend on wrapping.
func normalizeText(lines []string) string {
	var words []string
	for _, ln := range lines {
		words = append(words, strings.Fields(ln)...)
	}
	return strings.Join(words, " ")
}
