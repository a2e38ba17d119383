package parser

// HeadingStyle selects which line shapes start a new catalog section.
type HeadingStyle uint8

const (
	// HeadingMarkdown recognizes "# Name" .. "###### Name" lines.
	HeadingMarkdown HeadingStyle = iota
	// HeadingNumbered recognizes "12. Name" / "12) Name" lines.
	HeadingNumbered
)

// Options configures section recognition.
type Options struct {
	// Styles lists the accepted heading shapes. Empty means markdown only.
	Styles []HeadingStyle
	// TipLabels are the case-insensitive labels that introduce a prevention
	// tip block, e.g. "prevention". Matched against the start of a line
	// after list/bold markers are stripped.
	TipLabels []string
	// DescriptionLabels are labels whose prefix is stripped from
	// description prose, e.g. "description".
	DescriptionLabels []string
	// MaxSections bounds the number of sections parsed from one document.
	// 0 means no limit.
	MaxSections int
}

// DefaultOptions returns the options used when no catlint.toml overrides
// them. The label set covers the phrasings commonly seen in exception
// reference documents.
func DefaultOptions() Options {
	return Options{
		Styles: []HeadingStyle{HeadingMarkdown, HeadingNumbered},
		TipLabels: []string{
			"prevention tip",
			"prevention",
			"how to avoid",
			"how to prevent",
			"tip",
			"solution",
			"fix",
		},
		DescriptionLabels: []string{
			"description",
			"what it is",
			"cause",
		},
	}
}

func (o Options) styles() []HeadingStyle {
	if len(o.Styles) == 0 {
		return []HeadingStyle{HeadingMarkdown}
	}
	return o.Styles
}

func (o Options) hasStyle(st HeadingStyle) bool {
	for _, s := range o.styles() {
		if s == st {
			return true
		}
	}
	return false
}
