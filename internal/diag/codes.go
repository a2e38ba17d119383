package diag

import (
	"fmt"
)

// Code identifies one kind of finding. Ranges are reserved per producer:
// 1000-1999 parser, 2000-2999 catalog checks, 3000-3999 configuration.
type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Парсерные предупреждения
	ParseInfo         Code = 1000
	ParseNoName       Code = 1001
	ParseOrphanTip    Code = 1002
	ParseOrphanProse  Code = 1003
	ParseEmptySection Code = 1004

	// Находки по каталогу
	CatInfo               Code = 2000
	CatDuplicateAgree     Code = 2001
	CatDuplicateMismatch  Code = 2002
	CatMissingDescription Code = 2003
	CatMissingTip         Code = 2004
	CatMalformedName      Code = 2005
	CatEmptyCatalog       Code = 2006
	CatIgnoredName        Code = 2007

	// Конфигурация
	CfgInfo          Code = 3000
	CfgBadPattern    Code = 3001
	CfgBadHeadStyle  Code = 3002
	CfgBadExtension  Code = 3003
	CfgUnknownIgnore Code = 3004
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown",

	ParseInfo:         "parse note",
	ParseNoName:       "heading without an extractable name",
	ParseOrphanTip:    "prevention tip outside any section",
	ParseOrphanProse:  "prose before the first section",
	ParseEmptySection: "section with no body",

	CatInfo:               "catalog note",
	CatDuplicateAgree:     "entry documented more than once (texts agree)",
	CatDuplicateMismatch:  "repeated entry with diverging text",
	CatMissingDescription: "entry without a description",
	CatMissingTip:         "entry without a prevention tip",
	CatMalformedName:      "entry name is not identifier-like",
	CatEmptyCatalog:       "no catalog sections recognized",
	CatIgnoredName:        "entry skipped by ignore list",

	CfgInfo:          "config note",
	CfgBadPattern:    "invalid name pattern in config",
	CfgBadHeadStyle:  "unknown heading style in config",
	CfgBadExtension:  "invalid file extension in config",
	CfgUnknownIgnore: "ignore list entry never matched",
}

// ID returns the stable short identifier, e.g. "CAT2002".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("PAR%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("CAT%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("CFG%04d", ic)
	}
	return "E0000"
}

// Title returns the human readable one-liner for the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// Category maps a code onto the report category used for grouping:
// "duplicate", "missing-field", "malformed-name", "parse" or "config".
func (c Code) Category() string {
	switch c {
	case CatDuplicateAgree, CatDuplicateMismatch:
		return "duplicate"
	case CatMissingDescription, CatMissingTip:
		return "missing-field"
	case CatMalformedName:
		return "malformed-name"
	}
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return "parse"
	case ic >= 3000 && ic < 4000:
		return "config"
	}
	return "other"
}
