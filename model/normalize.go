package model

import (
	"strconv"
	"strings"
)

// trim removes surrounding ASCII and ideographic whitespace.
func trim(s string) string {
	return strings.Trim(s, " \t\r\n　")
}

// NormalizeLabel canonicalizes a categorical survey value:
//
//   - surrounding whitespace removed
//   - half-width parentheses unified to full-width
//   - a leading classification code ("1 実施済", "2-1 申請等に基づく…")
//     stripped
//
// Source rows spell the same category several ways; the store indexes the
// canonical spelling so a single filter value matches all of them.
func NormalizeLabel(s string) string {
	s = trim(s)
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, "(", "（")
	s = strings.ReplaceAll(s, ")", "）")
	return trim(stripClassCode(s))
}

// stripClassCode removes a leading "N" or "N-M" classification prefix.
func stripClassCode(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return s
	}
	if i < len(s) && s[i] == '-' {
		j := i + 1
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j > i+1 {
			i = j
		}
	}
	rest := s[i:]
	// Only treat the digits as a code when something follows them.
	if trim(rest) == "" {
		return s
	}
	return rest
}

// multiSeps are the enumeration separators seen in list-valued survey
// columns. All are unified before splitting.
var multiSeps = []string{"，", ",", ";", "；"}

// SplitMulti splits a list-valued field on Japanese enumeration separators.
// Empty items are dropped; an empty or absent value yields nil.
func SplitMulti(s string) []string {
	s = trim(s)
	if s == "" {
		return nil
	}
	for _, sep := range multiSeps {
		s = strings.ReplaceAll(s, sep, "、")
	}
	return splitClean(s, "、")
}

// SplitSemicolon splits a field that enumerates values with semicolons
// (information systems, submission organs).
func SplitSemicolon(s string) []string {
	s = trim(s)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "；", ";")
	return splitClean(s, ";")
}

func splitClean(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = trim(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ParseCount decodes a volume column. The survey mixes plain integers,
// grouped digits and free text; anything unparseable counts as zero rather
// than dropping the row.
func ParseCount(s string) uint64 {
	s = trim(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
