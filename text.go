package wuikit

import (
	"strings"
	"unicode"
)

// deleteWordBeforeCursor implements Ctrl+Backspace in edit lines. Trailing
// white space before the cursor is removed together with the word in front
// of it. A line break (\r\n) counts as one word of its own.
func deleteWordBeforeCursor(text []rune, cursor int) (newText string, newCursor int) {
	start := wordStartBefore(text, cursor)
	rest := text[cursor:]
	return string(append(text[:start:start], rest...)), start
}

func wordStartBefore(text []rune, cursor int) int {
	i := cursor
	if i >= 2 && text[i-2] == '\r' && text[i-1] == '\n' {
		return i - 2
	}
	if i <= 1 {
		return 0
	}
	for i > 0 && unicode.IsSpace(text[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(text[i-1]) {
		i--
	}
	return i
}

// deleteSelection removes the runes in [start, end) and places the cursor
// where the selection began.
func deleteSelection(text []rune, start, end int) (newText string, newCursor int) {
	start, end = clampSelection(start, end, len(text))
	rest := text[end:]
	return string(append(text[:start:start], rest...)), start
}

// clampSelection keeps a selection inside a text of n runes and orders it so
// that start <= end.
func clampSelection(start, end, n int) (int, int) {
	clamp := func(i int) int {
		if i < 0 {
			return 0
		}
		if i > n {
			return n
		}
		return i
	}
	start, end = clamp(start), clamp(end)
	if end < start {
		start, end = end, start
	}
	return start, end
}

// normalizeDecimal rewrites text so that '.' is the only decimal separator.
// If text contains both '.' and ',', the one that comes last separates the
// fraction and the other one groups thousands and is removed, so "1,234.5"
// and "1.234,5" both become "1234.5". Otherwise ',' is a decimal separator.
func normalizeDecimal(text string) string {
	dot := strings.LastIndexByte(text, '.')
	comma := strings.LastIndexByte(text, ',')
	if dot >= 0 && comma >= 0 {
		if dot > comma {
			return strings.ReplaceAll(text, ",", "")
		}
		text = strings.ReplaceAll(text, ".", "")
	}
	return strings.ReplaceAll(text, ",", ".")
}

// sanitizeNumber turns whatever was typed into a number field into a valid
// number with exactly precision decimal places. Separators are read as in
// normalizeDecimal, all other characters are dropped and surplus digits are
// cut off.
func sanitizeNumber(text string, precision int) string {
	var neg, seenDot bool
	var whole, frac strings.Builder
	for _, r := range normalizeDecimal(text) {
		switch {
		case r == '-' && !neg && !seenDot && whole.Len() == 0:
			neg = true
		case r == '.' && !seenDot:
			seenDot = true
		case '0' <= r && r <= '9':
			if !seenDot {
				whole.WriteRune(r)
			} else if frac.Len() < precision {
				frac.WriteRune(r)
			}
		}
	}
	s := whole.String()
	if s == "" {
		s = "0"
	}
	if neg {
		s = "-" + s
	}
	if precision > 0 {
		s += "." + frac.String() + strings.Repeat("0", precision-frac.Len())
	}
	return s
}
