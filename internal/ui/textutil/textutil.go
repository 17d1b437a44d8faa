// Package textutil fits plain label text into a fixed number of terminal columns.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks text cut short by Truncate.
const Ellipsis = "…"

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// SingleLine replaces line breaks and tabs with spaces so s renders on one row.
func SingleLine(s string) string {
	return lineBreaks.Replace(s)
}

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending it with Ellipsis
// when anything was dropped. Wide runes are never split.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}

	avail := maxWidth - Width(Ellipsis)
	if avail <= 0 {
		return Ellipsis
	}
	used := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if used+rw > avail {
			return s[:i] + Ellipsis
		}
		used += rw
	}
	return s
}

// Center pads s with spaces on both sides to exactly width columns, truncating
// first if needed. Odd padding goes to the right.
func Center(s string, width int) string {
	s = Truncate(s, width)
	gap := width - Width(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return runewidth.FillLeft("", left) + s + runewidth.FillRight("", gap-left)
}
