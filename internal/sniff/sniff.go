// Package sniff guesses the column separator of decoded CSV text.
package sniff

import "strings"

// Sniffer picks the delimiter for a decoded CSV document.
// It sits behind an interface so a quote-aware, per-row implementation can
// replace the counting heuristic without touching callers.
type Sniffer interface {
	Sniff(text string) rune
}

// CountSniffer counts ';' and ',' occurrences over the whole text and picks
// the majority. The count is not quote-aware, so commas inside quoted
// fields weigh in; a semicolon is chosen only on a strict majority and ','
// wins ties. Kept for compatibility with existing clients.
type CountSniffer struct{}

func (CountSniffer) Sniff(text string) rune {
	if strings.Count(text, ";") > strings.Count(text, ",") {
		return ';'
	}
	return ','
}
