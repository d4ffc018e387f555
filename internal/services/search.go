package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/GregMSThompson/banks-directory/internal/models"
)

// FilterBanks returns the banks matching query, in their original order.
// An empty query matches everything.
func FilterBanks(banks []models.Bank, query string) []models.Bank {
	if query == "" {
		all := make([]models.Bank, len(banks))
		copy(all, banks)
		return all
	}

	m := newMatcher(query)
	visible := make([]models.Bank, 0, len(banks))
	for _, b := range banks {
		if m.match(b) {
			visible = append(visible, b)
		}
	}
	return visible
}

// MatchesQuery: BIC is matched case-sensitively, the names case-insensitively.
func MatchesQuery(bank models.Bank, query string) bool {
	return newMatcher(query).match(bank)
}

type matcher struct {
	raw    string
	folded string
	fold   cases.Caser
	runes  map[rune]rune
}

func newMatcher(query string) *matcher {
	m := &matcher{
		raw:   query,
		fold:  cases.Fold(),
		runes: make(map[rune]rune),
	}
	m.folded = m.foldString(query)
	return m
}

func (m *matcher) match(b models.Bank) bool {
	if strings.Contains(b.BIC, m.raw) {
		return true
	}
	if m.containsFold(b.Name) {
		return true
	}
	return b.NameInEnglish != nil && m.containsFold(*b.NameInEnglish)
}

func (m *matcher) containsFold(s string) bool {
	return strings.Contains(m.foldString(s), m.folded)
}

// foldString folds rune by rune, so a query never matches across an
// expansion like "ß" to "ss".
func (m *matcher) foldString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(m.foldRune(r))
	}
	return b.String()
}

func (m *matcher) foldRune(r rune) rune {
	if f, ok := m.runes[r]; ok {
		return f
	}
	f := unicode.ToLower(r)
	if folded := m.fold.String(string(r)); utf8.RuneCountInString(folded) == 1 {
		f, _ = utf8.DecodeRuneInString(folded)
	}
	m.runes[r] = f
	return f
}
