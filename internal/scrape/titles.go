package scrape

import "strings"

// TitleEntry is the (game, optional edition) pair a display title maps to.
type TitleEntry struct {
	Game    string  `yaml:"game"`
	Edition *string `yaml:"edition"`
}

// TitleMap maps known exact display titles to their entries. It is
// per-provider configuration data, not logic: vocabularies change when
// providers rename cards, independently of the resolver.
type TitleMap map[string]TitleEntry

// variantReplacer substitutes known interchangeable spellings before the
// single retry lookup. No fuzzy matching beyond this: an unrecognized
// title is dropped, never guessed.
var variantReplacer = strings.NewReplacer(
	"Mediodía", "Medio Día",
	"Dia", "Día",
)

// Resolve maps a card's display title to its entry. On a miss it applies
// the fixed variant substitutions and retries exactly once.
func (m TitleMap) Resolve(title string) (TitleEntry, bool) {
	if e, ok := m[title]; ok {
		return e, true
	}
	if e, ok := m[variantReplacer.Replace(title)]; ok {
		return e, true
	}
	return TitleEntry{}, false
}
