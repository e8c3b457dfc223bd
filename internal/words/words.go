package words

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var tablesYAML []byte

var (
	// ErrNoWord is returned when a number has no entry in a word table.
	ErrNoWord = errors.New("no word for value")

	// ErrUnknownLanguage is returned for a language without a word table.
	ErrUnknownLanguage = errors.New("unknown language")
)

// Language identifies a word table by its two-letter code.
type Language string

// Supported languages
const (
	English Language = "en"
	German  Language = "de"
)

// Table holds the words used to speak a time in one language
type Table struct {
	One             string         `yaml:"one"`
	Half            string         `yaml:"half"`
	Noon            string         `yaml:"noon"`
	Midnight        string         `yaml:"midnight"`
	OClock          string         `yaml:"oclock"`
	NumeratorJoiner string         `yaml:"numerator_joiner"`
	UnitJoiner      string         `yaml:"unit_joiner"`
	Digits          map[int]string `yaml:"digits"`
	Singular        map[int]string `yaml:"singular"`
	Plural          map[int]string `yaml:"plural"`
}

var loadTables = sync.OnceValues(func() (map[Language]*Table, error) {
	return parse(tablesYAML)
})

// Lookup returns the word table for lang. Tables are decoded once on first use.
func Lookup(lang Language) (*Table, error) {
	tables, err := loadTables()
	if err != nil {
		return nil, err
	}

	table, ok := tables[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	return table, nil
}

// Languages lists the languages that have a word table, sorted by code.
func Languages() []Language {
	tables, err := loadTables()
	if err != nil {
		return nil
	}

	langs := lo.Keys(tables)
	slices.Sort(langs)
	return langs
}

// Cardinal returns the counting word for n.
func (t *Table) Cardinal(n int) (string, error) {
	return lookup(t.Digits, "cardinal", n)
}

// Hour returns the word for an hour on the 12-hour dial. One o'clock has its
// own form in both languages ("eins", not "ein").
func (t *Table) Hour(n int) (string, error) {
	if n < 1 || n > 12 {
		return "", fmt.Errorf("%w: hour %d", ErrNoWord, n)
	}
	if n == 1 {
		return t.One, nil
	}
	return lookup(t.Digits, "hour", n)
}

// SingularOrdinal returns the ordinal for a single part of den, e.g. "quarter".
func (t *Table) SingularOrdinal(den int) (string, error) {
	return lookup(t.Singular, "singular ordinal", den)
}

// PluralOrdinal returns the ordinal for several parts of den, e.g. "quarters".
func (t *Table) PluralOrdinal(den int) (string, error) {
	return lookup(t.Plural, "plural ordinal", den)
}

func lookup(m map[int]string, kind string, n int) (string, error) {
	w, ok := m[n]
	if !ok {
		return "", fmt.Errorf("%w: %s %d", ErrNoWord, kind, n)
	}
	return w, nil
}

func parse(data []byte) (map[Language]*Table, error) {
	var tables map[Language]*Table
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("failed to parse word tables: %w", err)
	}

	if len(tables) == 0 {
		return nil, fmt.Errorf("no word tables defined")
	}

	for lang, table := range tables {
		if err := validate(table); err != nil {
			return nil, fmt.Errorf("invalid word table %q: %w", lang, err)
		}
	}

	return tables, nil
}

// validate checks the fixed phrases are present; the numeric maps are
// checked lazily by lookup.
func validate(t *Table) error {
	if t == nil {
		return fmt.Errorf("table is empty")
	}

	required := map[string]string{
		"one":      t.One,
		"half":     t.Half,
		"noon":     t.Noon,
		"midnight": t.Midnight,
		"oclock":   t.OClock,
	}
	missing := lo.Keys(lo.PickBy(required, func(_ string, v string) bool {
		return v == ""
	}))
	if len(missing) > 0 {
		slices.Sort(missing)
		return fmt.Errorf("missing fields: %v", missing)
	}

	if t.NumeratorJoiner == "" || t.UnitJoiner == "" {
		return fmt.Errorf("joiners must not be empty")
	}

	return nil
}
