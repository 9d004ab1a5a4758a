// Package localdict holds the curated words that resolve without any
// remote call.
package localdict

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/viovio/internal/domain"
)

//go:embed curated.yaml
var curatedYAML []byte

// entryYAML is the on-disk shape of a curated entry.
type entryYAML struct {
	Word        string   `yaml:"word"`
	Phonetic    string   `yaml:"phonetic"`
	Meaning     string   `yaml:"meaning"`
	Type        string   `yaml:"type"`
	Explanation string   `yaml:"explanation"`
	Example     string   `yaml:"example"`
	ExampleCn   string   `yaml:"exampleCn"`
	Tags        []string `yaml:"tags"`
}

// Dictionary is an immutable word → entry mapping. Safe for concurrent use.
type Dictionary struct {
	entries map[string]domain.VocabEntry
}

// New returns the dictionary built from the embedded curated entries.
func New() (*Dictionary, error) {
	return Load("")
}

// Load returns the embedded dictionary extended with the entries of the YAML
// file at extraPath. Entries of the file replace embedded ones with the same
// word. An empty extraPath loads the embedded entries only.
func Load(extraPath string) (*Dictionary, error) {
	base, err := Parse(curatedYAML)
	if err != nil {
		return nil, fmt.Errorf("localdict.Load: embedded: %w", err)
	}

	d := &Dictionary{entries: make(map[string]domain.VocabEntry, len(base))}
	d.add(base)

	if extraPath == "" {
		return d, nil
	}

	data, err := os.ReadFile(extraPath)
	if err != nil {
		return nil, fmt.Errorf("localdict.Load: read %s: %w", extraPath, err)
	}
	extra, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("localdict.Load: %s: %w", extraPath, err)
	}
	d.add(extra)

	return d, nil
}

// Parse decodes a YAML list of curated entries. Every entry needs a word and
// a meaning.
func Parse(data []byte) ([]domain.VocabEntry, error) {
	var raw []entryYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	entries := make([]domain.VocabEntry, 0, len(raw))
	for i, r := range raw {
		word := strings.TrimSpace(r.Word)
		if word == "" {
			return nil, domain.NewValidationError(fmt.Sprintf("entries[%d].word", i), "required")
		}
		if strings.TrimSpace(r.Meaning) == "" {
			return nil, domain.NewValidationError(fmt.Sprintf("entries[%d].meaning", i), "required")
		}

		entries = append(entries, domain.VocabEntry{
			Word:               word,
			Phonetic:           strings.TrimSpace(r.Phonetic),
			Meaning:            r.Meaning,
			PartOfSpeech:       r.Type,
			Explanation:        r.Explanation,
			Example:            r.Example,
			ExampleTranslation: r.ExampleCn,
			Tags:               r.Tags,
			Provenance:         domain.ProvenanceCurated,
		})
	}
	return entries, nil
}

func (d *Dictionary) add(entries []domain.VocabEntry) {
	for _, e := range entries {
		d.entries[e.Key()] = e
	}
}

// Lookup finds the curated entry for word, matching case-insensitively after
// trimming. The returned entry is a copy: phonetic falls back to the
// placeholder and no audio is attached.
func (d *Dictionary) Lookup(word string) (domain.VocabEntry, bool) {
	e, ok := d.entries[domain.NormalizeText(word)]
	if !ok {
		return domain.VocabEntry{}, false
	}

	e.Tags = slices.Clone(e.Tags)
	e.AudioURL = nil
	e.ImageURL = nil
	if e.Phonetic == "" {
		e.Phonetic = domain.PhoneticPlaceholder
	}
	return e, true
}

// Len returns the number of curated words.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Words returns the curated words in display casing, sorted.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.entries))
	for _, e := range d.entries {
		words = append(words, e.Word)
	}
	slices.Sort(words)
	return words
}
