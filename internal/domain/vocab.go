package domain

import (
	"time"

	"github.com/google/uuid"
)

// PhoneticPlaceholder is shown when no transcription is known for a word.
const PhoneticPlaceholder = "/.../"

// DefaultAITag is the tag assigned to generated entries that came without tags.
const DefaultAITag = "AI"

// Provenance tells where a vocabulary entry came from.
type Provenance string

const (
	ProvenanceCurated Provenance = "CURATED"
	ProvenanceAI      Provenance = "AI"
)

func (p Provenance) String() string { return string(p) }

func (p Provenance) IsValid() bool {
	switch p {
	case ProvenanceCurated, ProvenanceAI:
		return true
	}
	return false
}

// IsAI reports whether the entry was produced by a generator.
func (p Provenance) IsAI() bool { return p == ProvenanceAI }

// ProvenanceFromFlag maps the persisted is_ai flag back to a Provenance.
func ProvenanceFromFlag(isAI bool) Provenance {
	if isAI {
		return ProvenanceAI
	}
	return ProvenanceCurated
}

// VocabEntry is one resolved word as shown on a word card.
type VocabEntry struct {
	Word               string
	Phonetic           string
	Meaning            string
	PartOfSpeech       string
	Explanation        string
	Example            string
	ExampleTranslation string
	Tags               []string
	AudioURL           *string
	ImageURL           *string
	Provenance         Provenance
	SearchedAt         time.Time
}

// Key returns the identity key of the entry: its normalized word.
func (e VocabEntry) Key() string {
	return NormalizeText(e.Word)
}

// SameWord reports whether two words denote the same entry.
func SameWord(a, b string) bool {
	return NormalizeText(a) == NormalizeText(b)
}

// HistoryRecord is a VocabEntry saved for one user.
type HistoryRecord struct {
	ID     uuid.UUID
	UserID uuid.UUID
	VocabEntry
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FindRecord returns the record in records whose word matches word
// case-insensitively, or nil.
func FindRecord(records []HistoryRecord, word string) *HistoryRecord {
	key := NormalizeText(word)
	for i := range records {
		if records[i].Key() == key {
			return &records[i]
		}
	}
	return nil
}

// HistoryFieldSet selects which columns a history write touches.
type HistoryFieldSet int

const (
	// HistoryFieldsFull writes every column.
	HistoryFieldsFull HistoryFieldSet = iota
	// HistoryFieldsMinimal omits audio_url, image_url and is_ai.
	HistoryFieldsMinimal
)

func (f HistoryFieldSet) String() string {
	if f == HistoryFieldsMinimal {
		return "minimal"
	}
	return "full"
}
