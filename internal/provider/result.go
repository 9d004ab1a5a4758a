package provider

// Pronunciation is the phonetic data found for a word by the pronunciation
// lookup. Empty fields mean the source had no such data.
type Pronunciation struct {
	Transcription string
	AudioURL      *string
	Region        *string
}

// HasTranscription reports whether a phonetic transcription was found.
func (p *Pronunciation) HasTranscription() bool {
	return p != nil && p.Transcription != ""
}

// Definition is a generated vocabulary definition after strict validation.
type Definition struct {
	// Word is the corrected spelling proposed by the generator, empty when
	// the generator did not return one.
	Word        string
	Meaning     string
	Type        string
	Explanation string
	Example     string
	ExampleCn   string
	// Tags is nil when the generator omitted the field.
	Tags []string
}

// GeneratorConfig holds the settings shared by every definition generator
// backend.
type GeneratorConfig struct {
	APIKey    string
	Model     string
	BaseURL   string
	MaxTokens int
}
