package provider

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/viovio/internal/domain"
)

// DefinitionPrompt builds the generator prompt for word. Every backend sends
// the same text so the same strict parser applies to all of them.
func DefinitionPrompt(word string) string {
	return fmt.Sprintf(`Vocabulary tutor backend. Word: %q.
Return ONLY a JSON object (NO markdown) with exactly these keys:
{
  "word": "<corrected spelling of the word>",
  "meaning": "<concise Chinese meaning>",
  "explanation": "<fun Chinese explanation, max 60 characters>",
  "example": "<English example sentence>",
  "exampleCn": "<Chinese translation of the example>",
  "type": "<part of speech>",
  "tags": ["<tag>"]
}`, word)
}

var (
	requiredStringKeys = []string{"meaning", "type", "explanation", "example", "exampleCn"}
	knownKeys          = []string{"word", "meaning", "type", "explanation", "example", "exampleCn", "tags"}
)

// ParseDefinition decodes generator output into a Definition. The text must
// be one JSON object, optionally wrapped in a single markdown code fence.
// Unknown keys, missing required keys, type mismatches, an empty meaning and
// null or blank tags all fail with domain.ErrMalformedResponse.
func ParseDefinition(text string) (*Definition, error) {
	raw, err := ExtractJSON(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("%w: decode object: %w", domain.ErrMalformedResponse, err)
	}

	for key := range fields {
		if !slices.Contains(knownKeys, key) {
			return nil, fmt.Errorf("%w: unknown key %q", domain.ErrMalformedResponse, key)
		}
	}

	strs := make(map[string]string, len(requiredStringKeys))
	for _, key := range requiredStringKeys {
		v, ok := fields[key]
		if !ok {
			return nil, fmt.Errorf("%w: missing key %q", domain.ErrMalformedResponse, key)
		}
		s, err := decodeString(v)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q: %w", domain.ErrMalformedResponse, key, err)
		}
		strs[key] = s
	}

	if strings.TrimSpace(strs["meaning"]) == "" {
		return nil, fmt.Errorf("%w: empty meaning", domain.ErrMalformedResponse)
	}

	def := &Definition{
		Meaning:     strs["meaning"],
		Type:        strs["type"],
		Explanation: strs["explanation"],
		Example:     strs["example"],
		ExampleCn:   strs["exampleCn"],
	}

	if v, ok := fields["word"]; ok && !isNull(v) {
		s, err := decodeString(v)
		if err != nil {
			return nil, fmt.Errorf("%w: key \"word\": %w", domain.ErrMalformedResponse, err)
		}
		def.Word = strings.TrimSpace(s)
	}

	if v, ok := fields["tags"]; ok && !isNull(v) {
		tags, err := decodeTags(v)
		if err != nil {
			return nil, fmt.Errorf("%w: key \"tags\": %w", domain.ErrMalformedResponse, err)
		}
		def.Tags = tags
	}

	return def, nil
}

// decodeString accepts only a JSON string literal.
func decodeString(v json.RawMessage) (string, error) {
	v = bytes.TrimSpace(v)
	if len(v) == 0 || v[0] != '"' {
		return "", fmt.Errorf("want string")
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", err
	}
	return s, nil
}

// decodeTags accepts only an array of non-blank string literals.
func decodeTags(v json.RawMessage) ([]string, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(v, &items); err != nil || items == nil {
		return nil, fmt.Errorf("want array of strings")
	}
	tags := make([]string, 0, len(items))
	for i, item := range items {
		s, err := decodeString(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if strings.TrimSpace(s) == "" {
			return nil, fmt.Errorf("element %d: empty tag", i)
		}
		tags = append(tags, s)
	}
	return tags, nil
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// ExtractJSON returns the JSON object held by s. s must be the bare object
// or one markdown code fence around it, tagged json or untagged. Any other
// text around the object is rejected.
func ExtractJSON(s string) (string, error) {
	s = strings.TrimSpace(s)
	if body, ok := strings.CutPrefix(s, "```"); ok {
		body, ok = strings.CutSuffix(body, "```")
		if !ok {
			return "", fmt.Errorf("unterminated code fence")
		}
		lang, rest, found := strings.Cut(body, "\n")
		if !found || strings.HasPrefix(strings.TrimSpace(lang), "{") {
			lang, rest = "", body
		}
		if lang = strings.TrimSpace(lang); lang != "" && !strings.EqualFold(lang, "json") {
			return "", fmt.Errorf("code fence language %q is not json", lang)
		}
		s = strings.TrimSpace(rest)
	}
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s, nil
}
