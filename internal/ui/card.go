package ui

import (
	"unicode"
	"unicode/utf16"

	"github.com/heartmarshall/viovio/internal/domain"
)

// Watermark is printed in the corner of every word card.
const Watermark = "VioVio"

// TitleSize is the relative size of the word on a card.
type TitleSize string

const (
	TitleXL TitleSize = "XL"
	TitleL  TitleSize = "L"
	TitleM  TitleSize = "M"
	TitleS  TitleSize = "S"
)

// Palette is a two-stop background gradient with a matching text color.
// Colors are hex RGB.
type Palette struct {
	Name string
	From string
	To   string
	Text string
}

// Palettes are chosen by word hash, so a word always gets the same colors.
var Palettes = []Palette{
	{Name: "orange-rose", From: "#ffedd5", To: "#ffe4e6", Text: "#f43f5e"},
	{Name: "blue-cyan", From: "#dbeafe", To: "#cffafe", Text: "#3b82f6"},
	{Name: "emerald-lime", From: "#d1fae5", To: "#ecfccb", Text: "#059669"},
	{Name: "violet-purple", From: "#ede9fe", To: "#f3e8ff", Text: "#a855f7"},
	{Name: "amber-yellow", From: "#fef3c7", To: "#fef9c3", Text: "#d97706"},
	{Name: "pink-rose", From: "#fce7f3", To: "#ffe4e6", Text: "#ec4899"},
	{Name: "indigo-blue", From: "#e0e7ff", To: "#dbeafe", Text: "#6366f1"},
	{Name: "teal-green", From: "#ccfbf1", To: "#dcfce7", Text: "#0d9488"},
}

// SpeechPlan says what to play for a word: the recorded audio when there
// is one, else the text through a synthesizer in Lang.
type SpeechPlan struct {
	AudioURL string
	Text     string
	Lang     string
}

// WordCard is the view model of a result.
type WordCard struct {
	Word      string
	Type      string
	Size      TitleSize
	Palette   Palette
	Watermark string
	Speech    SpeechPlan
}

// NewWordCard builds the card of entry.
func NewWordCard(entry domain.VocabEntry) WordCard {
	return WordCard{
		Word:      entry.Word,
		Type:      entry.PartOfSpeech,
		Size:      titleSize(entry.Word),
		Palette:   PaletteFor(entry.Word),
		Watermark: Watermark,
		Speech:    PlanSpeech(entry.Word, entry.AudioURL),
	}
}

// PaletteFor picks the palette of word.
func PaletteFor(word string) Palette {
	h := int64(wordHash(word))
	if h < 0 {
		h = -h
	}
	return Palettes[h%int64(len(Palettes))]
}

// wordHash is the 32-bit rolling hash c + (h<<5) - h over UTF-16 code units.
func wordHash(s string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = int32(c) + (h << 5) - h
	}
	return h
}

func titleSize(word string) TitleSize {
	switch n := len(utf16.Encode([]rune(word))); {
	case n <= 4:
		return TitleXL
	case n <= 7:
		return TitleL
	case n <= 10:
		return TitleM
	default:
		return TitleS
	}
}

// PlanSpeech prefers the audio URL and falls back to speaking text.
func PlanSpeech(text string, audioURL *string) SpeechPlan {
	if audioURL != nil && *audioURL != "" {
		return SpeechPlan{AudioURL: *audioURL, Text: text}
	}
	return SpeechPlan{Text: text, Lang: SpeechLang(text)}
}

// SpeechLang is zh-CN for text with CJK ideographs, else en-US.
func SpeechLang(text string) string {
	for _, r := range text {
		if unicode.Is(unicode.Han, r) {
			return "zh-CN"
		}
	}
	return "en-US"
}
