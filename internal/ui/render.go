package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/viovio/internal/domain"
)

const cardWidth = 44

// Renderer writes states as plain or ANSI-colored text.
type Renderer struct {
	Color bool
}

// Render writes the whole screen for st.
func (r Renderer) Render(w io.Writer, st State) {
	var b strings.Builder

	if st.Session.Notice != "" {
		b.WriteString(st.Session.Notice + "\n")
	}
	if st.Session.Onboarding {
		b.WriteString("给自己起个名字吧：:name <昵称>，或 :skip 跳过。\n")
	}

	switch {
	case st.Loading:
		fmt.Fprintf(&b, "正在查询 %q ...\n", st.Query)
	case st.Err != "":
		b.WriteString(r.paint("#f43f5e", st.Err) + "\n")
	case st.Result != nil:
		r.writeEntry(&b, *st.Result)
	case st.Flashback != nil:
		fmt.Fprintf(&b, "回顾一下：%s  (:flashback 查看释义)\n", r.paint(PaletteFor(st.Flashback.Word).Text, st.Flashback.Word))
	}

	if st.SyncHint {
		b.WriteString("登录后即可同步查询历史 (:login / :signup)\n")
	}

	io.WriteString(w, b.String()) //nolint:errcheck
}

// RenderHistory writes a numbered list, newest first, numbered from 1.
func (r Renderer) RenderHistory(w io.Writer, records []domain.HistoryRecord) {
	if len(records) == 0 {
		io.WriteString(w, "暂无历史记录。\n") //nolint:errcheck
		return
	}
	var b strings.Builder
	for i, rec := range records {
		fmt.Fprintf(&b, "%3d. %s  %s\n", i+1, r.paint(PaletteFor(rec.Word).Text, rec.Word), rec.Meaning)
	}
	io.WriteString(w, b.String()) //nolint:errcheck
}

func (r Renderer) writeEntry(b *strings.Builder, e domain.VocabEntry) {
	card := NewWordCard(e)
	r.writeCard(b, card)

	badge := "精选"
	if e.Provenance.IsAI() {
		badge = "AI"
	}
	fmt.Fprintf(b, "%s  [%s]\n", e.Phonetic, badge)
	if e.PartOfSpeech != "" {
		fmt.Fprintf(b, "(%s) ", e.PartOfSpeech)
	}
	b.WriteString(e.Meaning + "\n")
	if e.Explanation != "" {
		b.WriteString(e.Explanation + "\n")
	}
	if e.Example != "" {
		fmt.Fprintf(b, "  > %s\n", e.Example)
	}
	if e.ExampleTranslation != "" {
		fmt.Fprintf(b, "    %s\n", e.ExampleTranslation)
	}
	if len(e.Tags) > 0 {
		b.WriteString("#" + strings.Join(e.Tags, " #") + "\n")
	}
}

// writeCard draws a framed title block with the watermark in the corner.
func (r Renderer) writeCard(b *strings.Builder, card WordCard) {
	title := spacedTitle(card.Word, card.Size)
	border := "+" + strings.Repeat("-", cardWidth) + "+"

	b.WriteString(r.paint(card.Palette.From, border) + "\n")
	b.WriteString(r.line("", card.Palette))
	b.WriteString(r.centered(title, card.Palette.Text, card.Palette))
	if card.Type != "" {
		b.WriteString(r.centered(strings.ToUpper(card.Type), card.Palette.To, card.Palette))
	}
	b.WriteString(r.line(strings.Repeat(" ", max(cardWidth-utf8.RuneCountInString(card.Watermark)-1, 0))+card.Watermark, card.Palette))
	b.WriteString(r.paint(card.Palette.From, border) + "\n")
}

func (r Renderer) centered(text, color string, p Palette) string {
	n := utf8.RuneCountInString(text)
	if n >= cardWidth {
		return r.line(text, p)
	}
	left := (cardWidth - n) / 2
	right := cardWidth - n - left
	return r.paint(p.From, "|") + strings.Repeat(" ", left) + r.paint(color, text) + strings.Repeat(" ", right) + r.paint(p.From, "|") + "\n"
}

func (r Renderer) line(text string, p Palette) string {
	pad := max(cardWidth-utf8.RuneCountInString(text), 0)
	return r.paint(p.From, "|") + text + strings.Repeat(" ", pad) + r.paint(p.From, "|") + "\n"
}

// spacedTitle widens larger titles by spacing out their letters.
func spacedTitle(word string, size TitleSize) string {
	var sep string
	switch size {
	case TitleXL:
		sep = "  "
	case TitleL:
		sep = " "
	default:
		return word
	}
	return strings.Join(strings.Split(word, ""), sep)
}

// paint wraps s in a 24-bit foreground color when color output is on.
func (r Renderer) paint(hex, s string) string {
	if !r.Color || len(hex) != 7 || hex[0] != '#' {
		return s
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return s
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", v>>16, (v>>8)&0xff, v&0xff, s)
}
