package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/nekruzvatanshoev/carlot/pkg/carlot/listing"
)

// CardView is a card as it is written into the listing grid.
type CardView struct {
	listing.Card
	PriceMillions string
}

// HTMLSurface materialises listing cards as an HTML fragment.
type HTMLSurface struct {
	tmpl  *template.Template
	cards []CardView
	empty bool
}

// NewHTMLSurface returns an empty surface rendering with the embedded
// grid template.
func NewHTMLSurface() *HTMLSurface {
	return &HTMLSurface{tmpl: gridTemplate}
}

// Clear implements listing.Surface.
func (s *HTMLSurface) Clear() {
	s.cards = nil
	s.empty = false
}

// AppendCard implements listing.Surface.
func (s *HTMLSurface) AppendCard(card listing.Card) {
	s.cards = append(s.cards, CardView{
		Card:          card,
		PriceMillions: listing.PriceMillions(card.Car.Price).String(),
	})
}

// ShowEmptyState implements listing.Surface.
func (s *HTMLSurface) ShowEmptyState() {
	s.empty = true
}

// Cards returns the cards currently on the surface.
func (s *HTMLSurface) Cards() []CardView {
	out := make([]CardView, len(s.cards))
	copy(out, s.cards)
	return out
}

// Empty reports whether the empty state is shown.
func (s *HTMLSurface) Empty() bool {
	return s.empty
}

// HTML renders the listing grid and the no-results block.
func (s *HTMLSurface) HTML() (template.HTML, error) {
	var buf bytes.Buffer
	err := s.tmpl.ExecuteTemplate(&buf, "grid", struct {
		Cards []CardView
		Empty bool
	}{s.cards, s.empty})
	if err != nil {
		return "", fmt.Errorf("render grid: %w", err)
	}
	return template.HTML(buf.String()), nil
}
