package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nekruzvatanshoev/carlot/pkg/carlot/listing"
)

// TextSurface lays cards out as a plain text table.
type TextSurface struct {
	cards []listing.Card
	empty bool
}

// Clear implements listing.Surface.
func (s *TextSurface) Clear() {
	s.cards = nil
	s.empty = false
}

// AppendCard implements listing.Surface.
func (s *TextSurface) AppendCard(card listing.Card) {
	s.cards = append(s.cards, card)
}

// ShowEmptyState implements listing.Surface.
func (s *TextSurface) ShowEmptyState() {
	s.empty = true
}

// WriteTo writes the table to w.
func (s *TextSurface) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	if s.empty {
		_, err := fmt.Fprintln(cw, "No cars found")
		return cw.n, err
	}

	tw := tabwriter.NewWriter(cw, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tCATEGORY\tYEAR\tENGINE\tMILEAGE\tBADGE")
	for _, c := range s.cards {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.Car.ID, c.Car.Name, c.Car.Price, c.Car.Category, c.Car.Year, c.Car.Engine, c.Car.Mileage, c.Car.Badge)
	}
	err := tw.Flush()
	return cw.n, err
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
