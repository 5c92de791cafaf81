package listing

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/nekruzvatanshoev/carlot/pkg/carlot/dal"
)

// Card is one materialised car on a Surface together with its actions.
type Card struct {
	Car dal.Car
	// DetailsURL surfaces every field of the car.
	DetailsURL string
	// InquireURL opens the contact page with the car name pre-filled.
	InquireURL string
}

// Surface is where a filter pass is displayed.
type Surface interface {
	Clear()
	AppendCard(card Card)
	ShowEmptyState()
}

// Binder creates the actions of a card.
type Binder interface {
	Bind(car dal.Car) Card
}

// LinkBinder binds cards to the details and contact pages.
type LinkBinder struct {
	DetailsPath string
	ContactPath string
}

// DefaultBinder points at the site's own details and contact routes.
var DefaultBinder = LinkBinder{DetailsPath: "/cars", ContactPath: "/contact"}

// Bind implements Binder.
func (b LinkBinder) Bind(car dal.Car) Card {
	return Card{
		Car:        car,
		DetailsURL: strings.TrimSuffix(b.DetailsPath, "/") + "/" + strconv.Itoa(car.ID),
		InquireURL: InquireURL(b.ContactPath, car.Name),
	}
}

// InquireURL returns the contact destination carrying name in the car
// parameter.
func InquireURL(contactPath, name string) string {
	return contactPath + "?" + url.Values{"car": {name}}.Encode()
}

// Render replaces the content of s with cars. Cards are bound before
// Render returns.
func Render(s Surface, cars []dal.Car, b Binder) {
	s.Clear()
	if len(cars) == 0 {
		s.ShowEmptyState()
		return
	}
	for _, car := range cars {
		s.AppendCard(b.Bind(car))
	}
}
