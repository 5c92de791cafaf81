package faq

import "net/url"

// Item is a question with its answer.
type Item struct {
	ID       string
	Question string
	Answer   string
}

// ItemState is an item as shown on the page.
type ItemState struct {
	Item
	Active bool
	// ToggleURL opens the item, or closes it when it is already open.
	ToggleURL string
}

// Accordion shows at most one answer at a time.
type Accordion struct {
	path  string
	items []Item
}

// NewAccordion returns an accordion over items served at path.
func NewAccordion(path string, items ...Item) *Accordion {
	return &Accordion{path: path, items: items}
}

// Open returns the item states with id open and every other item closed.
// An unknown or empty id leaves all items closed.
func (a *Accordion) Open(id string) []ItemState {
	states := make([]ItemState, len(a.items))
	for i, it := range a.items {
		active := id != "" && it.ID == id
		toggle := a.path
		if !active {
			toggle = a.path + "?" + url.Values{"open": {it.ID}}.Encode() + "#faq-" + url.PathEscape(it.ID)
		}
		states[i] = ItemState{Item: it, Active: active, ToggleURL: toggle}
	}
	return states
}

// Default holds the dealership questions.
var Default = []Item{
	{
		ID:       "financing",
		Question: "Do you offer financing?",
		Answer:   "Yes. We work with several banks and can arrange financing with deposits from 20%.",
	},
	{
		ID:       "trade-in",
		Question: "Can I trade in my current car?",
		Answer:   "Yes. Bring your car in for a free valuation and we will deduct its value from your purchase.",
	},
	{
		ID:       "inspection",
		Question: "Are the cars inspected?",
		Answer:   "Every car goes through a multi-point inspection before it is listed.",
	},
	{
		ID:       "test-drive",
		Question: "How do I book a test drive?",
		Answer:   "Use the Inquire button on any car or contact us directly and we will schedule one for you.",
	},
	{
		ID:       "warranty",
		Question: "Do the cars come with a warranty?",
		Answer:   "Selected cars come with a 6 month warranty. Ask our team for details on a specific car.",
	},
}
