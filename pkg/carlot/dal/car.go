package dal

// Categories a car can be listed under.
const (
	CategorySUV         = "suv"
	CategoryLuxury      = "luxury"
	CategoryPerformance = "performance"
	CategorySedan       = "sedan"
)

// Categories lists the categories in display order.
var Categories = []string{CategorySUV, CategoryLuxury, CategoryPerformance, CategorySedan}

// Car defines a listed car
type Car struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Price    string `json:"price" yaml:"price"`
	Image    string `json:"image,omitempty" yaml:"image"`
	Category string `json:"category" yaml:"category"`
	Year     string `json:"year" yaml:"year"`
	Mileage  string `json:"mileage,omitempty" yaml:"mileage"`
	Engine   string `json:"engine,omitempty" yaml:"engine"`
	Badge    string `json:"badge,omitempty" yaml:"badge"`
}

// KnownCategory reports whether c is one of the listing categories.
func KnownCategory(c string) bool {
	switch c {
	case CategorySUV, CategoryLuxury, CategoryPerformance, CategorySedan:
		return true
	}
	return false
}
