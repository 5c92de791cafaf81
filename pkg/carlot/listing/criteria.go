package listing

// Any matches every value of a selector.
const Any = "all"

// Price buckets, in millions.
const (
	PriceUpTo2 = "0-2"
	Price2To4  = "2-4"
	PriceFrom4 = "4+"
)

// Year buckets, inclusive.
const (
	Year2023to24 = "2023-2024"
	Year2020to22 = "2020-2022"
	Year2017to19 = "2017-2019"
)

// Criteria is the set of active filters for one filter pass.
type Criteria struct {
	Category    string `json:"category"`
	PriceBucket string `json:"price"`
	YearBucket  string `json:"year"`
	SearchTerm  string `json:"q,omitempty"`
}

// DefaultCriteria matches the whole catalog.
func DefaultCriteria() Criteria {
	return Criteria{
		Category:    Any,
		PriceBucket: Any,
		YearBucket:  Any,
	}
}

// Normalize replaces empty selectors with Any.
func (c Criteria) Normalize() Criteria {
	if c.Category == "" {
		c.Category = Any
	}
	if c.PriceBucket == "" {
		c.PriceBucket = Any
	}
	if c.YearBucket == "" {
		c.YearBucket = Any
	}
	return c
}

// isDefault reports whether c filters nothing out.
func (c Criteria) isDefault() bool {
	return c.Normalize() == DefaultCriteria()
}

type yearRange struct {
	from, to int
}

var yearBuckets = map[string]yearRange{
	Year2023to24: {2023, 2024},
	Year2020to22: {2020, 2022},
	Year2017to19: {2017, 2019},
}

// PriceBuckets lists the price selector options in display order.
var PriceBuckets = []string{Any, PriceUpTo2, Price2To4, PriceFrom4}

// YearBuckets lists the year selector options in display order.
var YearBuckets = []string{Any, Year2023to24, Year2020to22, Year2017to19}
