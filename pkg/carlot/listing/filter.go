package listing

import (
	"strconv"
	"strings"

	"github.com/nekruzvatanshoev/carlot/pkg/carlot/dal"
	"golang.org/x/text/cases"
)

// Filter returns the cars matching every selector of c, in catalog order.
// It never fails: criteria that exclude everything yield an empty slice.
func Filter(cars []dal.Car, c Criteria) []dal.Car {
	c = c.Normalize()

	fold := cases.Fold()
	term := fold.String(c.SearchTerm)

	matches := make([]dal.Car, 0, len(cars))
	for _, car := range cars {
		if !categoryMatch(car, c.Category) {
			continue
		}
		if !priceMatch(car, c.PriceBucket) {
			continue
		}
		if !yearMatch(car, c.YearBucket) {
			continue
		}
		if !searchMatch(fold, car, term) {
			continue
		}
		matches = append(matches, car)
	}
	return matches
}

func categoryMatch(car dal.Car, category string) bool {
	return category == Any || car.Category == category
}

func priceMatch(car dal.Car, bucket string) bool {
	if bucket == Any {
		return true
	}
	// A price without a number matches every bucket.
	m, ok := parsePriceMillions(car.Price)
	if !ok {
		return true
	}
	return inPriceBucket(m, bucket)
}

func yearMatch(car dal.Car, bucket string) bool {
	if bucket == Any {
		return true
	}
	r, ok := yearBuckets[bucket]
	if !ok {
		return true
	}
	// A year that is not a number matches every bucket.
	year, err := strconv.Atoi(strings.TrimSpace(car.Year))
	if err != nil {
		return true
	}
	return year >= r.from && year <= r.to
}

func searchMatch(fold cases.Caser, car dal.Car, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(fold.String(car.Name), term) ||
		strings.Contains(fold.String(car.Engine), term)
}
