package dal

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog is returned when a catalog file fails validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is a fixed, read-only set of cars kept in declaration order.
type Catalog struct {
	cars []Car
}

// NewCatalog returns a catalog holding a copy of cars.
func NewCatalog(cars ...Car) Catalog {
	c := make([]Car, len(cars))
	copy(c, cars)
	return Catalog{cars: c}
}

// Cars returns a copy of the catalog contents.
func (c Catalog) Cars() []Car {
	out := make([]Car, len(c.cars))
	copy(out, c.cars)
	return out
}

// Len returns the number of cars in the catalog.
func (c Catalog) Len() int {
	return len(c.cars)
}

// ByID looks a car up by its id.
func (c Catalog) ByID(id int) (Car, bool) {
	for _, car := range c.cars {
		if car.ID == id {
			return car, true
		}
	}
	return Car{}, false
}

type catalogFile struct {
	Cars []Car `yaml:"cars"`
}

// LoadCatalog decodes a YAML catalog of the form
//
//	cars:
//	  - id: 1
//	    name: Toyota Prado
//	    price: Ksh 4,200,000
//	    ...
func LoadCatalog(r io.Reader) (Catalog, error) {
	var f catalogFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Catalog{}, fmt.Errorf("%w: empty file", ErrInvalidCatalog)
		}
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[int]struct{}, len(f.Cars))
	for i, car := range f.Cars {
		if err := validateCar(car); err != nil {
			return Catalog{}, fmt.Errorf("%w: car #%d: %v", ErrInvalidCatalog, i+1, err)
		}
		if _, ok := seen[car.ID]; ok {
			return Catalog{}, fmt.Errorf("%w: duplicate id %d", ErrInvalidCatalog, car.ID)
		}
		seen[car.ID] = struct{}{}
	}

	return NewCatalog(f.Cars...), nil
}

func validateCar(car Car) error {
	if car.Name == "" {
		return errors.New("name is required")
	}
	if car.Price == "" {
		return errors.New("price is required")
	}
	if !KnownCategory(car.Category) {
		return fmt.Errorf("unknown category %q", car.Category)
	}
	if len(car.Year) != 4 {
		return fmt.Errorf("year must have 4 digits: %q", car.Year)
	}
	if _, err := strconv.Atoi(car.Year); err != nil {
		return fmt.Errorf("year must be numeric: %q", car.Year)
	}
	return nil
}
