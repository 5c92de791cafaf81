package listing

import (
	"net/url"

	"github.com/nekruzvatanshoev/carlot/pkg/carlot/dal"
)

// Selector names, also used as query parameters of the listing page.
const (
	ControlCategory = "category"
	ControlPrice    = "price"
	ControlYear     = "year"
	ControlSearch   = "q"
)

// Controls are the listing selectors. Value reports false for a control
// that is not present; absent controls are skipped.
type Controls interface {
	Value(name string) (string, bool)
	Set(name, value string)
}

// Engine filters a catalog and renders the result onto a surface.
// An Engine is not safe for concurrent use; build one per request.
type Engine struct {
	catalog dal.Catalog
	surface Surface
	binder  Binder
	last    Criteria
}

// NewEngine returns an engine over catalog. A nil binder uses DefaultBinder.
func NewEngine(catalog dal.Catalog, surface Surface, binder Binder) *Engine {
	if binder == nil {
		binder = DefaultBinder
	}
	return &Engine{
		catalog: catalog,
		surface: surface,
		binder:  binder,
		last:    DefaultCriteria(),
	}
}

// Apply rebuilds the criteria from ctrl, filters and renders. It returns
// the cars now shown.
func (e *Engine) Apply(ctrl Controls) []dal.Car {
	return e.Run(CriteriaFrom(ctrl))
}

// Run filters and renders with c.
func (e *Engine) Run(c Criteria) []dal.Car {
	e.last = c.Normalize()
	cars := Filter(e.catalog.Cars(), e.last)
	Render(e.surface, cars, e.binder)
	return cars
}

// Reset puts every present control back to its default, then applies.
func (e *Engine) Reset(ctrl Controls) []dal.Car {
	for _, name := range []string{ControlCategory, ControlPrice, ControlYear} {
		if _, ok := ctrl.Value(name); ok {
			ctrl.Set(name, Any)
		}
	}
	if _, ok := ctrl.Value(ControlSearch); ok {
		ctrl.Set(ControlSearch, "")
	}
	return e.Apply(ctrl)
}

// Criteria returns the criteria of the last pass.
func (e *Engine) Criteria() Criteria {
	return e.last
}

// CriteriaFrom reads the four selectors of ctrl.
func CriteriaFrom(ctrl Controls) Criteria {
	c := DefaultCriteria()
	if v, ok := ctrl.Value(ControlCategory); ok {
		c.Category = v
	}
	if v, ok := ctrl.Value(ControlPrice); ok {
		c.PriceBucket = v
	}
	if v, ok := ctrl.Value(ControlYear); ok {
		c.YearBucket = v
	}
	if v, ok := ctrl.Value(ControlSearch); ok {
		c.SearchTerm = v
	}
	return c.Normalize()
}

// FormControls reads selectors from a query string.
type FormControls url.Values

// Value implements Controls.
func (f FormControls) Value(name string) (string, bool) {
	v, ok := f[name]
	if !ok || len(v) == 0 {
		return "", false
	}
	return v[0], true
}

// Set implements Controls.
func (f FormControls) Set(name, value string) {
	url.Values(f).Set(name, value)
}

// Values returns the selectors as a query, leaving defaults out.
func (c Criteria) Values() url.Values {
	c = c.Normalize()
	v := url.Values{}
	if c.Category != Any {
		v.Set(ControlCategory, c.Category)
	}
	if c.PriceBucket != Any {
		v.Set(ControlPrice, c.PriceBucket)
	}
	if c.YearBucket != Any {
		v.Set(ControlYear, c.YearBucket)
	}
	if c.SearchTerm != "" {
		v.Set(ControlSearch, c.SearchTerm)
	}
	return v
}
