package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/nekruzvatanshoev/carlot/pkg/carlot/contact"
	"github.com/nekruzvatanshoev/carlot/pkg/carlot/dal"
	"github.com/nekruzvatanshoev/carlot/pkg/carlot/listing"
	"github.com/nekruzvatanshoev/carlot/pkg/carlot/render"
	"github.com/rs/zerolog"
)

type carsView struct {
	Criteria     listing.Criteria
	Categories   []string
	PriceBuckets []string
	YearBuckets  []string
	Grid         template.HTML
	Count        int
	Total        int
	APIURL       string
}

type carView struct {
	Car        dal.Car
	InquireURL string
}

type contactView struct {
	Form        contact.Form
	Message     string
	MessageType string
}

type errorView struct {
	Status  int
	Message string
}

// carsResponse defines the JSON listing response
type carsResponse struct {
	Criteria listing.Criteria `json:"criteria"`
	Count    int              `json:"count"`
	Cars     []dal.Car        `json:"cars"`
}

// GetHome renders the landing page with the first featured cars
func (h *httpServer) GetHome(w http.ResponseWriter, r *http.Request) {
	cars := h.catalog.Cars()
	if len(cars) > h.featured {
		cars = cars[:h.featured]
	}

	surface := render.NewHTMLSurface()
	listing.Render(surface, cars, listing.DefaultBinder)
	grid, err := surface.HTML()
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.renderPage(w, r, http.StatusOK, render.PageHome, "Home", struct{ Grid template.HTML }{grid})
}

// GetCars renders the listing page filtered by the selectors in the query
func (h *httpServer) GetCars(w http.ResponseWriter, r *http.Request) {
	h.renderCars(w, r, func(e *listing.Engine, ctrl listing.Controls) []dal.Car {
		return e.Apply(ctrl)
	})
}

// ResetCars renders the listing page with every selector back to default
func (h *httpServer) ResetCars(w http.ResponseWriter, r *http.Request) {
	h.renderCars(w, r, func(e *listing.Engine, ctrl listing.Controls) []dal.Car {
		return e.Reset(ctrl)
	})
}

func (h *httpServer) renderCars(w http.ResponseWriter, r *http.Request, trigger func(*listing.Engine, listing.Controls) []dal.Car) {
	surface := render.NewHTMLSurface()
	engine := listing.NewEngine(h.catalog, surface, listing.DefaultBinder)

	cars := trigger(engine, listing.FormControls(r.URL.Query()))
	zerolog.Ctx(r.Context()).Debug().
		Interface("criteria", engine.Criteria()).
		Int("count", len(cars)).
		Msg("rendering cars")

	grid, err := surface.HTML()
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.renderPage(w, r, http.StatusOK, render.PageCars, "Cars", carsView{
		Criteria:     engine.Criteria(),
		Categories:   append([]string{listing.Any}, dal.Categories...),
		PriceBuckets: listing.PriceBuckets,
		YearBuckets:  listing.YearBuckets,
		Grid:         grid,
		Count:        len(cars),
		Total:        h.catalog.Len(),
		APIURL:       apiCarsURL(engine.Criteria()),
	})
}

// GetCar renders the details of one car
func (h *httpServer) GetCar(w http.ResponseWriter, r *http.Request) {
	car, status, err := h.lookupCar(r)
	if err != nil {
		zerolog.Ctx(r.Context()).Info().Err(err).Msg("car lookup failed")
		h.renderPage(w, r, status, render.PageError, http.StatusText(status), errorView{Status: status, Message: err.Error()})
		return
	}

	h.renderPage(w, r, http.StatusOK, render.PageCar, car.Name, carView{
		Car:        car,
		InquireURL: listing.InquireURL(listing.DefaultBinder.ContactPath, car.Name),
	})
}

// GetCarsJSON defines a GET handler returning the filtered catalog
func (h *httpServer) GetCarsJSON(w http.ResponseWriter, r *http.Request) {
	criteria := listing.CriteriaFrom(listing.FormControls(r.URL.Query()))
	cars := listing.Filter(h.catalog.Cars(), criteria)

	h.writeJSON(w, r, http.StatusOK, carsResponse{
		Criteria: criteria,
		Count:    len(cars),
		Cars:     cars,
	})
}

// GetCarJSON defines a GET handler returning one car
func (h *httpServer) GetCarJSON(w http.ResponseWriter, r *http.Request) {
	car, status, err := h.lookupCar(r)
	if err != nil {
		zerolog.Ctx(r.Context()).Info().Err(err).Msg("car lookup failed")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(status)
		w.Write([]byte(err.Error()))
		return
	}
	h.writeJSON(w, r, http.StatusOK, car)
}

// GetContact renders the contact form, pre-filled from the car parameter
func (h *httpServer) GetContact(w http.ResponseWriter, r *http.Request) {
	form := contact.Form{Message: contact.PrefillMessage(r.URL.Query().Get("car"))}
	h.renderPage(w, r, http.StatusOK, render.PageContact, "Contact", contactView{Form: form})
}

// PostContact simulates sending the contact form
func (h *httpServer) PostContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderPage(w, r, http.StatusBadRequest, render.PageContact, "Contact", contactView{
			Message:     "Could not read the form.",
			MessageType: "error",
		})
		return
	}

	form := contact.Form{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Subject: r.PostForm.Get("subject"),
		Message: r.PostForm.Get("message"),
	}

	res, err := h.contact.Submit(r.Context(), form)
	switch {
	case errors.Is(err, contact.ErrMissingFields), errors.Is(err, contact.ErrInvalidEmail):
		zerolog.Ctx(r.Context()).Info().Err(err).Msg("contact form rejected")
		h.renderPage(w, r, http.StatusBadRequest, render.PageContact, "Contact", contactView{
			Form:        form,
			Message:     validationMessage(err),
			MessageType: "error",
		})
		return
	case err != nil:
		h.serverError(w, r, err)
		return
	}

	zerolog.Ctx(r.Context()).Info().Str("reference", res.Reference).Msg("contact message sent")
	h.renderPage(w, r, http.StatusOK, render.PageContact, "Contact", contactView{
		Message:     res.Message,
		MessageType: "success",
	})
}

// GetFAQ renders the FAQ with the item named by the open parameter expanded
func (h *httpServer) GetFAQ(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, render.PageFAQ, "FAQ", h.faq.Open(r.URL.Query().Get("open")))
}

// Health reports liveness
func (h *httpServer) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// NotFound renders the error page for unknown routes
func (h *httpServer) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusNotFound, render.PageError, "Not Found", errorView{
		Status:  http.StatusNotFound,
		Message: "The page you are looking for does not exist.",
	})
}

func (h *httpServer) lookupCar(r *http.Request) (dal.Car, int, error) {
	id, err := validateID(mux.Vars(r))
	if err != nil {
		return dal.Car{}, http.StatusBadRequest, err
	}
	car, ok := h.catalog.ByID(id)
	if !ok {
		return dal.Car{}, http.StatusNotFound, fmt.Errorf("car %d not found", id)
	}
	return car, http.StatusOK, nil
}

// apiCarsURL is the JSON listing for the same selectors.
func apiCarsURL(c listing.Criteria) string {
	if q := c.Values().Encode(); q != "" {
		return "/api/cars?" + q
	}
	return "/api/cars"
}

func validateID(vars map[string]string) (int, error) {
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		return 0, fmt.Errorf("invalid car id %q", vars["id"])
	}
	if id < 0 {
		return 0, fmt.Errorf("car id must be a positive number: %d", id)
	}
	return id, nil
}

func validationMessage(err error) string {
	if errors.Is(err, contact.ErrInvalidEmail) {
		return contact.ErrInvalidEmail.Error()
	}
	return contact.ErrMissingFields.Error()
}

func (h *httpServer) renderPage(w http.ResponseWriter, r *http.Request, status int, page, title string, content interface{}) {
	var buf bytes.Buffer
	if err := h.pages.Render(&buf, page, r.URL.Path, title, content); err != nil {
		h.serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (h *httpServer) writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

func (h *httpServer) serverError(w http.ResponseWriter, r *http.Request, err error) {
	zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte(http.StatusText(http.StatusInternalServerError)))
}
