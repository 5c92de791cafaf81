package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/nekruzvatanshoev/carlot/pkg/carlot/config"
	"github.com/nekruzvatanshoev/carlot/pkg/carlot/contact"
	"github.com/nekruzvatanshoev/carlot/pkg/carlot/dal"
	"github.com/nekruzvatanshoev/carlot/pkg/carlot/faq"
	"github.com/nekruzvatanshoev/carlot/pkg/carlot/render"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// NewHTTPServer returns a new HTTP server
func NewHTTPServer(cfg config.Config, catalog dal.Catalog, log zerolog.Logger) (*http.Server, error) {
	server, err := newHTTPServer(cfg, catalog, log)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:              cfg.Address,
		Handler:           server.router(cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}, nil
}

type httpServer struct {
	log      zerolog.Logger
	catalog  dal.Catalog
	pages    *render.Pages
	faq      *faq.Accordion
	contact  *contact.Submitter
	featured int
}

func newHTTPServer(cfg config.Config, catalog dal.Catalog, log zerolog.Logger) (*httpServer, error) {
	pages, err := render.NewPages()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	return &httpServer{
		log:      log,
		catalog:  catalog,
		pages:    pages,
		faq:      faq.NewAccordion("/faq", faq.Default...),
		contact:  contact.NewSubmitter(cfg.ContactDelay, log),
		featured: cfg.Featured,
	}, nil
}

func (h *httpServer) router(origins []string) *mux.Router {
	r := mux.NewRouter()
	r.Use(h.logRequests)

	r.HandleFunc("/", h.GetHome).Methods(http.MethodGet)
	r.HandleFunc("/cars", h.GetCars).Methods(http.MethodGet)
	r.HandleFunc("/cars/reset", h.ResetCars).Methods(http.MethodGet)
	r.HandleFunc("/cars/{id}", h.GetCar).Methods(http.MethodGet)
	r.HandleFunc("/contact", h.GetContact).Methods(http.MethodGet)
	r.HandleFunc("/contact", h.PostContact).Methods(http.MethodPost)
	r.HandleFunc("/faq", h.GetFAQ).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)
	api.HandleFunc("/cars", h.GetCarsJSON).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/cars/{id}", h.GetCarJSON).Methods(http.MethodGet, http.MethodOptions)

	r.NotFoundHandler = h.logRequests(http.HandlerFunc(h.NotFound))
	return r
}
