package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/nekruzvatanshoev/carlot/pkg/carlot/config"
	"github.com/nekruzvatanshoev/carlot/pkg/carlot/dal"
	"github.com/rs/zerolog"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Config{Featured: 3, CORSOrigins: []string{"*"}}
	server, err := newHTTPServer(cfg, dal.Seed(), zerolog.Nop())
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ts := httptest.NewServer(server.router(cfg.CORSOrigins))
	t.Cleanup(ts.Close)
	return ts
}

func getDoc(t *testing.T, resp *http.Response) *goquery.Document {
	t.Helper()
	defer resp.Body.Close()
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		t.Fatalf("failed to build doc: %v", err)
	}
	return doc
}

func cardNames(doc *goquery.Document) []string {
	names := []string{}
	doc.Find("#carsGrid .car-card-page h3").Each(func(_ int, s *goquery.Selection) {
		names = append(names, s.Text())
	})
	return names
}

func TestServerCars(t *testing.T) {

	tests := []struct {
		name     string
		path     string
		expected []string
	}{
		{
			name:     "All",
			path:     "/cars",
			expected: []string{"Toyota Prado", "Mercedes C200", "Subaru Forester", "BMW X5", "Toyota Hilux", "Porsche 911", "Honda Civic", "Range Rover Sport"},
		},
		{
			name:     "CategoryOnly",
			path:     "/cars?category=suv",
			expected: []string{"Toyota Prado", "Subaru Forester", "Toyota Hilux"},
		},
		{
			name:     "PriceOnly",
			path:     "/cars?price=" + url.QueryEscape("4+"),
			expected: []string{"Toyota Prado", "BMW X5", "Porsche 911", "Range Rover Sport"},
		},
		{
			name:     "SearchOnly",
			path:     "/cars?q=TURBO",
			expected: []string{"Mercedes C200", "BMW X5", "Porsche 911", "Honda Civic"},
		},
		{
			name:     "CategoryPriceYear",
			path:     "/cars?category=luxury&price=2-4&year=2020-2022",
			expected: []string{"Mercedes C200"},
		},
		{
			name:     "NoMatch",
			path:     "/cars?category=sedan&year=2017-2019",
			expected: []string{},
		},
		{
			name:     "Reset",
			path:     "/cars/reset?category=sedan&q=civic",
			expected: []string{"Toyota Prado", "Mercedes C200", "Subaru Forester", "BMW X5", "Toyota Hilux", "Porsche 911", "Honda Civic", "Range Rover Sport"},
		},
	}

	ts := newTestServer(t)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + tc.path)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d", resp.StatusCode)
			}
			if resp.Header.Get(requestIDHeader) == "" {
				t.Errorf("missing %s header", requestIDHeader)
			}

			doc := getDoc(t, resp)
			if got := cardNames(doc); !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Expected: %v, Got: %v", tc.expected, got)
			}

			_, hidden := doc.Find("#noResults").Attr("hidden")
			if hidden == (len(tc.expected) == 0) {
				t.Errorf("no-results hidden=%v with %d cars", hidden, len(tc.expected))
			}
		})
	}
}

func TestServerResetClearsSelectors(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/cars/reset?category=sedan&price=0-2&year=2017-2019&q=civic")
	if err != nil {
		t.Fatal(err)
	}
	doc := getDoc(t, resp)

	for _, id := range []string{"#categoryFilter", "#priceFilter", "#yearFilter"} {
		if v, _ := doc.Find(id + " option[selected]").Attr("value"); v != "all" {
			t.Errorf("%s selected = %q", id, v)
		}
	}
	if v, _ := doc.Find("#searchInput").Attr("value"); v != "" {
		t.Errorf("search value = %q", v)
	}
	if v, _ := doc.Find(".api-link").Attr("href"); v != "/api/cars" {
		t.Errorf("api link = %q", v)
	}
}

func TestServerCarsAPILink(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/cars?category=suv&price=all&q=diesel")
	if err != nil {
		t.Fatal(err)
	}
	doc := getDoc(t, resp)

	href, ok := doc.Find(".api-link").Attr("href")
	if !ok {
		t.Fatal("missing api link")
	}
	if href != "/api/cars?category=suv&q=diesel" {
		t.Errorf("api link = %q", href)
	}

	resp, err = http.Get(ts.URL + href)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body carsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	want := []string{"Toyota Prado", "Toyota Hilux"}
	got := []string{}
	for _, c := range body.Cars {
		got = append(got, c.Name)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected: %v, Got: %v", want, got)
	}
}

func TestServerCarsJSON(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/cars?category=suv&price=2-4")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var body carsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Count != 1 || len(body.Cars) != 1 || body.Cars[0].Name != "Toyota Hilux" {
		t.Errorf("unexpected body: %+v", body)
	}
	if body.Criteria.Category != "suv" || body.Criteria.YearBucket != "all" {
		t.Errorf("unexpected criteria: %+v", body.Criteria)
	}
}

func TestServerCORS(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/cars", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Origin", "https://example.com")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestServerCar(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Found", "/cars/6", http.StatusOK},
		{"Unknown", "/cars/99", http.StatusNotFound},
		{"BadID", "/cars/abc", http.StatusBadRequest},
		{"JSONFound", "/api/cars/6", http.StatusOK},
		{"JSONUnknown", "/api/cars/99", http.StatusNotFound},
	}

	ts := newTestServer(t)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + tc.path)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tc.status {
				t.Errorf("Expected: %d, Got: %d", tc.status, resp.StatusCode)
			}
		})
	}

	resp, err := http.Get(ts.URL + "/cars/6")
	if err != nil {
		t.Fatal(err)
	}
	doc := getDoc(t, resp)
	for class, want := range map[string]string{
		".price":   "Ksh 12,500,000",
		".engine":  "3.0L Twin-Turbo",
		".year":    "2022",
		".mileage": "8,500 km",
	} {
		if got := doc.Find(".car-details " + class).Text(); got != want {
			t.Errorf("%s = %q, want %q", class, got, want)
		}
	}
	if v, _ := doc.Find(".car-details .btn-inquire").Attr("href"); v != "/contact?car=Porsche+911" {
		t.Errorf("inquire href = %q", v)
	}
}

func TestServerInquiryPrefill(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/cars?category=luxury")
	if err != nil {
		t.Fatal(err)
	}
	doc := getDoc(t, resp)

	href, ok := doc.Find(".car-card-page .btn-inquire").Last().Attr("href")
	if !ok {
		t.Fatal("missing inquire link")
	}

	resp, err = http.Get(ts.URL + href)
	if err != nil {
		t.Fatal(err)
	}
	doc = getDoc(t, resp)

	want := "I'm interested in the Range Rover Sport. Please send me more information and schedule a test drive."
	if got := doc.Find("#message").Text(); got != want {
		t.Errorf("Expected: %q, Got: %q", want, got)
	}
	if got := doc.Find(".nav a.active").Text(); got != "Contact" {
		t.Errorf("active nav = %q", got)
	}
}

func TestServerPostContact(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name    string
		form    url.Values
		status  int
		class   string
		message string
	}{
		{
			name:    "Valid",
			form:    url.Values{"name": {"Amina"}, "email": {"amina@example.com"}, "message": {"Hello"}},
			status:  http.StatusOK,
			class:   "success",
			message: "Thank you Amina! Your message has been sent successfully. We'll contact you within 24 hours.",
		},
		{
			name:    "Missing",
			form:    url.Values{"name": {"Amina"}},
			status:  http.StatusBadRequest,
			class:   "error",
			message: "please fill in all required fields",
		},
		{
			name:    "BadEmail",
			form:    url.Values{"name": {"Amina"}, "email": {"amina"}, "message": {"Hello"}},
			status:  http.StatusBadRequest,
			class:   "error",
			message: "please enter a valid email address",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.PostForm(ts.URL+"/contact", tc.form)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != tc.status {
				t.Errorf("Expected: %d, Got: %d", tc.status, resp.StatusCode)
			}
			doc := getDoc(t, resp)
			msg := doc.Find("#formMessage")
			if !msg.HasClass(tc.class) {
				t.Errorf("form message class = %q", msg.AttrOr("class", ""))
			}
			if got := msg.Text(); got != tc.message {
				t.Errorf("Expected: %q, Got: %q", tc.message, got)
			}
		})
	}
}

func TestServerFAQ(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/faq?open=financing")
	if err != nil {
		t.Fatal(err)
	}
	doc := getDoc(t, resp)

	if n := doc.Find(".faq-item.active").Length(); n != 1 {
		t.Errorf("active items = %d", n)
	}
	if id, _ := doc.Find(".faq-item.active").Attr("id"); id != "faq-financing" {
		t.Errorf("active item = %q", id)
	}
}

func TestServerHomeAndHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	doc := getDoc(t, resp)
	if got, want := cardNames(doc), []string{"Toyota Prado", "Mercedes C200", "Subaru Forester"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Expected: %v, Got: %v", want, got)
	}

	resp, err = http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if strings.TrimSpace(string(body)) != "ok" {
		t.Errorf("healthz body = %q", body)
	}

	resp, err = http.Get(ts.URL + "/nowhere")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d", resp.StatusCode)
	}
}
