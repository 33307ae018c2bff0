package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"weathermine/collector"
	"weathermine/datasource"
	"weathermine/i18n"
	"weathermine/models"
	"weathermine/preferences"
)

// Server represents the API server
type Server struct {
	collector    *collector.Collector
	prefs        *preferences.Preferences
	translations i18n.Table
	locations    []string
	router       *mux.Router
	server       *http.Server
}

// NewServer creates a new API server. locations are served by /api/weather/locations.
func NewServer(c *collector.Collector, prefs *preferences.Preferences, locations []string, port int) *Server {
	r := mux.NewRouter()

	server := &Server{
		collector:    c,
		prefs:        prefs,
		translations: i18n.Default,
		locations:    locations,
		router:       r,
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      r,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	r.Use(RequestID, LogRequests)

	// Forecasts
	r.HandleFunc("/api/weather", server.handleGetWeather).Methods(http.MethodGet)
	r.HandleFunc("/api/weather/locations", server.handleGetLocations).Methods(http.MethodGet)
	r.HandleFunc("/api/suggest", server.handleSuggest).Methods(http.MethodGet)

	// Localization and settings
	r.HandleFunc("/api/translations", server.handleGetTranslations).Methods(http.MethodGet)
	r.HandleFunc("/api/preferences", server.handleGetPreferences).Methods(http.MethodGet)
	r.HandleFunc("/api/preferences", server.handleUpdatePreferences).Methods(http.MethodPut)

	// Health check
	r.HandleFunc("/api/health", server.handleHealthCheck).Methods(http.MethodGet)

	return server
}

// Handler returns the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins the API server
func (s *Server) Start() error {
	log.Printf("Starting API server on %s", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// language picks the response language: explicit ?lang=, then Accept-Language, then
// the stored preference
func (s *Server) language(r *http.Request) i18n.Language {
	if q := r.URL.Query().Get("lang"); q != "" {
		if lang, ok := i18n.Parse(q); ok {
			return lang
		}
		return i18n.Match(q)
	}
	if header := r.Header.Get("Accept-Language"); header != "" {
		return i18n.Match(header)
	}
	return s.prefs.Language(r.Context())
}

// handleGetWeather serves a normalized forecast for ?city= or ?lat=&lon=[&name=]
func (s *Server) handleGetWeather(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)
	query := r.URL.Query()

	var (
		forecast models.NormalizedForecast
		err      error
	)

	switch {
	case strings.TrimSpace(query.Get("city")) != "":
		forecast, err = s.collector.Lookup(r.Context(), query.Get("city"), lang)

	case query.Get("lat") != "" && query.Get("lon") != "":
		coords, perr := parseCoordinates(query.Get("lat"), query.Get("lon"))
		if perr != nil {
			writeError(w, http.StatusBadRequest, perr.Error())
			return
		}
		coords.Name = query.Get("name")
		forecast, err = s.collector.LookupCoordinates(r.Context(), coords, lang)

	default:
		writeError(w, http.StatusBadRequest, "city or lat/lon required")
		return
	}

	if err != nil {
		s.writeLookupError(w, err, lang)
		return
	}

	writeJSON(w, http.StatusOK, forecast)
}

type locationResult struct {
	Query    string                     `json:"query"`
	Forecast *models.NormalizedForecast `json:"forecast,omitempty"`
	Error    string                     `json:"error,omitempty"`
}

// handleGetLocations looks up every configured location concurrently
func (s *Server) handleGetLocations(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)
	results := s.collector.CollectAll(r.Context(), s.locations, lang)

	out := make([]locationResult, 0, len(results))
	for _, res := range results {
		item := locationResult{Query: res.Query, Forecast: res.Forecast}
		if res.Err != nil {
			log.Printf("Error fetching weather for %s: %v", res.Query, res.Err)
			_, key := errorStatus(res.Err)
			item.Error = s.translations.Translate(key, lang)
		}
		out = append(out, item)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"locations": out,
		"count":     len(out),
		"timestamp": time.Now(),
	})
}

// handleSuggest returns autocomplete matches for ?q=
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)

	suggestions, err := s.collector.Geocoder().Suggest(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeLookupError(w, err, lang)
		return
	}

	writeJSON(w, http.StatusOK, suggestions)
}

// handleGetTranslations returns the whole table for the resolved language
func (s *Server) handleGetTranslations(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"language": lang,
		"strings":  s.translations.Strings(lang),
	})
}

type preferencesBody struct {
	Language string `json:"language,omitempty"`
	Theme    string `json:"theme,omitempty"`
}

func (s *Server) currentPreferences(ctx context.Context) preferencesBody {
	return preferencesBody{
		Language: string(s.prefs.Language(ctx)),
		Theme:    string(s.prefs.Theme(ctx)),
	}
}

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.currentPreferences(r.Context()))
}

// handleUpdatePreferences applies the fields present in the body; both are validated
// before anything is written
func (s *Server) handleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var body preferencesBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid body: %v", err))
		return
	}

	var (
		lang     i18n.Language
		theme    preferences.Theme
		hasLang  = body.Language != ""
		hasTheme = body.Theme != ""
		ok       bool
	)
	if hasLang {
		if lang, ok = i18n.Parse(body.Language); !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unsupported language: %s", body.Language))
			return
		}
	}
	if hasTheme {
		if theme, ok = preferences.ParseTheme(body.Theme); !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unsupported theme: %s", body.Theme))
			return
		}
	}

	ctx := r.Context()
	if hasLang {
		if err := s.prefs.SetLanguage(ctx, lang); err != nil {
			log.Printf("Error saving language: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to save preferences")
			return
		}
	}
	if hasTheme {
		if err := s.prefs.SetTheme(ctx, theme); err != nil {
			log.Printf("Error saving theme: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to save preferences")
			return
		}
	}

	writeJSON(w, http.StatusOK, s.currentPreferences(ctx))
}

// handleHealthCheck provides a simple health check endpoint
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// errorStatus maps lookup errors to an HTTP status and a translation key
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, datasource.ErrNotFound):
		return http.StatusNotFound, "cityNotFound"
	case datasource.IsTransport(err):
		return http.StatusBadGateway, "failedToFetch"
	default:
		return http.StatusInternalServerError, "failedToFetch"
	}
}

func (s *Server) writeLookupError(w http.ResponseWriter, err error, lang i18n.Language) {
	status, key := errorStatus(err)
	log.Printf("Lookup failed (%d): %v", status, err)
	writeError(w, status, s.translations.Translate(key, lang))
}

func parseCoordinates(latStr, lonStr string) (models.Coordinates, error) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil || lat < -90 || lat > 90 {
		return models.Coordinates{}, fmt.Errorf("invalid latitude: %s", latStr)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil || lon < -180 || lon > 180 {
		return models.Coordinates{}, fmt.Errorf("invalid longitude: %s", lonStr)
	}
	return models.Coordinates{Latitude: lat, Longitude: lon}, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
