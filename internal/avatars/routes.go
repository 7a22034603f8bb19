package avatars

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/avatars/internal/recolor"
)

// DefaultCacheMaxAge is the Cache-Control max-age of rendered avatars.
const DefaultCacheMaxAge = 3600

// RouteOptions tunes the HTTP surface.
type RouteOptions struct {
	// CacheMaxAge is the max-age in seconds sent with rendered avatars.
	// Zero means DefaultCacheMaxAge; negative disables the header.
	CacheMaxAge int
	Logger      *slog.Logger
}

// RegisterRoutes mounts avatar endpoints on the given router.
func RegisterRoutes(r chi.Router, svc *Service, opts RouteOptions) {
	if opts.CacheMaxAge == 0 {
		opts.CacheMaxAge = DefaultCacheMaxAge
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	r.Get("/avatar/{characterId}", renderHandler(svc, opts))
	r.Get("/avatar/{characterId}/preview", previewHandler(svc, opts))
	r.Get("/api/characters", listCharactersHandler(svc, opts))
	r.Get("/api/characters/{characterId}", getCharacterHandler(svc, opts))
	r.Get("/api/renders/stats", renderStatsHandler(svc, opts))
}

func renderHandler(svc *Service, opts RouteOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseRequest(r, svc)
		if err != nil {
			writeError(w, opts.Logger, err)
			return
		}
		if len(req.Items) > 0 {
			opts.Logger.Debug("ignoring avatar items", "character", req.CharacterID, "items", req.Items)
		}

		out, err := svc.Render(r.Context(), req)
		if err != nil {
			writeError(w, opts.Logger, err)
			return
		}

		w.Header().Set("Content-Type", "image/svg+xml")
		if opts.CacheMaxAge > 0 {
			w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", opts.CacheMaxAge))
		}
		w.Header().Set("X-Avatar-Replacements", strconv.Itoa(out.Replacements))
		w.WriteHeader(http.StatusOK)
		w.Write(out.Document)
	}
}

func previewHandler(svc *Service, opts RouteOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseRequest(r, svc)
		if err != nil {
			writeError(w, opts.Logger, err)
			return
		}
		preview, err := svc.Preview(r.Context(), req)
		if err != nil {
			writeError(w, opts.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, preview)
	}
}

func listCharactersHandler(svc *Service, opts RouteOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keys, err := svc.List(r.Context())
		if err != nil {
			writeError(w, opts.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, keys)
	}
}

func getCharacterHandler(svc *Service, opts RouteOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.Inspect(r.Context(), chi.URLParam(r, "characterId"))
		if err != nil {
			writeError(w, opts.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

func renderStatsHandler(svc *Service, opts RouteOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			writeError(w, opts.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

func parseRequest(r *http.Request, svc *Service) (Request, error) {
	q := r.URL.Query()
	palette, err := ParsePaletteQuery(q, svc.Defaults())
	if err != nil {
		return Request{}, err
	}
	return Request{
		CharacterID: chi.URLParam(r, "characterId"),
		Palette:     palette,
		Items:       ParseItems(q.Get("items")),
	}, nil
}

// writeError maps err to a status and JSON body. Processing details are
// logged, never sent to the client.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, recolor.ErrInvalidColor):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, ErrTemplateNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "avatar template not found"})
	default:
		logger.Error("avatar request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": ErrProcessing.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
