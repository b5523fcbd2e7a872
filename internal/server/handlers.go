package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jmendler/stripeplan/pkg/buildinfo"
	"github.com/jmendler/stripeplan/pkg/errors"
	"github.com/jmendler/stripeplan/pkg/plan"
	"github.com/jmendler/stripeplan/pkg/room"
	"github.com/jmendler/stripeplan/pkg/stripe"
)

// =============================================================================
// Request / Response Types
// =============================================================================

// planRequest is the POST /api/plan body: the raw form fields plus render
// options. Raw strings keep the handler's parsing identical to the CLI and
// TUI boundaries.
type planRequest struct {
	plan.Form

	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Caption bool     `json:"caption,omitempty"`
	Refresh bool     `json:"refresh,omitempty"`
}

// configEntry is one feasible stripe configuration in the enumeration
// response, shaped for direct use by a choice widget.
type configEntry struct {
	Value     string  `json:"value"`
	Label     string  `json:"label"`
	Colored   int     `json:"colored"`
	White     int     `json:"white"`
	ColoredCm float64 `json:"colored_cm"`
	WhiteCm   float64 `json:"white_cm"`
}

// planResponse is the POST /api/plan success body. Artifact bytes are
// base64-encoded by encoding/json.
type planResponse struct {
	Configs   []configEntry     `json:"configs"`
	Layout    stripe.Layout     `json:"layout"`
	PlanHash  string            `json:"plan_hash"`
	Warnings  []string          `json:"warnings,omitempty"`
	Artifacts map[string][]byte `json:"artifacts,omitempty"`
	Stats     planStats         `json:"stats"`
}

type planStats struct {
	ConfigCount int    `json:"config_count"`
	LayoutHit   bool   `json:"layout_cache_hit"`
	RenderHit   bool   `json:"render_cache_hit"`
	Elapsed     string `json:"elapsed"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// =============================================================================
// Planning Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// handleConfigs enumerates feasible stripe configurations for the wall
// described by the query string. Unusable inputs yield an empty list, not
// an error, matching the live-form behavior of the other frontends.
func (s *Server) handleConfigs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := plan.Form{
		Length:    q.Get("length"),
		Height:    q.Get("height"),
		Min:       q.Get("min"),
		Max:       q.Get("max"),
		Ratio:     q.Get("ratio"),
		Direction: q.Get("direction"),
	}

	configs := s.runner.Enumerate(f.Options())
	entries := make([]configEntry, 0, len(configs))
	for _, c := range configs {
		entries = append(entries, configEntry{
			Value:     c.Value(),
			Label:     c.Label(),
			Colored:   c.Colored,
			White:     c.White,
			ColoredCm: c.ColoredCm,
			WhiteCm:   c.WhiteCm,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"configs": entries})
}

// handlePlan runs the full pipeline for a submitted form.
func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStatus(w, http.StatusBadRequest, string(errors.ErrCodeInvalidInput), "invalid request body: "+err.Error())
		return
	}

	opts := req.Form.Options()
	opts.Formats = req.Formats
	opts.Style = req.Style
	opts.Caption = req.Caption
	opts.Refresh = req.Refresh

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlanResponse(result))
}

func toPlanResponse(result *plan.Result) planResponse {
	entries := make([]configEntry, 0, len(result.Configs))
	for _, c := range result.Configs {
		entries = append(entries, configEntry{
			Value:     c.Value(),
			Label:     c.Label(),
			Colored:   c.Colored,
			White:     c.White,
			ColoredCm: c.ColoredCm,
			WhiteCm:   c.WhiteCm,
		})
	}
	return planResponse{
		Configs:   entries,
		Layout:    result.Layout,
		PlanHash:  result.PlanHash,
		Warnings:  result.Scene.Warnings,
		Artifacts: result.Artifacts,
		Stats: planStats{
			ConfigCount: result.Stats.ConfigCount,
			LayoutHit:   result.CacheInfo.LayoutHit,
			RenderHit:   result.CacheInfo.RenderHit,
			Elapsed:     (result.Stats.EnumerateTime + result.Stats.LayoutTime + result.Stats.RenderTime).String(),
		},
	}
}

// =============================================================================
// Room Handlers
// =============================================================================

func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"rooms": rooms})
}

func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	rm, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rm)
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	rm, ok := decodeRoom(w, r)
	if !ok {
		return
	}
	if err := s.store.Put(r.Context(), rm); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rm)
}

func (s *Server) handleUpdateRoom(w http.ResponseWriter, r *http.Request) {
	rm, ok := decodeRoom(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if rm.ID != "" && rm.ID != id {
		writeErrorStatus(w, http.StatusBadRequest, string(errors.ErrCodeInvalidRoom), "room id in body does not match URL")
		return
	}
	rm.ID = id

	// Update requires the room to exist; creation goes through POST.
	if _, err := s.store.Get(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.Put(r.Context(), rm); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rm)
}

func (s *Server) handleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRoomWallSVG renders the saved room's wall preview as SVG.
// ?caption=1 adds the summary caption under the wall.
func (s *Server) handleRoomWallSVG(w http.ResponseWriter, r *http.Request) {
	rm, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	opts := roomOptions(rm)
	opts.Formats = []string{plan.FormatSVG}
	opts.Caption = r.URL.Query().Get("caption") == "1"

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write(result.Artifacts[plan.FormatSVG])
}

// roomOptions maps a saved room onto pipeline options.
func roomOptions(rm *room.Room) plan.Options {
	return plan.Options{
		Wall:         rm.Wall,
		MinCm:        rm.Constraint.MinCm,
		MaxCm:        rm.Constraint.MaxCm,
		Ratio:        rm.Ratio,
		Selection:    rm.Selection,
		ColoredColor: rm.Colors.Colored,
		WhiteColor:   rm.Colors.White,
		Wardrobe:     rm.Wardrobe,
		Window:       rm.Window,
	}
}

func decodeRoom(w http.ResponseWriter, r *http.Request) (*room.Room, bool) {
	var rm room.Room
	if err := json.NewDecoder(r.Body).Decode(&rm); err != nil {
		writeErrorStatus(w, http.StatusBadRequest, string(errors.ErrCodeInvalidRoom), "invalid room body: "+err.Error())
		return nil, false
	}
	return &rm, true
}

// =============================================================================
// Response Helpers
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps a coded error to an HTTP status and JSON body.
func writeError(w http.ResponseWriter, err error) {
	writeErrorStatus(w, statusFor(err), string(errors.GetCode(err)), errors.UserMessage(err))
}

func writeErrorStatus(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

// statusFor maps structured error codes onto HTTP statuses. Unknown
// errors are treated as internal.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeRoomNotFound, errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidWallLength, errors.ErrCodeInvalidWallHeight,
		errors.ErrCodeNoConfigSelected, errors.ErrCodeThicknessRange,
		errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidSelection, errors.ErrCodeInvalidColor,
		errors.ErrCodeInvalidRoom:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
