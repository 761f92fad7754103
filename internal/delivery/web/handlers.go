package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"catanboard/internal/application"
	"catanboard/internal/models"
	"catanboard/internal/render"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type leaderboardResponse struct {
	Sort    models.SortMode       `json:"sort"`
	Players []models.RankedPlayer `json:"players"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := s.services.Leaderboard.Status()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"board":     status,
	})
}

// handlePage renders the leaderboard page. ?sort= picks the mode for this
// request only; the shared mode changes through the toggle.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sortBy := s.SortMode()
	if raw := r.URL.Query().Get("sort"); raw != "" {
		mode, ok := models.ParseSortMode(raw)
		if !ok {
			http.Error(w, "unknown sort mode", http.StatusBadRequest)
			return
		}
		sortBy = mode
	}

	board, err := s.services.Leaderboard.GetBoard(sortBy)
	if err != nil {
		s.respondBoardError(w, err)
		return
	}

	var buf bytes.Buffer
	err = render.Page(&buf, board, render.HTMLOptions{
		BasePath:     s.basePath,
		Title:        s.title,
		ToggleAction: "/sort/toggle",
		ToggleMethod: http.MethodPost,
	})
	if err != nil {
		s.logger.Error("failed to render page", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// handleToggle switches the shared sort mode. The page's form sends the mode
// it offers next; without it the current mode flips.
func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	mode, ok := models.ParseSortMode(r.FormValue("sort"))
	if ok {
		s.setSortMode(mode)
	} else {
		mode = s.toggleSortMode()
	}
	s.logger.Debug("sort toggled", "sort", mode)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Leaderboard.Load(r.Context()); err != nil {
		respondError(w, http.StatusBadGateway, "failed to reload leaderboard", err)
		return
	}
	respondJSON(w, http.StatusOK, s.services.Leaderboard.Status())
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	mode, ok := s.queryMode(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "unknown sort mode", nil)
		return
	}

	ranked, err := s.services.Leaderboard.GetLeaderboard(mode)
	if err != nil {
		s.respondBoardError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, leaderboardResponse{Sort: mode, Players: ranked})
}

func (s *Server) handlePlayer(w http.ResponseWriter, r *http.Request) {
	mode, ok := s.queryMode(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "unknown sort mode", nil)
		return
	}

	player, err := s.services.Leaderboard.GetPlayer(chi.URLParam(r, "name"), mode)
	if err != nil {
		s.respondBoardError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, player)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	mode, ok := s.queryMode(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "unknown sort mode", nil)
		return
	}

	data, err := s.services.Export.ExcelReport(mode)
	if err != nil {
		s.respondBoardError(w, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="leaderboard.xlsx"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// queryMode reads ?sort=, falling back to the page's active mode.
func (s *Server) queryMode(r *http.Request) (models.SortMode, bool) {
	raw := r.URL.Query().Get("sort")
	if raw == "" {
		return s.SortMode(), true
	}
	return models.ParseSortMode(raw)
}

func (s *Server) respondBoardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, application.ErrNotLoaded):
		respondError(w, http.StatusServiceUnavailable, "leaderboard not loaded yet", nil)
	case errors.Is(err, application.ErrPlayerNotFound):
		respondError(w, http.StatusNotFound, err.Error(), nil)
	default:
		s.logger.Error("leaderboard request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error", nil)
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	resp := errorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	}
	if err != nil {
		resp.Message = message + ": " + err.Error()
	}
	respondJSON(w, status, resp)
}
