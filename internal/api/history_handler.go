// File path: internal/api/history_handler.go
package api

import (
	"errors"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"

	"github.com/jafrlab/jafr/internal/common"
	"github.com/jafrlab/jafr/internal/sqlite"
)

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "سجل التحليلات غير متاح")
		return
	}
	analyses, err := s.store.ListAnalyses(r.Context())
	if err != nil {
		logger.Error("api: history listing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "حدث خطأ في جلب السجل. يرجى المحاولة مرة أخرى.")
		return
	}
	writeJSON(w, http.StatusOK, analyses)
}

func (s *Server) handleAnalysisByID(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "سجل التحليلات غير متاح")
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "معرف غير صحيح")
		return
	}
	record, err := s.store.AnalysisByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sqlite.ErrNotFound) {
			writeError(w, http.StatusNotFound, "التحليل غير موجود")
			return
		}
		logger.Error("api: analysis lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "حدث خطأ في جلب التحليل. يرجى المحاولة مرة أخرى.")
		return
	}
	writeJSON(w, http.StatusOK, record)
}
