// File path: internal/api/analyze_handler.go
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jafrlab/jafr/internal/analysis"
	"github.com/jafrlab/jafr/internal/common"
)

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req analysis.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("api: analyze decode failed", "error", err)
		writeError(w, http.StatusBadRequest, "بيانات غير صحيحة")
		return
	}

	resp, err := s.service.Analyze(r.Context(), req)
	if err != nil {
		var verr *analysis.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error(), verr.Errors...)
			return
		}
		logger.Error("api: analyze failed", "error", err)
		writeError(w, http.StatusInternalServerError, "حدث خطأ في التحليل. يرجى المحاولة مرة أخرى.")
		return
	}
	logger.Info("api: analysis complete",
		"total", resp.Traditional.TotalValue,
		"reduced", resp.Traditional.ReducedValue,
		"wafq", resp.Traditional.WafqSize,
	)
	writeJSON(w, http.StatusOK, resp)
}
