// File path: internal/api/keys_handler.go
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jafrlab/jafr/internal/common"
	"github.com/jafrlab/jafr/internal/llm"
)

type keyTestRequest struct {
	APIKey string `json:"apiKey"`
}

type keyTestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// handleKeyTest probes the AI provider with the supplied credential. It
// mutates no stored state.
func (s *Server) handleKeyTest(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req keyTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, keyTestResponse{Success: false, Message: "مفتاح API مطلوب"})
		return
	}
	if strings.TrimSpace(req.APIKey) == "" {
		writeJSON(w, http.StatusBadRequest, keyTestResponse{Success: false, Message: "مفتاح API مطلوب"})
		return
	}
	if err := llm.CheckKey(r.Context(), s.llmCfg, req.APIKey); err != nil {
		logger.Warn("api: key test failed", "error", err)
		writeJSON(w, http.StatusBadRequest, keyTestResponse{Success: false, Message: "مفتاح API غير صحيح أو غير مفعل"})
		return
	}
	writeJSON(w, http.StatusOK, keyTestResponse{Success: true, Message: "مفتاح API صحيح وجاهز للاستخدام"})
}
