package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bigwigmedia/bigwig-backend/internal/infra/http/middleware"
	"github.com/bigwigmedia/bigwig-backend/internal/usecase"
)

type LeadHandler struct {
	SendOTPUC   *usecase.SendOTPUseCase
	VerifyOTPUC *usecase.VerifyOTPUseCase
	StatsUC     *usecase.LeadStatsUseCase
	Leads       usecase.LeadRepositoryInterface
}

func NewLeadHandler(
	sendOTPUC *usecase.SendOTPUseCase,
	verifyOTPUC *usecase.VerifyOTPUseCase,
	statsUC *usecase.LeadStatsUseCase,
	leads usecase.LeadRepositoryInterface,
) *LeadHandler {
	return &LeadHandler{
		SendOTPUC:   sendOTPUC,
		VerifyOTPUC: verifyOTPUC,
		StatsUC:     statsUC,
		Leads:       leads,
	}
}

func (h *LeadHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var input usecase.SendOTPInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
		return
	}

	output, err := h.SendOTPUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordOTPIssued()
	writeJSON(w, http.StatusOK, output)
}

func (h *LeadHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var input usecase.VerifyOTPInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
		return
	}

	output, err := h.VerifyOTPUC.Execute(r.Context(), input)
	if err != nil {
		middleware.RecordOTPVerification("rejected")
		writeError(w, err)
		return
	}

	middleware.RecordOTPVerification("verified")
	writeJSON(w, http.StatusOK, output)
}

func (h *LeadHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Leads.FindAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) LeadsLastTenDays(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsUC.Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
