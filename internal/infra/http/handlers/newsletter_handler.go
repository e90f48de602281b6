package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bigwigmedia/bigwig-backend/internal/entity"
	"github.com/bigwigmedia/bigwig-backend/internal/infra/http/middleware"
	"github.com/bigwigmedia/bigwig-backend/internal/usecase"
)

type NewsletterHandler struct {
	SendUC      *usecase.SendNewsletterUseCase
	Newsletters usecase.NewsletterRepositoryInterface
}

func NewNewsletterHandler(
	sendUC *usecase.SendNewsletterUseCase,
	newsletters usecase.NewsletterRepositoryInterface,
) *NewsletterHandler {
	return &NewsletterHandler{
		SendUC:      sendUC,
		Newsletters: newsletters,
	}
}

// Send accepts the newsletter and returns 202 right away; the fan-out
// happens in the queue worker.
func (h *NewsletterHandler) Send(w http.ResponseWriter, r *http.Request) {
	var input usecase.SendNewsletterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
		return
	}

	output, err := h.SendUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordNewsletterQueued()
	writeJSON(w, http.StatusAccepted, output)
}

func (h *NewsletterHandler) List(w http.ResponseWriter, r *http.Request) {
	newsletters, err := h.Newsletters.FindAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count": len(newsletters),
		"data":  newsletters,
	})
}

func (h *NewsletterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Newsletters.Delete(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Newsletter not found"})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Newsletter deleted successfully"})
}
