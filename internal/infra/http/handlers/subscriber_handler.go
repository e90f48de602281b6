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

type SubscriberHandler struct {
	SubscribeUC *usecase.SubscribeUseCase
	Subscribers usecase.SubscriberRepositoryInterface
}

func NewSubscriberHandler(
	subscribeUC *usecase.SubscribeUseCase,
	subscribers usecase.SubscriberRepositoryInterface,
) *SubscriberHandler {
	return &SubscriberHandler{
		SubscribeUC: subscribeUC,
		Subscribers: subscribers,
	}
}

func (h *SubscriberHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var input usecase.SubscribeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
		return
	}

	output, err := h.SubscribeUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordSubscriptionEvent("subscribe")
	writeJSON(w, http.StatusCreated, output)
}

func (h *SubscriberHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	if err := h.Subscribers.DeactivateByToken(r.Context(), token); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Invalid unsubscribe link"})
			return
		}
		writeError(w, err)
		return
	}

	middleware.RecordSubscriptionEvent("unsubscribe")
	writeJSON(w, http.StatusOK, map[string]string{"message": "You have been unsubscribed successfully"})
}

func (h *SubscriberHandler) List(w http.ResponseWriter, r *http.Request) {
	subscribers, err := h.Subscribers.FindAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count": len(subscribers),
		"data":  subscribers,
	})
}
