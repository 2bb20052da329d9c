package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-field-crypt/internal/logger"
	"github.com/MKhiriev/go-field-crypt/internal/utils"
	"github.com/MKhiriev/go-field-crypt/models"
)

func (h *Handler) createMessage(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "*Handler.createMessage", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	message, err := h.services.MessageService.Create(r.Context(), req.Text)
	if err != nil {
		writeError(w, r, "*Handler.createMessage", err)
		return
	}

	h.writeJSON(w, r, message, http.StatusCreated)
}

func (h *Handler) getMessage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, "*Handler.getMessage", fmt.Errorf("%w: %w", ErrInvalidMessageID, err))
		return
	}

	message, err := h.services.MessageService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.getMessage", err)
		return
	}

	h.writeJSON(w, r, message, http.StatusOK)
}

func (h *Handler) listDecryptedMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.services.MessageService.ListDecrypted(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listDecryptedMessages", err)
		return
	}

	h.writeJSON(w, r, messages, http.StatusOK)
}

// listStoredMessages returns messages exactly as persisted, with ciphertext.
func (h *Handler) listStoredMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.services.MessageService.ListStored(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listStoredMessages", err)
		return
	}

	h.writeJSON(w, r, messages, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeJSON").Msg("error writing response")
	}
}
