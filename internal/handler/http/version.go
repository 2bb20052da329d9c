package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-field-crypt/internal/logger"
)

// getServerVersion answers with the bare version string, which is what
// `fieldcrypt version` prints.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, version); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerVersion").Msg("error writing response")
	}
}
