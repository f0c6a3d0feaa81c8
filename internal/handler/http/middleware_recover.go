package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/freight-calculator/internal/app"
	"github.com/MKhiriev/freight-calculator/internal/logger"
	"github.com/MKhiriev/freight-calculator/internal/utils"
	"github.com/MKhiriev/freight-calculator/models"
)

// withRecover turns a handler panic into a JSON 500. It runs inside
// withTraceID and withLogging, so the panic is logged with the trace id and
// the access log records the 500.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")

			_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInternalError}, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
