package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/freight-calculator/internal/utils"
	"github.com/MKhiriev/freight-calculator/internal/validators"
	"github.com/MKhiriev/freight-calculator/models"
)

// validatePostalCode echoes the submitted postal code with its validity.
// An absent body or postal_code is reported as ErrNoPostalCodeProvided.
func (h *Handler) validatePostalCode(w http.ResponseWriter, r *http.Request) {
	var req models.ValidatePostalCodeRequest
	if err := h.decodeRequest(r, &req, "postal_code"); err != nil {
		if errors.Is(err, ErrNoDataProvided) || errors.Is(err, validators.ErrMissingField) {
			err = ErrNoPostalCodeProvided
		}
		h.writeError(w, r, err)
		return
	}

	postalCode := *req.PostalCode
	valid := h.services.ShippingService.ValidatePostalCode(r.Context(), postalCode)

	utils.WriteJSON(w, models.ValidatePostalCodeResponse{
		Success:    true,
		Valid:      valid,
		PostalCode: postalCode,
	}, http.StatusOK)
}
