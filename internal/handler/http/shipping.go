package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/freight-calculator/internal/logger"
	"github.com/MKhiriev/freight-calculator/internal/normalizer"
	"github.com/MKhiriev/freight-calculator/internal/service"
	"github.com/MKhiriev/freight-calculator/internal/utils"
	"github.com/MKhiriev/freight-calculator/models"
)

// droppedQuotesHeader carries the number of provider quotes left out of the
// response because they reported an error.
const droppedQuotesHeader = "X-Dropped-Quotes"

func (h *Handler) calculate(w http.ResponseWriter, r *http.Request) {
	var req models.CalculateRequest
	if err := h.decodeRequest(r, &req, "from_postal_code", "to_postal_code", "products"); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeQuotes(w, r, service.CalculationRequest{
		Origin:      *req.FromPostalCode,
		Destination: *req.ToPostalCode,
		Input:       normalizer.GenericInput{Products: req.Products},
		Options:     req.Options,
	})
}

func (h *Handler) calculateSimple(w http.ResponseWriter, r *http.Request) {
	var req models.SimpleCalculateRequest
	if err := h.decodeRequest(r, &req, "from_postal_code", "to_postal_code", "weight"); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeQuotes(w, r, service.CalculationRequest{
		Origin:      *req.FromPostalCode,
		Destination: *req.ToPostalCode,
		Input:       normalizer.SimpleInput{Product: req.SimpleProduct},
		Options:     req.Options,
	})
}

func (h *Handler) calculateShopify(w http.ResponseWriter, r *http.Request) {
	var req models.ShopifyCalculateRequest
	if err := h.decodeRequest(r, &req, "from_postal_code", "to_postal_code", "shopify_product"); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeQuotes(w, r, service.CalculationRequest{
		Origin:      *req.FromPostalCode,
		Destination: *req.ToPostalCode,
		Input:       normalizer.ShopifyInput{Product: *req.ShopifyProduct},
		Options:     req.Options,
	})
}

func (h *Handler) calculatePackage(w http.ResponseWriter, r *http.Request) {
	var req models.PackageCalculateRequest
	if err := h.decodeRequest(r, &req, "from_postal_code", "to_postal_code", "package"); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeQuotes(w, r, service.CalculationRequest{
		Origin:      *req.FromPostalCode,
		Destination: *req.ToPostalCode,
		Package:     req.Package,
		Options:     req.Options,
	})
}

func (h *Handler) writeQuotes(w http.ResponseWriter, r *http.Request, req service.CalculationRequest) {
	log := logger.FromRequest(r)

	result, err := h.services.ShippingService.Calculate(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().
		Int("options", len(result.ShippingOptions)).
		Int("dropped", result.Dropped).
		Msg("quotes calculated")

	if result.Dropped > 0 {
		w.Header().Set(droppedQuotesHeader, strconv.Itoa(result.Dropped))
	}

	utils.WriteJSON(w, models.QuoteResponse{Success: true, QuoteResult: result}, http.StatusOK)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Success: false, Error: messageFromError(err)}, status)
}
