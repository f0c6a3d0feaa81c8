package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusUnprocessableEntity: ErrUnprocessableEntity,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// providerError is the body Melhor Envio sends with 4xx answers:
// a summary message plus per-field validation messages.
type providerError struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	details := errorDetails(resp.Body())

	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, details)
	}
	if details == "" {
		details = http.StatusText(status)
	}
	return fmt.Errorf("http %d: %s", status, details)
}

// errorDetails flattens a provider error body into one line. Bodies that
// are not the provider envelope are returned trimmed.
func errorDetails(body []byte) string {
	raw := strings.TrimSpace(string(body))

	var perr providerError
	if err := json.Unmarshal(body, &perr); err != nil || (perr.Message == "" && len(perr.Errors) == 0) {
		return raw
	}

	fields := make([]string, 0, len(perr.Errors))
	for field := range perr.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields)+1)
	if perr.Message != "" {
		parts = append(parts, perr.Message)
	}
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(perr.Errors[field], ", "))
	}
	return strings.Join(parts, "; ")
}
