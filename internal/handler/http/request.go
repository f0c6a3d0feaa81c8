package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// decodeRequest reads a JSON object body into dst and then checks that the
// required fields are present. Missing fields are reported in the order they
// are listed.
func (h *Handler) decodeRequest(r *http.Request, dst any, required ...string) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return ErrNoDataProvided
	}

	var probe any
	if err = json.Unmarshal(body, &probe); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if isEmptyJSON(probe) {
		return ErrNoDataProvided
	}
	if _, ok := probe.(map[string]any); !ok {
		return fmt.Errorf("%w: body must be a JSON object", ErrInvalidJSON)
	}

	if err = json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	for _, field := range required {
		if err = h.validator.Validate(r.Context(), dst, field); err != nil {
			return err
		}
	}

	return nil
}

func isEmptyJSON(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case bool:
		return !value
	case float64:
		return value == 0
	case string:
		return value == ""
	case []any:
		return len(value) == 0
	case map[string]any:
		return len(value) == 0
	default:
		return false
	}
}
