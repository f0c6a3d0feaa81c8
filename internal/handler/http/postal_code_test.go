package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestValidatePostalCode(t *testing.T) {
	tests := []struct {
		name       string
		postalCode string
		valid      bool
	}{
		{name: "valid with dash", postalCode: "01001-000", valid: true},
		{name: "too short", postalCode: "0100100", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)
			h.shipping.EXPECT().ValidatePostalCode(gomock.Any(), tt.postalCode).Return(tt.valid)

			rec := h.do(http.MethodPost, "/validate-postal-code", `{"postal_code":"`+tt.postalCode+`"}`)

			require.Equal(t, http.StatusOK, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, true, body["success"])
			assert.Equal(t, tt.valid, body["valid"])
			assert.Equal(t, tt.postalCode, body["postal_code"])
		})
	}
}

func TestValidatePostalCode_NotProvided(t *testing.T) {
	for _, body := range []string{"", `{}`, `{"cep":"01001000"}`, `{"postal_code":null}`} {
		t.Run(body, func(t *testing.T) {
			rec := newTestHandler(t).do(http.MethodPost, "/validate-postal-code", body)

			assertError(t, rec, http.StatusBadRequest, "CEP não fornecido")
		})
	}
}

func TestValidatePostalCode_InvalidJSON(t *testing.T) {
	rec := newTestHandler(t).do(http.MethodPost, ShippingPrefix+"/validate-postal-code", `{"postal_code":`)

	assertError(t, rec, http.StatusBadRequest, "JSON inválido")
}
