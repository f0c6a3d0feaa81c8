// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the caller-facing messages shared by the HTTP API and
// freightctl.
//
// The wording is part of the public contract: existing storefront
// integrations match on these strings, so they stay in Portuguese and must
// not change.
package app

const (
	// MsgNoDataProvided is returned when the request body is empty.
	MsgNoDataProvided = "Dados não fornecidos"

	// MsgInvalidJSON is returned when the body is not a JSON object of the
	// expected shape.
	MsgInvalidJSON = "JSON inválido"

	// MsgMissingField prefixes the name of an absent required field.
	MsgMissingField = "Campo obrigatório ausente: "

	// MsgInvalidField prefixes the name of a field whose value breaks a
	// constraint (e.g. a non-positive weight).
	MsgInvalidField = "Campo inválido: "

	MsgInvalidOriginPostalCode      = "CEP de origem inválido"
	MsgInvalidDestinationPostalCode = "CEP de destino inválido"
	MsgNoPostalCodeProvided         = "CEP não fornecido"

	MsgEmptyProductList   = "Lista de produtos vazia"
	MsgNoShipmentProvided = "Produtos ou pacote não fornecidos"

	// MsgCalculationFailed is returned when the provider yields no quotes.
	// The underlying cause is logged, never returned.
	MsgCalculationFailed = "Erro ao calcular frete"

	// MsgInternalError is returned when a handler fails unexpectedly.
	MsgInternalError = "Erro interno do servidor"

	// MsgHealthy is the GET /health message.
	MsgHealthy = "API de cálculo de frete funcionando"
)
