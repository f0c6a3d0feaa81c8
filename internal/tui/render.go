// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders freightctl output for the terminal with lipgloss.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/freight-calculator/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const noPrice = "—"

// RenderQuotes draws the quote options as a table followed by the cheapest
// and fastest picks.
func RenderQuotes(result models.QuoteResult) string {
	var b strings.Builder

	if len(result.ShippingOptions) == 0 {
		b.WriteString(helpStyle.Render("Nenhuma opção de frete disponível para este trecho."))
		b.WriteString("\n")
		writeDropped(&b, result.Dropped)
		return b.String()
	}

	rows := make([][]string, 0, len(result.ShippingOptions))
	for _, quote := range result.ShippingOptions {
		rows = append(rows, []string{
			strconv.Itoa(quote.ID),
			quote.Company,
			quote.Name,
			priceOf(quote),
			quote.FormattedDelivery,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("ID", "Transportadora", "Serviço", "Preço", "Prazo").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n")

	writePick(&b, "Mais barato", result.Cheapest)
	writePick(&b, "Mais rápido", result.Fastest)
	writeDropped(&b, result.Dropped)

	return b.String()
}

// RenderPostalCode reports whether postalCode is a valid CEP.
func RenderPostalCode(postalCode string, valid bool) string {
	if valid {
		return successStyle.Render(iconValid) + " " + postalCode + " é um CEP válido\n"
	}
	return errorStyle.Render(iconInvalid) + " " + postalCode + " não é um CEP válido\n"
}

// RenderError formats a failed command for stderr.
func RenderError(err error) string {
	return errorStyle.Render(iconInvalid) + " " + HumanizeError(err) + "\n"
}

func writePick(b *strings.Builder, label string, quote *models.FormattedQuote) {
	if quote == nil {
		return
	}
	fmt.Fprintf(b, "%s %s\n",
		labelStyle.Render(label+":"),
		titleStyle.Render(fmt.Sprintf("%s %s · %s · %s", quote.Company, quote.Name, priceOf(*quote), quote.FormattedDelivery)),
	)
}

func writeDropped(b *strings.Builder, dropped int) {
	if dropped == 0 {
		return
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("%d serviço(s) indisponível(is) omitido(s)", dropped)))
	b.WriteString("\n")
}

func priceOf(quote models.FormattedQuote) string {
	if quote.FormattedPrice == "" {
		return noPrice
	}
	return quote.FormattedPrice
}
