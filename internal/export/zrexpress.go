// Package export renders orders into the ZR Express logistics import CSV.
// The layout is an external contract: column order, header names, quoting
// and line separators must be reproduced byte for byte. encoding/csv is
// not used on purpose — it quotes conditionally and writes \r\n.
package export

import (
	"strconv"
	"strings"

	"github.com/dj1alilou/windyluxury/internal/model"
)

var zrHeaders = []string{
	"nom complet",
	"telephone1",
	"telephone2",
	"produit",
	"quantite",
	"Sku",
	"type de stock",
	"Adresse",
	"Wilaya",
	"Commune",
	"prix total de la commande",
	"Note",
	"ID",
	"Stopdesk",
	"Nom stopDesk",
}

// ZRExpress builds the CSV body for the given orders. Callers are expected
// to have filtered out cancelled orders and sorted newest first.
func ZRExpress(orders []model.Order) string {
	rows := make([]string, 0, len(orders)+1)
	rows = append(rows, strings.Join(zrHeaders, ","))

	for _, order := range orders {
		titles := make([]string, 0, len(order.Lines))
		quantities := make([]string, 0, len(order.Lines))
		for _, line := range order.Lines {
			titles = append(titles, line.Title)
			quantities = append(quantities, strconv.Itoa(line.Quantity))
		}
		sku := ""
		if len(order.Lines) > 0 {
			sku = order.Lines[0].ProductID
		}

		cells := []string{
			order.CustomerName,
			order.CustomerPhone,
			order.CustomerPhone2,
			strings.Join(titles, ", "),
			strings.Join(quantities, ", "),
			sku,
			"", // type de stock
			order.Address,
			order.Wilaya,
			order.Commune,
			order.Total.String(),
			order.Notes,
			order.ID,
			"", // Stopdesk
			"", // Nom stopDesk
		}
		rows = append(rows, joinQuoted(cells))
	}

	return strings.Join(rows, "\n")
}

// joinQuoted wraps each cell in double quotes, doubling inner quotes.
func joinQuoted(cells []string) string {
	quoted := make([]string, len(cells))
	for i, cell := range cells {
		quoted[i] = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
