// Package xlsx lee líneas de recepción de compra desde un libro XLSX.
//
// La primera fila es la cabecera; se reconocen (sin distinguir mayúsculas)
// item_code, received_qty, qty, rejected_qty y edited_field. Las celdas vacías
// valen cero. Las cantidades se leen con su valor guardado, no con el formato
// de la celda; un texto con coma se rechaza (10,5 puede ser 10.5 o 105).
package xlsx

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Recepcion-api/internal/application/dto"
	"github.com/jhoicas/Recepcion-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Nombres de columna reconocidos.
const (
	ColItemCode    = "item_code"
	ColReceivedQty = "received_qty"
	ColQty         = "qty"
	ColRejectedQty = "rejected_qty"
	ColEditedField = "edited_field"
)

// Row una línea leída del libro. Number es la fila en la hoja (base 1, cabecera = 1).
type Row struct {
	Number      int
	EditedField string
	Quantities  dto.LineQuantities
}

// ReadLines abre el libro y devuelve las líneas de la hoja indicada (vacía = primera hoja).
func ReadLines(path, sheet string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("abrir libro %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheet, err)
	}
	return parseRows(rows)
}

func parseRows(rows [][]string) ([]Row, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: hoja vacía", domain.ErrInvalidInput)
	}
	cols := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{ColReceivedQty, ColQty} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: falta la columna %s", domain.ErrInvalidInput, required)
		}
	}

	out := make([]Row, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		number := i + 2
		if blank(cells) {
			continue
		}
		cell := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(cells) {
				return ""
			}
			return strings.TrimSpace(cells[idx])
		}
		row := Row{Number: number, EditedField: cell(ColEditedField)}
		row.Quantities.ItemCode = cell(ColItemCode)

		for _, q := range []struct {
			name string
			dst  *decimal.Decimal
		}{
			{ColReceivedQty, &row.Quantities.ReceivedQuantity},
			{ColQty, &row.Quantities.Quantity},
			{ColRejectedQty, &row.Quantities.RejectedQuantity},
		} {
			v, err := parseQuantity(cell(q.name))
			if err != nil {
				return nil, fmt.Errorf("%w: fila %d, %s: %v", domain.ErrInvalidInput, number, q.name, err)
			}
			*q.dst = v
		}
		out = append(out, row)
	}
	return out, nil
}

func parseQuantity(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	if strings.Contains(s, ",") {
		return decimal.Zero, fmt.Errorf("separador ambiguo en %q, use punto decimal", s)
	}
	return decimal.NewFromString(s)
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
