// Package spreadsheet reads and writes the equipment list as an XLSX
// workbook.
package spreadsheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"hvac_registry/internal/domain/entities"
	"hvac_registry/internal/domain/variant"
	"hvac_registry/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Equipamentos"

// Column order of exported workbooks. Imports locate columns by header text,
// so reordered or partial sheets are accepted as long as Tag is present.
var headers = []string{
	"ID",
	"Tag",
	"Modelo",
	"Marca",
	"Fluido",
	"Capacidade",
	"Local",
	"Local Evaporadora",
	"Local Condensadora",
	"Corrente",
	"Tensão",
	"Reversão",
	"Trifásico",
	"Modelo Correia",
	"Qtd. Correias",
	"Filtros",
}

// Filters are written in a single cell: "modelo | tamanho | quantidade" per
// row, rows separated by ";".
const (
	filterSep = ";"
	fieldSep  = "|"
)

// columnWidths widens the columns holding long free text.
var columnWidths = []struct {
	from, to string
	width    float64
}{
	{"B", "D", 16},
	{"G", "I", 22},
	{"P", "P", 40},
}

type EquipmentSheet struct{}

var _ interfaces.IEquipmentSheet = EquipmentSheet{}

func NewEquipmentSheet() EquipmentSheet {
	return EquipmentSheet{}
}

func (EquipmentSheet) Encode(w io.Writer, items []entities.Equipment) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", last, style); err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for i, e := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := encodeRow(e)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}

	for _, c := range columnWidths {
		if err := f.SetColWidth(SheetName, c.from, c.to, c.width); err != nil {
			return fmt.Errorf("column width %s:%s: %w", c.from, c.to, err)
		}
	}
	return f.Write(w)
}

// Decode reads the first sheet. Row 1 must be the header row; empty rows are
// skipped. A row whose cells cannot be converted carries Err instead of
// failing the whole workbook.
func (EquipmentSheet) Decode(r io.Reader) ([]interfaces.SheetRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: open workbook: %v", interfaces.ErrInvalidSheet, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", interfaces.ErrInvalidSheet)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", interfaces.ErrInvalidSheet, sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", interfaces.ErrInvalidSheet, sheets[0])
	}

	cols := indexHeaders(rows[0])
	if _, ok := cols["tag"]; !ok {
		return nil, fmt.Errorf("%w: sheet %q has no Tag column", interfaces.ErrInvalidSheet, sheets[0])
	}

	out := []interfaces.SheetRow{}
	for i, cells := range rows[1:] {
		if isBlank(cells) {
			continue
		}
		draft, err := decodeRow(cols, cells)
		out = append(out, interfaces.SheetRow{Row: i + 2, Draft: draft, Err: err})
	}
	return out, nil
}

func encodeRow(e entities.Equipment) []any {
	var belts any
	if e.BeltCount > 0 {
		belts = e.BeltCount
	}
	return []any{
		e.ID,
		e.DisplayTag(),
		string(e.ModelFamily),
		e.Brand,
		e.Refrigerant,
		e.CapacityBTU,
		e.InstallLocation,
		e.EvaporatorLocation,
		e.CondenserLocation,
		e.CurrentAmps,
		e.Voltage,
		string(e.CycleReversal),
		string(e.ThreePhase),
		e.BeltModel,
		belts,
		formatFilters(e.Filters),
	}
}

func decodeRow(cols map[string]int, cells []string) (entities.EquipmentDraft, error) {
	get := func(header string) string {
		i, ok := cols[normalizeHeader(header)]
		if !ok || i >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[i])
	}

	d := entities.EquipmentDraft{
		Tag:                get("Tag"),
		ModelFamily:        entities.ModelFamily(get("Modelo")),
		Brand:              get("Marca"),
		Refrigerant:        get("Fluido"),
		CapacityBTU:        get("Capacidade"),
		InstallLocation:    get("Local"),
		EvaporatorLocation: get("Local Evaporadora"),
		CondenserLocation:  get("Local Condensadora"),
		CurrentAmps:        get("Corrente"),
		Voltage:            get("Tensão"),
		CycleReversal:      entities.Answer(get("Reversão")),
		ThreePhase:         entities.Answer(get("Trifásico")),
		BeltModel:          get("Modelo Correia"),
	}
	if family, err := variant.ParseFamily(string(d.ModelFamily)); err == nil {
		d.ModelFamily = family
	}

	if raw := get("Qtd. Correias"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return d, fmt.Errorf("%s: %q is not a whole number", variant.FieldBeltCount, raw)
		}
		d.BeltCount = n
	}

	filters, err := parseFilters(get("Filtros"))
	if err != nil {
		return d, err
	}
	d.Filters = filters
	return d, nil
}

func formatFilters(filters []entities.Filter) string {
	parts := make([]string, 0, len(filters))
	for _, f := range filters {
		parts = append(parts, strings.Join([]string{f.Model, f.Size, strconv.Itoa(f.Quantity)}, " "+fieldSep+" "))
	}
	return strings.Join(parts, filterSep+" ")
}

func parseFilters(raw string) ([]entities.Filter, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var out []entities.Filter
	for _, part := range strings.Split(raw, filterSep) {
		if strings.TrimSpace(part) == "" {
			continue
		}
		fields := strings.Split(part, fieldSep)
		for len(fields) < 3 {
			fields = append(fields, "")
		}
		f := entities.Filter{
			Model: strings.TrimSpace(fields[0]),
			Size:  strings.TrimSpace(fields[1]),
		}
		if q := strings.TrimSpace(fields[2]); q != "" {
			n, err := strconv.Atoi(q)
			if err != nil {
				return nil, fmt.Errorf("%s: quantity %q is not a whole number", variant.FieldFilters, q)
			}
			f.Quantity = n
		}
		out = append(out, f)
	}
	return out, nil
}

func indexHeaders(row []string) map[string]int {
	cols := make(map[string]int, len(row))
	for i, h := range row {
		if key := normalizeHeader(h); key != "" {
			if _, dup := cols[key]; !dup {
				cols[key] = i
			}
		}
	}
	return cols
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.Join(strings.Fields(h), " "))
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
