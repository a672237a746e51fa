package interfaces

import (
	"errors"
	"io"

	"hvac_registry/internal/domain/entities"
)

// ErrInvalidSheet is returned by Decode when the workbook as a whole cannot
// be read.
var ErrInvalidSheet = errors.New("invalid equipment sheet")

// IEquipmentSheet converts equipment to and from a spreadsheet workbook.
//
//go:generate mockgen -source=equipment_sheet_interface.go -destination=mocks/mock_equipment_sheet.go -package=mock_interfaces

type IEquipmentSheet interface {
	Encode(w io.Writer, items []entities.Equipment) error
	// Decode returns one draft per data row, in sheet order. Row numbers in
	// the returned slice are 1-based sheet rows.
	Decode(r io.Reader) ([]SheetRow, error)
}

type SheetRow struct {
	Row   int
	Draft entities.EquipmentDraft
	Err   error
}
