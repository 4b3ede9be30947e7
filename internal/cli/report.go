package cli

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/Recepcion-api/internal/application/dto"
)

// lineReport resultado de una línea en el reporte YAML.
type lineReport struct {
	Row         int                    `yaml:"row,omitempty"`
	ItemCode    string                 `yaml:"item_code,omitempty"`
	EditedField string                 `yaml:"edited_field"`
	Precision   int32                  `yaml:"precision"`
	Qty         string                 `yaml:"qty"`
	ReceivedQty string                 `yaml:"received_qty"`
	RejectedQty string                 `yaml:"rejected_qty"`
	Validation  *dto.ValidationMessage `yaml:"validation,omitempty"`
}

// sheetReport reporte de un libro completo.
type sheetReport struct {
	File       string       `yaml:"file"`
	Sheet      string       `yaml:"sheet,omitempty"`
	Total      int          `yaml:"total"`
	WithErrors int          `yaml:"with_errors"`
	Lines      []lineReport `yaml:"lines"`
}

func newLineReport(row int, edited string, r *dto.ReconcileLineResponse) lineReport {
	return lineReport{
		Row:         row,
		ItemCode:    r.Item.ItemCode,
		EditedField: edited,
		Precision:   r.Precision,
		Qty:         r.Item.Quantity.String(),
		ReceivedQty: r.Item.ReceivedQuantity.String(),
		RejectedQty: r.Item.RejectedQuantity.String(),
		Validation:  r.Validation,
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
