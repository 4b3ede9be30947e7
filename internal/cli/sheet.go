package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Recepcion-api/internal/application/dto"
	"github.com/jhoicas/Recepcion-api/internal/infrastructure/xlsx"
)

func newSheetCommand(opts *options) *cobra.Command {
	var (
		sheet, edited string
		precision     int
		strict        bool
	)
	cmd := &cobra.Command{
		Use:   "sheet <archivo.xlsx>",
		Short: "Concilia todas las líneas de un libro XLSX",
		Long: `Lee la hoja indicada (por defecto la primera). La cabecera debe tener
received_qty y qty; rejected_qty, item_code y edited_field son opcionales.
Las filas sin edited_field usan --edited.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := precisionFlag(precision)
			if err != nil {
				return err
			}
			uc, err := opts.newUseCase()
			if err != nil {
				return err
			}
			rows, err := xlsx.ReadLines(args[0], sheet)
			if err != nil {
				return err
			}

			report := sheetReport{File: args[0], Sheet: sheet, Total: len(rows), Lines: make([]lineReport, 0, len(rows))}
			for _, row := range rows {
				field := row.EditedField
				if field == "" {
					field = edited
				}
				in := dto.ReconcileLineRequest{LineQuantities: row.Quantities, EditedField: field, DocType: opts.docType, Precision: p}
				out, err := uc.ReconcileLine(cmd.Context(), in)
				if err != nil {
					return fmt.Errorf("fila %d: %w", row.Number, err)
				}
				if out.Validation != nil {
					report.WithErrors++
				}
				report.Lines = append(report.Lines, newLineReport(row.Number, field, out))
			}

			if err := writeYAML(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if strict && report.WithErrors > 0 {
				return fmt.Errorf("%d de %d líneas con errores de conciliación", report.WithErrors, report.Total)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sheet, "sheet", "", "nombre de la hoja (vacío = primera)")
	cmd.Flags().StringVar(&edited, "edited", "qty", "campo editado para filas sin edited_field")
	cmd.Flags().IntVar(&precision, "precision", -1, "decimales; -1 = RECEIPT_DEFAULT_PRECISION")
	cmd.Flags().BoolVar(&strict, "strict", false, "salir con error si alguna línea no concilia")
	return cmd
}
