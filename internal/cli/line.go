package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/Recepcion-api/internal/application/dto"
	"github.com/jhoicas/Recepcion-api/internal/domain"
)

func newLineCommand(opts *options) *cobra.Command {
	var (
		edited, received, qty, rejected, itemCode string
		precision                                 int
	)
	cmd := &cobra.Command{
		Use:   "line",
		Short: "Concilia una línea",
		Example: `  reconcile line --edited qty --received 10 --qty 12
  reconcile line --edited rejected_qty --received 10 --rejected 4 --precision 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := precisionFlag(precision)
			if err != nil {
				return err
			}
			uc, err := opts.newUseCase()
			if err != nil {
				return err
			}
			in := dto.ReconcileLineRequest{EditedField: edited, DocType: opts.docType, Precision: p}
			in.ItemCode = itemCode
			for _, f := range []struct {
				name string
				raw  string
				dst  *decimal.Decimal
			}{
				{"received", received, &in.ReceivedQuantity},
				{"qty", qty, &in.Quantity},
				{"rejected", rejected, &in.RejectedQuantity},
			} {
				v, err := decimal.NewFromString(f.raw)
				if err != nil {
					return fmt.Errorf("%w: --%s %q no es numérico", domain.ErrInvalidInput, f.name, f.raw)
				}
				*f.dst = v
			}

			out, err := uc.ReconcileLine(cmd.Context(), in)
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), newLineReport(0, edited, out))
		},
	}
	cmd.Flags().StringVar(&edited, "edited", "qty", "campo editado: qty | received_qty | rejected_qty")
	cmd.Flags().StringVar(&received, "received", "0", "received_qty")
	cmd.Flags().StringVar(&qty, "qty", "0", "qty (aceptado)")
	cmd.Flags().StringVar(&rejected, "rejected", "0", "rejected_qty")
	cmd.Flags().StringVar(&itemCode, "item-code", "", "código del ítem (solo informativo)")
	cmd.Flags().IntVar(&precision, "precision", -1, "decimales; -1 = RECEIPT_DEFAULT_PRECISION")
	return cmd
}
