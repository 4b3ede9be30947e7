// Package cli implementa el binario reconcile: conciliación de cantidades de
// recepción de compra desde la línea de comandos o desde un libro XLSX.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jhoicas/Recepcion-api/internal/application/receipt"
	"github.com/jhoicas/Recepcion-api/internal/domain"
	domainreceipt "github.com/jhoicas/Recepcion-api/internal/domain/receipt"
	"github.com/jhoicas/Recepcion-api/internal/infrastructure/memory"
	"github.com/jhoicas/Recepcion-api/pkg/config"
)

// Version se fija en build con -ldflags "-X github.com/jhoicas/Recepcion-api/internal/cli.Version=1.2.0".
var Version = "dev"

// options flags globales.
type options struct {
	verbose bool
	docType string
}

// NewRootCommand construye el árbol de comandos escribiendo los reportes en out.
func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "reconcile",
		Short: "Concilia qty, received_qty y rejected_qty de líneas de recepción de compra",
		Long: `reconcile aplica las reglas de recepción de compra a una línea o a un libro XLSX:
received_qty = qty + rejected_qty, redondeando a la precisión configurada.

Ejemplos:
  reconcile line --edited qty --received 10 --qty 7
  reconcile sheet recepcion.xlsx --strict`,
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "registrar cada error de conciliación en stderr")
	root.PersistentFlags().StringVar(&opts.docType, "doctype", "", "doctype para la precisión (por defecto RECEIPT_DOCTYPE)")

	root.AddCommand(newLineCommand(opts), newSheetCommand(opts), newVersionCommand())
	return root
}

// Execute ejecuta el comando raíz y sale con 1 si falla.
func Execute() {
	if err := NewRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newUseCase arma el caso de uso con la precisión de la configuración (sin base de datos).
func (o *options) newUseCase() (*receipt.ReconcileUseCase, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := zerolog.Nop()
	if o.verbose {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel)
	}
	docType := o.docType
	if docType == "" {
		docType = cfg.Receipt.DocType
	}
	resolver := receipt.NewPrecisionResolver(memory.NewPrecisionRepository(), docType, cfg.Receipt.DefaultPrecision)
	return receipt.NewReconcileUseCase(resolver, log), nil
}

// precisionFlag convierte --precision; -1 deja la precisión configurada.
func precisionFlag(v int) (*int32, error) {
	if v == -1 {
		return nil, nil
	}
	if v < 0 || v > int(domainreceipt.MaxPrecision) {
		return nil, fmt.Errorf("%w: --precision %d fuera de rango [0, %d]", domain.ErrInvalidInput, v, domainreceipt.MaxPrecision)
	}
	p := int32(v)
	return &p, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Muestra la versión",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "reconcile %s\n", Version)
		},
	}
}
