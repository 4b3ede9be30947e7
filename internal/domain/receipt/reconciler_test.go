package receipt_test

import (
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Recepcion-api/internal/domain"
	"github.com/jhoicas/Recepcion-api/internal/domain/receipt"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func line(received, qty, rejected string, precision int32) receipt.LineItem {
	return receipt.LineItem{
		ReceivedQuantity: d(received),
		Quantity:         d(qty),
		RejectedQuantity: d(rejected),
		Precision:        precision,
	}
}

func assertLine(t *testing.T, got receipt.LineItem, received, qty, rejected string) {
	t.Helper()
	assert.True(t, got.ReceivedQuantity.Equal(d(received)), "received_qty: esperado %s, obtenido %s", received, got.ReceivedQuantity)
	assert.True(t, got.Quantity.Equal(d(qty)), "qty: esperado %s, obtenido %s", qty, got.Quantity)
	assert.True(t, got.RejectedQuantity.Equal(d(rejected)), "rejected_qty: esperado %s, obtenido %s", rejected, got.RejectedQuantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios de referencia
// ──────────────────────────────────────────────────────────────────────────────

func TestOnQuantityChanged_AceptaTodoLoRecibido(t *testing.T) {
	got, err := receipt.OnQuantityChanged(line("10", "10", "0", 3))
	require.NoError(t, err)
	assertLine(t, got, "10", "10", "0")
}

func TestOnQuantityChanged_DerivaRechazo(t *testing.T) {
	got, err := receipt.OnQuantityChanged(line("10", "7", "0", 3))
	require.NoError(t, err)
	assertLine(t, got, "10", "7", "3")
}

func TestOnQuantityChanged_AceptadoSuperaRecibido(t *testing.T) {
	got, err := receipt.OnQuantityChanged(line("10", "12", "0", 3))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAcceptedExceedsReceived)
	assertLine(t, got, "10", "0", "0")

	var qe *receipt.QuantityError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, "qty (12) > received_qty (10)", qe.Details())
}

func TestOnRejectedQuantityChanged_DerivaAceptado(t *testing.T) {
	got, err := receipt.OnRejectedQuantityChanged(line("10", "0", "4", 3))
	require.NoError(t, err)
	assertLine(t, got, "10", "6", "4")
}

func TestOnRejectedQuantityChanged_RechazoSuperaRecibido(t *testing.T) {
	got, err := receipt.OnRejectedQuantityChanged(line("10", "3", "15", 3))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRejectedExceedsReceived)
	assertLine(t, got, "10", "0", "0")
}

func TestOnQuantityChanged_RedondeaAPrecision(t *testing.T) {
	got, err := receipt.OnQuantityChanged(line("10.005", "7.002", "0", 2))
	require.NoError(t, err)
	assertLine(t, got, "10.01", "7", "3.01")
}

// ──────────────────────────────────────────────────────────────────────────────
// Casos borde
// ──────────────────────────────────────────────────────────────────────────────

func TestOnQuantityChanged_PrimeraCapturaAsumeSinRechazo(t *testing.T) {
	got, err := receipt.OnQuantityChanged(line("0", "8", "0", 3))
	require.NoError(t, err)
	assertLine(t, got, "8", "8", "0")
}

func TestOnQuantityChanged_SinRecibidoConRechazoEsError(t *testing.T) {
	got, err := receipt.OnQuantityChanged(line("0", "8", "2", 3))
	assert.ErrorIs(t, err, domain.ErrAcceptedExceedsReceived)
	assertLine(t, got, "0", "0", "0")
}

func TestOnReceivedQuantityChanged_RecortaAceptado(t *testing.T) {
	got, err := receipt.OnReceivedQuantityChanged(line("5", "8", "0", 3))
	require.NoError(t, err, "received_qty recorta qty en lugar de fallar")
	assertLine(t, got, "5", "5", "0")
}

func TestOnReceivedQuantityChanged_RecalculaRechazo(t *testing.T) {
	got, err := receipt.OnReceivedQuantityChanged(line("12", "7", "3", 3))
	require.NoError(t, err)
	assertLine(t, got, "12", "7", "5")
}

func TestOnReceivedQuantityChanged_RecibidoEnCero(t *testing.T) {
	got, err := receipt.OnReceivedQuantityChanged(line("0", "4", "0", 3))
	require.NoError(t, err)
	assertLine(t, got, "0", "0", "0")
}

func TestReconcile_Despacha(t *testing.T) {
	item := line("10", "6", "4", 3)

	byQty, err := receipt.Reconcile(receipt.FieldQuantity, line("10", "7", "4", 3))
	require.NoError(t, err)
	assertLine(t, byQty, "10", "7", "3")

	byRejected, err := receipt.Reconcile(receipt.FieldRejectedQuantity, line("10", "7", "1", 3))
	require.NoError(t, err)
	assertLine(t, byRejected, "10", "9", "1")

	byReceived, err := receipt.Reconcile(receipt.FieldReceivedQuantity, item)
	require.NoError(t, err)
	assertLine(t, byReceived, "10", "6", "4")

	_, err = receipt.Reconcile(receipt.Field("rate"), item)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseField(t *testing.T) {
	f, err := receipt.ParseField("rejected_qty")
	require.NoError(t, err)
	assert.Equal(t, receipt.FieldRejectedQuantity, f)

	_, err = receipt.ParseField("amount")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, line("10", "7", "3", 3).Validate())
	assert.ErrorIs(t, line("10", "-1", "0", 3).Validate(), domain.ErrInvalidInput)
	assert.ErrorIs(t, line("10", "7", "3", -1).Validate(), domain.ErrInvalidInput)
	assert.ErrorIs(t, line("10", "7", "3", receipt.MaxPrecision+1).Validate(), domain.ErrInvalidInput)
}

func TestCheck(t *testing.T) {
	assert.NoError(t, receipt.Check(line("10", "7", "3", 3)))
	assert.NoError(t, receipt.Check(line("10", "0", "0", 3)), "línea en cero es un estado válido")
	assert.NoError(t, receipt.Check(line("10.004", "7", "3", 2)), "se compara tras redondear")

	err := receipt.Check(line("10", "7", "2", 3))
	assert.ErrorIs(t, err, domain.ErrQuantityMismatch)
	assert.Contains(t, err.Error(), "qty + rejected_qty (9) != received_qty (10)")

	assert.ErrorIs(t, receipt.Check(line("10", "11", "0", 3)), domain.ErrAcceptedExceedsReceived)
	assert.ErrorIs(t, receipt.Check(line("10", "0", "11", 3)), domain.ErrRejectedExceedsReceived)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades sobre entradas aleatorias
// ──────────────────────────────────────────────────────────────────────────────

type operation struct {
	name string
	fn   func(receipt.LineItem) (receipt.LineItem, error)
}

var operations = []operation{
	{"received_qty", receipt.OnReceivedQuantityChanged},
	{"qty", receipt.OnQuantityChanged},
	{"rejected_qty", receipt.OnRejectedQuantityChanged},
}

func randomLine(r *rand.Rand) receipt.LineItem {
	precision := int32(r.IntN(5))
	dec := func() decimal.Decimal {
		if r.IntN(5) == 0 {
			return decimal.Zero
		}
		return decimal.New(r.Int64N(200_000), -int32(r.IntN(6)))
	}
	return receipt.LineItem{
		ReceivedQuantity: dec(),
		Quantity:         dec(),
		RejectedQuantity: dec(),
		Precision:        precision,
	}
}

func TestPropiedades_SumaYCotas(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 2024))
	for i := 0; i < 2000; i++ {
		in := randomLine(r)
		for _, op := range operations {
			got, _ := op.fn(in)
			p := got.Precision

			bothZero := got.Quantity.IsZero() && got.RejectedQuantity.IsZero()
			sum := receipt.Round(got.Quantity, p).Add(receipt.Round(got.RejectedQuantity, p))
			assert.True(t, bothZero || sum.Equal(receipt.Round(got.ReceivedQuantity, p)),
				"%s sobre %+v: qty + rejected != received (%+v)", op.name, in, got)
			assert.True(t, got.Quantity.LessThanOrEqual(got.ReceivedQuantity),
				"%s sobre %+v: qty > received (%+v)", op.name, in, got)
			assert.True(t, got.RejectedQuantity.LessThanOrEqual(got.ReceivedQuantity),
				"%s sobre %+v: rejected > received (%+v)", op.name, in, got)
		}
	}
}

func TestPropiedades_Idempotencia(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 2000; i++ {
		in := randomLine(r)
		for _, op := range operations {
			once, err := op.fn(in)
			again, errAgain := op.fn(in)
			assert.Equal(t, err == nil, errAgain == nil)
			assert.True(t, once.Quantity.Equal(again.Quantity) &&
				once.ReceivedQuantity.Equal(again.ReceivedQuantity) &&
				once.RejectedQuantity.Equal(again.RejectedQuantity),
				"%s no es determinista sobre %+v", op.name, in)
			if err != nil {
				continue
			}
			twice, err := op.fn(once)
			require.NoError(t, err)
			assert.True(t, once.Quantity.Equal(twice.Quantity) &&
				once.ReceivedQuantity.Equal(twice.ReceivedQuantity) &&
				once.RejectedQuantity.Equal(twice.RejectedQuantity),
				"%s aplicado dos veces cambia el resultado: %+v -> %+v", op.name, once, twice)
		}
	}
}
