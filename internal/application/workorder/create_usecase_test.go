package workorder_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ordenes-api/internal/application/workorder"
	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
)

func TestCreate_ReservaInicialYAuditoria(t *testing.T) {
	f := newFixture()
	f.addLedgerItem("itemA", "20")
	f.addLedgerItem("itemB", "10")

	order, err := f.createUC.Create(context.Background(), workorder.CreateInput{
		Code:          "500",
		ProjectID:     "P1",
		Description:   "montaje tablero principal",
		InitialStatus: entity.StatusOpen,
		Lines: []workorder.CreateLineInput{
			{StockLedgerItemCode: "itemA", Qty: dec("4")},
			{StockLedgerItemCode: "itemB", Qty: dec("2.5")},
		},
		Actor: "user-1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOpen, order.Status)

	assertDec(t, "4", f.ledgerItem("itemA").StockIn)
	assertDec(t, "2.5", f.ledgerItem("itemB").StockIn)
	assertDec(t, "16", f.ledgerItem("itemA").AvailableToOrder())

	// Fila de auditoría con PrevStatus nulo (recién creada)
	require.Len(t, f.store.audits, 1)
	assert.Nil(t, f.store.audits[0].PrevStatus)
	assert.Equal(t, entity.StatusOpen, f.store.audits[0].CurrentStatus)
}

func TestCreate_SoloOpenOPending(t *testing.T) {
	f := newFixture()
	f.addLedgerItem("itemA", "20")

	_, err := f.createUC.Create(context.Background(), workorder.CreateInput{
		Code:          "501",
		ProjectID:     "P1",
		InitialStatus: entity.StatusVerified,
		Lines:         []workorder.CreateLineInput{{StockLedgerItemCode: "itemA", Qty: dec("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestCreate_SinLineas(t *testing.T) {
	f := newFixture()

	_, err := f.createUC.Create(context.Background(), workorder.CreateInput{
		Code:          "502",
		ProjectID:     "P1",
		InitialStatus: entity.StatusOpen,
	})
	assert.ErrorIs(t, err, domain.ErrEmptyLineItems)
}

func TestCreate_ProyectoInexistente(t *testing.T) {
	f := newFixture()
	f.addLedgerItem("itemA", "20")

	_, err := f.createUC.Create(context.Background(), workorder.CreateInput{
		Code:          "503",
		ProjectID:     "NOEXISTE",
		InitialStatus: entity.StatusOpen,
		Lines:         []workorder.CreateLineInput{{StockLedgerItemCode: "itemA", Qty: dec("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_CodigoDuplicado(t *testing.T) {
	f := newFixture()
	f.addLedgerItem("itemA", "20")
	f.addOrder("504", entity.StatusOpen)

	_, err := f.createUC.Create(context.Background(), workorder.CreateInput{
		Code:          "504",
		ProjectID:     "P1",
		InitialStatus: entity.StatusOpen,
		Lines:         []workorder.CreateLineInput{{StockLedgerItemCode: "itemA", Qty: dec("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreate_CantidadInvalida(t *testing.T) {
	f := newFixture()
	f.addLedgerItem("itemA", "20")

	_, err := f.createUC.Create(context.Background(), workorder.CreateInput{
		Code:          "505",
		ProjectID:     "P1",
		InitialStatus: entity.StatusOpen,
		Lines:         []workorder.CreateLineInput{{StockLedgerItemCode: "itemA", Qty: dec("0")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Ítem de kárdex inexistente: la reserva falla dentro de la transacción y
// ni la orden ni sus líneas quedan persistidas.
func TestCreate_ItemKardexInexistente(t *testing.T) {
	f := newFixture()

	_, err := f.createUC.Create(context.Background(), workorder.CreateInput{
		Code:          "506",
		ProjectID:     "P1",
		InitialStatus: entity.StatusOpen,
		Lines:         []workorder.CreateLineInput{{StockLedgerItemCode: "fantasma", Qty: dec("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotContains(t, f.store.orders, "506")
	assert.Empty(t, f.store.lines)
}
