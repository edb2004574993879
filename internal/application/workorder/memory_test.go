package workorder_test

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ordenes-api/internal/application/workorder"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/repository"
	"github.com/jhoicas/Ordenes-api/pkg/logger"
)

func testLogger() *logger.Logger { return logger.Nop() }

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia. El TxRunner fake toma un
// snapshot antes de correr el callback y lo restaura si falla, imitando el
// rollback de la transacción real.
// ──────────────────────────────────────────────────────────────────────────────

type lineKey struct {
	workOrderCode string
	itemCode      string
}

type memStore struct {
	orders   map[string]entity.WorkOrder
	lines    map[lineKey]entity.WorkOrderLineItem
	ledger   map[string]entity.StockLedgerItem
	audits   []entity.WorkOrderStatusUpdate
	projects map[string]entity.Project
}

func newMemStore() *memStore {
	return &memStore{
		orders:   map[string]entity.WorkOrder{},
		lines:    map[lineKey]entity.WorkOrderLineItem{},
		ledger:   map[string]entity.StockLedgerItem{},
		projects: map[string]entity.Project{},
	}
}

func (s *memStore) snapshot() *memStore {
	c := newMemStore()
	for k, v := range s.orders {
		c.orders[k] = v
	}
	for k, v := range s.lines {
		c.lines[k] = v
	}
	for k, v := range s.ledger {
		c.ledger[k] = v
	}
	for k, v := range s.projects {
		c.projects[k] = v
	}
	c.audits = append([]entity.WorkOrderStatusUpdate(nil), s.audits...)
	return c
}

func (s *memStore) restore(from *memStore) {
	s.orders = from.orders
	s.lines = from.lines
	s.ledger = from.ledger
	s.audits = from.audits
	s.projects = from.projects
}

// ──────────────────────────────────────────────────────────────────────────────
// Repos fake
// ──────────────────────────────────────────────────────────────────────────────

type fakeWorkOrderRepo struct{ s *memStore }

var _ repository.WorkOrderRepository = (*fakeWorkOrderRepo)(nil)

func (r *fakeWorkOrderRepo) Create(order *entity.WorkOrder) error {
	r.s.orders[order.Code] = *order
	return nil
}

func (r *fakeWorkOrderRepo) GetByCode(code string) (*entity.WorkOrder, error) {
	if o, ok := r.s.orders[code]; ok {
		c := o
		return &c, nil
	}
	return nil, nil
}

func (r *fakeWorkOrderRepo) GetByCodes(codes []string) (map[string]*entity.WorkOrder, error) {
	out := map[string]*entity.WorkOrder{}
	for _, code := range codes {
		if o, ok := r.s.orders[code]; ok {
			c := o
			out[code] = &c
		}
	}
	return out, nil
}

func (r *fakeWorkOrderRepo) UpdateStatus(code string, status entity.Status) error {
	o, ok := r.s.orders[code]
	if !ok {
		return fmt.Errorf("orden %s no existe", code)
	}
	o.Status = status
	r.s.orders[code] = o
	return nil
}

func (r *fakeWorkOrderRepo) ListByProject(projectID string, limit, offset int) ([]*entity.WorkOrder, error) {
	var out []*entity.WorkOrder
	for _, o := range r.s.orders {
		if o.ProjectID == projectID {
			c := o
			out = append(out, &c)
		}
	}
	return out, nil
}

type fakeLineItemRepo struct{ s *memStore }

var _ repository.LineItemRepository = (*fakeLineItemRepo)(nil)

func (r *fakeLineItemRepo) Create(item *entity.WorkOrderLineItem) error {
	r.s.lines[lineKey{item.WorkOrderCode, item.StockLedgerItemCode}] = *item
	return nil
}

func (r *fakeLineItemRepo) ListByWorkOrder(workOrderCode string) ([]*entity.WorkOrderLineItem, error) {
	var out []*entity.WorkOrderLineItem
	for k, it := range r.s.lines {
		if k.workOrderCode == workOrderCode {
			c := it
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeLineItemRepo) UpdateDelivered(workOrderCode, stockLedgerItemCode string, delivered bool) error {
	k := lineKey{workOrderCode, stockLedgerItemCode}
	it, ok := r.s.lines[k]
	if !ok {
		return fmt.Errorf("línea %s/%s no existe", workOrderCode, stockLedgerItemCode)
	}
	it.Delivered = delivered
	r.s.lines[k] = it
	return nil
}

type fakeLedgerRepo struct{ s *memStore }

var _ repository.StockLedgerRepository = (*fakeLedgerRepo)(nil)

func (r *fakeLedgerRepo) Create(item *entity.StockLedgerItem) error {
	r.s.ledger[item.Code] = *item
	return nil
}

func (r *fakeLedgerRepo) GetByCode(code string) (*entity.StockLedgerItem, error) {
	if i, ok := r.s.ledger[code]; ok {
		c := i
		return &c, nil
	}
	return nil, nil
}

func (r *fakeLedgerRepo) GetForUpdate(code string) (*entity.StockLedgerItem, error) {
	return r.GetByCode(code)
}

func (r *fakeLedgerRepo) ApplyDelta(code string, stockIn, stockOut, totalStock decimal.Decimal) error {
	i, ok := r.s.ledger[code]
	if !ok {
		return fmt.Errorf("ítem %s no existe", code)
	}
	i.StockIn = i.StockIn.Add(stockIn)
	i.StockOut = i.StockOut.Add(stockOut)
	i.TotalStock = i.TotalStock.Add(totalStock)
	r.s.ledger[code] = i
	return nil
}

func (r *fakeLedgerRepo) ListByProject(projectID string, limit, offset int) ([]*entity.StockLedgerItem, error) {
	var out []*entity.StockLedgerItem
	for _, i := range r.s.ledger {
		if i.ProjectID == projectID {
			c := i
			out = append(out, &c)
		}
	}
	return out, nil
}

type fakeAuditRepo struct{ s *memStore }

var _ repository.StatusUpdateRepository = (*fakeAuditRepo)(nil)

func (r *fakeAuditRepo) Append(update *entity.WorkOrderStatusUpdate) error {
	r.s.audits = append(r.s.audits, *update)
	return nil
}

func (r *fakeAuditRepo) ListByWorkOrder(workOrderCode string, limit, offset int) ([]*entity.WorkOrderStatusUpdate, error) {
	var out []*entity.WorkOrderStatusUpdate
	for i := range r.s.audits {
		if r.s.audits[i].WorkOrderCode == workOrderCode {
			c := r.s.audits[i]
			out = append(out, &c)
		}
	}
	return out, nil
}

type fakeProjectRepo struct{ s *memStore }

var _ repository.ProjectRepository = (*fakeProjectRepo)(nil)

func (r *fakeProjectRepo) GetByID(id string) (*entity.Project, error) {
	if p, ok := r.s.projects[id]; ok {
		c := p
		return &c, nil
	}
	return nil, nil
}

func (r *fakeProjectRepo) List(limit, offset int) ([]*entity.Project, error) {
	var out []*entity.Project
	for _, p := range r.s.projects {
		c := p
		out = append(out, &c)
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner fake con rollback por snapshot
// ──────────────────────────────────────────────────────────────────────────────

type fakeTxRunner struct{ s *memStore }

var _ workorder.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	woRepo repository.WorkOrderRepository,
	lineRepo repository.LineItemRepository,
	ledgerRepo repository.StockLedgerRepository,
	auditRepo repository.StatusUpdateRepository,
) error) error {
	snap := r.s.snapshot()
	err := fn(&fakeWorkOrderRepo{r.s}, &fakeLineItemRepo{r.s}, &fakeLedgerRepo{r.s}, &fakeAuditRepo{r.s})
	if err != nil {
		r.s.restore(snap)
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

// fixture arma un store con un proyecto, ítems de kárdex y órdenes listas
// para transicionar, junto con los casos de uso cableados sobre los fakes.
type fixture struct {
	store    *memStore
	batchUC  *workorder.BatchStatusUseCase
	createUC *workorder.CreateWorkOrderUseCase
}

func newFixture() *fixture {
	s := newMemStore()
	s.projects["P1"] = entity.Project{ID: "P1", Code: "P1", Name: "Planta Norte"}
	tx := &fakeTxRunner{s}
	return &fixture{
		store:    s,
		batchUC:  workorder.NewBatchStatusUseCase(tx, &fakeWorkOrderRepo{s}, testLogger()),
		createUC: workorder.NewCreateWorkOrderUseCase(tx, &fakeProjectRepo{s}, &fakeWorkOrderRepo{s}),
	}
}

// addLedgerItem registra un ítem con stock total inicial y contadores en cero.
func (f *fixture) addLedgerItem(code, total string) {
	f.store.ledger[code] = entity.StockLedgerItem{
		Code:       code,
		ProjectID:  "P1",
		Name:       "Ítem " + code,
		TotalStock: dec(total),
		StockIn:    decimal.Zero,
		StockOut:   decimal.Zero,
		Cost:       dec("10"),
	}
}

// addOrder registra una orden ya persistida con sus líneas y deja los
// contadores del kárdex consistentes con ellas: las líneas pendientes
// cuentan como reserva y las entregadas como despacho.
func (f *fixture) addOrder(code string, status entity.Status, lines ...*entity.WorkOrderLineItem) {
	f.store.orders[code] = entity.WorkOrder{Code: code, ProjectID: "P1", Status: status}
	for _, l := range lines {
		f.store.lines[lineKey{l.WorkOrderCode, l.StockLedgerItemCode}] = *l
		if status.IsTerminal() {
			continue
		}
		it, ok := f.store.ledger[l.StockLedgerItemCode]
		if !ok {
			continue
		}
		if l.Delivered {
			it.StockOut = it.StockOut.Add(l.Qty)
			it.TotalStock = it.TotalStock.Sub(l.Qty)
		} else {
			it.StockIn = it.StockIn.Add(l.Qty)
		}
		f.store.ledger[l.StockLedgerItemCode] = it
	}
}

func (f *fixture) ledgerItem(code string) *entity.StockLedgerItem {
	it := f.store.ledger[code]
	return &it
}

func (f *fixture) lineItem(woCode, itemCode string) entity.WorkOrderLineItem {
	return f.store.lines[lineKey{woCode, itemCode}]
}
