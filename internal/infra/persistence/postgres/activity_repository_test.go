package postgres

import (
	"context"
	"testing"
	"time"

	"medrep/internal/domain/entity"
	"medrep/internal/domain/query"
	"medrep/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var june = time.Date(2026, time.June, 10, 9, 0, 0, 0, time.UTC)

func newTestVisit(mrID, doctorID uuid.UUID, status entity.VisitStatus, at time.Time) *entity.VisitReport {
	return &entity.VisitReport{
		VisitID:           "VIS" + uuid.NewString()[:6],
		MRID:              mrID,
		DoctorID:          doctorID,
		VisitDate:         at,
		ProductsDiscussed: []uuid.UUID{uuid.New()},
		Status:            status,
	}
}

func newTestOrder(mrID uuid.UUID, at time.Time) *entity.Order {
	return &entity.Order{
		OrderNumber: "ORD" + uuid.NewString()[:6],
		MRID:        mrID,
		DoctorID:    uuid.New(),
		Items: []entity.OrderItem{
			{ProductID: uuid.New(), ProductName: "Amoxicillin 500", Quantity: 10, UnitPrice: 12.5, Discount: 10, TaxRate: 12},
			{ProductID: uuid.New(), ProductName: "Paracetamol 650", Quantity: 4, UnitPrice: 30},
		},
		Financial: entity.OrderFinancial{ShippingCharges: 20},
		Status:    entity.OrderStatusPending,
		StatusHistory: []entity.OrderStatusEntry{
			{Status: entity.OrderStatusPending, UpdatedBy: mrID, Timestamp: at, Notes: "Order created"},
		},
		Details: entity.OrderDetails{OrderDate: at},
	}
}

func TestVisitReportRepository_UpdateIsGuardedByStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewVisitReportRepository(newTestDB(t))

	visit := newTestVisit(uuid.New(), uuid.New(), entity.VisitStatusDraft, june)
	require.NoError(t, repo.Create(ctx, visit))

	visit.Status = entity.VisitStatusSubmitted
	err := repo.Update(ctx, visit, entity.VisitStatusSubmitted)
	assert.ErrorIs(t, err, repository.ErrStaleState)

	require.NoError(t, repo.Update(ctx, visit, entity.VisitStatusDraft))

	stored, err := repo.FindByID(ctx, visit.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusSubmitted, stored.Status)
	assert.Equal(t, visit.ProductsDiscussed, stored.ProductsDiscussed)

	missing := newTestVisit(uuid.New(), uuid.New(), entity.VisitStatusDraft, june)
	missing.ID = uuid.New()
	assert.ErrorIs(t, repo.Update(ctx, missing, entity.VisitStatusDraft), repository.ErrVisitNotFound)
}

func TestVisitReportRepository_ListScopedToOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewVisitReportRepository(newTestDB(t))

	mine, other := uuid.New(), uuid.New()
	require.NoError(t, repo.Create(ctx, newTestVisit(mine, uuid.New(), entity.VisitStatusDraft, june)))
	require.NoError(t, repo.Create(ctx, newTestVisit(mine, uuid.New(), entity.VisitStatusApproved, june.AddDate(0, 0, 1))))
	require.NoError(t, repo.Create(ctx, newTestVisit(other, uuid.New(), entity.VisitStatusApproved, june)))

	rows, total, err := repo.List(ctx, &query.Criteria{
		OwnerID:    &mine,
		Conditions: []query.Condition{{Field: "status", Op: query.OpEq, Value: "Approved"}},
		Page:       1,
		Limit:      10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, mine, rows[0].MRID)

	_, total, err = repo.List(ctx, &query.Criteria{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestVisitReportRepository_Stats(t *testing.T) {
	ctx := context.Background()
	repo := NewVisitReportRepository(newTestDB(t))

	mr := uuid.New()
	doctor := uuid.New()
	require.NoError(t, repo.Create(ctx, newTestVisit(mr, doctor, entity.VisitStatusSubmitted, june)))
	require.NoError(t, repo.Create(ctx, newTestVisit(mr, doctor, entity.VisitStatusApproved, june.AddDate(0, 0, 2))))
	require.NoError(t, repo.Create(ctx, newTestVisit(mr, uuid.New(), entity.VisitStatusDraft, june)))
	require.NoError(t, repo.Create(ctx, newTestVisit(mr, uuid.New(), entity.VisitStatusApproved, june.AddDate(0, 1, 0))))

	from, to := entity.PeriodOf(june).Bounds()
	stats, err := repo.StatsBetween(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, mr, stats[0].MRID)
	assert.Equal(t, int64(2), stats[0].Visits)
	assert.Equal(t, int64(1), stats[0].DoctorsCovered)

	counts, err := repo.CountByStatus(ctx, &mr)
	require.NoError(t, err)
	assert.ElementsMatch(t, []entity.StatusCount{
		{Status: "Approved", Count: 2},
		{Status: "Draft", Count: 1},
		{Status: "Submitted", Count: 1},
	}, counts)
}

func TestOrderRepository_CreateRecalculatesTotals(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestDB(t))

	order := newTestOrder(uuid.New(), june)
	require.NoError(t, repo.Create(ctx, order))

	stored, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	// 125 - 12.5 discount + 13.5 tax, plus 120, plus 20 shipping
	assert.InDelta(t, 245.0, stored.Financial.Subtotal, 0.001)
	assert.InDelta(t, 12.5, stored.Financial.TotalDiscount, 0.001)
	assert.InDelta(t, 13.5, stored.Financial.TotalTax, 0.001)
	assert.InDelta(t, 266.0, stored.Financial.GrandTotal, 0.001)
	require.Len(t, stored.Items, 2)
	assert.Equal(t, "Amoxicillin 500", stored.Items[0].ProductName)
	require.Len(t, stored.StatusHistory, 1)
}

func TestOrderRepository_TransitionStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestDB(t))

	admin := uuid.New()
	order := newTestOrder(uuid.New(), june)
	require.NoError(t, repo.Create(ctx, order))

	entry := entity.OrderStatusEntry{Status: entity.OrderStatusConfirmed, UpdatedBy: admin, Timestamp: june.Add(time.Hour)}
	require.NoError(t, repo.TransitionStatus(ctx, order.ID, entity.OrderStatusPending, entry, nil))

	// A second writer that still believes the order is pending loses.
	err := repo.TransitionStatus(ctx, order.ID, entity.OrderStatusPending, entry, nil)
	assert.ErrorIs(t, err, repository.ErrStaleState)

	delivered := june.Add(48 * time.Hour)
	entry = entity.OrderStatusEntry{Status: entity.OrderStatusDelivered, UpdatedBy: admin, Timestamp: delivered}
	require.NoError(t, repo.TransitionStatus(ctx, order.ID, entity.OrderStatusConfirmed, entry, &delivered))

	stored, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, stored.Status)
	require.Len(t, stored.StatusHistory, 3)
	assert.Equal(t, entity.OrderStatusConfirmed, stored.StatusHistory[1].Status)
	assert.Equal(t, entity.OrderStatusDelivered, stored.StatusHistory[2].Status)
	require.NotNil(t, stored.Details.ActualDeliveryDate)
	assert.True(t, delivered.Equal(*stored.Details.ActualDeliveryDate))

	err = repo.TransitionStatus(ctx, uuid.New(), entity.OrderStatusPending, entry, nil)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_UpdateReplacesItems(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestDB(t))

	order := newTestOrder(uuid.New(), june)
	require.NoError(t, repo.Create(ctx, order))

	order.Items = order.Items[:1]
	order.Items[0].Quantity = 2
	order.Notes = "reduced"
	require.NoError(t, repo.Update(ctx, order, entity.OrderStatusPending))

	stored, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.Equal(t, "reduced", stored.Notes)
	assert.Equal(t, entity.OrderStatusPending, stored.Status)
	assert.Len(t, stored.StatusHistory, 1)
}

func TestOrderRepository_UpdateIsGuardedByStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestDB(t))

	order := newTestOrder(uuid.New(), june)
	require.NoError(t, repo.Create(ctx, order))

	entry := entity.OrderStatusEntry{Status: entity.OrderStatusShipped, UpdatedBy: uuid.New(), Timestamp: june.Add(time.Hour)}
	require.NoError(t, repo.TransitionStatus(ctx, order.ID, entity.OrderStatusPending, entry, nil))

	// The editor loaded the order while it was still pending.
	order.Items = order.Items[:1]
	order.Notes = "late edit"
	err := repo.Update(ctx, order, entity.OrderStatusPending)
	assert.ErrorIs(t, err, repository.ErrStaleState)

	stored, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, stored.Status)
	assert.Len(t, stored.Items, 2)
	assert.Empty(t, stored.Notes)

	missing := newTestOrder(uuid.New(), june)
	missing.ID = uuid.New()
	assert.ErrorIs(t, repo.Update(ctx, missing, entity.OrderStatusPending), repository.ErrOrderNotFound)
}

func TestOrderRepository_DeleteIsGuardedByStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestDB(t))

	order := newTestOrder(uuid.New(), june)
	require.NoError(t, repo.Create(ctx, order))

	entry := entity.OrderStatusEntry{Status: entity.OrderStatusConfirmed, UpdatedBy: uuid.New(), Timestamp: june.Add(time.Hour)}
	require.NoError(t, repo.TransitionStatus(ctx, order.ID, entity.OrderStatusPending, entry, nil))

	err := repo.Delete(ctx, order.ID, entity.OrderStatusPending)
	assert.ErrorIs(t, err, repository.ErrStaleState)

	// the rejected delete leaves items and history in place
	stored, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Items, 2)
	assert.Len(t, stored.StatusHistory, 2)

	require.NoError(t, repo.Delete(ctx, order.ID, entity.OrderStatusConfirmed))
	_, err = repo.FindByID(ctx, order.ID)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, order.ID, entity.OrderStatusConfirmed), repository.ErrOrderNotFound)
}

func TestOrderRepository_StatsExcludeCancelled(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestDB(t))

	mr := uuid.New()
	kept := newTestOrder(mr, june)
	cancelled := newTestOrder(mr, june)
	require.NoError(t, repo.Create(ctx, kept))
	require.NoError(t, repo.Create(ctx, cancelled))

	entry := entity.OrderStatusEntry{Status: entity.OrderStatusCancelled, UpdatedBy: mr, Timestamp: june}
	require.NoError(t, repo.TransitionStatus(ctx, cancelled.ID, entity.OrderStatusPending, entry, nil))

	from, to := entity.PeriodOf(june).Bounds()
	stats, err := repo.StatsBetween(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, int64(1), stats[0].Orders)
	assert.InDelta(t, kept.Financial.GrandTotal, stats[0].Sales, 0.001)
}

func TestProductActivityRepository_Summarize(t *testing.T) {
	ctx := context.Background()
	repo := NewProductActivityRepository(newTestDB(t))

	mr, product := uuid.New(), uuid.New()
	for _, a := range []*entity.ProductActivityLog{
		{MRID: mr, ProductID: product, Action: entity.ActivitySample, Quantity: 3, OccurredAt: june},
		{MRID: mr, ProductID: product, Action: entity.ActivitySample, Quantity: 2, OccurredAt: june},
		{MRID: mr, ProductID: product, Action: entity.ActivityDetailing, OccurredAt: june},
		{MRID: uuid.New(), ProductID: product, Action: entity.ActivitySample, Quantity: 9, OccurredAt: june},
	} {
		require.NoError(t, repo.Create(ctx, a))
	}

	summary, err := repo.Summarize(ctx, &query.Criteria{OwnerID: &mr})
	require.NoError(t, err)
	assert.ElementsMatch(t, []entity.ActivitySummary{
		{ProductID: product, Action: entity.ActivityDetailing, Events: 1, TotalQuantity: 0},
		{ProductID: product, Action: entity.ActivitySample, Events: 2, TotalQuantity: 5},
	}, summary)
}
