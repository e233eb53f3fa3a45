package postgres

import (
	"context"
	"time"

	"medrep/internal/domain/entity"
	domainerrors "medrep/internal/domain/errors"
	"medrep/internal/domain/query"
	"medrep/internal/domain/repository"
	"medrep/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orders in these states do not count towards sales
var excludedSalesStatuses = []string{string(entity.OrderStatusCancelled), string(entity.OrderStatusReturned)}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func preloadOrderLines(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Preload("History", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at ASC") })
}

// FindByID retrieves an order with its items and status history.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var m model.OrderModel
	err := repo.db.WithContext(ctx).Scopes(preloadOrderLines).Where("id = ?", id).First(&m).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find order")
	}

	return toOrderDomain(&m), nil
}

// List returns a page of orders.
func (repo *orderRepository) List(ctx context.Context, criteria *query.Criteria) ([]*entity.Order, int64, error) {
	rows, total, err := findPage[model.OrderModel](repo.db.WithContext(ctx), criteria, ownerColumn("mr_id"), preloadOrderLines)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(rows))
	for i := range rows {
		orders = append(orders, toOrderDomain(&rows[i]))
	}

	return orders, total, nil
}

// Create stores the order, its items and the initial status history entry.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	order.Recalculate()

	orderM := fromOrderDomain(order)
	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("order number already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// Update replaces items, details and notes if the stored status still equals expected.
// Status and history are untouched.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order, expected entity.OrderStatus) error {
	order.Recalculate()

	orderM := fromOrderDomain(order)
	orderM.UpdatedAt = time.Now().UTC()

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.OrderModel{}).
			Where("id = ? AND status = ?", order.ID, string(expected)).
			Select("*").
			Omit("id", "order_number", "mr_id", "status", "created_at", clause.Associations).
			Updates(orderM)
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
		}
		if result.RowsAffected == 0 {
			return missingOrStale[model.OrderModel](tx, order.ID, repository.ErrOrderNotFound)
		}

		if err := tx.Where("order_id = ?", order.ID).Delete(&model.OrderItemModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to replace order items")
		}
		if len(orderM.Items) > 0 {
			if err := tx.Create(&orderM.Items).Error; err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "failed to replace order items")
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// Delete removes an order with its items and history if its stored status still equals expected.
func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID, expected entity.OrderStatus) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&model.OrderItemModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete order items")
		}
		if err := tx.Where("order_id = ?", id).Delete(&model.OrderStatusHistoryModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete order history")
		}

		// a miss here rolls back the item and history deletes
		result := tx.Where("id = ? AND status = ?", id, string(expected)).Delete(&model.OrderModel{})
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order")
		}
		if result.RowsAffected == 0 {
			return missingOrStale[model.OrderModel](tx, id, repository.ErrOrderNotFound)
		}

		return nil
	})
}

// TransitionStatus moves the order from one status to entry.Status and appends the history entry.
func (repo *orderRepository) TransitionStatus(
	ctx context.Context,
	id uuid.UUID,
	from entity.OrderStatus,
	entry entity.OrderStatusEntry,
	deliveredAt *time.Time,
) error {
	db := repo.db.WithContext(ctx)

	updates := map[string]any{
		"status":     string(entry.Status),
		"updated_at": entry.Timestamp.UTC(),
	}
	if deliveredAt != nil {
		updates["actual_delivery_date"] = deliveredAt.UTC()
	}

	result := db.Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return missingOrStale[model.OrderModel](db, id, repository.ErrOrderNotFound)
	}

	history := fromStatusEntry(id, entry)
	if err := db.Create(&history).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append order history")
	}

	return nil
}

// CountByStatus groups orders by status with grand total sums, optionally for one MR.
func (repo *orderRepository) CountByStatus(ctx context.Context, mrID *uuid.UUID) ([]entity.StatusCount, error) {
	db := repo.db.WithContext(ctx).Model(&model.OrderModel{})
	if mrID != nil {
		db = db.Where("mr_id = ?", *mrID)
	}

	var rows []entity.StatusCount
	err := db.Select("status, COUNT(*) AS count, COALESCE(SUM(grand_total), 0) AS value").
		Group("status").
		Order("status").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count orders")
	}

	return rows, nil
}

type orderStatRow struct {
	MRID   uuid.UUID `gorm:"column:mr_id"`
	Orders int64     `gorm:"column:orders"`
	Sales  float64   `gorm:"column:sales"`
}

// StatsBetween summarises orders that count towards sales per MR in [from, to).
func (repo *orderRepository) StatsBetween(ctx context.Context, from, to time.Time) ([]repository.OrderStat, error) {
	var rows []orderStatRow
	err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Select("mr_id, COUNT(*) AS orders, COALESCE(SUM(grand_total), 0) AS sales").
		Where("order_date >= ? AND order_date < ?", from.UTC(), to.UTC()).
		Where("status NOT IN ?", excludedSalesStatuses).
		Group("mr_id").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to summarise orders")
	}

	stats := make([]repository.OrderStat, 0, len(rows))
	for _, r := range rows {
		stats = append(stats, repository.OrderStat{MRID: r.MRID, Orders: r.Orders, Sales: r.Sales})
	}

	return stats, nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, it := range data.Items {
		items = append(items, entity.OrderItem{
			ProductID:      it.ProductID,
			ProductName:    it.ProductName,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
			Discount:       it.Discount,
			TaxRate:        it.TaxRate,
			ItemTotal:      it.ItemTotal,
			DiscountAmount: it.DiscountAmount,
			TaxAmount:      it.TaxAmount,
			NetAmount:      it.NetAmount,
		})
	}

	history := make([]entity.OrderStatusEntry, 0, len(data.History))
	for _, h := range data.History {
		history = append(history, entity.OrderStatusEntry{
			Status:    entity.OrderStatus(h.Status),
			UpdatedBy: h.UpdatedBy,
			Timestamp: h.CreatedAt,
			Notes:     h.Notes,
		})
	}

	return &entity.Order{
		ID:          data.ID,
		OrderNumber: data.OrderNumber,
		MRID:        data.MRID,
		DoctorID:    data.DoctorID,
		Items:       items,
		Financial: entity.OrderFinancial{
			Subtotal:        data.Subtotal,
			TotalDiscount:   data.TotalDiscount,
			TotalTax:        data.TotalTax,
			ShippingCharges: data.ShippingCharges,
			GrandTotal:      data.GrandTotal,
		},
		Status:        entity.OrderStatus(data.Status),
		StatusHistory: history,
		Details: entity.OrderDetails{
			OrderDate:            data.OrderDate,
			ExpectedDeliveryDate: data.ExpectedDeliveryDate,
			ActualDeliveryDate:   data.ActualDeliveryDate,
			ShippingAddress:      data.ShippingAddress,
			PaymentMethod:        data.PaymentMethod,
		},
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for i, it := range data.Items {
		items = append(items, model.OrderItemModel{
			OrderID:        data.ID,
			Position:       i,
			ProductID:      it.ProductID,
			ProductName:    it.ProductName,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
			Discount:       it.Discount,
			TaxRate:        it.TaxRate,
			ItemTotal:      it.ItemTotal,
			DiscountAmount: it.DiscountAmount,
			TaxAmount:      it.TaxAmount,
			NetAmount:      it.NetAmount,
		})
	}

	history := make([]model.OrderStatusHistoryModel, 0, len(data.StatusHistory))
	for _, h := range data.StatusHistory {
		history = append(history, fromStatusEntry(data.ID, h))
	}

	return &model.OrderModel{
		ID:                   data.ID,
		OrderNumber:          data.OrderNumber,
		MRID:                 data.MRID,
		DoctorID:             data.DoctorID,
		Status:               string(data.Status),
		Subtotal:             data.Financial.Subtotal,
		TotalDiscount:        data.Financial.TotalDiscount,
		TotalTax:             data.Financial.TotalTax,
		ShippingCharges:      data.Financial.ShippingCharges,
		GrandTotal:           data.Financial.GrandTotal,
		OrderDate:            data.Details.OrderDate.UTC(),
		ExpectedDeliveryDate: data.Details.ExpectedDeliveryDate,
		ActualDeliveryDate:   data.Details.ActualDeliveryDate,
		ShippingAddress:      data.Details.ShippingAddress,
		PaymentMethod:        data.Details.PaymentMethod,
		Notes:                data.Notes,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
		Items:                items,
		History:              history,
	}
}

func fromStatusEntry(orderID uuid.UUID, entry entity.OrderStatusEntry) model.OrderStatusHistoryModel {
	return model.OrderStatusHistoryModel{
		OrderID:   orderID,
		Status:    string(entry.Status),
		UpdatedBy: entry.UpdatedBy,
		Notes:     entry.Notes,
		CreatedAt: entry.Timestamp.UTC(),
	}
}
