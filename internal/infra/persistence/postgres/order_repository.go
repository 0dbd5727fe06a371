package postgres

import (
	"context"
	"encoding/json"

	"farmnaturals/internal/domain/entity"
	domainerrors "farmnaturals/internal/domain/errors"
	"farmnaturals/internal/domain/repository"
	"farmnaturals/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderSummaryColumns are loaded for list views; order_data stays in the table.
var orderSummaryColumns = []string{
	"order_number", "email", "total_amount", "delivery_address", "order_date", "payment_method", "status",
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	row := fromOrderDomain(order)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrderNumber
		}
		if isValueOutOfRange(err) {
			return errors.Wrap(repository.ErrValueOutOfRange, err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}
	order.ID = row.ID

	return nil
}

func (repo *orderRepository) FindByNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	return repo.findByNumber(repo.db.WithContext(ctx), orderNumber)
}

func (repo *orderRepository) FindByNumberForUpdate(ctx context.Context, orderNumber string) (*entity.Order, error) {
	return repo.findByNumber(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), orderNumber)
}

func (repo *orderRepository) findByNumber(db *gorm.DB, orderNumber string) (*entity.Order, error) {
	var row model.OrderModel
	if err := db.Where("order_number = ?", orderNumber).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find order")
	}

	return toOrderDomain(&row), nil
}

func (repo *orderRepository) ListByEmail(ctx context.Context, email string) ([]*entity.OrderSummary, error) {
	return repo.listSummaries(repo.db.WithContext(ctx).Where("email = ?", email))
}

func (repo *orderRepository) ListAll(ctx context.Context) ([]*entity.OrderSummary, error) {
	return repo.listSummaries(repo.db.WithContext(ctx))
}

func (repo *orderRepository) listSummaries(db *gorm.DB) ([]*entity.OrderSummary, error) {
	var rows []*model.OrderModel
	err := db.Model(&model.OrderModel{}).
		Select(orderSummaryColumns).
		Order("order_date DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	summaries := make([]*entity.OrderSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, toOrderDomain(row).Summary())
	}

	return summaries, nil
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, orderNumber string, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("order_number = ?", orderNumber).
		Update("status", status.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	return &entity.Order{
		ID:              data.ID,
		OrderNumber:     data.OrderNumber,
		Email:           data.Email,
		TotalAmount:     data.TotalAmount,
		DeliveryAddress: data.DeliveryAddress,
		OrderData:       json.RawMessage(data.OrderData),
		OrderDate:       data.OrderDate,
		PaymentMethod:   data.PaymentMethod,
		Status:          entity.OrderStatus(data.Status),
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:              data.ID,
		OrderNumber:     data.OrderNumber,
		Email:           data.Email,
		TotalAmount:     data.TotalAmount,
		DeliveryAddress: data.DeliveryAddress,
		OrderData:       datatypes.JSON(data.OrderData),
		OrderDate:       data.OrderDate,
		PaymentMethod:   data.PaymentMethod,
		Status:          data.Status.String(),
	}
}
