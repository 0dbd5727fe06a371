package postgres

import (
	"context"
	"time"

	"farmnaturals/internal/domain/entity"
	domainerrors "farmnaturals/internal/domain/errors"
	"farmnaturals/internal/domain/repository"
	"farmnaturals/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// AddQuantity upserts the line with ON CONFLICT DO UPDATE so concurrent adds to the same
// (email, product_name) never lose an increment.
func (repo *cartRepository) AddQuantity(ctx context.Context, email, productName string, quantity int) (int, error) {
	now := time.Now()
	line := &model.CartLineModel{
		Email:       email,
		ProductName: productName,
		Quantity:    quantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "email"}, {Name: "product_name"}},
				DoUpdates: clause.Assignments(map[string]any{
					"quantity":   gorm.Expr("cart_lines.quantity + EXCLUDED.quantity"),
					"updated_at": gorm.Expr("EXCLUDED.updated_at"),
				}),
			},
			clause.Returning{Columns: []clause.Column{{Name: "id"}, {Name: "quantity"}}},
		).
		Create(line).Error
	if err != nil {
		if isValueOutOfRange(err) {
			return 0, errors.Wrap(repository.ErrValueOutOfRange, err.Error())
		}

		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to add to cart")
	}

	return line.Quantity, nil
}

func (repo *cartRepository) ListByEmail(ctx context.Context, email string) ([]*entity.CartLine, error) {
	var rows []*model.CartLineModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Order("product_name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list cart")
	}

	lines := make([]*entity.CartLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, &entity.CartLine{
			Email:       row.Email,
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
			UpdatedAt:   row.UpdatedAt,
		})
	}

	return lines, nil
}

func (repo *cartRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result := repo.db.WithContext(ctx).Where("email = ?", email).Delete(&model.CartLineModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to clear cart")
	}

	return result.RowsAffected, nil
}
