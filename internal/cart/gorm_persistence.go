package cart

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/luxemoda/storefront-backend/pkg/db/models"
)

// GormPersistence stores cart payloads in the cart_records table, one row per
// session, rewritten whole on every save.
type GormPersistence struct {
	db *gorm.DB
}

func NewGormPersistence(db *gorm.DB) *GormPersistence {
	return &GormPersistence{db: db}
}

func (g *GormPersistence) Load(ctx context.Context, sessionID string) ([]byte, error) {
	var record models.CartRecord
	err := g.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoRecord
		}
		return nil, fmt.Errorf("loading cart record: %w", err)
	}
	return record.Payload, nil
}

func (g *GormPersistence) Save(ctx context.Context, sessionID string, payload []byte) error {
	record := models.CartRecord{SessionID: sessionID, Payload: payload}
	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&record).Error
	if err != nil {
		return fmt.Errorf("saving cart record: %w", err)
	}
	return nil
}

func (g *GormPersistence) Delete(ctx context.Context, sessionID string) error {
	err := g.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&models.CartRecord{}).Error
	if err != nil {
		return fmt.Errorf("deleting cart record: %w", err)
	}
	return nil
}
