package members

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/firstweek/internal/server/models"
	"gorm.io/gorm"
)

// GormRepository implements Repository on top of a *gorm.DB. The dialect is
// whatever the caller opened the DB with.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository returns a GormRepository bound to db.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Save updates the row matching member.ID or creates a new one.
func (r *GormRepository) Save(ctx context.Context, member *models.Member) (*models.Member, error) {
	db := r.db.WithContext(ctx)

	if !member.IsNew() {
		res := db.Model(&models.Member{}).
			Where("id = ?", member.ID).
			Updates(map[string]any{"name": member.Name, "email": member.Email})
		if res.Error != nil {
			return nil, fmt.Errorf("db error: %w", res.Error)
		}
		if res.RowsAffected > 0 {
			return member, nil
		}
		member.ID = 0
	}

	if err := db.Create(member).Error; err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return member, nil
}

// FindByID loads a single member. Limit+Find is used instead of First so a
// miss does not surface as gorm.ErrRecordNotFound.
func (r *GormRepository) FindByID(ctx context.Context, id int64) (*models.Member, bool, error) {
	var member models.Member
	res := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&member)
	if res.Error != nil {
		return nil, false, fmt.Errorf("db error: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, false, nil
	}
	return &member, true, nil
}

func (r *GormRepository) FindAll(ctx context.Context) ([]models.Member, error) {
	result := make([]models.Member, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&result).Error; err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *GormRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Member{}, id).Error; err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
