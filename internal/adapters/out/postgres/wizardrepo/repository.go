// Package wizardrepo is the GORM lookup for wizards.
package wizardrepo

import (
	"context"
	"errors"

	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/domain/model/wizard"
	"wandshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WizardDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);not null"`
	Email string    `gorm:"type:varchar(320);not null;uniqueIndex"`
}

func (WizardDTO) TableName() string {
	return "wizards"
}

type GormWizardRepository struct {
	db *gorm.DB
}

func NewGormWizardRepository(db *gorm.DB) *GormWizardRepository {
	return &GormWizardRepository{db: db}
}

func (r *GormWizardRepository) Add(ctx context.Context, aggregate *wizard.Wizard) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := WizardDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Email: aggregate.Email(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormWizardRepository) Get(ctx context.Context, id kernel.UUID) (*wizard.Wizard, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WizardDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("wizard", id.String())
		}
		return nil, err
	}

	return wizard.NewWizard(id, dto.Name, dto.Email)
}

// Delete removes the wizard row. Orders and answers reference wizards through
// foreign keys, so the caller removes those first.
func (r *GormWizardRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&WizardDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("wizard", id.String())
	}
	return nil
}
