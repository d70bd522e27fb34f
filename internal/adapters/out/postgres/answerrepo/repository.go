// Package answerrepo persists quiz answers with GORM.
package answerrepo

import (
	"context"
	"errors"
	"time"

	"wandshop/internal/core/domain/model/answer"
	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnswerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Score     int       `gorm:"not null"`
	QuizID    uuid.UUID `gorm:"type:uuid;not null"`
	WizardID  uuid.UUID `gorm:"type:uuid;not null;index"`
	WandID    uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (AnswerDTO) TableName() string {
	return "answers"
}

type GormAnswerRepository struct {
	db *gorm.DB
}

func NewGormAnswerRepository(db *gorm.DB) *GormAnswerRepository {
	return &GormAnswerRepository{db: db}
}

func (r *GormAnswerRepository) Add(ctx context.Context, aggregate *answer.Answer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := AnswerDTO{
		ID:        aggregate.ID().Bytes(),
		Score:     aggregate.Score(),
		QuizID:    aggregate.QuizID().Bytes(),
		WizardID:  aggregate.WizardID().Bytes(),
		WandID:    aggregate.WandID().Bytes(),
		CreatedAt: aggregate.CreatedAt(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormAnswerRepository) Get(ctx context.Context, id kernel.UUID) (*answer.Answer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AnswerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("answer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormAnswerRepository) DeleteAllByWizard(ctx context.Context, wizardID kernel.UUID) (int, error) {
	result := r.db.WithContext(ctx).Delete(&AnswerDTO{}, "wizard_id = ?", wizardID.Bytes())
	return int(result.RowsAffected), result.Error
}

func toDomain(dto AnswerDTO) (*answer.Answer, error) {
	var ids [4]kernel.UUID
	for i, raw := range []uuid.UUID{dto.ID, dto.QuizID, dto.WizardID, dto.WandID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return answer.NewAnswer(ids[0], dto.Score, ids[1], ids[2], ids[3], dto.CreatedAt)
}
