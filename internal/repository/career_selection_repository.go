package repository

import (
	"career_path_backend/internal/model"
	"career_path_backend/internal/util"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type CareerSelectionRepository struct {
	DB *gorm.DB
}

func NewCareerSelectionRepository(db *gorm.DB) *CareerSelectionRepository {
	return &CareerSelectionRepository{DB: db}
}

// Create 只插入不覆盖；唯一约束冲突 -> ErrAlreadySelected，外键冲突 -> ErrProfileMissing
func (r *CareerSelectionRepository) Create(ctx context.Context, selection *model.CareerSelection) error {
	err := r.DB.WithContext(ctx).Omit("Profile").Create(selection).Error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return util.ErrAlreadySelected
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return util.ErrProfileMissing
	}
	return fmt.Errorf("%w: %v", util.ErrRemoteFailure, err)
}

func (r *CareerSelectionRepository) FindByUserID(ctx context.Context, userID string) (*model.CareerSelection, error) {
	var selection model.CareerSelection
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&selection).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSelectionMissing
	}
	if err != nil {
		return nil, err
	}
	return &selection, nil
}
