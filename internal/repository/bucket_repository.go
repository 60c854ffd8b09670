package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schedule-planner/internal/model"
)

// BucketRepository manages free-form task tags.
type BucketRepository struct {
	db *gorm.DB
}

func NewBucketRepository(db *gorm.DB) *BucketRepository {
	return &BucketRepository{db: db}
}

func (r *BucketRepository) Create(ctx context.Context, bucket *model.Bucket) error {
	if bucket.ID == "" {
		bucket.ID = uuid.NewString()
	}
	if bucket.CreatedAt.IsZero() {
		bucket.CreatedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(bucket).Error; err != nil {
		return fmt.Errorf("create bucket: %w", err)
	}
	return nil
}

func (r *BucketRepository) Save(ctx context.Context, bucket *model.Bucket) error {
	if err := r.db.WithContext(ctx).Save(bucket).Error; err != nil {
		return fmt.Errorf("save bucket: %w", err)
	}
	return nil
}

func (r *BucketRepository) List(ctx context.Context) ([]model.Bucket, error) {
	var buckets []model.Bucket
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&buckets).Error; err != nil {
		return nil, fmt.Errorf("list buckets: %w", err)
	}
	return buckets, nil
}

func (r *BucketRepository) Get(ctx context.Context, id string) (*model.Bucket, error) {
	var bucket model.Bucket
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&bucket).Error
	switch {
	case err == nil:
		return &bucket, nil
	case err == gorm.ErrRecordNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("find bucket: %w", err)
	}
}

func (r *BucketRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Bucket{})
	if result.Error != nil {
		return fmt.Errorf("delete bucket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
