package adapters

import (
	"context"

	"gorm.io/gorm"

	"auction_backend/internal/feature/listing/domain/entity"
	"auction_backend/internal/feature/listing/usecase"
)

// commentGorm is the GORM implementation of the CommentRepository interface.
type commentGorm struct {
	db *gorm.DB
}

var _ usecase.CommentRepository = (*commentGorm)(nil)

// NewCommentRepository creates a new comment repository over the given
// database connection.
func NewCommentRepository(db *gorm.DB) *commentGorm {
	return &commentGorm{db: db}
}

// Create persists a new comment.
func (r *commentGorm) Create(ctx context.Context, comment *entity.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// ListByListing returns a listing's comments, oldest first.
func (r *commentGorm) ListByListing(ctx context.Context, listingID uint) ([]entity.Comment, error) {
	var comments []entity.Comment
	if err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
