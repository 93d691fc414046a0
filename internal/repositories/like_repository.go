package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/identity"
	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/models"
	"gorm.io/gorm"
)

// ErrLikeNotFound is returned when a delete targets a like record that does
// not exist.
var ErrLikeNotFound = errors.New("like not found")

// LikeRepository defines the interface for like record operations. Every
// operation is addressed through a scoped credential; there is no way to
// reach another tenant's records.
type LikeRepository interface {
	FindLike(ctx context.Context, cred identity.ScopedCredential, itemID, visitorID string) (*models.LikeRecord, error)
	CreateLike(ctx context.Context, cred identity.ScopedCredential, itemID, visitorID string) (*models.LikeRecord, error)
	DeleteLike(ctx context.Context, cred identity.ScopedCredential, recordID uint) error
	FindLikesBatch(ctx context.Context, cred identity.ScopedCredential, itemIDs []string, visitorID string) (map[string]bool, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL.
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository.
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// FindLike retrieves the like record for (item, visitor), or nil if the
// visitor has not liked the item.
func (r *PostgresLikeRepository) FindLike(ctx context.Context, cred identity.ScopedCredential, itemID, visitorID string) (*models.LikeRecord, error) {
	var like models.LikeRecord
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND item_id = ? AND visitor_id = ?", cred.TenantID, itemID, visitorID).
		First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

// CreateLike inserts a new like record. No uniqueness check is performed
// here; callers decide based on their own prior read.
func (r *PostgresLikeRepository) CreateLike(ctx context.Context, cred identity.ScopedCredential, itemID, visitorID string) (*models.LikeRecord, error) {
	like := &models.LikeRecord{
		TenantID:  cred.TenantID,
		ItemID:    itemID,
		VisitorID: visitorID,
		LikedAt:   time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		return nil, err
	}
	return like, nil
}

// DeleteLike removes a like record by id.
func (r *PostgresLikeRepository) DeleteLike(ctx context.Context, cred identity.ScopedCredential, recordID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", recordID, cred.TenantID).
		Delete(&models.LikeRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLikeNotFound
	}
	return nil
}

// FindLikesBatch reports which of the given items the visitor has liked.
// Items absent from the result map are not liked.
func (r *PostgresLikeRepository) FindLikesBatch(ctx context.Context, cred identity.ScopedCredential, itemIDs []string, visitorID string) (map[string]bool, error) {
	var rows []models.LikeRecord
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND visitor_id = ? AND item_id IN ?", cred.TenantID, visitorID, itemIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	liked := make(map[string]bool, len(rows))
	for _, row := range rows {
		liked[row.ItemID] = true
	}
	return liked, nil
}
