package models

import (
	"time"

	"gorm.io/gorm"
)

// LikeRecord represents one visitor's like of one item. At most one record
// should exist per (tenant, item, visitor) pair, but the store does not
// enforce that: the index below is deliberately non-unique, so concurrent
// toggles from the same visitor can double-insert. Accepted limitation.
type LikeRecord struct {
	gorm.Model
	TenantID  string    `json:"tenant_id" gorm:"index:idx_like_lookup"`
	ItemID    string    `json:"item_id" gorm:"index:idx_like_lookup"`
	VisitorID string    `json:"visitor_id" gorm:"index:idx_like_lookup"`
	LikedAt   time.Time `json:"liked_at"`
}
