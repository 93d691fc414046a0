package models

import "time"

// CountRecord holds the aggregate like count for one item within a tenant.
// Created lazily on the first toggle of an item. The count is adjusted with a
// read-modify-write and is not guaranteed to equal the number of LikeRecords
// for the item: the two writes are independent and last-writer-wins.
// Invariant: Count >= 0 (the writer clamps).
type CountRecord struct {
	TenantID  string    `bson:"tenant_id" json:"tenant_id"`
	ItemID    string    `bson:"item_id" json:"item_id"`
	Count     int64     `bson:"count" json:"count"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
