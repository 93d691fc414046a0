package services

import (
	"context"
	"fmt"

	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/identity"
	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/models"
	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/repositories"
	"gorm.io/gorm"
)

// fakeResolver implements identity.Resolver with canned results.
type fakeResolver struct {
	tenantID     string
	resolveErr   error
	elevateErr   error
	resolveCalls int
	elevateCalls int
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{tenantID: "tenant-1"}
}

func (f *fakeResolver) ResolveTenant(ctx context.Context, bearer string) (string, error) {
	f.resolveCalls++
	if f.resolveErr != nil {
		return "", f.resolveErr
	}
	return f.tenantID, nil
}

func (f *fakeResolver) Elevate(ctx context.Context, tenantID string) (identity.ScopedCredential, error) {
	f.elevateCalls++
	if f.elevateErr != nil {
		return identity.ScopedCredential{}, f.elevateErr
	}
	return identity.ScopedCredential{TenantID: tenantID, Token: "elevated"}, nil
}

// fakeLikeRepo implements repositories.LikeRepository with in-memory storage
// and fail-injection flags.
type fakeLikeRepo struct {
	records    map[uint]*models.LikeRecord
	nextID     uint
	calls      int
	failFind   bool
	failCreate bool
	failDelete bool
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{records: make(map[uint]*models.LikeRecord)}
}

func (f *fakeLikeRepo) seed(tenantID, itemID, visitorID string) *models.LikeRecord {
	f.nextID++
	rec := &models.LikeRecord{
		Model:     gorm.Model{ID: f.nextID},
		TenantID:  tenantID,
		ItemID:    itemID,
		VisitorID: visitorID,
	}
	f.records[f.nextID] = rec
	return rec
}

func (f *fakeLikeRepo) FindLike(ctx context.Context, cred identity.ScopedCredential, itemID, visitorID string) (*models.LikeRecord, error) {
	f.calls++
	if f.failFind {
		return nil, fmt.Errorf("simulated find error")
	}
	for _, rec := range f.records {
		if rec.TenantID == cred.TenantID && rec.ItemID == itemID && rec.VisitorID == visitorID {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeLikeRepo) CreateLike(ctx context.Context, cred identity.ScopedCredential, itemID, visitorID string) (*models.LikeRecord, error) {
	f.calls++
	if f.failCreate {
		return nil, fmt.Errorf("simulated create error")
	}
	return f.seed(cred.TenantID, itemID, visitorID), nil
}

func (f *fakeLikeRepo) DeleteLike(ctx context.Context, cred identity.ScopedCredential, recordID uint) error {
	f.calls++
	if f.failDelete {
		return fmt.Errorf("simulated delete error")
	}
	if _, ok := f.records[recordID]; !ok {
		return repositories.ErrLikeNotFound
	}
	delete(f.records, recordID)
	return nil
}

func (f *fakeLikeRepo) FindLikesBatch(ctx context.Context, cred identity.ScopedCredential, itemIDs []string, visitorID string) (map[string]bool, error) {
	f.calls++
	if f.failFind {
		return nil, fmt.Errorf("simulated batch find error")
	}
	wanted := make(map[string]bool, len(itemIDs))
	for _, id := range itemIDs {
		wanted[id] = true
	}
	liked := make(map[string]bool)
	for _, rec := range f.records {
		if rec.TenantID == cred.TenantID && rec.VisitorID == visitorID && wanted[rec.ItemID] {
			liked[rec.ItemID] = true
		}
	}
	return liked, nil
}

// fakeCountRepo implements repositories.CountRepository with in-memory
// storage. Record presence is modeled by map membership.
type fakeCountRepo struct {
	counts     map[string]int64
	calls      int
	failFind   bool
	failUpsert bool
}

func newFakeCountRepo() *fakeCountRepo {
	return &fakeCountRepo{counts: make(map[string]int64)}
}

func (f *fakeCountRepo) key(tenantID, itemID string) string {
	return tenantID + "/" + itemID
}

func (f *fakeCountRepo) seed(tenantID, itemID string, count int64) {
	f.counts[f.key(tenantID, itemID)] = count
}

func (f *fakeCountRepo) FindCount(ctx context.Context, cred identity.ScopedCredential, itemID string) (*models.CountRecord, error) {
	f.calls++
	if f.failFind {
		return nil, fmt.Errorf("simulated count find error")
	}
	count, ok := f.counts[f.key(cred.TenantID, itemID)]
	if !ok {
		return nil, nil
	}
	return &models.CountRecord{TenantID: cred.TenantID, ItemID: itemID, Count: count}, nil
}

func (f *fakeCountRepo) UpsertCount(ctx context.Context, cred identity.ScopedCredential, itemID string, newCount int64) (*models.CountRecord, error) {
	f.calls++
	if f.failUpsert {
		return nil, fmt.Errorf("simulated count upsert error")
	}
	f.counts[f.key(cred.TenantID, itemID)] = newCount
	return &models.CountRecord{TenantID: cred.TenantID, ItemID: itemID, Count: newCount}, nil
}

func (f *fakeCountRepo) FindCountsBatch(ctx context.Context, cred identity.ScopedCredential, itemIDs []string) (map[string]int64, error) {
	f.calls++
	if f.failFind {
		return nil, fmt.Errorf("simulated count batch error")
	}
	out := make(map[string]int64)
	for _, id := range itemIDs {
		if count, ok := f.counts[f.key(cred.TenantID, id)]; ok {
			out[id] = count
		}
	}
	return out, nil
}
