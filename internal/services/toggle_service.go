package services

import (
	"context"

	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/apperrors"
	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/identity"
	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/models"
	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/repositories"
)

// ToggleService flips a visitor's like state for an item and keeps the
// aggregate count in step. The like-record write strictly precedes the count
// write; the two are independent remote writes with no transaction between
// them, so a count-write failure after a successful like mutation leaves the
// count stale. That window is accepted and surfaced as an error, not
// compensated.
type ToggleService struct {
	resolver  identity.Resolver
	likeRepo  repositories.LikeRepository
	countRepo repositories.CountRepository
}

// NewToggleService creates a new ToggleService.
func NewToggleService(resolver identity.Resolver, likeRepo repositories.LikeRepository, countRepo repositories.CountRepository) *ToggleService {
	return &ToggleService{
		resolver:  resolver,
		likeRepo:  likeRepo,
		countRepo: countRepo,
	}
}

// Toggle determines the visitor's current like state for the item, flips
// it, and returns the new state and count. Liked-ness is defined purely by
// record existence at the moment of the read; two concurrent toggles from
// the same visitor can both observe "absent" and double-insert.
func (s *ToggleService) Toggle(ctx context.Context, bearer, itemID, visitorID string) (*models.ToggleResponse, error) {
	if itemID == "" {
		return nil, apperrors.NewValidation("itemId")
	}
	if visitorID == "" {
		return nil, apperrors.NewValidation("visitorId")
	}
	if bearer == "" {
		return nil, apperrors.NewValidation("authorization")
	}

	tenantID, err := s.resolver.ResolveTenant(ctx, bearer)
	if err != nil {
		return nil, err
	}
	cred, err := s.resolver.Elevate(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	existing, err := s.likeRepo.FindLike(ctx, cred, itemID, visitorID)
	if err != nil {
		return nil, apperrors.NewRead(err)
	}

	if existing != nil {
		// Unlike: remove the record, then decrement.
		if err := s.likeRepo.DeleteLike(ctx, cred, existing.ID); err != nil {
			return nil, apperrors.NewWrite(err)
		}
		newCount, err := s.adjustCount(ctx, cred, itemID, -1)
		if err != nil {
			return nil, err
		}
		return &models.ToggleResponse{Liked: false, Count: newCount}, nil
	}

	// Like: insert the record, then increment.
	if _, err := s.likeRepo.CreateLike(ctx, cred, itemID, visitorID); err != nil {
		return nil, apperrors.NewWrite(err)
	}
	newCount, err := s.adjustCount(ctx, cred, itemID, 1)
	if err != nil {
		return nil, err
	}
	return &models.ToggleResponse{Liked: true, Count: newCount}, nil
}

// adjustCount applies delta to the item's count record with a
// read-modify-write, clamping at zero. An absent record reads as zero, so
// the first like creates it at 1 and a decrement on a missing item creates
// it at 0. No optimistic-concurrency check: concurrent togglers on the same
// item race last-writer-wins.
func (s *ToggleService) adjustCount(ctx context.Context, cred identity.ScopedCredential, itemID string, delta int64) (int64, error) {
	current, err := s.countRepo.FindCount(ctx, cred, itemID)
	if err != nil {
		return 0, apperrors.NewRead(err)
	}

	var base int64
	if current != nil {
		base = current.Count
	}

	newCount := base + delta
	if newCount < 0 {
		newCount = 0
	}

	record, err := s.countRepo.UpsertCount(ctx, cred, itemID, newCount)
	if err != nil {
		return 0, apperrors.NewWrite(err)
	}
	return record.Count, nil
}
