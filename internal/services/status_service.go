package services

import (
	"context"

	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/apperrors"
	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/identity"
	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/models"
	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/repositories"
	"golang.org/x/sync/errgroup"
)

// StatusService answers the batched "count + did this visitor like it"
// question for a set of items in one round trip. Read-only.
type StatusService struct {
	resolver  identity.Resolver
	likeRepo  repositories.LikeRepository
	countRepo repositories.CountRepository
}

// NewStatusService creates a new StatusService.
func NewStatusService(resolver identity.Resolver, likeRepo repositories.LikeRepository, countRepo repositories.CountRepository) *StatusService {
	return &StatusService{
		resolver:  resolver,
		likeRepo:  likeRepo,
		countRepo: countRepo,
	}
}

// Status resolves the credential once, then issues the counts query and the
// personal-likes query concurrently and merges the results. Every requested
// id appears in the response; ids with no record default to count 0, not
// liked.
func (s *StatusService) Status(ctx context.Context, bearer string, itemIDs []string, visitorID string) (models.StatusResponse, error) {
	if len(itemIDs) == 0 {
		return nil, apperrors.NewValidation("itemIds")
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

	var (
		counts map[string]int64
		liked  map[string]bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts, err = s.countRepo.FindCountsBatch(gctx, cred, itemIDs)
		return err
	})
	g.Go(func() error {
		var err error
		liked, err = s.likeRepo.FindLikesBatch(gctx, cred, itemIDs, visitorID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.NewRead(err)
	}

	items := make(models.StatusResponse, len(itemIDs))
	for _, id := range itemIDs {
		items[id] = models.ItemStatus{
			Count: counts[id],
			Liked: liked[id],
		}
	}
	return items, nil
}
