package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/apperrors"
	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/models"
)

func newStatusFixture() (*StatusService, *fakeResolver, *fakeLikeRepo, *fakeCountRepo) {
	resolver := newFakeResolver()
	likeRepo := newFakeLikeRepo()
	countRepo := newFakeCountRepo()
	return NewStatusService(resolver, likeRepo, countRepo), resolver, likeRepo, countRepo
}

func TestStatusDefaultsToZeroUnliked(t *testing.T) {
	svc, _, _, _ := newStatusFixture()

	resp, err := svc.Status(context.Background(), "token", []string{"a", "b"}, "visitor-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, id := range []string{"a", "b"} {
		st, ok := resp[id]
		if !ok {
			t.Fatalf("expected item %q in response", id)
		}
		if st.Count != 0 || st.Liked {
			t.Errorf("item %q: expected {count:0 liked:false}, got {%d %v}", id, st.Count, st.Liked)
		}
	}
}

func TestStatusBatchCorrectness(t *testing.T) {
	svc, _, likeRepo, countRepo := newStatusFixture()
	countRepo.seed("tenant-1", "a", 5)
	countRepo.seed("tenant-1", "b", 2)
	likeRepo.seed("tenant-1", "b", "visitor-1")
	likeRepo.seed("tenant-1", "b", "someone-else")
	likeRepo.seed("tenant-1", "c", "someone-else")

	resp, err := svc.Status(context.Background(), "token", []string{"a", "b", "c"}, "visitor-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := models.StatusResponse{
		"a": {Count: 5, Liked: false},
		"b": {Count: 2, Liked: true},
		"c": {Count: 0, Liked: false},
	}
	if !reflect.DeepEqual(resp, want) {
		t.Errorf("expected %v, got %v", want, resp)
	}
}

func TestStatusReadIsIdempotent(t *testing.T) {
	svc, _, likeRepo, countRepo := newStatusFixture()
	countRepo.seed("tenant-1", "a", 7)
	likeRepo.seed("tenant-1", "a", "visitor-1")

	first, err := svc.Status(context.Background(), "token", []string{"a"}, "visitor-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Status(context.Background(), "token", []string{"a"}, "visitor-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results, got %v then %v", first, second)
	}
}

func TestStatusValidation(t *testing.T) {
	cases := []struct {
		name      string
		bearer    string
		itemIDs   []string
		visitorID string
	}{
		{"empty item set", "token", nil, "visitor-1"},
		{"missing visitor", "token", []string{"a"}, ""},
		{"missing bearer", "", []string{"a"}, "visitor-1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, resolver, _, _ := newStatusFixture()

			_, err := svc.Status(context.Background(), tc.bearer, tc.itemIDs, tc.visitorID)
			var ve *apperrors.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if resolver.resolveCalls != 0 {
				t.Errorf("expected no credential exchange on bad input")
			}
		})
	}
}

func TestStatusAuthFailure(t *testing.T) {
	svc, resolver, likeRepo, countRepo := newStatusFixture()
	resolver.resolveErr = apperrors.NewAuth(errors.New("rejected"))

	_, err := svc.Status(context.Background(), "token", []string{"a"}, "visitor-1")
	var ae *apperrors.AuthError
	if !errors.As(err, &ae) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if likeRepo.calls != 0 || countRepo.calls != 0 {
		t.Errorf("expected no store calls after auth failure")
	}
}

func TestStatusReadFailure(t *testing.T) {
	svc, _, likeRepo, _ := newStatusFixture()
	likeRepo.failFind = true

	_, err := svc.Status(context.Background(), "token", []string{"a"}, "visitor-1")
	var re *apperrors.ReadError
	if !errors.As(err, &re) {
		t.Fatalf("expected ReadError, got %v", err)
	}
}
