package usecase

import (
	"context"
	"sort"
	"time"

	"teodity/internal/domain/entity"
	"teodity/internal/domain/repository"
	"teodity/pkg/timefmt"
)

const (
	cancellationWindow    = 30 * 24 * time.Hour
	cancellationThreshold = 5
)

type SuspiciousUseCase struct {
	cancellationRepo repository.CancellationRepository
	userRepo         repository.UserRepository
}

func NewSuspiciousUseCase(
	cancellationRepo repository.CancellationRepository,
	userRepo repository.UserRepository,
) *SuspiciousUseCase {
	return &SuspiciousUseCase{
		cancellationRepo: cancellationRepo,
		userRepo:         userRepo,
	}
}

// SuspiciousUser is a flagged buyer together with the cancellation events
// that triggered the flag.
type SuspiciousUser struct {
	*entity.User
	CancellationCount   int                    `json:"cancellationCount"`
	RecentCancellations []*entity.Cancellation `json:"recentCancellations"`
}

// Detect flags buyers with more than five cancellations in the trailing
// thirty days. Already-blocked accounts are skipped.
func (uc *SuspiciousUseCase) Detect(ctx context.Context) ([]*SuspiciousUser, error) {
	return uc.detectAt(ctx, time.Now())
}

func (uc *SuspiciousUseCase) detectAt(ctx context.Context, now time.Time) ([]*SuspiciousUser, error) {
	cancellations, err := uc.cancellationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := now.Add(-cancellationWindow)
	recent := make(map[int][]*entity.Cancellation)
	for _, c := range cancellations {
		day, err := timefmt.ParseDate(c.Date)
		if err != nil {
			continue
		}
		if day.Before(cutoff) {
			continue
		}
		recent[c.BuyerID] = append(recent[c.BuyerID], c)
	}

	flagged := []*SuspiciousUser{}
	for buyerID, events := range recent {
		if len(events) <= cancellationThreshold {
			continue
		}
		user, err := uc.userRepo.GetByID(ctx, buyerID)
		if err != nil || user.Blocked {
			continue
		}
		flagged = append(flagged, &SuspiciousUser{
			User:                user.Sanitized(),
			CancellationCount:   len(events),
			RecentCancellations: events,
		})
	}

	sort.Slice(flagged, func(i, j int) bool {
		if flagged[i].CancellationCount != flagged[j].CancellationCount {
			return flagged[i].CancellationCount > flagged[j].CancellationCount
		}
		return flagged[i].ID < flagged[j].ID
	})
	return flagged, nil
}
