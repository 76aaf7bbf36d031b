package service

import (
	"context"
	"fmt"

	"github.com/venuehq/sms-dispatch/internal/repository"
)

type historyService struct {
	repo repository.Repository
}

func NewHistoryService(repo repository.Repository) HistoryService {
	return &historyService{
		repo: repo,
	}
}

// ListByVenue retrieves a page of a venue's audit trail, newest first.
func (s *historyService) ListByVenue(ctx context.Context, venueID int64, page, limit int) (*HistoryPage, error) {
	offset := (page - 1) * limit

	entries, err := s.repo.SendHistory().ListByVenue(ctx, venueID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get send history: %w", err)
	}

	totalCount, err := s.repo.SendHistory().CountByVenue(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get total count: %w", err)
	}

	totalPages := int(totalCount) / limit
	if int(totalCount)%limit > 0 {
		totalPages++
	}

	return &HistoryPage{
		Entries: entries,
		Pagination: Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   totalCount,
			ItemsPerPage: limit,
		},
	}, nil
}
