package mock

import (
	"context"

	"github.com/awalczyk/biascope"
)

var _ biascope.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of biascope.HistoryService.
type HistoryService struct {
	CreateRecordFn      func(ctx context.Context, rec *biascope.HistoryRecord) error
	FindRecordsByUserFn func(ctx context.Context, username string, filter biascope.HistoryFilter) ([]*biascope.HistoryRecord, error)
}

func (s *HistoryService) CreateRecord(ctx context.Context, rec *biascope.HistoryRecord) error {
	return s.CreateRecordFn(ctx, rec)
}

func (s *HistoryService) FindRecordsByUser(ctx context.Context, username string, filter biascope.HistoryFilter) ([]*biascope.HistoryRecord, error) {
	return s.FindRecordsByUserFn(ctx, username, filter)
}
