package service

import (
	"context"
	"errors"
	"time"

	"brandkit-admin-be/internal/dto"
	"brandkit-admin-be/internal/pkg/logger"
)

// zap's ISO8601 encoder writes offsets without a colon.
const zapISO8601Layout = "2006-01-02T15:04:05.000Z0700"

type ISystemLogService interface {
	GetLogs(ctx context.Context, page, limit int, level string) ([]*dto.LogListResponse, error)
	GetLogDetail(ctx context.Context, logId string) (*dto.LogDetailResponse, error)
}

type systemLogService struct {
	logger logger.ILogger
}

func NewSystemLogService(log logger.ILogger) ISystemLogService {
	return &systemLogService{logger: log}
}

func (s *systemLogService) GetLogs(ctx context.Context, page, limit int, level string) ([]*dto.LogListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 20
	}

	entries, err := s.logger.GetLogs(level, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.LogListResponse, 0, len(entries))
	for _, l := range entries {
		res = append(res, &dto.LogListResponse{
			Id:        l.Id,
			Level:     l.Level,
			Module:    l.Module,
			Message:   l.Message,
			CreatedAt: parseLogTimestamp(l.Timestamp),
		})
	}
	return res, nil
}

func (s *systemLogService) GetLogDetail(ctx context.Context, logId string) (*dto.LogDetailResponse, error) {
	l, err := s.logger.GetLogById(logId)
	if err != nil {
		if errors.Is(err, logger.ErrLogNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}

	return &dto.LogDetailResponse{
		LogListResponse: dto.LogListResponse{
			Id:        logId,
			Level:     l.Level,
			Module:    l.Module,
			Message:   l.Message,
			CreatedAt: parseLogTimestamp(l.Timestamp),
		},
		Details: l.Details,
	}, nil
}

func parseLogTimestamp(raw string) time.Time {
	if ts, err := time.Parse(zapISO8601Layout, raw); err == nil {
		return ts
	}
	ts, _ := time.Parse(time.RFC3339, raw)
	return ts
}
