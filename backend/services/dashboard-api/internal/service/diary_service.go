package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"traillog/backend/services/dashboard-api/internal/models"
)

const maxDiaryContentLen = 10000

// Diary input validation errors.
var (
	ErrDiaryContentEmpty   = errors.New("diary content must not be empty")
	ErrDiaryContentTooLong = errors.New("diary content too long")
)

// DiaryWriter persists diary entries.
type DiaryWriter interface {
	Create(ctx context.Context, date, content string) (*models.DiaryEntry, error)
	ListByRange(ctx context.Context, from, to string) ([]models.DiaryEntry, error)
}

// DiaryService validates and stores diary entries.
type DiaryService struct {
	repo   DiaryWriter
	logger *zap.Logger
}

// NewDiaryService builds service.
func NewDiaryService(repo DiaryWriter, logger *zap.Logger) *DiaryService {
	return &DiaryService{repo: repo, logger: logger}
}

// Create validates and inserts one entry.
func (s *DiaryService) Create(ctx context.Context, date, content string) (*models.DiaryEntry, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrDiaryContentEmpty
	}
	if len(content) > maxDiaryContentLen {
		return nil, ErrDiaryContentTooLong
	}
	return s.repo.Create(ctx, date, content)
}

// List returns entries within the optional inclusive date range.
func (s *DiaryService) List(ctx context.Context, from, to string) ([]models.DiaryEntry, error) {
	if from != "" {
		if _, err := time.Parse(dateLayout, from); err != nil {
			return nil, ErrInvalidDate
		}
	}
	if to != "" {
		if _, err := time.Parse(dateLayout, to); err != nil {
			return nil, ErrInvalidDate
		}
	}
	return s.repo.ListByRange(ctx, from, to)
}
