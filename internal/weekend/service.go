package weekend

import (
	"context"

	"nbrates/internal/adapters"
	"nbrates/internal/domain"
)

type Service struct {
	repo adapters.WeekendRepository
}

func NewService(repo adapters.WeekendRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) FindAll(ctx context.Context) ([]domain.Weekend, error) {
	return s.repo.FindAll(ctx)
}
