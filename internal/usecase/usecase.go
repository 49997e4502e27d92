package usecase

import (
	"context"
	"time"

	"release-control/internal/policy"
	"release-control/internal/repository"
	"release-control/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	ProjectUsecaseInterface
	ReviewUsecaseInterface
	SummaryUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, engine *policy.Engine, repo repository.Repository, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, engine, repo, timeout)
}
