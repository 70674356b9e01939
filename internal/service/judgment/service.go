// Package judgment implements the judgment record operations on top of the
// backend client.
package judgment

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/judgment-web/internal/domain"
)

// judgmentAPI defines the backend endpoints needed by the judgment service.
type judgmentAPI interface {
	ListJudgments(ctx context.Context, q domain.ListQuery) (*domain.JudgmentPage, error)
	GetJudgment(ctx context.Context, id string) (*domain.Judgment, error)
	CreateJudgment(ctx context.Context, p domain.JudgmentPayload) (*domain.CreatedJudgment, error)
	UpdateJudgment(ctx context.Context, id string, p domain.JudgmentPayload) error
	DeleteJudgment(ctx context.Context, id string) error
}

// Service implements judgment list, detail and mutation operations.
type Service struct {
	log *slog.Logger
	api judgmentAPI
}

// NewService creates a new judgment service instance.
func NewService(logger *slog.Logger, api judgmentAPI) *Service {
	return &Service{
		log: logger.With("service", "judgment"),
		api: api,
	}
}
