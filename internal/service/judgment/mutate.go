package judgment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/judgment-web/internal/domain"
)

// Create validates the form and creates a judgment. Nothing is sent when
// validation fails.
func (s *Service) Create(ctx context.Context, input Input) (*domain.CreatedJudgment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.api.CreateJudgment(ctx, input.Payload())
	if err != nil {
		return nil, fmt.Errorf("judgment.Create: %w", err)
	}

	s.log.InfoContext(ctx, "judgment created",
		slog.String("judgment_id", created.ID),
		slog.String("doc_no", domain.Deref(created.DocNo)),
	)
	return created, nil
}

// Update replaces every field of the judgment with the form values.
func (s *Service) Update(ctx context.Context, id string, input Input) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.api.UpdateJudgment(ctx, id, input.Payload()); err != nil {
		return fmt.Errorf("judgment.Update: %w", err)
	}

	s.log.InfoContext(ctx, "judgment updated", slog.String("judgment_id", id))
	return nil
}

// Delete removes the judgment.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteJudgment(ctx, id); err != nil {
		return fmt.Errorf("judgment.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "judgment deleted", slog.String("judgment_id", id))
	return nil
}
