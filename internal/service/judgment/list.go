package judgment

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/judgment-web/internal/domain"
)

// List returns one page of judgments. A result that arrives after ctx was
// cancelled is dropped, so a superseded navigation never renders stale rows.
func (s *Service) List(ctx context.Context, q domain.ListQuery) (*domain.JudgmentPage, error) {
	q.Search = strings.TrimSpace(q.Search)
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = domain.DefaultPageSize
	}

	page, err := s.api.ListJudgments(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("judgment.List: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("judgment.List: %w", err)
	}

	if page.Items == nil {
		page.Items = []domain.Judgment{}
	}
	return page, nil
}

// Get returns a single judgment.
// Returns ErrNotFound if the backend does not know the id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Judgment, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrNotFound
	}

	j, err := s.api.GetJudgment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("judgment.Get: %w", err)
	}
	return j, nil
}
