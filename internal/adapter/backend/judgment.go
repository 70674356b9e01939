package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/heartmarshall/judgment-web/internal/domain"
)

// ListJudgments fetches one page of judgments. A blank search is omitted;
// page and limit are always sent.
func (c *Client) ListJudgments(ctx context.Context, q domain.ListQuery) (*domain.JudgmentPage, error) {
	params := url.Values{}
	if s := strings.TrimSpace(q.Search); s != "" {
		params.Set("search", s)
	}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("limit", strconv.Itoa(q.Limit))

	var page domain.JudgmentPage
	if err := c.do(ctx, http.MethodGet, "/judgments?"+params.Encode(), nil, &page); err != nil {
		return nil, fmt.Errorf("backend.ListJudgments: %w", err)
	}
	if page.Items == nil {
		page.Items = []domain.Judgment{}
	}
	return &page, nil
}

// GetJudgment fetches a single judgment.
func (c *Client) GetJudgment(ctx context.Context, id string) (*domain.Judgment, error) {
	var j domain.Judgment
	if err := c.do(ctx, http.MethodGet, "/judgments/"+url.PathEscape(id), nil, &j); err != nil {
		return nil, fmt.Errorf("backend.GetJudgment: %w", err)
	}
	return &j, nil
}

// CreateJudgment creates a judgment and returns its id and document number.
func (c *Client) CreateJudgment(ctx context.Context, p domain.JudgmentPayload) (*domain.CreatedJudgment, error) {
	var created domain.CreatedJudgment
	if err := c.do(ctx, http.MethodPost, "/judgments", p, &created); err != nil {
		return nil, fmt.Errorf("backend.CreateJudgment: %w", err)
	}
	return &created, nil
}

// UpdateJudgment replaces every editable field of a judgment.
func (c *Client) UpdateJudgment(ctx context.Context, id string, p domain.JudgmentPayload) error {
	if err := c.do(ctx, http.MethodPut, "/judgments/"+url.PathEscape(id), p, nil); err != nil {
		return fmt.Errorf("backend.UpdateJudgment: %w", err)
	}
	return nil
}

// DeleteJudgment deletes a judgment.
func (c *Client) DeleteJudgment(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/judgments/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("backend.DeleteJudgment: %w", err)
	}
	return nil
}
