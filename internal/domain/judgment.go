package domain

import "strings"

// DefaultPageSize is the number of judgments shown per list page.
const DefaultPageSize = 10

// Judgment is a legal judgment note as stored by the backend.
// DocNo is assigned by the backend and never sent by this application.
type Judgment struct {
	ID           string   `json:"id"`
	DocNo        *string  `json:"doc_no,omitempty"`
	Title        string   `json:"title"`
	CaseNo       *string  `json:"case_no,omitempty"`
	Court        *string  `json:"court,omitempty"`
	JudgmentDate *string  `json:"judgment_date,omitempty"`
	Parties      *string  `json:"parties,omitempty"`
	Facts        *string  `json:"facts,omitempty"`
	Issues       *string  `json:"issues,omitempty"`
	Holding      *string  `json:"holding,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
	Tags         []string `json:"tags"`
	CreatedAt    string   `json:"created_at,omitempty"`
	UpdatedAt    string   `json:"updated_at,omitempty"`
}

// HasDetails reports whether any free-text section carries content.
func (j Judgment) HasDetails() bool {
	for _, s := range []*string{j.Parties, j.Facts, j.Issues, j.Holding, j.Notes} {
		if s != nil && strings.TrimSpace(*s) != "" {
			return true
		}
	}
	return false
}

// JudgmentPayload is the body of create and update requests. Optional
// fields are always present and encode as null when empty.
type JudgmentPayload struct {
	Title        string   `json:"title"`
	CaseNo       *string  `json:"case_no"`
	Court        *string  `json:"court"`
	JudgmentDate *string  `json:"judgment_date"`
	Parties      *string  `json:"parties"`
	Facts        *string  `json:"facts"`
	Issues       *string  `json:"issues"`
	Holding      *string  `json:"holding"`
	Notes        *string  `json:"notes"`
	Tags         []string `json:"tags"`
}

// CreatedJudgment is the backend reply to a create request.
type CreatedJudgment struct {
	ID    string  `json:"id"`
	DocNo *string `json:"doc_no,omitempty"`
}

// ListQuery is the state of the judgment list view: search text and a
// 1-based page of Limit items.
type ListQuery struct {
	Search string
	Page   int
	Limit  int
}

// JudgmentPage is one page of a judgment listing.
type JudgmentPage struct {
	Items      []Judgment `json:"items"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"totalPages"`
}

// NullIfBlank returns nil for a blank string and a pointer to the trimmed
// value otherwise.
func NullIfBlank(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
