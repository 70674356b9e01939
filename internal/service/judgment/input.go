package judgment

import (
	"strings"

	"github.com/heartmarshall/judgment-web/internal/domain"
)

// Input holds the create and edit form. JudgmentDate is in canonical
// yyyy-mm-dd form or blank; Tags is the raw comma-separated text.
type Input struct {
	Title        string
	CaseNo       string
	Court        string
	JudgmentDate string
	Parties      string
	Facts        string
	Issues       string
	Holding      string
	Notes        string
	Tags         string
}

// InputFrom fills the form from an existing record. A stored date that is
// not a real date is kept as is so that saving never erases it.
func InputFrom(j domain.Judgment) Input {
	date, _ := domain.CanonicalDate(domain.Deref(j.JudgmentDate))
	return Input{
		Title:        j.Title,
		CaseNo:       domain.Deref(j.CaseNo),
		Court:        domain.Deref(j.Court),
		JudgmentDate: date,
		Parties:      domain.Deref(j.Parties),
		Facts:        domain.Deref(j.Facts),
		Issues:       domain.Deref(j.Issues),
		Holding:      domain.Deref(j.Holding),
		Notes:        domain.Deref(j.Notes),
		Tags:         domain.JoinTags(j.Tags),
	}
}

// Validate checks the title and the date.
func (i Input) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "Title is required"})
	}
	if d := strings.TrimSpace(i.JudgmentDate); d != "" {
		if _, err := domain.ParseDisplayDate(domain.FormatDisplayDate(d)); err != nil {
			errs = append(errs, domain.FieldError{Field: "judgment_date", Message: "Invalid date"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Payload builds the request body. Blank optional fields become null and
// tags are derived from the comma-separated text.
func (i Input) Payload() domain.JudgmentPayload {
	return domain.JudgmentPayload{
		Title:        strings.TrimSpace(i.Title),
		CaseNo:       domain.NullIfBlank(i.CaseNo),
		Court:        domain.NullIfBlank(i.Court),
		JudgmentDate: domain.NullIfBlank(i.JudgmentDate),
		Parties:      domain.NullIfBlank(i.Parties),
		Facts:        domain.NullIfBlank(i.Facts),
		Issues:       domain.NullIfBlank(i.Issues),
		Holding:      domain.NullIfBlank(i.Holding),
		Notes:        domain.NullIfBlank(i.Notes),
		Tags:         domain.ParseTags(i.Tags),
	}
}
