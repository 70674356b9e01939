package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/judgment-web/internal/domain"
	"github.com/heartmarshall/judgment-web/internal/service/judgment"
)

type judgmentService interface {
	List(ctx context.Context, q domain.ListQuery) (*domain.JudgmentPage, error)
	Get(ctx context.Context, id string) (*domain.Judgment, error)
	Create(ctx context.Context, input judgment.Input) (*domain.CreatedJudgment, error)
	Update(ctx context.Context, id string, input judgment.Input) error
	Delete(ctx context.Context, id string) error
}

// JudgmentHandler serves the judgment list, detail, form and delete pages.
type JudgmentHandler struct {
	svc    judgmentService
	resp   *Responder
	render *Renderer
	log    *slog.Logger
}

// NewJudgmentHandler creates a JudgmentHandler.
func NewJudgmentHandler(svc judgmentService, resp *Responder, logger *slog.Logger) *JudgmentHandler {
	return &JudgmentHandler{svc: svc, resp: resp, render: resp.render, log: logger.With("handler", "judgment")}
}

type listPage struct {
	Query      domain.ListQuery
	Items      []domain.Judgment
	Total      int
	TotalPages int
	Pagination *Pagination
	ClearURL   string
}

type detailPage struct {
	Judgment domain.Judgment
}

// judgmentForm is the form as shown: Input plus the typed date in
// dd/mm/yyyy and the derived tag list.
type judgmentForm struct {
	judgment.Input
	DateText string
	TagList  []string
}

type formPage struct {
	ID        string
	Heading   string
	Action    string
	CancelURL string
	Overlay   string
	Form      judgmentForm
	Errors    formErrors
}

type deletePage struct {
	Judgment domain.Judgment
}

// Form field names of the date control.
const (
	dateField     = "judgment_date"
	datePrevField = "judgment_date_prev"
)

// List handles GET /judgments.
func (h *JudgmentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r.URL.Query())
	if canonical := listURL(q.Search, q.Page); !sameQuery(r.URL.RawQuery, canonical) {
		http.Redirect(w, r, canonical, http.StatusFound)
		return
	}

	page, err := h.svc.List(r.Context(), q)
	if err != nil {
		h.resp.Fail(w, r, err, "Could not load judgments")
		return
	}

	totalPages := page.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}
	h.render.Page(w, r, http.StatusOK, "judgments", "Judgments", listPage{
		Query:      q,
		Items:      page.Items,
		Total:      page.Total,
		TotalPages: totalPages,
		Pagination: newPagination(q.Search, q.Page, page.Total, totalPages),
		ClearURL:   listURL("", 1),
	})
}

// Detail handles GET /judgments/{id}.
func (h *JudgmentHandler) Detail(w http.ResponseWriter, r *http.Request) {
	j, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.resp.Fail(w, r, err, "Could not load the judgment")
		return
	}
	h.render.Page(w, r, http.StatusOK, "judgment", j.Title, detailPage{Judgment: *j})
}

// New handles GET /judgments/new.
func (h *JudgmentHandler) New(w http.ResponseWriter, r *http.Request) {
	h.render.Page(w, r, http.StatusOK, "judgment_form", "New judgment", newFormPage(judgment.Input{}))
}

// Create handles POST /judgments.
func (h *JudgmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render.Error(w, r, http.StatusBadRequest, "Invalid form submission")
		return
	}

	input, err := readJudgmentForm(r.PostForm)
	if err == nil {
		var created *domain.CreatedJudgment
		created, err = h.svc.Create(r.Context(), input)
		if err == nil {
			h.render.Redirect(w, r, "/judgments/"+url.PathEscape(created.ID), savedToast(created.DocNo))
			return
		}
	}

	if errors.Is(err, domain.ErrUnauthorized) {
		h.resp.SignOut(w, r)
		return
	}
	logFailure(r.Context(), h.log, "create judgment failed", err)
	page := newFormPage(input)
	page.Errors = newFormErrors(err, "Save failed")
	h.render.Page(w, r, failureStatus(err), "judgment_form", "New judgment", page)
}

// Edit handles GET /judgments/{id}/edit.
func (h *JudgmentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	j, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.resp.Fail(w, r, err, "Could not load the judgment")
		return
	}
	h.render.Page(w, r, http.StatusOK, "judgment_form", "Edit judgment", editFormPage(j.ID, judgment.InputFrom(*j)))
}

// Update handles POST /judgments/{id}.
func (h *JudgmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render.Error(w, r, http.StatusBadRequest, "Invalid form submission")
		return
	}

	id := chi.URLParam(r, "id")
	input, err := readJudgmentForm(r.PostForm)
	if err == nil {
		if err = h.svc.Update(r.Context(), id, input); err == nil {
			h.render.Redirect(w, r, "/judgments/"+url.PathEscape(id), successToast("Changes saved"))
			return
		}
	}

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		h.resp.SignOut(w, r)
		return
	case errors.Is(err, domain.ErrNotFound):
		h.render.NotFound(w, r)
		return
	}
	logFailure(r.Context(), h.log, "update judgment failed", err)
	page := editFormPage(id, input)
	page.Errors = newFormErrors(err, "Save failed")
	h.render.Page(w, r, failureStatus(err), "judgment_form", "Edit judgment", page)
}

// ConfirmDelete handles GET /judgments/{id}/delete.
func (h *JudgmentHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	j, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.resp.Fail(w, r, err, "Could not load the judgment")
		return
	}
	h.render.Page(w, r, http.StatusOK, "judgment_delete", "Delete judgment", deletePage{Judgment: *j})
}

// Delete handles POST /judgments/{id}/delete. On failure the record stays
// and the browser returns to it with the error.
func (h *JudgmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.svc.Delete(r.Context(), id)
	switch {
	case err == nil:
		h.render.Redirect(w, r, judgmentsPath, successToast("Judgment deleted"))
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrNotFound):
		h.resp.Fail(w, r, err, "Delete failed")
	default:
		logFailure(r.Context(), h.log, "delete judgment failed", err)
		h.render.Redirect(w, r, "/judgments/"+url.PathEscape(id),
			errorToast("Delete failed", domain.ErrorMessage(err, "The judgment was not deleted")))
	}
}

// readJudgmentForm reads the submitted form. A typed date that is not a
// real dd/mm/yyyy date reverts to the last accepted value and is reported
// as a validation error.
func readJudgmentForm(form url.Values) (judgment.Input, error) {
	input := judgment.Input{
		Title:   form.Get("title"),
		CaseNo:  form.Get("case_no"),
		Court:   form.Get("court"),
		Parties: form.Get("parties"),
		Facts:   form.Get("facts"),
		Issues:  form.Get("issues"),
		Holding: form.Get("holding"),
		Notes:   form.Get("notes"),
		Tags:    form.Get("tags"),
	}

	iso, err := domain.ParseDisplayDate(form.Get(dateField))
	if err != nil {
		input.JudgmentDate = lastValidDate(form.Get(datePrevField))
		var fields []domain.FieldError
		var ve *domain.ValidationError
		if errors.As(input.Validate(), &ve) {
			for _, fe := range ve.Errors {
				if fe.Field != dateField {
					fields = append(fields, fe)
				}
			}
		}
		fields = append(fields, domain.FieldError{Field: dateField, Message: "Invalid date, use dd/mm/yyyy"})
		return input, domain.NewValidationErrors(fields)
	}
	input.JudgmentDate = iso
	return input, nil
}

// lastValidDate returns prev in canonical form. A value that is not a real
// date is returned unchanged.
func lastValidDate(prev string) string {
	iso, _ := domain.CanonicalDate(prev)
	return iso
}

func newFormPage(input judgment.Input) formPage {
	return formPage{
		Heading:   "New judgment",
		Action:    judgmentsPath,
		CancelURL: judgmentsPath,
		Overlay:   "Saving judgment...",
		Form:      formFrom(input),
	}
}

func editFormPage(id string, input judgment.Input) formPage {
	detail := "/judgments/" + url.PathEscape(id)
	return formPage{
		ID:        id,
		Heading:   "Edit judgment",
		Action:    detail,
		CancelURL: detail,
		Overlay:   "Saving changes...",
		Form:      formFrom(input),
	}
}

func formFrom(input judgment.Input) judgmentForm {
	text := input.JudgmentDate
	if iso, ok := domain.CanonicalDate(text); ok {
		text = domain.FormatDisplayDate(iso)
	}
	return judgmentForm{
		Input:    input,
		DateText: text,
		TagList:  domain.ParseTags(input.Tags),
	}
}

func savedToast(docNo *string) Toast {
	if no := domain.Deref(docNo); no != "" {
		return newToast(ToastSuccess, "Judgment saved", "Document number "+no)
	}
	return successToast("Judgment saved")
}
