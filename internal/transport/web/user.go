package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/judgment-web/internal/domain"
	"github.com/heartmarshall/judgment-web/internal/service/session"
	"github.com/heartmarshall/judgment-web/internal/service/user"
)

const usersPath = "/users"

type userService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	CreateUser(ctx context.Context, input user.CreateInput) (*domain.User, error)
	UpdateUser(ctx context.Context, current domain.User, input user.UpdateInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// UserHandler serves the admin user management pages.
type UserHandler struct {
	svc    userService
	resp   *Responder
	render *Renderer
	log    *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, resp *Responder, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, resp: resp, render: resp.render, log: logger.With("handler", "user")}
}

type usersPage struct {
	Users  []domain.User
	SelfID string
}

type userFormPage struct {
	ID      string
	Heading string
	Action  string
	IsSelf  bool
	Name    string
	Email   string
	Role    domain.Role
	Roles   []domain.Role
	Errors  formErrors
}

type userDeletePage struct {
	User domain.User
}

var roles = []domain.Role{domain.RoleUser, domain.RoleAdmin}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		h.resp.Fail(w, r, err, "Could not load users")
		return
	}
	self := session.MustFromContext(r.Context())
	h.render.Page(w, r, http.StatusOK, "users", "Users", usersPage{Users: users, SelfID: self.User.ID})
}

// New handles GET /users/new.
func (h *UserHandler) New(w http.ResponseWriter, r *http.Request) {
	h.render.Page(w, r, http.StatusOK, "user_form", "New user", userFormPage{
		Heading: "New user",
		Action:  usersPath,
		Role:    domain.RoleUser,
		Roles:   roles,
	})
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render.Error(w, r, http.StatusBadRequest, "Invalid form submission")
		return
	}

	input := user.CreateInput{
		Name:     r.PostForm.Get("name"),
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
		Role:     domain.Role(r.PostForm.Get("role")),
	}

	created, err := h.svc.CreateUser(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			h.resp.SignOut(w, r)
			return
		}
		logFailure(r.Context(), h.log, "create user failed", err)
		h.render.Page(w, r, failureStatus(err), "user_form", "New user", userFormPage{
			Heading: "New user",
			Action:  usersPath,
			Name:    input.Name,
			Email:   input.Email,
			Role:    input.Role,
			Roles:   roles,
			Errors:  newFormErrors(err, "Could not create the user"),
		})
		return
	}

	h.render.Redirect(w, r, usersPath, newToast(ToastSuccess, "User created", created.Email))
}

// Edit handles GET /users/{id}/edit.
func (h *UserHandler) Edit(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.resp.Fail(w, r, err, "Could not load the user")
		return
	}
	h.render.Page(w, r, http.StatusOK, "user_form", "Edit user", h.editPage(r, *u, u.Name, u.Email, u.Role))
}

// Update handles POST /users/{id}. The list is fetched again after the
// redirect, so the table always reflects the backend.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render.Error(w, r, http.StatusBadRequest, "Invalid form submission")
		return
	}

	current, err := h.svc.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.resp.Fail(w, r, err, "Could not load the user")
		return
	}

	input := user.UpdateInput{
		Name:     r.PostForm.Get("name"),
		Email:    r.PostForm.Get("email"),
		Role:     domain.Role(r.PostForm.Get("role")),
		Password: r.PostForm.Get("password"),
	}
	// A disabled select is not submitted.
	if input.Role == "" && h.isSelf(r, current.ID) {
		input.Role = current.Role
	}

	updated, err := h.svc.UpdateUser(r.Context(), *current, input)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			h.resp.SignOut(w, r)
			return
		}
		logFailure(r.Context(), h.log, "update user failed", err)
		page := h.editPage(r, *current, input.Name, input.Email, input.Role)
		page.Errors = newFormErrors(err, "Could not update the user")
		h.render.Page(w, r, failureStatus(err), "user_form", "Edit user", page)
		return
	}

	h.render.Redirect(w, r, usersPath, newToast(ToastSuccess, "User updated", updated.Email))
}

// ConfirmDelete handles GET /users/{id}/delete.
func (h *UserHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if h.isSelf(r, id) {
		h.render.Redirect(w, r, usersPath, errorToast("You cannot delete your own account", ""))
		return
	}

	u, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		h.resp.Fail(w, r, err, "Could not load the user")
		return
	}
	h.render.Page(w, r, http.StatusOK, "user_delete", "Delete user", userDeletePage{User: *u})
}

// Delete handles POST /users/{id}/delete.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.svc.DeleteUser(r.Context(), chi.URLParam(r, "id"))
	switch {
	case err == nil:
		h.render.Redirect(w, r, usersPath, successToast("User deleted"))
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrForbidden):
		h.resp.Fail(w, r, err, "Delete failed")
	default:
		logFailure(r.Context(), h.log, "delete user failed", err)
		h.render.Redirect(w, r, usersPath, errorToast("Delete failed", domain.ErrorMessage(err, "The user was not deleted")))
	}
}

func (h *UserHandler) editPage(r *http.Request, target domain.User, name, email string, role domain.Role) userFormPage {
	return userFormPage{
		ID:      target.ID,
		Heading: "Edit user",
		Action:  usersPath + "/" + url.PathEscape(target.ID),
		IsSelf:  h.isSelf(r, target.ID),
		Name:    name,
		Email:   email,
		Role:    role,
		Roles:   roles,
	}
}

func (h *UserHandler) isSelf(r *http.Request, id string) bool {
	sess := session.FromContext(r.Context())
	return sess != nil && sess.User.ID == id
}
