package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/judgment-web/internal/domain"
	"github.com/heartmarshall/judgment-web/internal/service/session"
	"github.com/heartmarshall/judgment-web/internal/transport/middleware"
)

type sessionService interface {
	Login(ctx context.Context, input session.LoginInput) (*domain.Session, error)
	Register(ctx context.Context, input session.RegisterInput) (*domain.Session, error)
	UpdateProfile(ctx context.Context, sess *domain.Session, input session.ProfileInput) (*domain.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// AuthHandler serves sign-in, registration, sign-out and the profile page.
type AuthHandler struct {
	svc    sessionService
	resp   *Responder
	cookie middleware.SessionCookie
	render *Renderer
	log    *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc sessionService, resp *Responder, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:    svc,
		resp:   resp,
		cookie: resp.cookie,
		render: resp.render,
		log:    logger.With("handler", "auth"),
	}
}

type loginPage struct {
	Email     string
	ReturnURL string
	Errors    formErrors
}

type registerPage struct {
	Name   string
	Email  string
	Errors formErrors
}

type profilePage struct {
	Name    string
	Email   string
	Editing bool
	Errors  formErrors
}

// Home handles GET /.
func (h *AuthHandler) Home(w http.ResponseWriter, r *http.Request) {
	if session.FromContext(r.Context()) != nil {
		http.Redirect(w, r, middleware.DefaultPath, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
}

// LoginForm handles GET /login.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	returnURL := middleware.SafeReturnURL(r.URL.Query().Get("returnUrl"))
	if session.FromContext(r.Context()) != nil {
		http.Redirect(w, r, returnURL, http.StatusSeeOther)
		return
	}
	h.render.Page(w, r, http.StatusOK, "login", "Sign in", loginPage{ReturnURL: returnURL})
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render.Error(w, r, http.StatusBadRequest, "Invalid form submission")
		return
	}

	input := session.LoginInput{
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
	}
	returnURL := middleware.SafeReturnURL(r.PostForm.Get("returnUrl"))

	sess, err := h.svc.Login(r.Context(), input)
	if err != nil {
		h.logFailure(r, "login failed", err)
		h.render.Page(w, r, failureStatus(err), "login", "Sign in", loginPage{
			Email:     input.Email,
			ReturnURL: returnURL,
			Errors:    newFormErrors(err, "Login failed"),
		})
		return
	}

	h.cookie.Set(w, sess.ID, sess.ExpiresAt)
	http.Redirect(w, r, returnURL, http.StatusSeeOther)
}

// RegisterForm handles GET /register.
func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	if session.FromContext(r.Context()) != nil {
		http.Redirect(w, r, middleware.DefaultPath, http.StatusSeeOther)
		return
	}
	h.render.Page(w, r, http.StatusOK, "register", "Create account", registerPage{})
}

// Register handles POST /register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render.Error(w, r, http.StatusBadRequest, "Invalid form submission")
		return
	}

	input := session.RegisterInput{
		Name:     r.PostForm.Get("name"),
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
		Confirm:  r.PostForm.Get("confirm"),
	}

	sess, err := h.svc.Register(r.Context(), input)
	if err != nil {
		h.logFailure(r, "registration failed", err)
		h.render.Page(w, r, failureStatus(err), "register", "Create account", registerPage{
			Name:   input.Name,
			Email:  input.Email,
			Errors: newFormErrors(err, "Registration failed"),
		})
		return
	}

	h.cookie.Set(w, sess.ID, sess.ExpiresAt)
	h.render.Redirect(w, r, middleware.DefaultPath, successToast("Welcome, "+sess.User.Name))
}

// Logout handles POST /logout. The session is dropped locally; the backend
// is not called.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context(), h.cookie.ID(r)); err != nil {
		h.log.ErrorContext(r.Context(), "logout failed", slog.String("error", err.Error()))
	}
	h.cookie.Clear(w)
	h.render.Redirect(w, r, middleware.LoginPath, newToast(ToastInfo, "Signed out", ""))
}

// Profile handles GET /profile.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	sess := session.MustFromContext(r.Context())
	h.render.Page(w, r, http.StatusOK, "profile", "Profile", profilePage{
		Name:    sess.User.Name,
		Email:   sess.User.Email,
		Editing: r.URL.Query().Get("edit") == "1",
	})
}

// UpdateProfile handles POST /profile.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render.Error(w, r, http.StatusBadRequest, "Invalid form submission")
		return
	}

	sess := session.MustFromContext(r.Context())
	input := session.ProfileInput{
		Name:  r.PostForm.Get("name"),
		Email: r.PostForm.Get("email"),
	}

	if _, err := h.svc.UpdateProfile(r.Context(), sess, input); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			h.resp.SignOut(w, r)
			return
		}
		h.logFailure(r, "profile update failed", err)
		h.render.Page(w, r, failureStatus(err), "profile", "Profile", profilePage{
			Name:    input.Name,
			Email:   input.Email,
			Editing: true,
			Errors:  newFormErrors(err, "Failed to update profile"),
		})
		return
	}

	h.render.Redirect(w, r, "/profile", successToast("Profile updated successfully"))
}

func (h *AuthHandler) logFailure(r *http.Request, msg string, err error) {
	logFailure(r.Context(), h.log, msg, err)
}
