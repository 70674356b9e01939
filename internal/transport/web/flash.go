package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

// ToastKind selects the toast's styling.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastInfo    ToastKind = "info"
)

const (
	flashCookieName      = "judgment_flash"
	defaultToastDuration = 3500
	maxToasts            = 5
)

// Toast is a transient notification shown on the next rendered page.
type Toast struct {
	Kind       ToastKind `json:"k"`
	Title      string    `json:"t"`
	Message    string    `json:"m,omitempty"`
	DurationMS int       `json:"d"`
}

func successToast(title string) Toast { return newToast(ToastSuccess, title, "") }

func errorToast(title, message string) Toast { return newToast(ToastError, title, message) }

func newToast(kind ToastKind, title, message string) Toast {
	return Toast{Kind: kind, Title: title, Message: message, DurationMS: defaultToastDuration}
}

// flash carries toasts across a redirect in a short-lived cookie.
type flash struct {
	secure bool
}

// push queues toasts ahead of any still-unread ones, newest first, keeping
// at most maxToasts.
func (f flash) push(w http.ResponseWriter, r *http.Request, toasts ...Toast) {
	if len(toasts) == 0 {
		return
	}
	queued := make([]Toast, 0, len(toasts)+maxToasts)
	for i := len(toasts) - 1; i >= 0; i-- {
		queued = append(queued, toasts[i])
	}
	queued = append(queued, readToasts(r)...)
	if len(queued) > maxToasts {
		queued = queued[:maxToasts]
	}

	raw, err := json.Marshal(queued)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		Secure:   f.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// take returns the queued toasts and clears the cookie.
func (f flash) take(w http.ResponseWriter, r *http.Request) []Toast {
	toasts := readToasts(r)
	if _, err := r.Cookie(flashCookieName); err == nil {
		http.SetCookie(w, &http.Cookie{
			Name:     flashCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   f.secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return toasts
}

// readToasts decodes the flash cookie. A missing or corrupt cookie yields
// no toasts.
func readToasts(r *http.Request) []Toast {
	ck, err := r.Cookie(flashCookieName)
	if err != nil || ck.Value == "" {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(ck.Value)
	if err != nil {
		return nil
	}
	var toasts []Toast
	if err := json.Unmarshal(raw, &toasts); err != nil {
		return nil
	}
	if len(toasts) > maxToasts {
		toasts = toasts[:maxToasts]
	}
	return toasts
}
