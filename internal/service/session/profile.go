package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/judgment-web/internal/auth"
	"github.com/heartmarshall/judgment-web/internal/domain"
	"github.com/heartmarshall/judgment-web/pkg/ctxutil"
)

// UpdateProfile sends the changed profile fields and merges the reply into
// the stored user. If the reply is not a JSON object, the submitted fields
// are merged instead. With nothing changed no request is made.
func (s *Service) UpdateProfile(ctx context.Context, sess *domain.Session, input ProfileInput) (*domain.Session, error) {
	if sess == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	changes := input.changes(sess.User)
	if changes.IsEmpty() {
		return sess, nil
	}

	reply, err := s.auth.UpdateProfile(ctxutil.WithToken(ctx, sess.Token), changes)
	if err != nil {
		return nil, fmt.Errorf("session.UpdateProfile: %w", err)
	}

	user, err := mergeUser(sess.User, reply, changes)
	if err != nil {
		return nil, fmt.Errorf("session.UpdateProfile: %w", err)
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("session.UpdateProfile encode user: %w", err)
	}

	expires := auth.SessionExpiry(sess.Token, s.now(), s.ttl)
	if err := s.store.Put(ctx, sess.ID, map[string][]byte{KeyUser: raw}, expires); err != nil {
		return nil, fmt.Errorf("session.UpdateProfile store: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated", slog.String("user_id", user.ID))

	updated := *sess
	updated.User = user
	updated.ExpiresAt = expires
	return &updated, nil
}

// mergeUser overlays the top-level fields of reply onto current. A reply
// that is not a JSON object, or that does not decode as a user, is
// replaced by the submitted changes.
func mergeUser(current domain.User, reply json.RawMessage, changes domain.ProfileChanges) (domain.User, error) {
	base, err := toObject(current)
	if err != nil {
		return domain.User{}, err
	}

	var patch map[string]any
	if err := json.Unmarshal(reply, &patch); err != nil || patch == nil {
		return mergeChanges(base, changes)
	}

	merged := overlay(base, patch)
	var user domain.User
	if err := decodeObject(merged, &user); err != nil {
		return mergeChanges(base, changes)
	}
	return user, nil
}

func mergeChanges(base map[string]any, changes domain.ProfileChanges) (domain.User, error) {
	patch, err := toObject(changes)
	if err != nil {
		return domain.User{}, err
	}
	var user domain.User
	if err := decodeObject(overlay(base, patch), &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func overlay(base, patch map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(patch))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range patch {
		out[k] = v
	}
	return out
}

func toObject(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return m, nil
}

func decodeObject(m map[string]any, dst any) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return json.Unmarshal(raw, dst)
}
