package service

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-room-booking/internal/logger"
	"github.com/MKhiriev/go-room-booking/internal/session"
	"github.com/MKhiriev/go-room-booking/models"
)

type clickService struct {
	sessions session.Store

	logger *logger.Logger
}

func NewClickService(sessions session.Store, logger *logger.Logger) ClickService {
	return &clickService{
		sessions: sessions,
		logger:   logger,
	}
}

func (s *clickService) Track(ctx context.Context, token, target string) (string, error) {
	target, err := localTarget(target)
	if err != nil {
		return "", err
	}

	sess, err := s.sessions.Modify(ctx, token, func(sess *session.Session) {
		sess.Click(target)
	})
	if err != nil {
		return "", err
	}

	logger.FromContext(ctx).Debug().
		Str("target", target).
		Int("count", sess.Clicks[target]).
		Msg("redirect tracked")
	return target, nil
}

func (s *clickService) Stats(ctx context.Context, token string) (models.ClickStats, error) {
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	return sess.Clicks, nil
}

// localTarget accepts only absolute paths on this host, so the redirect
// cannot be used to send visitors elsewhere.
func localTarget(target string) (string, error) {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.ContainsAny(target, "\\\r\n") {
		return "", ErrInvalidRedirectTarget
	}

	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "", ErrInvalidRedirectTarget
	}

	return u.String(), nil
}
