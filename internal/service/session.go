package service

import (
	"context"
	"regexp"
	"time"

	"sotrama/internal/domain"
	"sotrama/internal/redis"
	"sotrama/internal/repository"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{8,15}$`)

// SessionService handles phone-based login sessions.
type SessionService struct {
	sessionStore redis.SessionStoreInterface
}

// NewSessionService creates a new SessionService.
func NewSessionService(sessionStore redis.SessionStoreInterface) *SessionService {
	return &SessionService{sessionStore: sessionStore}
}

// Login creates a session for a phone number, or returns the existing one
// so a second login keeps the traveller's language choice.
func (s *SessionService) Login(ctx context.Context, phone string) (*domain.Session, error) {
	if !phonePattern.MatchString(phone) {
		return nil, ErrInvalidPhone
	}

	existing, err := s.sessionStore.Get(ctx, phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	session := &domain.Session{
		Phone:     phone,
		Language:  domain.LanguageFrench,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.sessionStore.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Get retrieves the session for a phone number.
func (s *SessionService) Get(ctx context.Context, phone string) (*domain.Session, error) {
	if !phonePattern.MatchString(phone) {
		return nil, ErrInvalidPhone
	}

	session, err := s.sessionStore.Get(ctx, phone)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, repository.ErrNotFound
	}

	return session, nil
}

// SetLanguage changes the interface language for a session.
func (s *SessionService) SetLanguage(ctx context.Context, phone, language string) (*domain.Session, error) {
	switch language {
	case domain.LanguageFrench, domain.LanguageEnglish, domain.LanguageBambara:
	default:
		return nil, ErrInvalidLanguage
	}

	session, err := s.Get(ctx, phone)
	if err != nil {
		return nil, err
	}

	session.Language = language
	if err := s.sessionStore.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Logout removes the session for a phone number. Logging out without a
// session is a no-op.
func (s *SessionService) Logout(ctx context.Context, phone string) error {
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}

	return s.sessionStore.Delete(ctx, phone)
}
