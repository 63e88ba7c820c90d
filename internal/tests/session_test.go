package tests

import (
	"context"
	"errors"
	"testing"

	"sotrama/internal/domain"
	"sotrama/internal/repository"
	"sotrama/internal/service"
)

// ──────────────────────────────────────────────
// 8. SESSIONS
// ──────────────────────────────────────────────

func TestSession_Login_CreatesFrenchSession(t *testing.T) {
	t.Parallel()

	svc := service.NewSessionService(NewMockSessionStore())

	session, err := svc.Login(context.Background(), "+22376123456")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if session.Phone != "+22376123456" {
		t.Errorf("unexpected phone: %s", session.Phone)
	}
	// French is the default language.
	if session.Language != domain.LanguageFrench {
		t.Errorf("expected fr, got %s", session.Language)
	}
	if session.CreatedAt.IsZero() {
		t.Error("expected created at to be set")
	}
}

func TestSession_RepeatLogin_KeepsLanguage(t *testing.T) {
	t.Parallel()

	svc := service.NewSessionService(NewMockSessionStore())
	ctx := context.Background()

	if _, err := svc.Login(ctx, "+22376123456"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := svc.SetLanguage(ctx, "+22376123456", domain.LanguageBambara); err != nil {
		t.Fatalf("set language failed: %v", err)
	}

	session, err := svc.Login(ctx, "+22376123456")
	if err != nil {
		t.Fatalf("second login failed: %v", err)
	}
	if session.Language != domain.LanguageBambara {
		t.Errorf("expected bm preserved, got %s", session.Language)
	}
}

func TestSession_InvalidPhone_Rejected(t *testing.T) {
	t.Parallel()

	svc := service.NewSessionService(NewMockSessionStore())
	ctx := context.Background()

	for _, phone := range []string{"", "abc", "123", "+223 76 12 34 56", "12345678901234567890"} {
		if _, err := svc.Login(ctx, phone); !errors.Is(err, service.ErrInvalidPhone) {
			t.Errorf("phone %q: expected invalid phone, got: %v", phone, err)
		}
	}
}

func TestSession_StoreError_Propagates(t *testing.T) {
	t.Parallel()

	store := NewMockSessionStore()
	redisDown := errors.New("connection refused")
	store.SaveError = redisDown
	svc := service.NewSessionService(store)

	if _, err := svc.Login(context.Background(), "+22376123456"); !errors.Is(err, redisDown) {
		t.Errorf("expected store error, got: %v", err)
	}
}

func TestSession_SetLanguage_Validates(t *testing.T) {
	t.Parallel()

	svc := service.NewSessionService(NewMockSessionStore())
	ctx := context.Background()

	if _, err := svc.Login(ctx, "+22376123456"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	for _, lang := range []string{domain.LanguageFrench, domain.LanguageEnglish, domain.LanguageBambara} {
		session, err := svc.SetLanguage(ctx, "+22376123456", lang)
		if err != nil {
			t.Fatalf("language %s: expected no error, got: %v", lang, err)
		}
		if session.Language != lang {
			t.Errorf("expected %s, got %s", lang, session.Language)
		}
	}

	if _, err := svc.SetLanguage(ctx, "+22376123456", "de"); !errors.Is(err, service.ErrInvalidLanguage) {
		t.Errorf("expected unsupported language, got: %v", err)
	}
}

func TestSession_Logout_RemovesSession(t *testing.T) {
	t.Parallel()

	svc := service.NewSessionService(NewMockSessionStore())
	ctx := context.Background()

	if _, err := svc.Login(ctx, "+22376123456"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(ctx, "+22376123456"); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	if _, err := svc.Get(ctx, "+22376123456"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected not found after logout, got: %v", err)
	}

	// Logging out again is a no-op.
	if err := svc.Logout(ctx, "+22376123456"); err != nil {
		t.Errorf("expected repeated logout to succeed, got: %v", err)
	}
}
