package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"git-telegram-bridge/internal/model"
	"git-telegram-bridge/internal/registration"
	"git-telegram-bridge/internal/registration/repository"
	"git-telegram-bridge/internal/registration/usecase"
	pkgTelegram "git-telegram-bridge/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockRepo struct {
	registrations []model.Registration
	createErr     error
}

func (m *mockRepo) CreateRegistration(ctx context.Context, opt repository.CreateRegistrationOptions) (model.Registration, error) {
	if m.createErr != nil {
		return model.Registration{}, m.createErr
	}
	for _, reg := range m.registrations {
		if strings.EqualFold(reg.GitHubRepo, opt.GitHubRepo) {
			return model.Registration{}, repository.ErrDuplicate
		}
	}
	reg := model.Registration{
		ID:         fmt.Sprintf("reg-%d", len(m.registrations)+1),
		GitHubRepo: opt.GitHubRepo,
		ChatID:     opt.ChatID,
		Secret:     opt.Secret,
	}
	m.registrations = append(m.registrations, reg)
	return reg, nil
}

func (m *mockRepo) GetOneRegistration(ctx context.Context, opt repository.GetOneRegistrationOptions) (model.Registration, error) {
	for _, reg := range m.registrations {
		if opt.GitHubRepo == "" || strings.EqualFold(reg.GitHubRepo, opt.GitHubRepo) {
			return reg, nil
		}
	}
	return model.Registration{}, nil
}

// ── Test Helpers ───────────────────────────────────────────────────────────

func newUseCase(t *testing.T, repo *mockRepo) (registration.UseCase, *[]string, func()) {
	t.Helper()

	sent := &[]string{}
	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		json.NewDecoder(r.Body).Decode(&payload)
		if text, ok := payload["text"].(string); ok {
			*sent = append(*sent, text)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true}`))
	}))

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	return usecase.New(&mockLogger{}, repo, bot), sent, tgServer.Close
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestSetup(t *testing.T) {
	t.Run("Valid input creates a registration and sends the welcome", func(t *testing.T) {
		repo := &mockRepo{}
		uc, sent, done := newUseCase(t, repo)
		defer done()

		out, err := uc.Setup(context.Background(), registration.SetupInput{
			GitHubRepo: "alice/repo",
			ChatID:     42,
		})
		if err != nil {
			t.Fatalf("Setup: %v", err)
		}

		if out.Registration.GitHubRepo != "alice/repo" || out.Registration.ChatID != 42 {
			t.Errorf("unexpected registration %+v", out.Registration)
		}
		if len(out.Registration.Secret) != 32 {
			t.Errorf("expected a 32-char hex secret, got %q", out.Registration.Secret)
		}
		if len(repo.registrations) != 1 {
			t.Fatalf("expected one stored registration, got %d", len(repo.registrations))
		}
		if len(*sent) != 1 || !strings.Contains((*sent)[0], out.Registration.Secret) {
			t.Errorf("welcome message must carry the secret, got %v", *sent)
		}
	})

	t.Run("Invalid repository name is rejected before any side effect", func(t *testing.T) {
		repo := &mockRepo{}
		uc, sent, done := newUseCase(t, repo)
		defer done()

		_, err := uc.Setup(context.Background(), registration.SetupInput{
			GitHubRepo: "not a repo",
			ChatID:     42,
		})
		if !errors.Is(err, registration.ErrInvalidRepoName) {
			t.Fatalf("expected ErrInvalidRepoName, got %v", err)
		}
		if len(repo.registrations) != 0 || len(*sent) != 0 {
			t.Error("invalid input must have no side effects")
		}
	})

	t.Run("Duplicate repository maps to ErrDuplicateRegistration", func(t *testing.T) {
		repo := &mockRepo{registrations: []model.Registration{
			{ID: "r1", GitHubRepo: "alice/repo", ChatID: 7, Secret: "existing"},
		}}
		uc, _, done := newUseCase(t, repo)
		defer done()

		_, err := uc.Setup(context.Background(), registration.SetupInput{
			GitHubRepo: "alice/repo",
			ChatID:     42,
		})
		if !errors.Is(err, registration.ErrDuplicateRegistration) {
			t.Fatalf("expected ErrDuplicateRegistration, got %v", err)
		}
	})

	t.Run("Repository failure surfaces to the caller", func(t *testing.T) {
		repo := &mockRepo{createErr: repository.ErrFailedToInsert}
		uc, _, done := newUseCase(t, repo)
		defer done()

		_, err := uc.Setup(context.Background(), registration.SetupInput{
			GitHubRepo: "alice/repo",
			ChatID:     42,
		})
		if !errors.Is(err, repository.ErrFailedToInsert) {
			t.Fatalf("expected the repository error, got %v", err)
		}
	})
}
