package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/mkraev/sellerboard/internal/auth"
	"github.com/mkraev/sellerboard/internal/config"
	"github.com/mkraev/sellerboard/internal/deps"
	"github.com/mkraev/sellerboard/internal/middleware"
	"github.com/mkraev/sellerboard/internal/mocks"
	"github.com/mkraev/sellerboard/internal/model"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
)

// stubOzon — ручная заглушка клиента Ozon: по методу на поле.
type stubOzon struct {
	fetch  func(ctx context.Context, creds model.OzonCredentials, from, to time.Time, status string) ([]model.Posting, error)
	labels func(ctx context.Context, creds model.OzonCredentials, postingNumbers []string) ([]byte, error)
	verify func(ctx context.Context, creds model.OzonCredentials) error
}

func (s *stubOzon) FetchPostings(ctx context.Context, creds model.OzonCredentials, from, to time.Time, status string) ([]model.Posting, error) {
	return s.fetch(ctx, creds, from, to, status)
}

func (s *stubOzon) PackageLabels(ctx context.Context, creds model.OzonCredentials, postingNumbers []string) ([]byte, error) {
	return s.labels(ctx, creds, postingNumbers)
}

func (s *stubOzon) VerifyCredentials(ctx context.Context, creds model.OzonCredentials) error {
	return s.verify(ctx, creds)
}

func setup(t *testing.T) (*Server, *mocks.MockStorage, *stubOzon) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockStorage := mocks.NewMockStorage(ctrl)

	logger := zaptest.NewLogger(t)
	cfg := &config.Config{}
	deps := &deps.Deps{
		TokenManager: auth.NewTokenManager("testsecret"),
		Logger:       logger.Sugar(),
	}

	ozonStub := &stubOzon{}
	srv := NewServer(mockStorage, ozonStub, cfg, deps)

	return srv, mockStorage, ozonStub
}

func authenticatedRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, model.User{ID: 1, Login: "user"})
	return req.WithContext(ctx)
}

func TestRegisterHandler(t *testing.T) {
	srv, mock, _ := setup(t)

	mock.EXPECT().
		CreateUser(gomock.Any(), "user", gomock.Any()).
		Return(nil)

	mock.EXPECT().
		GetUserByLogin(gomock.Any(), "user").
		Return(model.User{ID: 1, Login: "user"}, "", nil)

	payload := `{"login":"user","password":"pass"}`
	req := httptest.NewRequest("POST", "/api/user/register", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.RegisterHandler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	authHeader := resp.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		t.Errorf("missing token")
	}
}

func TestLoginHandler(t *testing.T) {
	srv, mock, _ := setup(t)

	pw, _ := bcryptHash("pass")
	mock.EXPECT().
		GetUserByLogin(gomock.Any(), "user").
		Return(model.User{ID: 1, Login: "user"}, pw, nil)

	payload := `{"login":"user","password":"pass"}`
	req := httptest.NewRequest("POST", "/api/user/login", strings.NewReader(payload))
	w := httptest.NewRecorder()

	srv.LoginHandler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200")
	}
}

func TestLoginHandlerWrongPassword(t *testing.T) {
	srv, mock, _ := setup(t)

	pw, _ := bcryptHash("pass")
	mock.EXPECT().
		GetUserByLogin(gomock.Any(), "user").
		Return(model.User{ID: 1, Login: "user"}, pw, nil)

	payload := `{"login":"user","password":"wrong"}`
	req := httptest.NewRequest("POST", "/api/user/login", strings.NewReader(payload))
	w := httptest.NewRecorder()

	srv.LoginHandler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", resp.StatusCode)
	}
}

func bcryptHash(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), 10)
	return string(hash), err
}
