package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/mkraev/sellerboard/internal/config"
	"github.com/mkraev/sellerboard/internal/deps"
	"github.com/mkraev/sellerboard/internal/engine"
	"github.com/mkraev/sellerboard/internal/errs"
	"github.com/mkraev/sellerboard/internal/middleware"
	"github.com/mkraev/sellerboard/internal/model"
	"github.com/mkraev/sellerboard/internal/ozon"
	"golang.org/x/crypto/bcrypt"
)

type Storage interface {
	CreateUser(ctx context.Context, login, passwordHash string) error
	GetUserByLogin(ctx context.Context, login string) (model.User, string, error)
	GetUserByID(ctx context.Context, id int) (model.User, error)

	SaveCredentials(ctx context.Context, userID int, creds model.OzonCredentials) error
	GetCredentials(ctx context.Context, userID int) (model.OzonCredentials, error)

	GetOverrides(ctx context.Context, userID int) (map[string]model.Override, error)
	SetPacked(ctx context.Context, userID int, numbers []string, value bool) error
	SetProcessed(ctx context.Context, userID int, numbers []string, value bool) error

	GetProductImages(ctx context.Context, userID int) (map[string]string, error)
	SaveProductImages(ctx context.Context, userID int, images map[string]string) error
	DeleteProductImage(ctx context.Context, userID int, sku string) error
	ClearProductImages(ctx context.Context, userID int) error
}

type Server struct {
	storage   Storage
	ozon      ozon.Client
	snapshots *engine.SnapshotCache
	config    *config.Config
	deps      *deps.Deps
}

func NewServer(storage Storage, ozonClient ozon.Client, config *config.Config, deps *deps.Deps) *Server {
	return &Server{
		storage:   storage,
		ozon:      ozonClient,
		snapshots: engine.NewSnapshotCache(),
		config:    config,
		deps:      deps,
	}
}

func (srv *Server) buildRouter() http.Handler {
	router := chi.NewRouter()
	router.Use(chiMiddleware.StripSlashes)
	router.Use(middleware.LogMiddleware(srv.deps.Logger))
	router.Use(middleware.GzipMiddleware(srv.deps.Logger))

	router.Post("/api/user/register", srv.RegisterHandler)
	router.Post("/api/user/login", srv.LoginHandler)

	// авторизованные ручки
	router.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(srv.storage, srv.deps.TokenManager))

		r.Put("/api/settings/credentials", srv.SaveCredentialsHandler)

		r.Post("/api/orders/refresh", srv.RefreshHandler)
		r.Get("/api/orders", srv.GetOrdersHandler)
		r.Get("/api/orders/groups", srv.GroupsHandler)
		r.Get("/api/orders/export", srv.ExportHandler)
		r.Post("/api/orders/packed", srv.SetPackedHandler)
		r.Post("/api/orders/processed", srv.SetProcessedHandler)
		r.Post("/api/orders/labels", srv.LabelsHandler)

		r.Get("/api/stats", srv.StatsHandler)
		r.Get("/api/stats/trend", srv.TrendHandler)

		r.Get("/api/products/images", srv.GetProductImagesHandler)
		r.Post("/api/products/images", srv.ImportProductImagesHandler)
		r.Delete("/api/products/images", srv.ClearProductImagesHandler)
		r.Delete("/api/products/images/{sku}", srv.DeleteProductImageHandler)
	})

	return router
}

func (srv *Server) Run(ctx context.Context) error {
	router := srv.buildRouter()

	server := &http.Server{
		Addr:    srv.config.RunAddress,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			srv.deps.Logger.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func (s *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials

	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if creds.Login == "" || creds.Password == "" {
		http.Error(w, "login and password required", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "hash error", http.StatusInternalServerError)
		return
	}

	err = s.storage.CreateUser(r.Context(), creds.Login, string(hash))
	if err != nil {
		if errors.Is(err, errs.ErrLoginAlreadyExists) {
			http.Error(w, "login taken", http.StatusConflict)
			return
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	user, _, err := s.storage.GetUserByLogin(r.Context(), creds.Login)
	if err != nil {
		http.Error(w, "failed to fetch user", http.StatusInternalServerError)
		return
	}

	token, err := s.deps.TokenManager.GenerateToken(user.ID)
	if err != nil {
		http.Error(w, "token error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials

	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if creds.Login == "" || creds.Password == "" {
		http.Error(w, "login and password required", http.StatusBadRequest)
		return
	}

	user, hash, err := s.storage.GetUserByLogin(r.Context(), creds.Login)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(creds.Password)); err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := s.deps.TokenManager.GenerateToken(user.ID)
	if err != nil {
		http.Error(w, "token error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) currentUser(w http.ResponseWriter, r *http.Request) (model.User, bool) {
	user, ok := r.Context().Value(middleware.UserContextKey).(model.User)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return model.User{}, false
	}
	return user, true
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
	}
}
