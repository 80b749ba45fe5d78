package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mkraev/sellerboard/internal/errs"
	"github.com/mkraev/sellerboard/internal/model"
)

type PostgresStorage struct {
	db *pgxpool.Pool
}

func (store *PostgresStorage) initSchema(ctx context.Context) error {
	const initSchemaQuery = `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		login TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS ozon_credentials (
		user_id INT PRIMARY KEY REFERENCES users(id),
		client_id TEXT NOT NULL,
		api_key TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS order_overrides (
		user_id INT NOT NULL REFERENCES users(id),
		posting_number TEXT NOT NULL,
		packed BOOLEAN NOT NULL DEFAULT FALSE,
		processed BOOLEAN NOT NULL DEFAULT FALSE,
		updated_at TIMESTAMP DEFAULT NOW(),
		PRIMARY KEY (user_id, posting_number)
	);
	CREATE TABLE IF NOT EXISTS product_images (
		user_id INT NOT NULL REFERENCES users(id),
		sku TEXT NOT NULL,
		url TEXT NOT NULL,
		PRIMARY KEY (user_id, sku)
	);`

	_, err := store.db.Exec(ctx, initSchemaQuery)
	return err
}

func NewPostgresStorage(ctx context.Context, databaseURI string) (*PostgresStorage, error) {
	db, err := pgxpool.New(ctx, databaseURI)
	if err != nil {
		return nil, err
	}

	storage := &PostgresStorage{db: db}

	if err := storage.Ping(ctx); err != nil {
		return nil, err
	}

	if err := storage.initSchema(ctx); err != nil {
		return nil, err
	}

	return storage, nil
}

func (store *PostgresStorage) Ping(ctx context.Context) error {
	return store.db.Ping(ctx)
}

func (store *PostgresStorage) CreateUser(ctx context.Context, login string, passwordHash string) error {
	const insertUserQuery = `INSERT INTO users (login, password_hash) VALUES ($1, $2)`

	_, err := store.db.Exec(ctx, insertUserQuery, login, passwordHash)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			// 23505 — уникальное ограничение нарушено
			return errs.ErrLoginAlreadyExists
		}
		return err
	}

	return nil
}

func (s *PostgresStorage) GetUserByLogin(ctx context.Context, login string) (model.User, string, error) {
	const query = `SELECT id, login, password_hash FROM users WHERE login = $1`

	var user model.User
	var hash string

	err := s.db.QueryRow(ctx, query, login).Scan(&user.ID, &user.Login, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, "", errs.ErrUserNotFound
		}
		return model.User{}, "", fmt.Errorf("get user by login: %w", err)
	}

	return user, hash, nil
}

func (s *PostgresStorage) GetUserByID(ctx context.Context, id int) (model.User, error) {
	const query = `SELECT id, login FROM users WHERE id = $1`

	var user model.User

	err := s.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Login)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, errs.ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

func (s *PostgresStorage) SaveCredentials(ctx context.Context, userID int, creds model.OzonCredentials) error {
	const query = `
		INSERT INTO ozon_credentials (user_id, client_id, api_key)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET client_id = $2, api_key = $3, updated_at = NOW()`

	_, err := s.db.Exec(ctx, query, userID, creds.ClientID, creds.APIKey)
	if err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	return nil
}

func (s *PostgresStorage) GetCredentials(ctx context.Context, userID int) (model.OzonCredentials, error) {
	const query = `SELECT client_id, api_key FROM ozon_credentials WHERE user_id = $1`

	var creds model.OzonCredentials
	err := s.db.QueryRow(ctx, query, userID).Scan(&creds.ClientID, &creds.APIKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.OzonCredentials{}, errs.ErrCredentialsNotSet
		}
		return model.OzonCredentials{}, fmt.Errorf("get credentials: %w", err)
	}

	return creds, nil
}

func (s *PostgresStorage) GetOverrides(ctx context.Context, userID int) (map[string]model.Override, error) {
	const query = `SELECT posting_number, packed, processed FROM order_overrides WHERE user_id = $1`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get overrides: %w", err)
	}
	defer rows.Close()

	overrides := make(map[string]model.Override)
	for rows.Next() {
		var number string
		var ov model.Override
		if err := rows.Scan(&number, &ov.Packed, &ov.Processed); err != nil {
			return nil, fmt.Errorf("scan override: %w", err)
		}
		overrides[number] = ov
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration: %w", err)
	}

	return overrides, nil
}

// SetPacked выставляет флаг packed пачке отправлений в одной транзакции:
// читатель не видит частично применённый батч.
func (s *PostgresStorage) SetPacked(ctx context.Context, userID int, numbers []string, value bool) error {
	const query = `
		INSERT INTO order_overrides (user_id, posting_number, packed)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, posting_number) DO UPDATE SET packed = $3, updated_at = NOW()`

	return s.setFlag(ctx, query, userID, numbers, value)
}

// SetProcessed — то же самое для внутреннего флага processed.
func (s *PostgresStorage) SetProcessed(ctx context.Context, userID int, numbers []string, value bool) error {
	const query = `
		INSERT INTO order_overrides (user_id, posting_number, processed)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, posting_number) DO UPDATE SET processed = $3, updated_at = NOW()`

	return s.setFlag(ctx, query, userID, numbers, value)
}

func (s *PostgresStorage) setFlag(ctx context.Context, query string, userID int, numbers []string, value bool) error {
	if len(numbers) == 0 {
		return nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, number := range numbers {
		if _, err := tx.Exec(ctx, query, userID, number, value); err != nil {
			return fmt.Errorf("upsert override %s: %w", number, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func (s *PostgresStorage) GetProductImages(ctx context.Context, userID int) (map[string]string, error) {
	const query = `SELECT sku, url FROM product_images WHERE user_id = $1`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get product images: %w", err)
	}
	defer rows.Close()

	images := make(map[string]string)
	for rows.Next() {
		var sku, url string
		if err := rows.Scan(&sku, &url); err != nil {
			return nil, fmt.Errorf("scan product image: %w", err)
		}
		images[sku] = url
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration: %w", err)
	}

	return images, nil
}

func (s *PostgresStorage) SaveProductImages(ctx context.Context, userID int, images map[string]string) error {
	const query = `
		INSERT INTO product_images (user_id, sku, url)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, sku) DO UPDATE SET url = $3`

	if len(images) == 0 {
		return nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for sku, url := range images {
		if _, err := tx.Exec(ctx, query, userID, sku, url); err != nil {
			return fmt.Errorf("upsert product image %s: %w", sku, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func (s *PostgresStorage) DeleteProductImage(ctx context.Context, userID int, sku string) error {
	const query = `DELETE FROM product_images WHERE user_id = $1 AND sku = $2`

	if _, err := s.db.Exec(ctx, query, userID, sku); err != nil {
		return fmt.Errorf("delete product image: %w", err)
	}
	return nil
}

func (s *PostgresStorage) ClearProductImages(ctx context.Context, userID int) error {
	const query = `DELETE FROM product_images WHERE user_id = $1`

	if _, err := s.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("clear product images: %w", err)
	}
	return nil
}
