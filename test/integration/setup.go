package integration

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"

	handler "github.com/warriorcenter/cms-api/internal/adapters/handler/http"
	"github.com/warriorcenter/cms-api/internal/adapters/media/disk"
	repo "github.com/warriorcenter/cms-api/internal/adapters/repository/postgres"
	"github.com/warriorcenter/cms-api/internal/adapters/token"
	"github.com/warriorcenter/cms-api/internal/core/ports"
	"github.com/warriorcenter/cms-api/internal/core/services"
	"github.com/warriorcenter/cms-api/internal/logger"
)

const testJWTSecret = "test-secret"

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	dbName := "testdb"
	user := "user"
	password := "password"

	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		fullPath := filepath.Join(dirPath, entry.Name())
		content, err := os.ReadFile(fullPath)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		_, err = db.Exec(string(content))
		if err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

// recordingMailSender captures outbound messages instead of dialing SMTP.
type recordingMailSender struct {
	mu       sync.Mutex
	messages []ports.MailMessage
}

func (s *recordingMailSender) Send(ctx context.Context, msg ports.MailMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return nil
}

func (s *recordingMailSender) sent() []ports.MailMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ports.MailMessage(nil), s.messages...)
}

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	Mail        *recordingMailSender
	Tokens      ports.TokenManager
	MediaDir    string
	DBContainer testcontainers.Container
}

func setupTestApp(t *testing.T) *TestApp {
	ctx := context.Background()
	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	err = applyMigrations(db)
	require.NoError(t, err)

	mediaDir := t.TempDir()
	media, err := disk.New(mediaDir)
	require.NoError(t, err)

	log := logger.New(0)
	mail := &recordingMailSender{}
	tokens := token.NewJWT(testJWTSecret)

	userRepo := repo.NewUserRepository(db)
	sermonRepo := repo.NewSermonRepository(db)
	eventRepo := repo.NewEventRepository(db)

	userSvc := services.NewUserService(userRepo, tokens, mail, "admin@example.com", log)
	sermonSvc := services.NewSermonService(sermonRepo, media, log)
	eventSvc := services.NewEventService(eventRepo)

	userHandler := handler.NewUserHandler(userSvc)
	sermonHandler := handler.NewSermonHandler(sermonSvc)
	eventHandler := handler.NewEventHandler(eventSvc)
	router := handler.NewHandler(userHandler, sermonHandler, eventHandler, tokens, mediaDir)

	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      server.Client(),
		Mail:        mail,
		Tokens:      tokens,
		MediaDir:    mediaDir,
		DBContainer: dbContainer,
	}
}

// createUserAndToken inserts an approved account and returns a bearer token
// for it.
func (app *TestApp) createUserAndToken(t *testing.T) string {
	t.Helper()

	userID := uuid.New()
	email := fmt.Sprintf("user-%s@example.com", userID)
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	_, err = app.DB.Exec(
		"INSERT INTO users (id, email, password_hash, is_approved) VALUES ($1, $2, $3, TRUE)",
		userID, email, string(hash),
	)
	require.NoError(t, err)

	signed, err := app.Tokens.Issue(ports.Identity{Email: email, UserID: userID})
	require.NoError(t, err)
	return signed
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}
