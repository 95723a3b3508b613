package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/warriorcenter/cms-api/internal/adapters/handler/http"
	"github.com/warriorcenter/cms-api/internal/adapters/mail/smtp"
	"github.com/warriorcenter/cms-api/internal/adapters/media/disk"
	"github.com/warriorcenter/cms-api/internal/adapters/repository/postgres"
	"github.com/warriorcenter/cms-api/internal/adapters/token"
	"github.com/warriorcenter/cms-api/internal/config"
	"github.com/warriorcenter/cms-api/internal/core/services"
	"github.com/warriorcenter/cms-api/internal/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal(err)
	}

	l := logger.New(cfg.LogLevel)

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		l.Fatal("failed to open database", "error", err.Error())
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		l.Fatal("failed to connect to the database", "error", err.Error())
	}

	media, err := disk.New(cfg.MediaDir)
	if err != nil {
		l.Fatal("failed to set up media storage", "error", err.Error())
	}

	userRepo := postgres.NewUserRepository(db)
	sermonRepo := postgres.NewSermonRepository(db)
	eventRepo := postgres.NewEventRepository(db)

	tokens := token.NewJWT(cfg.JWT.Secret)
	mail := smtp.New(cfg.SMTP, cfg.Mail.From)

	userService := services.NewUserService(userRepo, tokens, mail, cfg.Mail.Admin, l)
	sermonService := services.NewSermonService(sermonRepo, media, l)
	eventService := services.NewEventService(eventRepo)

	handler := http.NewHandler(
		http.NewUserHandler(userService),
		http.NewSermonHandler(sermonService),
		http.NewEventHandler(eventService),
		tokens,
		cfg.MediaDir,
	)

	server := &stdhttp.Server{Addr: "0.0.0.0:" + cfg.Port, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		l.Info("listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			l.Fatal("server error", "error", err.Error())
		}
	}()

	<-ctx.Done()
	l.Info("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		l.Fatal("shutdown error", "error", err.Error())
	}
}
