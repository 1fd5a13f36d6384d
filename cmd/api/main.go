package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"keepnote/internal/config"
	"keepnote/internal/handler"
	"keepnote/internal/repository"
	"keepnote/internal/scheduler"
	"keepnote/internal/service"
	"keepnote/internal/session"
	"keepnote/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}
	if err := repository.Migrate(db, cfg.SchemaPath); err != nil {
		logger.Fatalf("Failed to apply schema: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	users := service.NewUserService(repo.Users, logger)
	categories := service.NewCategoryService(repo.Categories, logger)
	notes := service.NewNoteService(repo.Notes, logger)
	reminders := service.NewReminderService(repo.Reminders, logger)
	sessions := session.NewManager(repo.Users, repo.Sessions, cfg.SessionLifetime, logger)
	h := handler.NewHandler(users, categories, notes, reminders, sessions, logger)

	// Reminder dispatcher; disabled when no SMTP host is configured.
	if cfg.SMTPHost != "" {
		sender := email.NewSender(cfg, logger)
		dispatcher := scheduler.NewDispatcher(repo.Reminders, repo.Users, sender, logger)
		if err := dispatcher.Start(cfg.DispatchInterval); err != nil {
			logger.Fatalf("Failed to start dispatcher: %v", err)
		}
		defer dispatcher.Stop()
	} else {
		logger.Warn("SMTP_HOST not set, reminder notifications disabled")
	}

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      h.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
