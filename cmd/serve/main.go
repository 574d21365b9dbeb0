// Package classification TreePlant Event Manager.
//
// Backend of the TreePlant community platform: register users, create and
// browse tree-planting events, join events and manage your own.
//
//	Version: 0.1.0
//
//	Consumes:
//	  - application/json
//
//	Produces:
//	  - application/json
//
// swagger:meta
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/treeplant/event-manager/internal/handler"
	internalLog "github.com/treeplant/event-manager/internal/log"
	"github.com/treeplant/event-manager/internal/server"
	"github.com/treeplant/event-manager/pkg/config"
	"github.com/treeplant/event-manager/pkg/event"
	"github.com/treeplant/event-manager/pkg/eventjoin"
	"github.com/treeplant/event-manager/pkg/storage"
	"github.com/treeplant/event-manager/pkg/user"

	"github.com/go-mail/mail"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	logger := slog.New(internalLog.New(slog.NewJSONHandler(os.Stdout, nil)))
	slog.SetDefault(logger)

	cfg, err := config.New()
	if err != nil {
		return err
	}

	err = handler.RegisterValidation()
	if err != nil {
		return err
	}

	db, err := storage.NewDatabase(logger, cfg.Postgresql)
	if err != nil {
		return err
	}

	dialer := mail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)

	userRepository := user.NewRepository(db)
	userService := user.NewService(logger, userRepository, dialer)
	userHandler := user.NewHandler(userService)

	eventRepository := event.NewRepository(db)
	eventService := event.NewService(eventRepository)
	eventHandler := event.NewHandler(eventService)

	eventJoinRepository := eventjoin.NewRepository(db)
	eventJoinService := eventjoin.NewService(eventJoinRepository, eventService)
	eventJoinHandler := eventjoin.NewHandler(eventJoinService)

	r := server.GetEngine(logger, userHandler, eventHandler, eventJoinHandler)

	logger.Info("Server is running", "port", cfg.Port)
	return r.Run(fmt.Sprintf(":%d", cfg.Port))
}
