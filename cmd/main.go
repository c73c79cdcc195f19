package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/weighlanka/backend/internal/auth"
	"github.com/weighlanka/backend/internal/db"
	"github.com/weighlanka/backend/internal/handlers"
	"github.com/weighlanka/backend/internal/mailer"
	"github.com/weighlanka/backend/internal/middleware"
	"github.com/weighlanka/backend/internal/scheduler"
)

type application struct {
	log            *logrus.Logger
	authService    *auth.Service
	authMiddleware *middleware.AuthMiddleware
	admin          *handlers.AdminHandler
	customers      *handlers.CustomerHandler
	machines       *handlers.MachineHandler
	records        *handlers.ServiceRecordHandler
	dashboard      *handlers.DashboardHandler
	reminders      *handlers.ReminderHandler
	email          *handlers.EmailHandler
}

func main() {
	addr := flag.String("addr", ":8080", "HTTP network address")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := db.Connect(ctx)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.WithError(err).Error("failed to disconnect from MongoDB")
		}
	}()
	log.Info("connected to MongoDB")

	database := db.Database(client)
	customers := &db.MongoCustomerCollection{Collection: database.Collection("customers")}
	machines := &db.MongoMachineCollection{Collection: database.Collection("machines")}
	records := &db.MongoServiceRecordCollection{Collection: database.Collection("service_records")}
	admins := &db.MongoAdminCollection{Collection: database.Collection("admins")}

	authService, err := auth.NewService()
	if err != nil {
		log.WithError(err).Fatal("failed to initialise auth service")
	}
	if err := authService.EnsureDefaultAdmin(ctx, admins); err != nil {
		log.WithError(err).Fatal("failed to seed default admin")
	}

	mail := mailer.New(mailer.ConfigFromEnv(), log)

	app := &application{
		log:            log,
		authService:    authService,
		authMiddleware: middleware.NewAuthMiddleware(authService),
		admin:          handlers.NewAdminHandler(authService, admins, log),
		customers:      handlers.NewCustomerHandler(customers, log),
		machines:       handlers.NewMachineHandler(machines, log),
		records:        handlers.NewServiceRecordHandler(records, customers, machines, log),
		dashboard:      handlers.NewDashboardHandler(customers, machines, records, log),
		reminders:      handlers.NewReminderHandler(customers, machines, records, log),
		email:          handlers.NewEmailHandler(mail, log),
	}

	sched := scheduler.New(records, customers, machines, mail, reminderHour(), log)
	go sched.Run(ctx)

	srv := &http.Server{
		Addr:    *addr,
		Handler: app.routes(),
	}

	go func() {
		log.WithField("addr", *addr).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}

// reminderHour reads REMINDER_HOUR, defaulting to 8 (the morning sweep).
func reminderHour() int {
	raw := os.Getenv("REMINDER_HOUR")
	if raw == "" {
		return 8
	}
	hour, err := strconv.Atoi(raw)
	if err != nil {
		return 8
	}
	return hour
}
