package main

import (
	"net/http"

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"

	"github.com/weighlanka/backend/internal/handlers"
	"github.com/weighlanka/backend/internal/middleware"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(
		middleware.RecoverPanic(app.log),
		middleware.LogRequest(app.log),
		app.authMiddleware.Authenticate,
	)

	r := mux.NewRouter()

	r.HandleFunc("/health", handlers.Health).Methods("GET")

	r.HandleFunc("/api/admin/login", app.admin.Login).Methods("POST")
	r.HandleFunc("/api/admin/reset-password", app.admin.ResetPassword).Methods("POST")

	r.HandleFunc("/api/customers", app.customers.List).Methods("GET")
	r.HandleFunc("/api/customers", app.customers.Create).Methods("POST")
	r.HandleFunc("/api/customers/{id}", app.customers.Get).Methods("GET")
	r.HandleFunc("/api/customers/{id}", app.customers.Update).Methods("PUT")
	r.HandleFunc("/api/customers/{id}", app.customers.Delete).Methods("DELETE")

	r.HandleFunc("/api/machines", app.machines.List).Methods("GET")
	r.HandleFunc("/api/machines", app.machines.Create).Methods("POST")
	r.HandleFunc("/api/machines/customer/{id}", app.machines.ListByCustomer).Methods("GET")
	r.HandleFunc("/api/machines/{id}", app.machines.Get).Methods("GET")
	r.HandleFunc("/api/machines/{id}", app.machines.Update).Methods("PUT")
	r.HandleFunc("/api/machines/{id}", app.machines.Delete).Methods("DELETE")

	r.HandleFunc("/api/service-records", app.records.List).Methods("GET")
	r.HandleFunc("/api/service-records", app.records.Create).Methods("POST")
	r.HandleFunc("/api/service-records/customer/{id}", app.records.ListByCustomer).Methods("GET")
	r.HandleFunc("/api/service-records/report", app.records.Report).Methods("GET")
	r.HandleFunc("/api/service-records/report/csv", app.records.ReportCSV).Methods("GET")
	r.HandleFunc("/api/service-records/{id}", app.records.Get).Methods("GET")
	r.HandleFunc("/api/service-records/{id}", app.records.Update).Methods("PUT")
	r.HandleFunc("/api/service-records/{id}", app.records.Delete).Methods("DELETE")

	r.HandleFunc("/api/dashboard/summary", app.dashboard.Summary).Methods("GET")

	r.HandleFunc("/api/reminders", app.reminders.List).Methods("GET")
	r.HandleFunc("/api/reminders/csv", app.reminders.CSV).Methods("GET")

	r.HandleFunc("/api/email/test", app.email.Test).Methods("GET")

	cors := ghandlers.CORS(
		ghandlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type", "Authorization"}),
		ghandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		ghandlers.AllowedOrigins([]string{"*"}),
	)

	return standardMiddleware.Then(cors(r))
}
