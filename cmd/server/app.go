package main

import (
	"net/http"

	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/auth"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/handlers"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/httpx"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/services"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/store"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux *http.ServeMux
}

// NewApp wires the handlers over whichever backend main selected.
// Everything below the handlers depends only on the store interfaces,
// so the two backends are interchangeable here.
func NewApp(backend store.Backend, jwtSecret string) *App {
	app := &App{mux: http.NewServeMux()}

	ah := handlers.NewAuthHandler(backend.Users(), jwtSecret)
	ch := handlers.NewCariHandler(backend.Cariler())
	fh := handlers.NewFaturaHandler(backend.Faturalar())
	ih := handlers.NewFinansalHandler(backend.Finansal())
	rh := handlers.NewRaporHandler(
		services.NewRaporService(backend.Faturalar(), backend.Finansal(), backend.Cariler()))

	requireAuth := auth.Middleware(jwtSecret)

	// Public routes
	app.mux.HandleFunc("POST /api/auth/login", ah.Login)
	app.mux.HandleFunc("POST /api/auth/register", ah.Register)
	app.mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "OK", "message": "Server is running"})
	})

	// Counterparties
	app.mux.Handle("GET /api/cari", requireAuth(http.HandlerFunc(ch.List)))
	app.mux.Handle("GET /api/cari/{id}", requireAuth(http.HandlerFunc(ch.Get)))
	app.mux.Handle("POST /api/cari", requireAuth(http.HandlerFunc(ch.Create)))
	app.mux.Handle("PUT /api/cari/{id}", requireAuth(http.HandlerFunc(ch.Update)))
	app.mux.Handle("DELETE /api/cari/{id}", requireAuth(http.HandlerFunc(ch.Delete)))

	// Invoices
	app.mux.Handle("GET /api/fatura", requireAuth(http.HandlerFunc(fh.List)))
	app.mux.Handle("GET /api/fatura/{id}", requireAuth(http.HandlerFunc(fh.Get)))
	app.mux.Handle("POST /api/fatura", requireAuth(http.HandlerFunc(fh.Create)))
	app.mux.Handle("PUT /api/fatura/{id}", requireAuth(http.HandlerFunc(fh.Update)))
	app.mux.Handle("DELETE /api/fatura/{id}", requireAuth(http.HandlerFunc(fh.Delete)))

	// Financial transactions
	app.mux.Handle("GET /api/finansal", requireAuth(http.HandlerFunc(ih.List)))
	app.mux.Handle("GET /api/finansal/{id}", requireAuth(http.HandlerFunc(ih.Get)))
	app.mux.Handle("POST /api/finansal", requireAuth(http.HandlerFunc(ih.Create)))
	app.mux.Handle("PUT /api/finansal/{id}", requireAuth(http.HandlerFunc(ih.Update)))
	app.mux.Handle("DELETE /api/finansal/{id}", requireAuth(http.HandlerFunc(ih.Delete)))

	// Reporting
	app.mux.Handle("GET /api/raporlama", requireAuth(http.HandlerFunc(rh.Get)))

	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}
