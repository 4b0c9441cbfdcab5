package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/klfacil/erp-backend-go/internal/handler/http/middleware"
)

func NewRouter(
	tokenAuth *jwtauth.JWTAuth,
	deviceKeyHash string,
	punchHandler PunchHandler,
	timesheetHandler TimesheetHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "klfacil-erp"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Device-Key"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Device capture flow: authenticated by shared device key
		r.Group(func(r chi.Router) {
			r.Use(middleware.DeviceKeyRequired(deviceKeyHash))
			r.Post("/punches", punchHandler.Register)
		})

		// Supervisor/admin surface
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(tokenAuth))
			r.Use(middleware.AuthRequired(tokenAuth))
			r.Use(middleware.UnitScope)

			r.Route("/punches", func(r chi.Router) {
				r.Get("/", punchHandler.List)
				r.Post("/manual", punchHandler.RegisterManual)
				r.Put("/{id}", punchHandler.Correct)
			})

			r.Route("/timesheets/{employeeID}", func(r chi.Router) {
				r.Get("/mirror", timesheetHandler.Mirror)
				r.Get("/mirror/export", timesheetHandler.Export)
			})
		})
	})
	return r
}
