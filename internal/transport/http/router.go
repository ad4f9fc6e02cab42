package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/metrovolt-api/internal/application/auth"
	"github.com/metrovolt-api/internal/application/booking"
	"github.com/metrovolt-api/internal/application/content"
	"github.com/metrovolt-api/internal/application/media"
	"github.com/metrovolt-api/internal/application/order"
	"github.com/metrovolt-api/internal/application/review"
	"github.com/metrovolt-api/internal/application/scooter"
	"github.com/metrovolt-api/internal/application/showroom"
	"github.com/metrovolt-api/internal/application/verification"
	"github.com/metrovolt-api/internal/config"
	"github.com/metrovolt-api/internal/domain"
	"github.com/metrovolt-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/metrovolt-api/internal/infrastructure/jwt"
	s3infra "github.com/metrovolt-api/internal/infrastructure/s3"
	"github.com/metrovolt-api/internal/infrastructure/smtp"
	"github.com/metrovolt-api/internal/infrastructure/sns"
	"github.com/metrovolt-api/internal/transport/http/handler"
	appmiddleware "github.com/metrovolt-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo         *dynamo.UserRepo
	VerificationRepo *dynamo.VerificationRepo
	ScooterRepo      *dynamo.ScooterRepo
	OrderRepo        *dynamo.OrderRepo
	ReviewRepo       *dynamo.ReviewRepo
	BookingRepo      *dynamo.BookingRepo
	ContentRepo      *dynamo.ContentRepo
	S3Store          *s3infra.Store
	Mailer           smtp.Mailer
	Notifier         sns.Notifier
	JWTProvider      *jwtinfra.Provider
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authMw := appmiddleware.Auth(deps.JWTProvider)
	adminMw := appmiddleware.RequireRole(domain.RoleAdmin)

	// 5 requests/second, burst of 10 — applied to sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	verificationSvc := verification.NewService(verification.ServiceDeps{
		Store:  deps.VerificationRepo,
		Mailer: deps.Mailer,
	})
	authSvc := auth.NewService(auth.ServiceDeps{
		Users:    deps.UserRepo,
		Verifier: verificationSvc,
		Signer:   deps.JWTProvider,
	})
	mediaSvc := media.NewService(deps.S3Store)
	scooterSvc := scooter.NewService(scooter.ServiceDeps{
		Store:  deps.ScooterRepo,
		Images: mediaSvc,
	})
	orderSvc := order.NewService(order.ServiceDeps{
		Store:    deps.OrderRepo,
		Catalog:  deps.ScooterRepo,
		Notifier: deps.Notifier,
	})
	reviewSvc := review.NewService(review.ServiceDeps{
		Store:     deps.ReviewRepo,
		Purchases: deps.OrderRepo,
		Users:     deps.UserRepo,
	})
	bookingSvc := booking.NewService(booking.ServiceDeps{
		Store:    deps.BookingRepo,
		Catalog:  deps.ScooterRepo,
		Mailer:   deps.Mailer,
		Notifier: deps.Notifier,
	})
	contentSvc := content.NewService(deps.ContentRepo)
	showroomSvc := showroom.NewService()

	healthH := handler.NewHealthHandler()
	otpH := handler.NewOTPHandler(verificationSvc)
	authH := handler.NewAuthHandler(authSvc)
	scooterH := handler.NewScooterHandler(scooterSvc)
	orderH := handler.NewOrderHandler(orderSvc)
	reviewH := handler.NewReviewHandler(reviewSvc)
	bookingH := handler.NewBookingHandler(bookingSvc)
	showroomH := handler.NewShowroomHandler(showroomSvc)
	contentH := handler.NewContentHandler(contentSvc, mediaSvc)

	r.Route("/api", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health", healthH.Ping)

		r.With(sensitiveRL.Limit).Post("/otp/send-otp", otpH.Send)
		r.With(sensitiveRL.Limit).Post("/otp/verify-otp", otpH.Verify)
		r.Post("/otp/check-verification", otpH.CheckVerification)

		r.With(sensitiveRL.Limit).Post("/auth/register", authH.Register)
		r.With(sensitiveRL.Limit).Post("/auth/login", authH.Login)

		r.Get("/scooters", scooterH.List)
		r.Get("/scooters/{id}", scooterH.Get)

		r.Get("/reviews", reviewH.List)
		r.Get("/reviews/{id}", reviewH.Get)

		r.Get("/showrooms", showroomH.List)
		r.Get("/showrooms/nearest", showroomH.Nearest)
		r.Get("/showrooms/{id}", showroomH.Get)

		r.Get("/content", contentH.List)
		r.Get("/content/{section}", contentH.Get)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/auth/me", authH.Me)

			r.Post("/orders", orderH.Create)
			r.Get("/orders", orderH.ListMine)
			r.Get("/orders/{id}", orderH.Get)

			r.Post("/reviews", reviewH.Create)
			r.Put("/reviews/{id}", reviewH.Update)
			r.Delete("/reviews/{id}", reviewH.Delete)

			r.Post("/bookings", bookingH.Create)
			r.Get("/bookings", bookingH.ListMine)
			r.Get("/bookings/{id}", bookingH.Get)
			r.Delete("/bookings/{id}", bookingH.Delete)

			// Admin-only routes
			r.Group(func(r chi.Router) {
				r.Use(adminMw)

				r.Post("/scooters", scooterH.Create)
				r.Put("/scooters/{id}", scooterH.Update)
				r.Delete("/scooters/{id}", scooterH.Delete)

				r.Get("/orders/all", orderH.ListAll)
				r.Put("/orders/{id}/status", orderH.UpdateStatus)
				r.Delete("/orders/{id}", orderH.Delete)

				r.Get("/bookings/all", bookingH.ListAll)
				r.Put("/bookings/{id}/status", bookingH.UpdateStatus)

				r.Put("/content/{section}", contentH.Update)
			})
		})
	})

	return r
}
