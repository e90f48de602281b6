package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bigwigmedia/bigwig-backend/internal/infra/database"
	"github.com/bigwigmedia/bigwig-backend/internal/infra/http/handlers"
	"github.com/bigwigmedia/bigwig-backend/internal/infra/http/middleware"
	"github.com/bigwigmedia/bigwig-backend/internal/infra/mail"
	"github.com/bigwigmedia/bigwig-backend/internal/infra/otp"
	"github.com/bigwigmedia/bigwig-backend/internal/infra/queue"
	"github.com/bigwigmedia/bigwig-backend/internal/infra/worker"
	"github.com/bigwigmedia/bigwig-backend/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("❌ Database connection failed: %v", err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatalf("❌ RabbitMQ connection failed: %v", err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	subscriberRepo := database.NewSubscriberRepository(db)
	newsletterRepo := database.NewNewsletterRepository(db)

	// 2. Gateways and adapters
	mailPort, _ := strconv.Atoi(envOr("MAIL_PORT", "587"))
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort,
		os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		envOr("MAIL_FROM", "no-reply@bigwigmedia.in"),
	)
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	otpTTLMinutes, _ := strconv.Atoi(envOr("OTP_TTL_MINUTES", "10"))
	sessions := otp.NewStore(time.Duration(otpTTLMinutes) * time.Minute)

	// 3. UseCases
	sendOTPUC := usecase.NewSendOTPUseCase(
		leadRepo, sessions, mailSender,
		time.Duration(otpTTLMinutes)*time.Minute,
		envOr("OTP_RESEND_POLICY", usecase.ResendPolicyReplace),
	)
	verifyOTPUC := usecase.NewVerifyOTPUseCase(
		leadRepo, sessions, mailSender,
		envOr("LEAD_NOTIFY_EMAIL", "chandan@bigwigmedia.in"),
	)
	statsUC := usecase.NewLeadStatsUseCase(leadRepo)
	sendNewsletterUC := usecase.NewSendNewsletterUseCase(subscriberRepo, newsletterRepo, producer)
	deliverUC := usecase.NewDeliverNewsletterUseCase(newsletterRepo, mailSender)
	subscribeUC := usecase.NewSubscribeUseCase(subscriberRepo, mailSender, os.Getenv("FRONTEND_URL"))

	// 4. Background workers: queue consumer + stale-dispatch reaper
	dispatchWorker := queue.NewWorker(rabbitMQ.Ch, deliverUC)
	go dispatchWorker.Start(queue.QueueName)

	reaper := worker.NewDispatchReaper(db)
	go reaper.Start(context.Background())

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(sendOTPUC, verifyOTPUC, statsUC, leadRepo)
	newsletterHandler := handlers.NewNewsletterHandler(sendNewsletterUC, newsletterRepo)
	subscriberHandler := handlers.NewSubscriberHandler(subscribeUC, subscriberRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{envOr("FRONTEND_URL", "*")},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Route("/leads", func(r chi.Router) {
		r.Post("/send-otp", leadHandler.SendOTP)
		r.Post("/verify-otp", leadHandler.VerifyOTP)
		r.Get("/", leadHandler.ListLeads)
		r.Get("/last-10-days", leadHandler.LeadsLastTenDays)
	})

	r.Route("/newsletter", func(r chi.Router) {
		r.Post("/send", newsletterHandler.Send)
		r.Get("/", newsletterHandler.List)
		r.Delete("/{id}", newsletterHandler.Delete)
	})

	r.Route("/subscribers", func(r chi.Router) {
		r.Post("/subscribe", subscriberHandler.Subscribe)
		r.Get("/unsubscribe/{token}", subscriberHandler.Unsubscribe)
		r.Get("/", subscriberHandler.List)
	})

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + envOr("PORT", "8080")
	log.Printf("🔥 Bigwig backend running on port %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
