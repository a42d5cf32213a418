package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var jwtSecret []byte // loaded from env JWT_SECRET (fallback to dev default)

func main() {
	// Load .env for local development; ignore errors when absent.
	_ = godotenv.Load()
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-insecure-secret-change" // development fallback
	}
	jwtSecret = []byte(secret)

	// Support a lightweight migrate command: `./fintrack migrate`
	// It runs AutoMigrate and seeding then exits. Useful for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		initDB()
		fmt.Println("migration and seeding completed")
		return
	}

	initDB()

	// Email dispatch goes through AMQP; without a broker URL the notifier
	// stays nil and sends are skipped.
	if url := os.Getenv("AMQP_URL"); url != "" {
		n, err := NewAMQPNotifier(url, envOr("AMQP_EXCHANGE", "fintrack"), envOr("AMQP_QUEUE", "notifications"))
		if err != nil {
			log.Fatal("failed to connect AMQP broker:", err)
		}
		defer n.Close()
		notifier = n
	} else {
		log.Println("AMQP_URL not set; email notifications disabled")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	go runReminderWorker(ctx, reminderPollInterval())

	srv := &http.Server{
		Addr:    ":" + envOr("PORT", "8081"),
		Handler: newRouter(gin.Default()),
	}
	log.Println("listening on", srv.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatal("server error:", err)
	}
	log.Println("server stopped gracefully")
}

// runServer serves until the context is cancelled, then drains in-flight
// requests before returning.
func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// envOr returns the value of the environment variable key, or def when unset.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
