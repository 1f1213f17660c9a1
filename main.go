package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "campusride/internal/config"
	intdb "campusride/internal/db"
	router "campusride/internal/http"
	"campusride/internal/http/handlers"
	"campusride/internal/notify"
	"campusride/internal/otp"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db := intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	if err := intdb.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	var otpStore otp.Store
	redisStore, err := otp.NewRedisStore(env.RedisAddr)
	if err != nil {
		log.Printf("warning: redis unavailable (%v), boarding codes stay in-process", err)
		otpStore = otp.NewMemoryStore()
	} else {
		otpStore = redisStore
		defer redisStore.Close()
	}

	api := handlers.API{
		Env:      env,
		DB:       db,
		Notifier: notify.NewNotifier(notify.NewSMTPSender(env.SMTP)),
		OTP:      otpStore,
	}

	r := router.NewRouter(api)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server running on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly.")
}
