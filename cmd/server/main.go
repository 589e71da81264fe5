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

	"notable-server/internal/config"
	"notable-server/internal/handler"
	"notable-server/internal/middleware"
	"notable-server/internal/repository"
	"notable-server/internal/service"
	"notable-server/internal/uploads"
	"notable-server/internal/websocket"

	"github.com/gorilla/mux"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := repository.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	tagRepo := repository.NewTagRepository(db)
	notebookRepo := repository.NewNotebookRepository(db)
	imageRepo := repository.NewImageRepository(db)

	uploadsClient := uploads.NewClient(cfg.Uploads.APIURL, cfg.Uploads.APIKey)

	wsManager := websocket.NewManager(
		cfg.WebSocket.MaxConnPerUser,
		cfg.WebSocket.WriteWait,
		cfg.WebSocket.PongWait,
		cfg.WebSocket.PingPeriod,
	)
	go wsManager.Run()

	eventService := service.NewEventService(wsManager)

	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration, cfg.JWT.RefreshTokenExpiration)
	userService := service.NewUserService(userRepo)
	tagService := service.NewTagService(tagRepo)
	noteService := service.NewNoteService(noteRepo, imageRepo, tagService, uploadsClient, eventService)
	notebookService := service.NewNotebookService(notebookRepo)
	imageService := service.NewImageService(imageRepo, noteRepo, uploadsClient)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	noteHandler := handler.NewNoteHandler(noteService)
	tagHandler := handler.NewTagHandler(tagService)
	notebookHandler := handler.NewNotebookHandler(notebookService)
	imageHandler := handler.NewImageHandler(imageService)
	wsHandler := handler.NewWebSocketHandler(wsManager, cfg.JWT.Secret)

	r := mux.NewRouter()

	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware(
		cfg.CORS.AllowedOrigins,
		cfg.CORS.AllowedMethods,
		cfg.CORS.AllowedHeaders,
	))

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods("POST", "OPTIONS")
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST", "OPTIONS")

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware(cfg.JWT.Secret))

	protected.HandleFunc("/users/me", userHandler.GetMe).Methods("GET", "OPTIONS")

	protected.HandleFunc("/notes", noteHandler.Create).Methods("POST", "OPTIONS")
	protected.HandleFunc("/notes", noteHandler.List).Methods("GET", "OPTIONS")
	protected.HandleFunc("/notes/grouped", noteHandler.ListGrouped).Methods("GET", "OPTIONS")
	protected.HandleFunc("/notes/{id}", noteHandler.Get).Methods("GET", "OPTIONS")
	protected.HandleFunc("/notes/{id}", noteHandler.Update).Methods("PUT", "OPTIONS")
	protected.HandleFunc("/notes/{id}", noteHandler.Delete).Methods("DELETE", "OPTIONS")
	protected.HandleFunc("/notes/{id}/favorite", noteHandler.ToggleFavorite).Methods("POST", "OPTIONS")
	protected.HandleFunc("/notes/{id}/images", imageHandler.Register).Methods("POST", "OPTIONS")

	protected.HandleFunc("/images/{id}", imageHandler.Delete).Methods("DELETE", "OPTIONS")

	protected.HandleFunc("/tags", tagHandler.List).Methods("GET", "OPTIONS")

	protected.HandleFunc("/notebooks", notebookHandler.Create).Methods("POST", "OPTIONS")
	protected.HandleFunc("/notebooks", notebookHandler.List).Methods("GET", "OPTIONS")
	protected.HandleFunc("/notebooks/{id}", notebookHandler.Delete).Methods("DELETE", "OPTIONS")

	r.HandleFunc("/ws", wsHandler.HandleConnection)

	r.HandleFunc("/health", healthHandler).Methods("GET")

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting notable-server on %s (env: %s, db: %s)", addr, cfg.Server.Env, cfg.Database.Driver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"notable-server"}`))
}
