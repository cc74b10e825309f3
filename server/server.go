package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/YutoSekiguchi/Lyricium/config"
	"github.com/YutoSekiguchi/Lyricium/db"
	"github.com/YutoSekiguchi/Lyricium/logger"
	"github.com/YutoSekiguchi/Lyricium/repository"
	"github.com/YutoSekiguchi/Lyricium/storage"

	"github.com/gorilla/mux"
)

// Start initializes and starts the HTTP server.
func Start() {
	cfg := config.Load()

	logger.InitLogger(logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		OutputPath: cfg.LogPath,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	})

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	if err := db.ConnectDB(cfg); err != nil {
		logger.Fatal("Failed to connect to database", logger.ErrorField(err))
	}
	defer db.DB.Close()

	if err := db.InitDB(); err != nil {
		logger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}

	if err := storage.InitMinio(cfg); err != nil {
		logger.Fatal("Failed to initialize MinIO", logger.ErrorField(err))
	}

	ensureDirExists(cfg.UploadDir)

	userRepo := repository.NewMySQLUserRepository(db.DB)
	songRepo := repository.NewMySQLSongRepository(db.DB)
	apiHandler := NewAPIHandler(userRepo, songRepo, cfg)

	server.Handler = NewRouter(apiHandler, cfg)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Server starting", logger.String("addr", cfg.ServerAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", logger.ErrorField(err))
		}
	}()

	<-stop
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	logger.Info("Server stopped")
}

// NewRouter builds the full route table.
func NewRouter(apiHandler *APIHandler, cfg *config.Config) *mux.Router {
	router := mux.NewRouter()
	router.Use(corsMiddleware(cfg))

	router.HandleFunc("/", apiHandler.RootHandler).Methods(http.MethodGet, http.MethodOptions)

	// User endpoints
	router.HandleFunc("/users/get/all", apiHandler.GetAllUsersHandler).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/users/get/email/{email}", apiHandler.GetUserByEmailHandler).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/users/get/id/{id}", apiHandler.GetUserByIDHandler).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/users/create", apiHandler.CreateUserHandler).Methods(http.MethodPost, http.MethodOptions)

	// Song endpoints
	router.HandleFunc("/songs/get/all", apiHandler.GetAllSongsHandler).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/songs/get/id/{id}", apiHandler.GetSongByIDHandler).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/songs/get/user/{user_id}", apiHandler.GetSongsByUserIDHandler).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/songs/get/color/{color}", apiHandler.GetSongsByColorHandler).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/songs/get/chemical_name/{chemical_name}", apiHandler.GetSongsByChemicalNameHandler).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/songs/get/style/{style}", apiHandler.GetSongsByStyleHandler).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/songs/get/random", apiHandler.GetRandomSongIDHandler).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/songs/get/recent", apiHandler.GetRecentSongsHandler).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/songs/create", apiHandler.CreateSongHandler).Methods(http.MethodPost, http.MethodOptions)

	// Upload endpoint
	router.HandleFunc("/upload/audio", apiHandler.UploadAudioHandler).Methods(http.MethodPost, http.MethodOptions)

	// Static file serving, restricted to allow-listed extensions
	uploadsHandler := NewFilteredStaticHandler(cfg.UploadDir)
	router.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", uploadsHandler))

	return router
}

// corsMiddleware applies the fixed origin allow-list plus a wildcard to all
// routes.
func corsMiddleware(cfg *config.Config) mux.MiddlewareFunc {
	origins := map[string]bool{
		"http://localhost:8080": true,
		"http://localhost:7770": true,
		"http://localhost:3000": true,
		cfg.FrontendURI:         true,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origins[origin] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			} else {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, HEAD")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Range")
			w.Header().Set("Access-Control-Max-Age", "86400")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func ensureDirExists(path string) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info("Creating directory", logger.String("path", path))
		if err := os.MkdirAll(path, 0755); err != nil {
			logger.Fatal("Failed to create directory", logger.String("path", path), logger.ErrorField(err))
		}
	} else if err != nil {
		logger.Fatal("Failed to check directory", logger.String("path", path), logger.ErrorField(err))
	}
}
