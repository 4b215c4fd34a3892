package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/ssqlone/ByteStash/internal/config"
	"github.com/ssqlone/ByteStash/internal/features/api_keys"
	"github.com/ssqlone/ByteStash/internal/features/audit_logs"
	"github.com/ssqlone/ByteStash/internal/features/embed"
	"github.com/ssqlone/ByteStash/internal/features/shares"
	"github.com/ssqlone/ByteStash/internal/features/snippets"
	users_controllers "github.com/ssqlone/ByteStash/internal/features/users/controllers"
	users_middleware "github.com/ssqlone/ByteStash/internal/features/users/middleware"
	users_services "github.com/ssqlone/ByteStash/internal/features/users/services"
	cache_utils "github.com/ssqlone/ByteStash/internal/util/cache"
	env_utils "github.com/ssqlone/ByteStash/internal/util/env"
	"github.com/ssqlone/ByteStash/internal/util/logger"
	_ "github.com/ssqlone/ByteStash/swagger" // swagger docs

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title ByteStash Backend API
// @version 1.0
// @description Snippet storage and sharing API

// @host localhost:5000
// @BasePath /api/v1
// @schemes http
func main() {
	log := logger.GetLogger()

	cache_utils.TestCacheConnection()

	runMigrations(log)

	go generateSwaggerDocs(log)

	gin.SetMode(gin.ReleaseMode)
	ginApp := gin.Default()

	ginApp.Use(gzip.Gzip(gzip.DefaultCompression))

	enableCors(ginApp)
	setUpRoutes(ginApp)

	startServerWithGracefulShutdown(log, ginApp)
}

func setUpRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Mount Swagger UI
	v1.GET("/docs/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	userService := users_services.GetUserService()
	apiKeyService := api_keys.GetApiKeyService()

	// Public routes
	userController := users_controllers.GetUserController()
	userController.RegisterRoutes(v1)

	// Share resolution and embed payloads are public but honor an identity
	// when one is presented (session token or API key), so requires-auth
	// links can admit logged-in callers.
	public := v1.Group("")
	public.Use(users_middleware.OptionalAuthMiddleware(userService))
	public.Use(api_keys.ApiKeyMiddleware(apiKeyService, userService))
	shares.GetShareController().RegisterPublicRoutes(public)
	embed.GetEmbedController().RegisterPublicRoutes(public)

	// Machine routes authenticate with an API key only
	machine := v1.Group("/machine")
	machine.Use(api_keys.ApiKeyMiddleware(apiKeyService, userService))
	snippets.GetMachineController().RegisterRoutes(machine)

	// Protected routes require a session
	protected := v1.Group("")
	protected.Use(users_middleware.AuthMiddleware(userService))

	userController.RegisterProtectedRoutes(protected)
	snippets.GetSnippetController().RegisterRoutes(protected)
	api_keys.GetApiKeyController().RegisterRoutes(protected)
	shares.GetShareController().RegisterRoutes(protected)
	audit_logs.GetAuditLogController().RegisterRoutes(protected)
}

func startServerWithGracefulShutdown(log *slog.Logger, app *gin.Engine) {
	host := ""
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		// for dev we bind to localhost to avoid firewall prompts
		host = "127.0.0.1"
	}

	srv := &http.Server{
		Addr:    host + ":5000",
		Handler: app,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen:", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received")

	// Give in-flight requests 10 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown:", "error", err)
	}

	log.Info("Server gracefully stopped")
}

func runMigrations(log *slog.Logger) {
	log.Info("Running database migrations...")

	cmd := exec.Command("goose", "-dir", "migrations", "up")
	cmd.Env = append(
		os.Environ(),
		"GOOSE_DRIVER=postgres",
		"GOOSE_DBSTRING="+config.GetEnv().DatabaseDsn,
	)

	cmd.Dir = config.GetEnv().BackendRootPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		log.Error("Failed to run migrations", "error", err, "output", string(output))
		os.Exit(1)
	}

	log.Info("Database migrations completed successfully")
}

// Keep in mind: docs appear after second launch, because Swagger
// is generated into Go files.
func generateSwaggerDocs(log *slog.Logger) {
	if config.GetEnv().EnvMode == env_utils.EnvModeProduction {
		return
	}

	currentDir, err := os.Getwd()
	if err != nil {
		log.Error("Failed to get current directory", "error", err)
		return
	}

	cmd := exec.Command("swag", "init", "-d", currentDir, "-g", "cmd/main.go", "-o", "swagger")

	output, err := cmd.CombinedOutput()
	if err != nil {
		log.Error("Failed to generate Swagger docs", "error", err, "output", string(output))
		return
	}

	log.Info("Swagger documentation generated successfully")
}

func enableCors(ginApp *gin.Engine) {
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		ginApp.Use(cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
			AllowHeaders: []string{
				"Origin",
				"Content-Length",
				"Content-Type",
				"Authorization",
				"Accept",
				"x-api-key",
			},
			AllowCredentials: true,
		}))
	}
}
