package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mindful/config"
	"mindful/controllers"
	"mindful/middlewares"
	"mindful/routes"
	"mindful/services/llm"
	"mindful/services/prompts"
	"mindful/services/triage"
	"mindful/sources/psql"
	"mindful/sources/psql/dao"
	"mindful/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	godotenv.Load()
	logging.InitLogger()
	cfg := config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	lexicons, err := triage.LoadLexicons(cfg.LexiconFile)
	if err != nil {
		logging.AppLogger.Warn("lexicon file load failed, using built-in lists",
			zap.String("file", cfg.LexiconFile), zap.Error(err))
	}

	chain := llm.NewChain(prompts.FallbackResponse, buildProviders(cfg)...)
	logging.AppLogger.Info("provider chain configured",
		zap.Int("providers", len(chain.Providers())))

	userDAO := dao.NewUserDAO(db.DB)
	convDAO := dao.NewConversationDAO(db.DB)
	feedbackDAO := dao.NewFeedbackDAO(db.DB)
	chatCtrl := controllers.NewChatController(cfg, lexicons, chain, userDAO, convDAO, feedbackDAO)
	healthCtrl := controllers.NewHealthController()
	limiter := middlewares.NewRateLimiter(cfg.RateLimitPerMinute)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogging)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	r.Mount("/api", routes.ChatRoutes(chatCtrl, healthCtrl, cfg, limiter))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}

// buildProviders constructs only the adapters that have a credential, in
// fixed priority order: Claude, then OpenAI, then Gemini. An unconfigured
// provider is skipped entirely, not tried and failed.
func buildProviders(cfg config.Config) []llm.Provider {
	var providers []llm.Provider
	if cfg.AnthropicAPIKey != "" {
		providers = append(providers, llm.NewClaudeClient(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.AIMaxTokens, cfg.AITemperature))
	}
	if cfg.OpenAIAPIKey != "" {
		providers = append(providers, llm.NewGPTClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.AIMaxTokens, cfg.AITemperature))
	}
	if cfg.GoogleAPIKey != "" {
		gemini, err := llm.NewGeminiClient(cfg.GoogleAPIKey, cfg.GoogleModel, cfg.AIMaxTokens, cfg.AITemperature)
		if err != nil {
			logging.ErrorLogger.Error("gemini client init failed", zap.Error(err))
		} else {
			providers = append(providers, gemini)
		}
	}
	return providers
}
