package routes

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"mindful/config"
	"mindful/controllers"
	"mindful/middlewares"
	"mindful/utils/logging"
	"mindful/utils/types"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ChatRoutes wires the message, history and feedback endpoints. Validation
// happens here so oversized or empty messages never reach the pipeline.
func ChatRoutes(ctrl *controllers.ChatController, healthCtrl *controllers.HealthController, cfg config.Config, limiter *middlewares.RateLimiter) chi.Router {
	r := chi.NewRouter()
	r.Use(limiter.Middleware)

	r.Mount("/health", HealthRoutes(healthCtrl))

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.Session(cfg, true))
		// POST /chat : send message
		gr.Post("/chat", func(w http.ResponseWriter, r *http.Request) {
			var req types.ChatRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, "Message is required")
				return
			}
			message := strings.TrimSpace(req.Message)
			if message == "" {
				writeError(w, http.StatusBadRequest, "Message cannot be empty")
				return
			}
			if len(message) > cfg.MaxMessageLength {
				writeError(w, http.StatusBadRequest, "Message too long (max 1000 characters)")
				return
			}

			sessionID := middlewares.SessionID(r.Context())
			result, err := ctrl.ProcessMessage(r.Context(), sessionID, message)
			if err != nil {
				logging.ErrorLogger.Error("chat error", zap.Error(err))
				writeError(w, http.StatusInternalServerError, "An error occurred processing your message")
				return
			}
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"data":    result,
			})
		})
	})

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.Session(cfg, false))
		// GET /chat/history : session's past turns, newest first
		gr.Get("/chat/history", func(w http.ResponseWriter, r *http.Request) {
			sessionID := middlewares.SessionID(r.Context())
			if sessionID == "" {
				writeJSON(w, http.StatusOK, map[string]interface{}{
					"success": true,
					"data":    []types.HistoryItem{},
				})
				return
			}

			limit := 20
			if raw := r.URL.Query().Get("limit"); raw != "" {
				if n, err := strconv.Atoi(raw); err == nil && n > 0 {
					limit = n
				}
			}
			if limit > 100 {
				limit = 100
			}

			history, err := ctrl.History(r.Context(), sessionID, limit)
			if err != nil {
				logging.ErrorLogger.Error("history error", zap.Error(err))
				writeError(w, http.StatusInternalServerError, "Failed to fetch history")
				return
			}
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"data":    history,
			})
		})
	})

	// POST /feedback : rate a past conversation
	r.Post("/feedback", func(w http.ResponseWriter, r *http.Request) {
		var req types.FeedbackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ConversationID == 0 {
			writeError(w, http.StatusBadRequest, "Conversation ID is required")
			return
		}
		if err := ctrl.SubmitFeedback(r.Context(), req); err != nil {
			if err == controllers.ErrConversationNotFound {
				writeError(w, http.StatusNotFound, "Conversation not found")
				return
			}
			logging.ErrorLogger.Error("feedback error", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to submit feedback")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Thank you for your feedback!",
		})
	})

	return r
}
