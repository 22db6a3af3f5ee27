package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"mindful/config"
	"mindful/controllers"
	"mindful/middlewares"
	"mindful/services/llm"
	"mindful/services/prompts"
	"mindful/services/triage"
	"mindful/sources/psql/dao"
	"mindful/sources/psql/models"
	"mindful/utils/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type stubProvider struct {
	text string
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Generate(ctx context.Context, prompt, system string) (string, error) {
	return s.text, nil
}

// --- Helpers ---
func setupRouter(t *testing.T, rateLimit int, providers ...llm.Provider) http.Handler {
	logging.InitLogger()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Conversation{}, &models.Feedback{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	cfg := config.Config{
		SecretKey:          "test-secret",
		CrisisHotline:      "1900-9099",
		HistoryWindow:      3,
		MaxMessageLength:   1000,
		RateLimitPerMinute: rateLimit,
	}
	chain := llm.NewChain(prompts.FallbackResponse, providers...)
	ctrl := controllers.NewChatController(cfg, triage.DefaultLexicons(), chain,
		dao.NewUserDAO(db), dao.NewConversationDAO(db), dao.NewFeedbackDAO(db))
	return ChatRoutes(ctrl, controllers.NewHealthController(), cfg, middlewares.NewRateLimiter(rateLimit))
}

func postChat(handler http.Handler, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	handler := setupRouter(t, 100, &stubProvider{text: "ok"})

	for _, body := range []string{`{}`, `{"message": "   "}`, `not json`} {
		rr := postChat(handler, body, nil)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", body, rr.Code)
		}
	}
}

func TestChatRejectsOversizedMessage(t *testing.T) {
	handler := setupRouter(t, 100, &stubProvider{text: "ok"})

	long := strings.Repeat("a", 1001)
	rr := postChat(handler, `{"message": "`+long+`"}`, nil)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for oversized message, got %d", rr.Code)
	}
}

func TestChatSuccessEnvelope(t *testing.T) {
	handler := setupRouter(t, 100, &stubProvider{text: "một lời khuyên"})

	rr := postChat(handler, `{"message": "tôi bị căng thẳng"}`, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Response string `json:"response"`
			Intent   string `json:"intent"`
			IsCrisis bool   `json:"is_crisis"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if !resp.Success || resp.Data.Response != "một lời khuyên" || resp.Data.Intent != "stress" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
	if len(rr.Result().Cookies()) == 0 {
		t.Errorf("first chat must issue a session cookie")
	}
}

func TestChatHistoryFollowsSession(t *testing.T) {
	handler := setupRouter(t, 100, &stubProvider{text: "ok"})

	first := postChat(handler, `{"message": "xin chào"}`, nil)
	if first.Code != http.StatusOK {
		t.Fatalf("chat failed: %d", first.Code)
	}
	cookies := first.Result().Cookies()

	req := httptest.NewRequest("GET", "/chat/history", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("history failed: %d", rr.Code)
	}

	var resp struct {
		Data []struct {
			Message string `json:"message"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse history: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Message != "xin chào" {
		t.Errorf("expected the sent message in history, got %+v", resp.Data)
	}
}

func TestChatHistoryWithoutCookieIsEmpty(t *testing.T) {
	handler := setupRouter(t, 100, &stubProvider{text: "ok"})

	req := httptest.NewRequest("GET", "/chat/history", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp struct {
		Data []interface{} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if len(resp.Data) != 0 {
		t.Errorf("expected empty history without a session cookie")
	}
	if len(rr.Result().Cookies()) != 0 {
		t.Errorf("history must not mint a session")
	}
}

func TestFeedbackEndpoint(t *testing.T) {
	handler := setupRouter(t, 100, &stubProvider{text: "ok"})

	first := postChat(handler, `{"message": "xin chào"}`, nil)
	var chatResp struct {
		Data struct {
			ConversationID int `json:"conversation_id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(first.Body.Bytes(), &chatResp); err != nil {
		t.Fatalf("failed to parse chat response: %v", err)
	}

	req := httptest.NewRequest("POST", "/feedback",
		strings.NewReader(`{"conversation_id": `+strconv.Itoa(chatResp.Data.ConversationID)+`, "helpful": true}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	// unknown conversation
	req = httptest.NewRequest("POST", "/feedback", strings.NewReader(`{"conversation_id": 99999}`))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown conversation, got %d", rr.Code)
	}
}

func TestRateLimitReturns429(t *testing.T) {
	handler := setupRouter(t, 2, &stubProvider{text: "ok"})

	for i := 0; i < 2; i++ {
		rr := postChat(handler, `{"message": "xin chào"}`, nil)
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d should pass, got %d", i+1, rr.Code)
		}
	}
	rr := postChat(handler, `{"message": "xin chào"}`, nil)
	if rr.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429 over the limit, got %d", rr.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	handler := setupRouter(t, 100)

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "healthy") {
		t.Errorf("unexpected health body: %s", rr.Body.String())
	}
}
