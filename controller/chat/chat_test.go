package chat

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
)

var upstreamDown atomic.Bool

// TestMain starts a stub chatbot space and points the shared client at it
// before any handler runs, since the client is created lazily on first use.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	mux := http.NewServeMux()
	mux.HandleFunc("/gradio_api/call/ask_chatbot", func(w http.ResponseWriter, r *http.Request) {
		if upstreamDown.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"event_id":"ev1"}`)
	})
	mux.HandleFunc("/gradio_api/call/ask_chatbot/ev1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "event: complete\ndata: [\"Use the report form for potholes.\"]\n\n")
	})
	mux.HandleFunc("/config", func(w http.ResponseWriter, r *http.Request) {
		if upstreamDown.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, "{}")
	})

	stub := httptest.NewServer(mux)
	os.Setenv("CHATBOT_SPACE_URL", stub.URL)

	code := m.Run()
	stub.Close()
	os.Exit(code)
}

func newChatRouter() *gin.Engine {
	router := gin.New()
	ChatController(router, nil, nil)
	return router
}

func performChat(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	return body
}

func TestQueryChatbot(t *testing.T) {
	conversations.Reset()
	router := newChatRouter()

	recorder := performChat(router, http.MethodPost, "/chat/query", `{"message":"How do I report a pothole?"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", recorder.Code, recorder.Body.String())
	}

	body := decodeBody(t, recorder)
	if body["response"] != "Use the report form for potholes." {
		t.Errorf("response = %v, want stub answer", body["response"])
	}
	if body["status"] != "success" {
		t.Errorf("status field = %v, want success", body["status"])
	}

	conversationID, _ := body["conversation_id"].(string)
	if !strings.HasPrefix(conversationID, "conv_") {
		t.Fatalf("conversation_id = %q, want generated conv_ id", conversationID)
	}

	messages, ok := conversations.Messages(conversationID)
	if !ok || len(messages) != 2 {
		t.Fatalf("stored conversation = %v (found %v), want 2 messages", messages, ok)
	}
	if messages[0].Role != "user" || messages[1].Role != "assistant" {
		t.Errorf("stored roles wrong: %+v", messages)
	}
}

func TestQueryChatbotKeepsConversationID(t *testing.T) {
	conversations.Reset()
	router := newChatRouter()

	recorder := performChat(router, http.MethodPost, "/chat/query", `{"message":"hello","conversation_id":"ticket-42"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}
	if body := decodeBody(t, recorder); body["conversation_id"] != "ticket-42" {
		t.Errorf("conversation_id = %v, want ticket-42", body["conversation_id"])
	}
}

func TestQueryChatbotEmptyMessage(t *testing.T) {
	router := newChatRouter()

	for _, payload := range []string{`{}`, `{"message":"   "}`} {
		recorder := performChat(router, http.MethodPost, "/chat/query", payload)
		if recorder.Code != http.StatusBadRequest {
			t.Errorf("status for %s = %d, want 400", payload, recorder.Code)
		}
	}
}

func TestQueryChatbotUpstreamDown(t *testing.T) {
	conversations.Reset()
	upstreamDown.Store(true)
	defer upstreamDown.Store(false)

	router := newChatRouter()
	recorder := performChat(router, http.MethodPost, "/chat/query", `{"message":"hello"}`)
	if recorder.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", recorder.Code)
	}
}

func TestConversationEndpoints(t *testing.T) {
	conversations.Reset()
	router := newChatRouter()

	recorder := performChat(router, http.MethodGet, "/chat/conversation/nope", "")
	if recorder.Code != http.StatusNotFound {
		t.Errorf("GET unknown conversation = %d, want 404", recorder.Code)
	}

	conversations.Append("c1", "user", "hello")
	recorder = performChat(router, http.MethodGet, "/chat/conversation/c1", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("GET conversation = %d, want 200", recorder.Code)
	}
	body := decodeBody(t, recorder)
	if body["conversation_id"] != "c1" {
		t.Errorf("conversation_id = %v, want c1", body["conversation_id"])
	}

	recorder = performChat(router, http.MethodDelete, "/chat/conversation/c1", "")
	if recorder.Code != http.StatusOK {
		t.Errorf("DELETE conversation = %d, want 200", recorder.Code)
	}
	recorder = performChat(router, http.MethodDelete, "/chat/conversation/c1", "")
	if recorder.Code != http.StatusNotFound {
		t.Errorf("DELETE deleted conversation = %d, want 404", recorder.Code)
	}

	conversations.Append("c2", "user", "hello")
	recorder = performChat(router, http.MethodPost, "/chat/reset", "")
	if recorder.Code != http.StatusOK {
		t.Errorf("POST reset = %d, want 200", recorder.Code)
	}
	if conversations.Len() != 0 {
		t.Errorf("store length after reset = %d, want 0", conversations.Len())
	}
}

func TestChatbotHealthEndpoint(t *testing.T) {
	router := newChatRouter()

	recorder := performChat(router, http.MethodGet, "/chat/health", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}
	if body := decodeBody(t, recorder); body["connected"] != true {
		t.Errorf("connected = %v, want true", body["connected"])
	}

	upstreamDown.Store(true)
	defer upstreamDown.Store(false)

	recorder = performChat(router, http.MethodGet, "/chat/health", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even when unhealthy", recorder.Code)
	}
	if body := decodeBody(t, recorder); body["connected"] != false {
		t.Errorf("connected = %v, want false when upstream is down", body["connected"])
	}
}
