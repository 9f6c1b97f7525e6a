package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newChatbotStub(answer string, failCalls bool) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/gradio_api/call/ask_chatbot", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		if failCalls {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"event_id":"ev1"}`)
	})
	mux.HandleFunc("/gradio_api/call/ask_chatbot/ev1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprintf(w, "event: complete\ndata: [%q]\n\n", answer)
	})
	mux.HandleFunc("/config", func(w http.ResponseWriter, r *http.Request) {
		if failCalls {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, "{}")
	})
	return httptest.NewServer(mux)
}

func TestChatbotClientAsk(t *testing.T) {
	stub := newChatbotStub("Report potholes through the app.", false)
	defer stub.Close()

	client := NewChatbotClient(stub.URL)
	answer, err := client.Ask(context.Background(), "How do I report a pothole?")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if answer != "Report potholes through the app." {
		t.Errorf("Ask = %q, want stub answer", answer)
	}
}

func TestChatbotClientAskEmptyResult(t *testing.T) {
	stub := newChatbotStub("", false)
	defer stub.Close()

	client := NewChatbotClient(stub.URL)
	answer, err := client.Ask(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if answer != "No response generated" {
		t.Errorf("Ask with empty payload = %q, want fallback message", answer)
	}
}

func TestChatbotClientAskUpstreamError(t *testing.T) {
	stub := newChatbotStub("", true)
	defer stub.Close()

	client := NewChatbotClient(stub.URL)
	if _, err := client.Ask(context.Background(), "hello"); err == nil {
		t.Fatal("Ask must fail when the upstream rejects the call")
	}
}

func TestChatbotClientHealth(t *testing.T) {
	stub := newChatbotStub("", false)
	defer stub.Close()

	client := NewChatbotClient(stub.URL)
	if err := client.Health(context.Background()); err != nil {
		t.Fatalf("Health failed: %v", err)
	}

	down := NewChatbotClient(strings.TrimRight(stub.URL, "/") + "/missing")
	if err := down.Health(context.Background()); err == nil {
		t.Fatal("Health must fail for an unreachable space")
	}
}
