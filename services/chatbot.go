package services

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

const defaultChatbotSpaceURL = "https://patientzero6969-civic-chatbot.hf.space"

const chatbotAPIName = "ask_chatbot"

// ChatbotClient talks to the hosted civic chatbot space over its HTTP call
// API. Requests carry a hard timeout so a hung upstream cannot stall a
// caller indefinitely.
type ChatbotClient struct {
	baseURL string
	http    *http.Client
}

var (
	chatbotClient *ChatbotClient
	chatbotMu     sync.Mutex
)

// GetChatbotClient returns the shared chatbot client, creating it on first
// use.
func GetChatbotClient() *ChatbotClient {
	chatbotMu.Lock()
	defer chatbotMu.Unlock()

	if chatbotClient == nil {
		baseURL := os.Getenv("CHATBOT_SPACE_URL")
		if baseURL == "" {
			baseURL = defaultChatbotSpaceURL
		}
		chatbotClient = NewChatbotClient(baseURL)
	}
	return chatbotClient
}

func NewChatbotClient(baseURL string) *ChatbotClient {
	return &ChatbotClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

func (cc *ChatbotClient) BaseURL() string {
	return cc.baseURL
}

// Ask sends a question to the chatbot space and returns its reply. The space
// exposes the two-step call API: POST the payload to obtain an event id,
// then read the result from the event stream.
func (cc *ChatbotClient) Ask(ctx context.Context, question string) (string, error) {
	payload, err := json.Marshal(map[string]interface{}{"data": []string{question}})
	if err != nil {
		return "", err
	}

	callURL := fmt.Sprintf("%s/gradio_api/call/%s", cc.baseURL, chatbotAPIName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, callURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := cc.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("chatbot call failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chatbot call returned status %d", resp.StatusCode)
	}

	var call struct {
		EventID string `json:"event_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&call); err != nil {
		return "", fmt.Errorf("invalid chatbot call response: %v", err)
	}
	if call.EventID == "" {
		return "", fmt.Errorf("chatbot call returned no event id")
	}

	return cc.readResult(ctx, call.EventID)
}

func (cc *ChatbotClient) readResult(ctx context.Context, eventID string) (string, error) {
	resultURL := fmt.Sprintf("%s/gradio_api/call/%s/%s", cc.baseURL, chatbotAPIName, eventID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resultURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := cc.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("chatbot result fetch failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chatbot result fetch returned status %d", resp.StatusCode)
	}

	// The result arrives as an event stream; the answer is the last data
	// payload before the stream closes.
	var lastData string
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "data:") {
			lastData = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("chatbot result stream failed: %v", err)
	}
	if lastData == "" || lastData == "null" {
		return "No response generated", nil
	}

	var parts []json.RawMessage
	if err := json.Unmarshal([]byte(lastData), &parts); err != nil {
		return "", fmt.Errorf("invalid chatbot result payload: %v", err)
	}
	if len(parts) == 0 {
		return "No response generated", nil
	}

	var answer string
	if err := json.Unmarshal(parts[0], &answer); err != nil {
		// Non-string outputs are passed through as their JSON rendering.
		answer = string(parts[0])
	}
	if answer == "" {
		return "No response generated", nil
	}
	return answer, nil
}

// Health probes the space's config endpoint without sending a real query.
func (cc *ChatbotClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cc.baseURL+"/config", nil)
	if err != nil {
		return err
	}

	resp, err := cc.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect to chatbot service: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("chatbot service returned status %d", resp.StatusCode)
	}
	return nil
}
