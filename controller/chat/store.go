package chat

import (
	"sync"
	"time"
)

type ChatEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type conversation struct {
	messages   []ChatEntry
	lastActive time.Time
}

// ConversationStore keeps chat history in process memory behind a mutex.
// Idle conversations expire after the TTL, the conversation count is capped
// with oldest-first eviction, and each conversation keeps at most
// maxMessages entries.
type ConversationStore struct {
	mu               sync.Mutex
	conversations    map[string]*conversation
	maxConversations int
	maxMessages      int
	ttl              time.Duration
}

func NewConversationStore(maxConversations, maxMessages int, ttl time.Duration) *ConversationStore {
	return &ConversationStore{
		conversations:    make(map[string]*conversation),
		maxConversations: maxConversations,
		maxMessages:      maxMessages,
		ttl:              ttl,
	}
}

// Append adds one entry to a conversation, creating it if needed.
func (s *ConversationStore) Append(id, role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		if len(s.conversations) >= s.maxConversations {
			s.evictOldestLocked()
		}
		conv = &conversation{}
		s.conversations[id] = conv
	}

	conv.messages = append(conv.messages, ChatEntry{Role: role, Content: content})
	if len(conv.messages) > s.maxMessages {
		conv.messages = conv.messages[len(conv.messages)-s.maxMessages:]
	}
	conv.lastActive = time.Now()
}

// Messages returns a copy of a conversation's entries.
func (s *ConversationStore) Messages(id string) ([]ChatEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return nil, false
	}
	messages := make([]ChatEntry, len(conv.messages))
	copy(messages, conv.messages)
	return messages, true
}

// Delete removes a conversation, reporting whether it existed.
func (s *ConversationStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conversations[id]; !ok {
		return false
	}
	delete(s.conversations, id)
	return true
}

// Reset drops every conversation.
func (s *ConversationStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations = make(map[string]*conversation)
}

// Sweep evicts conversations idle longer than the TTL and returns how many
// were removed.
func (s *ConversationStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.ttl)
	removed := 0
	for id, conv := range s.conversations {
		if conv.lastActive.Before(cutoff) {
			delete(s.conversations, id)
			removed++
		}
	}
	return removed
}

func (s *ConversationStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conversations)
}

func (s *ConversationStore) evictOldestLocked() {
	oldestID := ""
	var oldestTime time.Time
	for id, conv := range s.conversations {
		if oldestID == "" || conv.lastActive.Before(oldestTime) {
			oldestID = id
			oldestTime = conv.lastActive
		}
	}
	if oldestID != "" {
		delete(s.conversations, oldestID)
	}
}
