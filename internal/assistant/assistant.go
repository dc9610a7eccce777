package assistant

import (
	"context"
	"log"
	"strings"
	"time"

	"unityplan-bot/internal/llm"
	"unityplan-bot/internal/storage"
)

const systemPrompt = "You are a helpful planning assistant for productivity, goals and daily focus. " +
	"Answer concisely in Ukrainian unless asked otherwise."

// Fallback shown to the user when the completion call fails for any
// reason. The bot always replies, it never surfaces the remote error.
const Apology = "⚠️ Вибач, зараз не вдається отримати відповідь від AI."

// Service wraps an llm.Client with the fixed assistant persona. Every Ask
// is a fresh, independent request with no retained history.
type Service struct {
	llmClient llm.Client
	recorder  storage.Recorder
}

func New(llmClient llm.Client, recorder storage.Recorder) *Service {
	return &Service{llmClient: llmClient, recorder: recorder}
}

func (s *Service) Ask(ctx context.Context, userID int64, prompt string) string {
	messages := []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: prompt},
	}

	resp, err := s.llmClient.Generate(ctx, messages)
	if err != nil {
		log.Printf("completion failed for user %d: %v", userID, err)
		s.record(userID, prompt, Apology, true)
		return Apology
	}

	log.Printf("LLM response [model=%s, tokens: prompt=%d, completion=%d, total=%d]",
		resp.Model, resp.PromptTokens, resp.CompletionTokens, resp.TotalTokens)

	answer := strings.TrimSpace(resp.Content)
	s.record(userID, prompt, answer, false)
	return answer
}

func (s *Service) record(userID int64, question, answer string, failed bool) {
	if s.recorder == nil {
		return
	}
	ev := storage.Event{
		Timestamp: time.Now().UTC(),
		UserID:    userID,
		Question:  question,
		Answer:    answer,
		Failed:    failed,
	}
	if err := s.recorder.AppendInteraction(ev); err != nil {
		log.Printf("failed to record ask event: %v", err)
	}
}
