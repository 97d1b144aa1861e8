package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"articlegen/internal/llm"
)

// mockClient scripts model responses for tests. The responder sees the full
// prompt and the call number, so tests can key responses off prompt content
// instead of call order (section calls may run concurrently).
type mockClient struct {
	mu      sync.Mutex
	calls   int
	prompts []string

	respond func(prompt string, call int) (string, error)
}

func (m *mockClient) Generate(_ context.Context, prompt string, _ llm.GenerationConfig) (string, error) {
	m.mu.Lock()
	call := m.calls
	m.calls++
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.respond == nil {
		return "", fmt.Errorf("unscripted model call %d", call)
	}
	return m.respond(prompt, call)
}

func (m *mockClient) Close() error { return nil }

func (m *mockClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *mockClient) recordedPrompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

// outlineJSON builds a valid outline response with the given headings.
func outlineJSON(title string, headings ...string) string {
	sections := make([]string, len(headings))
	for i, h := range headings {
		sections[i] = fmt.Sprintf(`{"heading": %q, "points": ["point a", "point b"]}`, h)
	}
	return fmt.Sprintf(`{"title": %q, "sections": [%s]}`, title, strings.Join(sections, ", "))
}

func isOutlinePrompt(prompt string) bool {
	return strings.Contains(prompt, "Return ONLY valid JSON")
}
