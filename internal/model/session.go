package model

import "time"

// Session is the per-conversation flow state. At most one quiz and one break
// are active per conversation.
type Session struct {
	ConversationID string
	// EmployeeID is remembered for channels without a side panel (Telegram /id).
	EmployeeID string
	Quiz       *QuizState
	Break      *BreakState
	UpdatedAt  time.Time
}

// QuizState tracks progress through the fixed quiz.
type QuizState struct {
	Index     int
	Score     int
	StartedAt time.Time
}

// BreakState is an active break timer.
type BreakState struct {
	Minutes int
	EndsAt  time.Time
}
