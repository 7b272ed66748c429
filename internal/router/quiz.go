package router

import (
	"context"
	"fmt"
	"strings"

	"mccrew-ai/internal/model"
)

type quizQuestion struct {
	Prompt  string
	Options [3]string
	Answer  int
}

var quizLetters = [3]string{"A", "B", "C"}

var quizQuestions = []quizQuestion{
	{
		Prompt:  "How long is the standard paid break on a 6+ hour shift?",
		Options: [3]string{"10 minutes", "20 minutes", "45 minutes"},
		Answer:  1,
	},
	{
		Prompt:  "You are running late for your shift. What should you do?",
		Options: [3]string{"Call the store as soon as possible", "Text a coworker", "Just arrive when you can"},
		Answer:  0,
	},
	{
		Prompt:  "Which shoes are part of the uniform?",
		Options: [3]string{"Any trainers", "Black non-slip shoes", "Open-toe sandals"},
		Answer:  1,
	},
	{
		Prompt:  "What is the rule for cleaning chemicals?",
		Options: [3]string{"Mix them for a stronger clean", "Wear PPE and never mix chemicals", "Use them without gloves if quick"},
		Answer:  1,
	},
	{
		Prompt:  "A customer asks about allergens. What do you do?",
		Options: [3]string{"Guess from memory", "Say everything is safe", "Check the allergen chart and involve a manager"},
		Answer:  2,
	},
}

func formatQuestion(i int) string {
	q := quizQuestions[i]
	var sb strings.Builder
	fmt.Fprintf(&sb, "Q%d/%d: %s", i+1, len(quizQuestions), q.Prompt)
	for j, opt := range q.Options {
		fmt.Fprintf(&sb, "\n%s) %s", quizLetters[j], opt)
	}
	return sb.String()
}

// parseQuizAnswer accepts a letter or the option text. Returns -1 when neither matches.
func parseQuizAnswer(q quizQuestion, msg string) int {
	msg = strings.TrimSpace(msg)
	msg = strings.TrimSuffix(msg, ")")
	msg = strings.TrimSuffix(msg, ".")
	for i, l := range quizLetters {
		if strings.EqualFold(msg, l) {
			return i
		}
	}
	for i, opt := range q.Options {
		if strings.EqualFold(msg, opt) {
			return i
		}
	}
	return -1
}

func (r *TopicRouter) cmdQuiz(ctx context.Context, sess *model.Session, employeeID string, args []string) string {
	if len(args) == 0 || !strings.EqualFold(args[0], "start") {
		return UsageQuiz
	}
	if sess.ConversationID == "" {
		return ReplyNeedConversation
	}

	sess.Quiz = &model.QuizState{StartedAt: r.now()}
	r.saveSession(ctx, sess)
	return ReplyQuizStarted + "\n\n" + formatQuestion(0)
}

func (r *TopicRouter) cmdQuit(ctx context.Context, sess *model.Session, employeeID string, args []string) string {
	if sess.Quiz == nil {
		return ReplyNoQuiz
	}
	reply := fmt.Sprintf(ReplyQuizQuit, sess.Quiz.Score, sess.Quiz.Index)
	sess.Quiz = nil
	r.saveSession(ctx, sess)
	return reply
}

// answerQuiz grades one answer and moves to the next question.
func (r *TopicRouter) answerQuiz(ctx context.Context, sess *model.Session, msg string) string {
	state := sess.Quiz
	if state.Index < 0 || state.Index >= len(quizQuestions) {
		sess.Quiz = nil
		r.saveSession(ctx, sess)
		return ReplyNoQuiz
	}

	q := quizQuestions[state.Index]
	choice := parseQuizAnswer(q, msg)
	if choice < 0 {
		return ReplyQuizInvalid + "\n\n" + formatQuestion(state.Index)
	}

	var verdict string
	if choice == q.Answer {
		state.Score++
		verdict = ReplyQuizCorrect
	} else {
		verdict = fmt.Sprintf(ReplyQuizWrong, quizLetters[q.Answer]+") "+q.Options[q.Answer])
	}
	state.Index++

	if state.Index >= len(quizQuestions) {
		reply := joinReplies(verdict, fmt.Sprintf(ReplyQuizComplete, state.Score, len(quizQuestions)))
		sess.Quiz = nil
		r.saveSession(ctx, sess)
		return reply
	}

	r.saveSession(ctx, sess)
	return joinReplies(verdict, formatQuestion(state.Index))
}
