// Package game runs a single quiz session.
package game

import (
	"context"
	"errors"
	"time"

	"github.com/verte-zerg/dogruyaz/internal/bank"
	"github.com/verte-zerg/dogruyaz/internal/model"
	"github.com/verte-zerg/dogruyaz/internal/scores"
)

// DefaultQuestions is the session length.
const DefaultQuestions = 10

// Phase is the session's position in its ask/feedback cycle.
type Phase int

// Session phases.
const (
	Asking Phase = iota
	Feedback
	Finished
)

// Errors returned when a session is driven out of order.
var (
	ErrNoQuestions     = errors.New("no questions for category")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrNotAnswered     = errors.New("question not answered yet")
	ErrFinished        = errors.New("session already finished")
	ErrNotFinished     = errors.New("session not finished")
	ErrInvalidChoice   = errors.New("choice must be 1 or 2")
	ErrAlreadySaved    = errors.New("session already saved")
)

// Recorder persists finished sessions. *scores.Store satisfies it.
type Recorder interface {
	Append(ctx context.Context, rec model.ScoreRecord)
}

// Picker selects the questions of a session.
type Picker interface {
	Pick(questions []bank.Question, count int) []bank.Question
}

// Start picks up to count questions of cat from b and opens a session.
func Start(b bank.Bank, picker Picker, cat model.Category, count int) (*Session, error) {
	questions := picker.Pick(b.Questions(cat), count)
	return NewSession(cat, questions)
}

// Session holds the state of one playthrough.
type Session struct {
	category  model.Category
	questions []bank.Question
	now       func() time.Time

	index       int
	score       int
	phase       Phase
	lastCorrect bool
	finishedAt  time.Time
	saved       bool
}

// NewSession starts a session over already-picked questions.
func NewSession(cat model.Category, questions []bank.Question) (*Session, error) {
	return NewSessionWithClock(cat, questions, time.Now)
}

// NewSessionWithClock is NewSession with an injectable clock.
func NewSessionWithClock(cat model.Category, questions []bank.Question, now func() time.Time) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Session{category: cat, questions: questions, now: now}, nil
}

// Category is the topic being played.
func (s *Session) Category() model.Category { return s.category }

// Index is the zero-based position of the current question.
func (s *Session) Index() int { return s.index }

// Total is the number of questions in the session.
func (s *Session) Total() int { return len(s.questions) }

// Score counts correct answers so far.
func (s *Session) Score() int { return s.score }

// Phase reports where the session is in its ask/feedback cycle.
func (s *Session) Phase() Phase { return s.phase }

// LastCorrect reports the outcome of the most recent answer.
func (s *Session) LastCorrect() bool { return s.lastCorrect }

// Current returns the question being asked or reviewed.
func (s *Session) Current() bank.Question {
	return s.questions[s.index]
}

// Options returns the two answer labels of the current question.
func (s *Session) Options() [2]string {
	return bank.Options(s.category, s.Current())
}

// Answer records choice (1 or 2) for the current question.
func (s *Session) Answer(choice int) (bool, error) {
	switch s.phase {
	case Finished:
		return false, ErrFinished
	case Feedback:
		return false, ErrAlreadyAnswered
	}
	if choice != 1 && choice != 2 {
		return false, ErrInvalidChoice
	}
	correct := bank.Check(s.category, s.Current(), choice)
	if correct {
		s.score++
	}
	s.lastCorrect = correct
	s.phase = Feedback
	return correct, nil
}

// Next advances past the feedback. It returns true when the session is over.
func (s *Session) Next() (bool, error) {
	switch s.phase {
	case Finished:
		return true, ErrFinished
	case Asking:
		return false, ErrNotAnswered
	}
	if s.index < len(s.questions)-1 {
		s.index++
		s.phase = Asking
		s.lastCorrect = false
		return false, nil
	}
	s.phase = Finished
	s.finishedAt = s.now()
	return true, nil
}

// Percentage is the rounded share of correct answers.
func (s *Session) Percentage() int {
	return scores.PercentOf(s.score, len(s.questions))
}

// Record builds the score record of a finished session.
func (s *Session) Record() (model.ScoreRecord, error) {
	if s.phase != Finished {
		return model.ScoreRecord{}, ErrNotFinished
	}
	return model.ScoreRecord{
		Date:      s.finishedAt.UTC().Format("2006-01-02"),
		Category:  s.category,
		Score:     s.score,
		Total:     len(s.questions),
		Timestamp: s.finishedAt.UnixMilli(),
	}, nil
}

// Save appends the session's record to r. It succeeds at most once.
func (s *Session) Save(ctx context.Context, r Recorder) (model.ScoreRecord, error) {
	if s.saved {
		return model.ScoreRecord{}, ErrAlreadySaved
	}
	rec, err := s.Record()
	if err != nil {
		return model.ScoreRecord{}, err
	}
	r.Append(ctx, rec)
	s.saved = true
	return rec, nil
}

// ResultMessage returns the closing remark for a final percentage.
func ResultMessage(pct int) string {
	switch {
	case pct >= 80:
		return "Mükemmel! Harika bir performans!"
	case pct >= 60:
		return "İyi iş çıkardın!"
	default:
		return "Biraz daha pratik yapmalısın."
	}
}
