// Package bank loads the question bank.
package bank

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/dogruyaz/internal/model"
)

//go:embed questions.json
var defaultBank []byte

// Format names a bank file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Answer labels for boolean questions.
const (
	LabelTrue  = "Doğru"
	LabelFalse = "Yanlış"
)

var (
	// ErrEmptyBank is returned when a bank holds no questions at all.
	ErrEmptyBank = errors.New("question bank is empty")
	// ErrInvalidQuestion wraps per-question validation failures.
	ErrInvalidQuestion = errors.New("invalid question")
)

// Question is one bank entry. Spelling questions use the two options and
// CorrectOption; every other category uses Answer.
type Question struct {
	ID            int    `json:"id" yaml:"id"`
	Text          string `json:"question" yaml:"question"`
	Answer        bool   `json:"answer,omitempty" yaml:"answer,omitempty"`
	Option1       string `json:"option1,omitempty" yaml:"option1,omitempty"`
	Option2       string `json:"option2,omitempty" yaml:"option2,omitempty"`
	CorrectOption int    `json:"correctOption,omitempty" yaml:"correctOption,omitempty"`
	Explanation   string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// Bank maps categories to their ordered questions.
type Bank map[model.Category][]Question

// Default returns the bundled question bank.
func Default() (Bank, error) {
	return Load(defaultBank, FormatJSON)
}

// LoadFile reads a bank from path, choosing the format by extension.
func LoadFile(path string) (Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		format = FormatJSON
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		return nil, fmt.Errorf("unsupported question bank extension %q", filepath.Ext(path))
	}
	b, err := Load(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Load decodes and validates a bank.
func Load(data []byte, format Format) (Bank, error) {
	raw := map[string][]Question{}
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to decode question bank: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to decode question bank: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown question bank format %q", format)
	}

	b := make(Bank, len(raw))
	count := 0
	for key, questions := range raw {
		cat := model.Category(strings.ToLower(strings.TrimSpace(key)))
		for i, q := range questions {
			if err := validate(cat, q); err != nil {
				return nil, fmt.Errorf("%s question %d: %w", cat, i+1, err)
			}
		}
		b[cat] = append(b[cat], questions...)
		count += len(questions)
	}
	if count == 0 {
		return nil, ErrEmptyBank
	}
	return b, nil
}

func validate(cat model.Category, q Question) error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("%w: missing question text", ErrInvalidQuestion)
	}
	if !IsTwoOption(cat) {
		return nil
	}
	if strings.TrimSpace(q.Option1) == "" || strings.TrimSpace(q.Option2) == "" {
		return fmt.Errorf("%w: spelling question needs option1 and option2", ErrInvalidQuestion)
	}
	if q.CorrectOption != 1 && q.CorrectOption != 2 {
		return fmt.Errorf("%w: correctOption must be 1 or 2, got %d", ErrInvalidQuestion, q.CorrectOption)
	}
	return nil
}

// Questions returns the questions of a category in bank order.
func (b Bank) Questions(cat model.Category) []Question {
	return b[cat]
}

// Categories returns the known categories present in the bank, in display order.
func (b Bank) Categories() []model.Category {
	var out []model.Category
	for _, cat := range model.Categories() {
		if len(b[cat]) > 0 {
			out = append(out, cat)
		}
	}
	return out
}

// IsTwoOption reports whether a category asks to pick one of two spellings.
func IsTwoOption(cat model.Category) bool {
	return cat == model.Spelling
}

// Options returns the two answer labels shown for q. Choice 1 is the first label.
func Options(cat model.Category, q Question) [2]string {
	if IsTwoOption(cat) {
		return [2]string{q.Option1, q.Option2}
	}
	return [2]string{LabelTrue, LabelFalse}
}

// Check reports whether choice (1 or 2) answers q correctly.
func Check(cat model.Category, q Question, choice int) bool {
	if IsTwoOption(cat) {
		return choice == q.CorrectOption
	}
	switch choice {
	case 1:
		return q.Answer
	case 2:
		return !q.Answer
	default:
		return false
	}
}
