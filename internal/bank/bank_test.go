package bank

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/dogruyaz/internal/model"
)

func TestDefaultBankHasEveryCategory(t *testing.T) {
	b, err := Default()
	if err != nil {
		t.Fatalf("load default bank: %v", err)
	}
	for _, cat := range model.Categories() {
		if n := len(b.Questions(cat)); n < 10 {
			t.Fatalf("expected at least 10 %s questions, got %d", cat, n)
		}
	}
	if got := len(b.Categories()); got != len(model.Categories()) {
		t.Fatalf("expected %d categories, got %d", len(model.Categories()), got)
	}
}

func TestLoadYAML(t *testing.T) {
	data := []byte(`
history:
  - id: 1
    question: "İstanbul 1453'te fethedildi."
    answer: true
    explanation: "29 Mayıs 1453."
spelling:
  - id: 1
    question: "Hangisi doğru yazılmıştır?"
    option1: "herkez"
    option2: "herkes"
    correctOption: 2
`)
	b, err := Load(data, FormatYAML)
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	if len(b.Questions(model.History)) != 1 || !b.Questions(model.History)[0].Answer {
		t.Fatalf("unexpected history questions: %+v", b.Questions(model.History))
	}
	if b.Questions(model.Spelling)[0].CorrectOption != 2 {
		t.Fatalf("unexpected spelling question: %+v", b.Questions(model.Spelling)[0])
	}
}

func TestLoadRejectsInvalidSpelling(t *testing.T) {
	data := []byte(`{"spelling":[{"id":1,"question":"?","option1":"a","option2":"b","correctOption":3}]}`)
	_, err := Load(data, FormatJSON)
	if !errors.Is(err, ErrInvalidQuestion) {
		t.Fatalf("expected ErrInvalidQuestion, got %v", err)
	}
}

func TestLoadRejectsEmptyBank(t *testing.T) {
	if _, err := Load([]byte(`{"general":[]}`), FormatJSON); !errors.Is(err, ErrEmptyBank) {
		t.Fatalf("expected ErrEmptyBank, got %v", err)
	}
}

func TestLoadFilePicksFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.yml")
	if err := os.WriteFile(path, []byte("general:\n  - question: \"Yıldırım aynı yere iki kez düşmez.\"\n    answer: false\n"), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	b, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if len(b.Questions(model.General)) != 1 {
		t.Fatalf("expected one general question")
	}
	if _, err := LoadFile(filepath.Join(dir, "bank.txt")); err == nil {
		t.Fatalf("expected error for missing/unsupported file")
	}
}

func TestCheck(t *testing.T) {
	tf := Question{Text: "q", Answer: false}
	if Check(model.General, tf, 1) {
		t.Fatalf("Doğru should be wrong for a false statement")
	}
	if !Check(model.General, tf, 2) {
		t.Fatalf("Yanlış should be right for a false statement")
	}
	sp := Question{Text: "q", Option1: "a", Option2: "b", CorrectOption: 1}
	if !Check(model.Spelling, sp, 1) || Check(model.Spelling, sp, 2) {
		t.Fatalf("unexpected spelling check result")
	}
	if got := Options(model.Spelling, sp); got != [2]string{"a", "b"} {
		t.Fatalf("unexpected spelling options: %v", got)
	}
	if got := Options(model.History, tf); got != [2]string{LabelTrue, LabelFalse} {
		t.Fatalf("unexpected boolean options: %v", got)
	}
}
