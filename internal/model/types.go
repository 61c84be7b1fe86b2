// Package model defines shared data structures.
package model

import "strings"

// Category identifies a question topic. It is persisted as its plain string key.
type Category string

// Known categories, in display order.
const (
	Spelling   Category = "spelling"
	Vocabulary Category = "vocabulary"
	General    Category = "general"
	History    Category = "history"
)

type categoryInfo struct {
	name        string
	title       string
	description string
}

var categoryInfos = map[Category]categoryInfo{
	Spelling: {
		name:        "Yazım",
		title:       "En çok yazım yanlışı yapılan kelimeler",
		description: "Türkçede sıkça yanlış yazılan kelimeleri öğrenin",
	},
	Vocabulary: {
		name:        "Kelime Bilgisi",
		title:       "Kelime bilgisi",
		description: "Kelime haznenizi geliştirin",
	},
	General: {
		name:        "Genel Kültür",
		title:       "En çok yanlış bilinen genel kültür soruları",
		description: "Genel kültür bilginizi test edin",
	},
	History: {
		name:        "Tarih",
		title:       "Tarih hakkında en çok bilinen yanlışlar",
		description: "Tarihi doğru öğrenin",
	},
}

// Categories returns the known categories in display order.
func Categories() []Category {
	return []Category{Spelling, Vocabulary, General, History}
}

// ParseCategory normalizes a key and reports whether it is a known category.
func ParseCategory(key string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(key)))
	_, ok := categoryInfos[c]
	return c, ok
}

// Known reports whether c is one of the known categories.
func (c Category) Known() bool {
	_, ok := categoryInfos[c]
	return ok
}

// Name returns the human-readable category name, or the raw key when unknown.
func (c Category) Name() string {
	if info, ok := categoryInfos[c]; ok {
		return info.name
	}
	return string(c)
}

// Title returns the long title shown on the category list.
func (c Category) Title() string {
	if info, ok := categoryInfos[c]; ok {
		return info.title
	}
	return string(c)
}

// Description returns the category blurb.
func (c Category) Description() string {
	return categoryInfos[c].description
}

// ScoreRecord is one finished game session. Field order matches the stored JSON.
type ScoreRecord struct {
	Date      string   `json:"date"`
	Category  Category `json:"category"`
	Score     int      `json:"score"`
	Total     int      `json:"total"`
	Timestamp int64    `json:"timestamp"`
}

// GameConfig defines game settings.
type GameConfig struct {
	Category  Category
	Questions int
	BankPath  string
}

// StoreConfig selects and configures the key-value backend.
type StoreConfig struct {
	Backend     string
	Path        string
	RedisAddr   string
	RedisDB     int
	RedisPrefix string
}
