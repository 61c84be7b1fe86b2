// Package scores persists finished game results and aggregates them for display.
//
// The whole history lives in one key-value entry holding a JSON array of
// records. Every append rewrites the entry in full after capping each
// category to its most recent records. Storage failures are logged and never
// returned to callers.
package scores

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/verte-zerg/dogruyaz/internal/model"
	"github.com/verte-zerg/dogruyaz/internal/store"
)

const (
	// StorageKey is the key holding the serialized history.
	StorageKey = "gameScores"
	// RetentionPerCategory is how many records are kept per category.
	RetentionPerCategory = 10
)

// Store is a stateless facade over the persisted score history.
type Store struct {
	kv  store.KV
	log logrus.FieldLogger
}

// New returns a Store backed by kv. A nil logger discards output.
func New(kv store.KV, log logrus.FieldLogger) *Store {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &Store{kv: kv, log: log.WithField("key", StorageKey)}
}

// Append adds rec to the history, applies the retention cap and rewrites the
// stored value.
func (s *Store) Append(ctx context.Context, rec model.ScoreRecord) {
	data, err := s.read(ctx)
	if err != nil {
		// Writing now would overwrite history we could not see.
		s.log.WithError(err).WithField("category", rec.Category).Error("failed to read scores, score not saved")
		return
	}
	records, err := decode(data)
	if err != nil {
		// Undecodable history is replaced rather than blocking the new score.
		s.log.WithError(err).Warn("discarding unreadable score history")
		records = nil
	}
	records = append(records, rec)
	records = Retain(records, RetentionPerCategory)

	data, err = json.Marshal(records)
	if err != nil {
		s.log.WithError(err).Error("failed to encode score history")
		return
	}
	if err := s.kv.Set(ctx, StorageKey, data); err != nil {
		s.log.WithError(err).WithField("category", rec.Category).Error("failed to save score")
		return
	}
	s.log.WithFields(logrus.Fields{
		"category": rec.Category,
		"score":    rec.Score,
		"total":    rec.Total,
		"stored":   len(records),
	}).Debug("score saved")
}

// LoadGrouped returns the history grouped by category, most recent first.
func (s *Store) LoadGrouped(ctx context.Context) map[model.Category][]model.ScoreRecord {
	records, err := s.load(ctx)
	if err != nil {
		s.log.WithError(err).Warn("failed to load scores")
		return map[model.Category][]model.ScoreRecord{}
	}
	grouped := lo.GroupBy(records, func(r model.ScoreRecord) model.Category {
		return r.Category
	})
	for _, group := range grouped {
		sortRecent(group)
	}
	return grouped
}

// Reset deletes the whole history.
func (s *Store) Reset(ctx context.Context) {
	if err := s.kv.Delete(ctx, StorageKey); err != nil {
		s.log.WithError(err).Error("failed to reset scores")
		return
	}
	s.log.Info("score history reset")
}

func (s *Store) load(ctx context.Context) ([]model.ScoreRecord, error) {
	data, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return decode(data)
}

// read returns the raw stored value; an absent key yields nil.
func (s *Store) read(ctx context.Context) ([]byte, error) {
	data, ok, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", StorageKey, err)
	}
	if !ok {
		return nil, nil
	}
	return data, nil
}

// decode parses the stored array. Records are normalized to the ScoreRecord
// fields, so unknown fields are dropped on the next rewrite.
func decode(data []byte) ([]model.ScoreRecord, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var records []model.ScoreRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", StorageKey, err)
	}
	return records, nil
}

// Retain sorts records by timestamp descending and keeps at most limit
// records per category. Equal timestamps keep their input order.
func Retain(records []model.ScoreRecord, limit int) []model.ScoreRecord {
	sorted := make([]model.ScoreRecord, len(records))
	copy(sorted, records)
	sortRecent(sorted)

	kept := make([]model.ScoreRecord, 0, len(sorted))
	perCategory := map[model.Category]int{}
	for _, rec := range sorted {
		if perCategory[rec.Category] >= limit {
			continue
		}
		perCategory[rec.Category]++
		kept = append(kept, rec)
	}
	return kept
}

func sortRecent(records []model.ScoreRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp > records[j].Timestamp
	})
}

// AveragePercentage returns the rounded mean of the records' percentages.
func AveragePercentage(records []model.ScoreRecord) int {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, rec := range records {
		// Explicit conversion keeps the multiply from fusing with the add.
		sum += float64(ratio(rec.Score, rec.Total) * 100)
	}
	return roundHalfUp(sum / float64(len(records)))
}

// Percentage returns a single record's rounded percentage.
func Percentage(rec model.ScoreRecord) int {
	return PercentOf(rec.Score, rec.Total)
}

// PercentOf returns round(score/total*100); a non-positive total yields 0.
func PercentOf(score, total int) int {
	return roundHalfUp(ratio(score, total) * 100)
}

func ratio(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(score) / float64(total)
}

// roundHalfUp rounds .5 toward positive infinity.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
