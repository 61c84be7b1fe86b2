// Package stats contains score aggregation and text reporting.
package stats

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/verte-zerg/dogruyaz/internal/model"
	"github.com/verte-zerg/dogruyaz/internal/scores"
)

// EmptyMessage is shown when no scores are stored.
const EmptyMessage = "Henüz skor kaydedilmemiş"

// CategoryReport summarizes one category's history.
type CategoryReport struct {
	Category model.Category
	Average  int
	Band     scores.Band
	Records  []model.ScoreRecord
}

// Report contains precomputed data for score rendering.
type Report struct {
	Categories []CategoryReport
}

// Empty reports whether there is nothing to show.
func (r Report) Empty() bool {
	return len(r.Categories) == 0
}

// Loader is the read side of the score store.
type Loader interface {
	LoadGrouped(ctx context.Context) map[model.Category][]model.ScoreRecord
}

// BuildReport loads grouped scores and prepares them for rendering. A non-empty
// only restricts the report to that category.
func BuildReport(ctx context.Context, st Loader, only model.Category) Report {
	return Summarize(st.LoadGrouped(ctx), only)
}

// Summarize orders categories by most recent activity and computes averages.
func Summarize(grouped map[model.Category][]model.ScoreRecord, only model.Category) Report {
	var report Report
	for cat, records := range grouped {
		if len(records) == 0 {
			continue
		}
		if only != "" && cat != only {
			continue
		}
		avg := scores.AveragePercentage(records)
		report.Categories = append(report.Categories, CategoryReport{
			Category: cat,
			Average:  avg,
			Band:     scores.BandFor(avg),
			Records:  records,
		})
	}
	sort.Slice(report.Categories, func(i, j int) bool {
		a, b := report.Categories[i], report.Categories[j]
		if a.Records[0].Timestamp == b.Records[0].Timestamp {
			return a.Category < b.Category
		}
		return a.Records[0].Timestamp > b.Records[0].Timestamp
	})
	return report
}

// Trend returns record percentages from oldest to newest.
func (c CategoryReport) Trend() []float64 {
	out := make([]float64, len(c.Records))
	for i, rec := range c.Records {
		out[len(c.Records)-1-i] = float64(scores.Percentage(rec))
	}
	return out
}

// RenderReport prints one section per category.
func RenderReport(w io.Writer, report Report) error {
	if report.Empty() {
		_, err := fmt.Fprintln(w, EmptyMessage)
		return err
	}
	for _, cat := range report.Categories {
		if _, err := fmt.Fprintf(w, "%s  Ortalama: %%%d  [%s]\n", cat.Category.Name(), cat.Average, Sparkline(cat.Trend())); err != nil {
			return err
		}
		rows := make([][]string, 0, len(cat.Records))
		for _, rec := range cat.Records {
			rows = append(rows, []string{
				rec.Date,
				fmt.Sprintf("%d/%d", rec.Score, rec.Total),
				fmt.Sprintf("%%%d", scores.Percentage(rec)),
			})
		}
		lines := formatTable([]string{"Tarih", "Skor", "Yüzde"}, rows, map[int]bool{1: true, 2: true})
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, ""); err != nil {
			return err
		}
	}
	return nil
}
