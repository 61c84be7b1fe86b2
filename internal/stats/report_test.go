package stats

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/verte-zerg/dogruyaz/internal/model"
	"github.com/verte-zerg/dogruyaz/internal/scores"
	"github.com/verte-zerg/dogruyaz/internal/store"
)

func TestBuildReport(t *testing.T) {
	ctx := context.Background()
	st := scores.New(store.NewMemory(), nil)
	st.Append(ctx, model.ScoreRecord{Date: "2024-03-01", Category: model.History, Score: 4, Total: 10, Timestamp: 1})
	st.Append(ctx, model.ScoreRecord{Date: "2024-03-02", Category: model.Spelling, Score: 9, Total: 10, Timestamp: 2})
	st.Append(ctx, model.ScoreRecord{Date: "2024-03-03", Category: model.History, Score: 7, Total: 10, Timestamp: 3})

	report := BuildReport(ctx, st, "")
	if len(report.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(report.Categories))
	}
	first := report.Categories[0]
	if first.Category != model.History || first.Average != 55 || first.Band != scores.BandMedium {
		t.Fatalf("unexpected first category: %+v", first)
	}
	if first.Records[0].Timestamp != 3 {
		t.Fatalf("expected most recent record first")
	}
	trend := first.Trend()
	if len(trend) != 2 || trend[0] != 40 || trend[1] != 70 {
		t.Fatalf("unexpected trend %v", trend)
	}

	only := BuildReport(ctx, st, model.Spelling)
	if len(only.Categories) != 1 || only.Categories[0].Category != model.Spelling {
		t.Fatalf("expected spelling only, got %+v", only.Categories)
	}
}

func TestRenderReport(t *testing.T) {
	report := Summarize(map[model.Category][]model.ScoreRecord{
		model.General: {
			{Date: "2024-03-09", Category: model.General, Score: 1, Total: 2, Timestamp: 9},
			{Date: "2024-03-08", Category: model.General, Score: 1, Total: 4, Timestamp: 8},
		},
	}, "")
	var buf bytes.Buffer
	if err := RenderReport(&buf, report); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Genel Kültür  Ortalama: %38", "2024-03-09   1/2    %50", "2024-03-08   1/4    %25"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderReport(&buf, Report{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.TrimSpace(buf.String()) != EmptyMessage {
		t.Fatalf("unexpected empty output %q", buf.String())
	}
}

func TestSparklineFlat(t *testing.T) {
	if got := Sparkline([]float64{50, 50, 50}); got != "+++" {
		t.Fatalf("unexpected flat sparkline %q", got)
	}
	if got := Sparkline([]float64{0, 100}); got != " @" {
		t.Fatalf("unexpected sparkline %q", got)
	}
}
