package mcp

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"diario/internal/application"
	"diario/internal/domain"
)

func toolJournal() *application.Journal {
	j := application.New()
	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	j.AddCatalogItem(domain.CatalogItem{ID: "f1", Name: "Coffee", CreatedAt: created, Kind: domain.KindFood})
	j.AddCatalogItem(domain.CatalogItem{ID: "s1", Name: "Headache", CreatedAt: created, Kind: domain.KindSymptom})
	j.AddItemToDay("2026-03-02", "f1", domain.KindFood)
	j.AddItemToDay("2026-03-02", "s1", domain.KindSymptom)
	return j
}

func callReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func TestGetDayHandler(t *testing.T) {
	handler := locked(getDayHandler(toolJournal()))

	result, err := handler(context.Background(), callReq(map[string]any{"date": "2026-03-02"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := resultText(t, result)
	if !strings.Contains(text, "Coffee") || !strings.Contains(text, "Headache") {
		t.Errorf("expected day summary to name both tags, got:\n%s", text)
	}
}

// The stdio server runs tool handlers on a worker pool while the journal
// itself is single-threaded. Mixed reads and writes through the registered
// handlers must therefore serialize on the adapter's lock; this test fails
// under the race detector if that lock is dropped.
func TestHandlersSerializeJournalAccess(t *testing.T) {
	journal := toolJournal()
	setFeeling := locked(setFeelingHandler(journal))
	getDay := locked(getDayHandler(journal))

	var wg sync.WaitGroup
	for w := 0; w < 5; w++ {
		date := fmt.Sprintf("2026-03-%02d", w+2)
		wg.Add(2)
		go func() {
			defer wg.Done()
			for n := 0; n < 50; n++ {
				req := callReq(map[string]any{"date": date, "level": "Good"})
				if _, err := setFeeling(context.Background(), req); err != nil {
					t.Errorf("set_feeling: %v", err)
					return
				}
			}
		}()
		go func() {
			defer wg.Done()
			for n := 0; n < 50; n++ {
				req := callReq(map[string]any{"date": date})
				if _, err := getDay(context.Background(), req); err != nil {
					t.Errorf("get_day: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	for w := 0; w < 5; w++ {
		date := fmt.Sprintf("2026-03-%02d", w+2)
		if day := journal.SelectDayLog(date); day.Feeling != domain.FeelingGood {
			t.Errorf("expected %s feeling Good after concurrent writes, got %q", date, day.Feeling)
		}
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) == 0 {
		t.Fatal("expected a non-empty tool result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}
