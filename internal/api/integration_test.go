package api

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/altin/recipe-tui/internal/config"
)

func TestIntegrationSearchAndLookup(t *testing.T) {
	if os.Getenv("RECIPE_TUI_INTEGRATION") == "" {
		t.Skip("Set RECIPE_TUI_INTEGRATION=1 to run integration tests")
	}

	client, err := NewClient(Options{BaseURL: config.DefaultBaseURL, Timeout: 10 * time.Second})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	ctx := context.Background()

	results, err := client.SearchByName(ctx, "Arrabiata")
	if err != nil {
		t.Fatalf("SearchByName: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least 1 meal")
	}

	detail, err := client.LookupByID(ctx, results[0].ID)
	if err != nil {
		t.Fatalf("LookupByID: %v", err)
	}
	t.Logf("%s: %d ingredients", detail.Name, len(detail.Ingredients()))
	for _, ing := range detail.Ingredients() {
		t.Logf("  %s", ing)
	}
}

func TestIntegrationCategories(t *testing.T) {
	if os.Getenv("RECIPE_TUI_INTEGRATION") == "" {
		t.Skip("Set RECIPE_TUI_INTEGRATION=1 to run integration tests")
	}

	client, err := NewClient(Options{BaseURL: config.DefaultBaseURL, Timeout: 10 * time.Second})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	cats, err := client.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(cats) == 0 {
		t.Error("expected categories")
	}

	meals, err := client.FilterByCategory(context.Background(), "Seafood")
	if err != nil {
		t.Fatalf("FilterByCategory: %v", err)
	}
	t.Logf("Found %d categories, %d seafood meals", len(cats), len(meals))
}
