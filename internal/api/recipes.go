package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/altin/recipe-tui/internal/model"
)

// ListCategories returns every meal category.
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var resp model.CategoriesResponse
	if err := c.Get(ctx, "categories.php", nil, &resp); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return resp.Categories, nil
}

// SearchByName returns meals whose name matches query. A blank query
// returns no results without a request.
func (c *Client) SearchByName(ctx context.Context, query string) ([]model.RecipeSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.RecipeSummary{}, nil
	}
	var resp model.MealsResponse
	if err := c.Get(ctx, "search.php", url.Values{"s": {query}}, &resp); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	return resp.Summaries(), nil
}

// FilterByCategory returns the meals in a category. Results carry no
// instructions.
func (c *Client) FilterByCategory(ctx context.Context, category string) ([]model.RecipeSummary, error) {
	if category == "" {
		return nil, fmt.Errorf("filter by category: empty category")
	}
	var resp model.MealsResponse
	if err := c.Get(ctx, "filter.php", url.Values{"c": {category}}, &resp); err != nil {
		return nil, fmt.Errorf("filter by category %q: %w", category, err)
	}
	return resp.Summaries(), nil
}

func (c *Client) LookupByID(ctx context.Context, id string) (*model.RecipeDetail, error) {
	if id == "" {
		return nil, fmt.Errorf("lookup recipe: %w", ErrNotFound)
	}
	var resp model.MealsResponse
	if err := c.Get(ctx, "lookup.php", url.Values{"i": {id}}, &resp); err != nil {
		return nil, fmt.Errorf("lookup recipe %s: %w", id, err)
	}
	if len(resp.Meals) == 0 {
		return nil, fmt.Errorf("lookup recipe %s: %w", id, ErrNotFound)
	}
	d := resp.Meals[0].Detail()
	return &d, nil
}
