package ui

import (
	"github.com/altin/recipe-tui/internal/model"
)

// Data fetched messages
type CategoriesLoadedMsg struct {
	Names []string
	Err   error
}

type SearchDoneMsg struct {
	Token   uint64
	Results []model.RecipeSummary
	Err     error
}

type DetailLoadedMsg struct {
	Token  uint64
	Recipe *model.RecipeDetail
	Err    error
}

// Action result messages
type BrowseResultMsg struct {
	URL string
	Err error
}
