// Package state holds the search and detail state machines. Transitions
// are pure: Reduce takes the current state and an event and returns the
// next state plus the request, if any, the caller must issue. Every request
// carries a token; completions whose token is no longer current are dropped
// so a slow response can never overwrite a newer one.
package state

import (
	"errors"
	"fmt"
	"strings"

	"github.com/altin/recipe-tui/internal/api"
	"github.com/altin/recipe-tui/internal/model"
)

const (
	SearchErrorMessage = "Failed to fetch recipes. Please try again."
	DetailErrorMessage = "Failed to fetch recipe details."
)

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusError
	StatusSuccess
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusSuccess:
		return "success"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// DetailMode selects whether choosing a card looks the recipe up or opens
// the summary as-is.
type DetailMode int

const (
	DetailFetch DetailMode = iota
	DetailSummary
)

func ParseDetailMode(s string) (DetailMode, error) {
	switch strings.ToLower(s) {
	case "", "fetch":
		return DetailFetch, nil
	case "summary":
		return DetailSummary, nil
	}
	return DetailFetch, fmt.Errorf("unknown detail mode %q", s)
}

type RequestKind int

const (
	RequestNone RequestKind = iota
	RequestSearchByName
	RequestFilterByCategory
	RequestLookup
)

// Request is a network call the caller should issue. Token must be echoed
// back in the matching completion event.
type Request struct {
	Kind  RequestKind
	Arg   string
	Token uint64
}

func (r Request) IsZero() bool { return r.Kind == RequestNone }

type Search struct {
	Query      string
	Category   string
	Categories []string
	Results    []model.RecipeSummary
	Loading    bool
	Err        string
	// Searched distinguishes "never searched" from "searched, found nothing".
	Searched bool

	token uint64
}

func (s Search) Status() Status {
	switch {
	case s.Loading:
		return StatusLoading
	case s.Err != "":
		return StatusError
	case s.Searched:
		return StatusSuccess
	}
	return StatusIdle
}

type Detail struct {
	Mode    DetailMode
	Recipe  *model.RecipeDetail
	Loading bool
	Err     string

	token uint64
}

func (d Detail) IsOpen() bool { return d.Recipe != nil }

type State struct {
	Search Search
	Detail Detail

	seq uint64
}

func New(mode DetailMode) State {
	return State{Detail: Detail{Mode: mode}}
}

// Loading reports whether any request is outstanding.
func (s State) Loading() bool {
	return s.Search.Loading || s.Detail.Loading
}

// CurrentSearch reports whether token belongs to the latest search request.
func (s State) CurrentSearch(token uint64) bool {
	return s.Search.token == token
}

// CurrentLookup reports whether token belongs to the latest detail lookup.
func (s State) CurrentLookup(token uint64) bool {
	return s.Detail.token == token
}

func (s *State) nextToken() uint64 {
	s.seq++
	return s.seq
}

// Event is a user action or a network completion.
type Event interface{ event() }

type QueryChanged struct{ Text string }

type CategorySelected struct{ Name string }

type SearchTriggered struct{}

type SearchCompleted struct {
	Token   uint64
	Results []model.RecipeSummary
	Err     error
}

type CategoriesLoaded struct {
	Names []string
	Err   error
}

type DetailRequested struct{ Summary model.RecipeSummary }

type DetailCompleted struct {
	Token  uint64
	Recipe *model.RecipeDetail
	Err    error
}

type DetailDismissed struct{}

func (QueryChanged) event()     {}
func (CategorySelected) event() {}
func (SearchTriggered) event()  {}
func (SearchCompleted) event()  {}
func (CategoriesLoaded) event() {}
func (DetailRequested) event()  {}
func (DetailCompleted) event()  {}
func (DetailDismissed) event()  {}

// Reduce applies e to s.
func Reduce(s State, e Event) (State, Request) {
	switch e := e.(type) {
	case QueryChanged:
		s.Search.Query = e.Text
		return s, Request{}

	case CategoriesLoaded:
		// A failed category load leaves the picker with only "All".
		if e.Err == nil {
			s.Search.Categories = e.Names
		}
		return s, Request{}

	case CategorySelected:
		s.Search.Category = e.Name
		s.Search.Query = ""
		s.Search.Results = nil
		s.Search.Err = ""
		s.Search.Searched = false
		s.Search.Loading = false
		s.Search.token = s.nextToken()
		s = dismiss(s)
		return s, Request{}

	case SearchTriggered:
		s = dismiss(s)
		token := s.nextToken()
		s.Search.token = token
		s.Search.Err = ""
		switch {
		case s.Search.Category != "":
			s.Search.Loading = true
			return s, Request{Kind: RequestFilterByCategory, Arg: s.Search.Category, Token: token}
		case strings.TrimSpace(s.Search.Query) != "":
			s.Search.Loading = true
			return s, Request{Kind: RequestSearchByName, Arg: strings.TrimSpace(s.Search.Query), Token: token}
		}
		s.Search.Loading = false
		s.Search.Results = nil
		s.Search.Searched = false
		return s, Request{}

	case SearchCompleted:
		if e.Token != s.Search.token {
			return s, Request{}
		}
		s.Search.Loading = false
		s.Search.Searched = true
		if e.Err != nil {
			s.Search.Err = SearchErrorMessage
			s.Search.Results = nil
			return s, Request{}
		}
		s.Search.Err = ""
		s.Search.Results = e.Results
		if s.Search.Results == nil {
			s.Search.Results = []model.RecipeSummary{}
		}
		return s, Request{}

	case DetailRequested:
		token := s.nextToken()
		s.Detail.token = token
		s.Detail.Err = ""
		if s.Detail.Mode == DetailSummary {
			d := e.Summary.AsDetail()
			s.Detail.Recipe = &d
			s.Detail.Loading = false
			return s, Request{}
		}
		s.Detail.Recipe = nil
		s.Detail.Loading = true
		return s, Request{Kind: RequestLookup, Arg: e.Summary.ID, Token: token}

	case DetailCompleted:
		if e.Token != s.Detail.token {
			return s, Request{}
		}
		s.Detail.Loading = false
		switch {
		case errors.Is(e.Err, api.ErrNotFound):
			s.Detail.Recipe = nil
		case e.Err != nil:
			s.Detail.Recipe = nil
			s.Detail.Err = DetailErrorMessage
		default:
			s.Detail.Recipe = e.Recipe
		}
		return s, Request{}

	case DetailDismissed:
		return dismiss(s), Request{}
	}
	return s, Request{}
}

// dismiss closes the modal and supersedes any lookup in flight.
func dismiss(s State) State {
	s.Detail.Recipe = nil
	s.Detail.Loading = false
	s.Detail.Err = ""
	s.Detail.token = s.nextToken()
	return s
}
