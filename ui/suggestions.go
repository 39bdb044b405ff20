package ui

import (
	"sort"
	"strings"
	"time"

	shared "ripple-shared"
)

const (
	// SuggestionInitialCount is how many suggestions are shown at first.
	SuggestionInitialCount = 10

	// SuggestionIncrement is how many more are revealed per load-more.
	SuggestionIncrement = 3

	// SuggestionSearchDebounce is how long search input must be idle
	// before the filter is applied.
	SuggestionSearchDebounce = 300 * time.Millisecond
)

// SuggestionList is the who-to-follow sidebar state: the full candidate
// pool, a case-insensitive name/username filter, and a display window that grows in
// fixed increments. Changing the search term resets the window.
type SuggestionList struct {
	candidates []shared.User
	followed   map[int64]bool

	search       string
	filtered     []shared.User
	displayCount int
}

// NewSuggestionList builds the sidebar state from the full user list.
// The signed-in user and anyone already followed are excluded up front.
func NewSuggestionList(selfId int64, users []shared.User, followedIds []int64) *SuggestionList {
	followed := make(map[int64]bool, len(followedIds))
	for _, id := range followedIds {
		followed[id] = true
	}

	var candidates []shared.User
	for _, u := range users {
		if u.UserId == selfId || followed[u.UserId] {
			continue
		}
		candidates = append(candidates, u)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return strings.ToLower(candidates[i].FullName()) < strings.ToLower(candidates[j].FullName())
	})

	l := &SuggestionList{
		candidates:   candidates,
		followed:     followed,
		displayCount: SuggestionInitialCount,
	}
	l.applyFilter()

	return l
}

// SetSearch applies a new search term. Setting the same term again
// (ignoring surrounding whitespace) is a no-op and keeps the current
// window. A changed term re-filters and resets the window to the initial
// count. Returns whether anything changed.
func (l *SuggestionList) SetSearch(term string) bool {
	term = strings.TrimSpace(term)
	if term == l.search {
		return false
	}

	l.search = term
	l.displayCount = SuggestionInitialCount
	l.applyFilter()

	return true
}

func (l *SuggestionList) applyFilter() {
	if l.search == "" {
		l.filtered = l.candidates
		return
	}

	needle := strings.ToLower(l.search)
	filtered := []shared.User{}
	for _, u := range l.candidates {
		if strings.Contains(strings.ToLower(u.FullName()), needle) ||
			strings.Contains(strings.ToLower("@"+u.UserName), needle) {
			filtered = append(filtered, u)
		}
	}
	l.filtered = filtered
}

// Displayed returns the visible window of filtered suggestions.
func (l *SuggestionList) Displayed() []shared.User {
	if len(l.filtered) <= l.displayCount {
		return l.filtered
	}
	return l.filtered[:l.displayCount]
}

// LoadMore grows the window by the increment. Returns whether more
// suggestions became visible.
func (l *SuggestionList) LoadMore() bool {
	if l.EndReached() {
		return false
	}
	l.displayCount += SuggestionIncrement
	return true
}

// EndReached reports whether every filtered suggestion is already visible.
func (l *SuggestionList) EndReached() bool {
	return len(l.filtered) <= l.displayCount
}

// MarkFollowed removes a user from the pool after a successful follow so
// they stop being suggested.
func (l *SuggestionList) MarkFollowed(userId int64) {
	l.followed[userId] = true

	for i, u := range l.candidates {
		if u.UserId == userId {
			l.candidates = append(l.candidates[:i:i], l.candidates[i+1:]...)
			break
		}
	}
	l.applyFilter()
}

// Search returns the active (trimmed) search term.
func (l *SuggestionList) Search() string {
	return l.search
}
