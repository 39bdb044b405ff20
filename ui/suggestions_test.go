package ui

import (
	"fmt"
	"testing"

	shared "ripple-shared"
)

func makeUsers(n int) []shared.User {
	users := make([]shared.User, 0, n)
	for i := 1; i <= n; i++ {
		users = append(users, shared.User{
			UserId:    int64(i),
			FirstName: fmt.Sprintf("User%02d", i),
			UserName:  fmt.Sprintf("user%02d", i),
		})
	}
	return users
}

func TestSuggestionWindowGrowth(t *testing.T) {
	// 40 users minus self minus 2 followed = 37 candidates
	list := NewSuggestionList(1, makeUsers(40), []int64{2, 3})

	if got := len(list.Displayed()); got != SuggestionInitialCount {
		t.Fatalf("initial window: got %d, want %d", got, SuggestionInitialCount)
	}
	if list.EndReached() {
		t.Fatal("end should not be reached with 37 candidates")
	}

	for i, want := range []int{13, 16, 19} {
		if !list.LoadMore() {
			t.Fatalf("LoadMore %d should report growth", i)
		}
		if got := len(list.Displayed()); got != want {
			t.Errorf("after LoadMore %d: got %d displayed, want %d", i, got, want)
		}
	}
}

func TestSuggestionEndReached(t *testing.T) {
	list := NewSuggestionList(1, makeUsers(40), []int64{2, 3})

	for list.LoadMore() {
	}

	if !list.EndReached() {
		t.Fatal("end should be reached once growth stops")
	}
	if got := len(list.Displayed()); got != 37 {
		t.Errorf("all candidates should be visible: got %d, want 37", got)
	}
	if list.LoadMore() {
		t.Error("LoadMore at the end should be a no-op")
	}
}

func TestSuggestionExcludesSelfAndFollowed(t *testing.T) {
	list := NewSuggestionList(1, makeUsers(12), []int64{2, 3})

	for _, u := range list.Displayed() {
		if u.UserId == 1 {
			t.Error("self should never be suggested")
		}
		if u.UserId == 2 || u.UserId == 3 {
			t.Errorf("followed user %d should not be suggested", u.UserId)
		}
	}
}

func TestSuggestionSearchResetsWindow(t *testing.T) {
	list := NewSuggestionList(1, makeUsers(40), nil)
	list.LoadMore()
	list.LoadMore()

	if !list.SetSearch("user") {
		t.Fatal("new term should report a change")
	}
	if got := len(list.Displayed()); got != SuggestionInitialCount {
		t.Errorf("window should reset on term change: got %d, want %d", got, SuggestionInitialCount)
	}
}

func TestSuggestionSearchDedupe(t *testing.T) {
	list := NewSuggestionList(1, makeUsers(40), nil)

	list.SetSearch("user")
	list.LoadMore()

	if list.SetSearch("  user  ") {
		t.Error("same term with surrounding whitespace should be a no-op")
	}
	if got := len(list.Displayed()); got != SuggestionInitialCount+SuggestionIncrement {
		t.Errorf("no-op search must keep the window: got %d", got)
	}
}

func TestSuggestionSearchFilters(t *testing.T) {
	users := makeUsers(20)
	users = append(users, shared.User{UserId: 99, FirstName: "Zelda", UserName: "zelda"})
	list := NewSuggestionList(1, users, nil)

	list.SetSearch("zelda")

	displayed := list.Displayed()
	if len(displayed) != 1 || displayed[0].UserId != 99 {
		t.Fatalf("filter should match exactly Zelda: got %v", displayed)
	}
	if !list.EndReached() {
		t.Error("a single result fits inside the window")
	}
}

func TestSuggestionSearchMatchesUsername(t *testing.T) {
	users := makeUsers(20)
	users = append(users, shared.User{UserId: 99, FirstName: "Alice", LastName: "Smith", UserName: "wonder"})
	list := NewSuggestionList(1, users, nil)

	list.SetSearch("wonder")

	displayed := list.Displayed()
	if len(displayed) != 1 || displayed[0].UserId != 99 {
		t.Fatalf("filter should match the username: got %v", displayed)
	}

	list.SetSearch("@wonder")

	displayed = list.Displayed()
	if len(displayed) != 1 || displayed[0].UserId != 99 {
		t.Fatalf("filter should match the @-prefixed handle: got %v", displayed)
	}
}

func TestSuggestionMarkFollowed(t *testing.T) {
	list := NewSuggestionList(1, makeUsers(12), nil)

	list.MarkFollowed(5)

	for _, u := range list.Displayed() {
		if u.UserId == 5 {
			t.Fatal("followed user should leave the pool")
		}
	}
}
