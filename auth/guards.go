package auth

import (
	"errors"
	"fmt"
	"os"

	"ripple-cli/term"

	shared "ripple-shared"
)

var ErrNoSession = errors.New("no session")
var ErrForbidden = errors.New("forbidden")

// MustResolveAuth gates commands that need a signed-in user. Token presence
// is the whole check--validity is only ever established by the server
// rejecting a request.
func MustResolveAuth() {
	if IsLoggedIn() {
		return
	}

	term.OutputSimpleError("You're not signed in.")
	term.PrintCmds("", "sign-in", "register")
	os.Exit(1)
}

// MustRequireGuest gates sign-in and register.
func MustRequireGuest() {
	if !IsLoggedIn() {
		return
	}

	who := "another account"
	if u := GetCurrentUser(); u != nil {
		who = "@" + u.UserName
	}
	term.OutputSimpleError("You're already signed in as %s.", who)
	term.PrintCmds("", "sign-out")
	os.Exit(1)
}

// ResolveAdmin implements the admin gate. A cached ADMIN role passes with no
// network call. A cached non-admin role fails with no network call. A token
// with no cached user triggers exactly one GetMe--the role is
// security-sensitive, so it is never assumed when the cache is empty.
func ResolveAdmin() (*shared.User, error) {
	if !IsLoggedIn() {
		return nil, ErrNoSession
	}

	if user := GetCurrentUser(); user != nil {
		if user.IsAdmin() {
			return user, nil
		}
		return nil, ErrForbidden
	}

	if apiClient == nil {
		return nil, fmt.Errorf("error resolving admin: api client not set")
	}

	me, apiErr := apiClient.GetMe()
	if apiErr != nil {
		if apiErr.Type == shared.ApiErrorTypeAuth {
			return nil, ErrNoSession
		}
		return nil, ErrForbidden
	}

	if err := SetCachedUser(me); err != nil {
		return nil, err
	}

	if me.IsAdmin() {
		return me, nil
	}
	return nil, ErrForbidden
}

// MustGetUser gates a command on a signed-in user and returns the user
// record, fetching and caching it when the cache is empty.
func MustGetUser() *shared.User {
	MustResolveAuth()

	if user := GetCurrentUser(); user != nil {
		return user
	}

	if apiClient == nil {
		term.OutputErrorAndExit("Error loading account: api client not set")
	}

	me, apiErr := apiClient.GetMe()
	if apiErr != nil {
		term.HandleApiError(apiErr)
		os.Exit(1)
	}

	if err := SetCachedUser(me); err != nil {
		term.OutputErrorAndExit("Error caching account: %v", err)
	}

	return me
}

func MustResolveAdmin() *shared.User {
	user, err := ResolveAdmin()
	if err == nil {
		return user
	}

	switch {
	case errors.Is(err, ErrNoSession):
		term.OutputSimpleError("You're not signed in.")
		term.PrintCmds("", "sign-in")
	case errors.Is(err, ErrForbidden):
		term.OutputSimpleError("Admin access required.")
	default:
		term.OutputSimpleError("Error resolving admin access: %v", err)
	}
	os.Exit(1)
	return nil
}
