package auth

import (
	"errors"
	"path/filepath"
	"testing"

	"ripple-cli/fs"
	"ripple-cli/types"

	shared "ripple-shared"
)

// fakeApiClient counts GetMe calls; everything else panics if reached.
type fakeApiClient struct {
	types.ApiClient

	me        *shared.User
	meErr     *shared.ApiError
	getMeCall int
}

func (f *fakeApiClient) GetMe() (*shared.User, *shared.ApiError) {
	f.getMeCall++
	return f.me, f.meErr
}

func setupGuardTest(t *testing.T, current *shared.ClientAuth, cached *shared.User, client *fakeApiClient) {
	t.Helper()

	dir := t.TempDir()
	prevAuthPath, prevUserPath := fs.AuthPath, fs.UserCachePath
	fs.AuthPath = filepath.Join(dir, "auth.json")
	fs.UserCachePath = filepath.Join(dir, "user.json")

	prevCurrent, prevCached, prevClient := Current, cachedUser, apiClient
	Current = current
	cachedUser = cached
	apiClient = client

	t.Cleanup(func() {
		fs.AuthPath, fs.UserCachePath = prevAuthPath, prevUserPath
		Current, cachedUser, apiClient = prevCurrent, prevCached, prevClient
	})
}

func TestResolveAdminNoToken(t *testing.T) {
	client := &fakeApiClient{}
	setupGuardTest(t, nil, nil, client)

	_, err := ResolveAdmin()

	if !errors.Is(err, ErrNoSession) {
		t.Fatalf("got %v, want ErrNoSession", err)
	}
	if client.getMeCall != 0 {
		t.Errorf("no token must mean zero network calls, got %d", client.getMeCall)
	}
}

func TestResolveAdminCachedAdmin(t *testing.T) {
	client := &fakeApiClient{}
	admin := &shared.User{UserId: 1, UserName: "root", Role: shared.RoleAdmin}
	setupGuardTest(t, &shared.ClientAuth{Token: "tok"}, admin, client)

	user, err := ResolveAdmin()

	if err != nil {
		t.Fatalf("cached admin should pass: %v", err)
	}
	if user.UserId != 1 {
		t.Errorf("got user %d", user.UserId)
	}
	if client.getMeCall != 0 {
		t.Errorf("cached admin must mean zero network calls, got %d", client.getMeCall)
	}
}

func TestResolveAdminCachedNonAdmin(t *testing.T) {
	client := &fakeApiClient{}
	user := &shared.User{UserId: 2, UserName: "bob", Role: shared.RoleUser}
	setupGuardTest(t, &shared.ClientAuth{Token: "tok"}, user, client)

	_, err := ResolveAdmin()

	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("got %v, want ErrForbidden", err)
	}
	if client.getMeCall != 0 {
		t.Errorf("cached non-admin must short-circuit with zero calls, got %d", client.getMeCall)
	}
}

func TestResolveAdminEmptyCacheFetchesOnce(t *testing.T) {
	client := &fakeApiClient{me: &shared.User{UserId: 3, UserName: "carol", Role: shared.RoleAdmin}}
	setupGuardTest(t, &shared.ClientAuth{Token: "tok"}, nil, client)

	user, err := ResolveAdmin()

	if err != nil {
		t.Fatalf("fetched admin should pass: %v", err)
	}
	if client.getMeCall != 1 {
		t.Errorf("empty cache must mean exactly one GetMe, got %d", client.getMeCall)
	}
	if user.UserId != 3 {
		t.Errorf("got user %d", user.UserId)
	}
	if cached := GetCurrentUser(); cached == nil || cached.UserId != 3 {
		t.Error("the fetched user should be cached")
	}
}

func TestResolveAdminEmptyCacheFetchesNonAdmin(t *testing.T) {
	client := &fakeApiClient{me: &shared.User{UserId: 4, UserName: "dave", Role: shared.RoleUser}}
	setupGuardTest(t, &shared.ClientAuth{Token: "tok"}, nil, client)

	_, err := ResolveAdmin()

	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("got %v, want ErrForbidden", err)
	}
	if client.getMeCall != 1 {
		t.Errorf("got %d GetMe calls, want 1", client.getMeCall)
	}
}

func TestResolveAdminAuthFailure(t *testing.T) {
	client := &fakeApiClient{meErr: &shared.ApiError{Type: shared.ApiErrorTypeAuth, Status: 401, Msg: "expired"}}
	setupGuardTest(t, &shared.ClientAuth{Token: "stale"}, nil, client)

	_, err := ResolveAdmin()

	if !errors.Is(err, ErrNoSession) {
		t.Fatalf("rejected token should resolve to ErrNoSession, got %v", err)
	}
}

func TestIsLoggedInTokenPresenceOnly(t *testing.T) {
	setupGuardTest(t, &shared.ClientAuth{Token: "tok"}, nil, &fakeApiClient{})

	if !IsLoggedIn() {
		t.Error("a token with no cached user is still signed in")
	}

	Current = nil
	if IsLoggedIn() {
		t.Error("no token means signed out")
	}
}
