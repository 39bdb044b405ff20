package auth

import (
	"os"
	"path/filepath"
	"testing"

	"ripple-cli/fs"

	shared "ripple-shared"
)

func setupStateTest(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	prevAuthPath, prevUserPath := fs.AuthPath, fs.UserCachePath
	fs.AuthPath = filepath.Join(dir, "auth.json")
	fs.UserCachePath = filepath.Join(dir, "user.json")

	prevCurrent, prevCached := Current, cachedUser
	Current = nil
	cachedUser = nil

	t.Cleanup(func() {
		fs.AuthPath, fs.UserCachePath = prevAuthPath, prevUserPath
		Current, cachedUser = prevCurrent, prevCached
	})
}

func TestSessionRoundTrip(t *testing.T) {
	setupStateTest(t)

	user := &shared.User{UserId: 1, UserName: "alice", Role: shared.RoleUser}
	if err := SetSession(user, "tok-123", "http://localhost:8080"); err != nil {
		t.Fatal(err)
	}

	// a fresh process: drop in-memory state and reload from disk
	Current = nil
	cachedUser = nil

	if err := Init(); err != nil {
		t.Fatal(err)
	}

	if GetToken() != "tok-123" {
		t.Errorf("token: got %q", GetToken())
	}
	if GetHost() != "http://localhost:8080" {
		t.Errorf("host: got %q", GetHost())
	}
	if u := GetCurrentUser(); u == nil || u.UserName != "alice" {
		t.Errorf("cached user: got %+v", u)
	}
}

func TestInitMissingAuthFileMeansSignedOut(t *testing.T) {
	setupStateTest(t)

	if err := Init(); err != nil {
		t.Fatal(err)
	}
	if IsLoggedIn() {
		t.Error("no auth file should mean signed out")
	}
}

func TestMissingUserCacheIsNotSignedOut(t *testing.T) {
	setupStateTest(t)

	user := &shared.User{UserId: 1, UserName: "alice"}
	if err := SetSession(user, "tok", "http://h"); err != nil {
		t.Fatal(err)
	}

	if err := os.Remove(fs.UserCachePath); err != nil {
		t.Fatal(err)
	}

	Current = nil
	cachedUser = nil
	if err := Init(); err != nil {
		t.Fatal(err)
	}

	if !IsLoggedIn() {
		t.Error("an evicted user cache must not sign the user out")
	}
	if GetCurrentUser() != nil {
		t.Error("user cache should be empty, pending a refetch")
	}
}

func TestClearSession(t *testing.T) {
	setupStateTest(t)

	user := &shared.User{UserId: 1, UserName: "alice"}
	if err := SetSession(user, "tok", "http://h"); err != nil {
		t.Fatal(err)
	}

	if err := ClearSession(); err != nil {
		t.Fatal(err)
	}

	if IsLoggedIn() || GetCurrentUser() != nil {
		t.Error("clear should drop both token and cached user")
	}
	if _, err := os.Stat(fs.AuthPath); !os.IsNotExist(err) {
		t.Error("auth file should be removed")
	}
	if _, err := os.Stat(fs.UserCachePath); !os.IsNotExist(err) {
		t.Error("user cache file should be removed")
	}
}
