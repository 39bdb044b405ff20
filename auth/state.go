package auth

import (
	"encoding/json"
	"fmt"
	"os"

	"ripple-cli/fs"

	shared "ripple-shared"
)

// Current is the loaded session. It is nil until Init runs and is only
// mutated by SetSession and ClearSession.
var Current *shared.ClientAuth

var cachedUser *shared.User

// Init loads the persisted session from disk. Called once from main before
// any command runs. A missing auth file just means signed out.
func Init() error {
	bytes, err := os.ReadFile(fs.AuthPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error reading auth.json: %v", err)
	}

	var auth shared.ClientAuth
	if err := json.Unmarshal(bytes, &auth); err != nil {
		return fmt.Errorf("error unmarshalling auth.json: %v", err)
	}
	Current = &auth

	// the cached user can be missing or stale independently of the token;
	// that never means signed out, only that a refetch is needed
	userBytes, err := os.ReadFile(fs.UserCachePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error reading user.json: %v", err)
	}

	var user shared.User
	if err := json.Unmarshal(userBytes, &user); err != nil {
		return fmt.Errorf("error unmarshalling user.json: %v", err)
	}
	cachedUser = &user

	return nil
}

func SetSession(user *shared.User, token, host string) error {
	Current = &shared.ClientAuth{Token: token, Host: host}

	bytes, err := json.Marshal(Current)
	if err != nil {
		return fmt.Errorf("error marshalling auth: %v", err)
	}

	if err := os.WriteFile(fs.AuthPath, bytes, 0600); err != nil {
		return fmt.Errorf("error writing auth: %v", err)
	}

	return SetCachedUser(user)
}

func SetCachedUser(user *shared.User) error {
	cachedUser = user

	if user == nil {
		if err := os.Remove(fs.UserCachePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("error removing cached user: %v", err)
		}
		return nil
	}

	bytes, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("error marshalling user: %v", err)
	}

	if err := os.WriteFile(fs.UserCachePath, bytes, 0600); err != nil {
		return fmt.Errorf("error writing cached user: %v", err)
	}

	return nil
}

func ClearSession() error {
	Current = nil
	cachedUser = nil

	if err := os.Remove(fs.AuthPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing auth: %v", err)
	}
	if err := os.Remove(fs.UserCachePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing cached user: %v", err)
	}

	return nil
}

func GetToken() string {
	if Current == nil {
		return ""
	}
	return Current.Token
}

func GetHost() string {
	if Current == nil {
		return ""
	}
	return Current.Host
}

func GetCurrentUser() *shared.User {
	return cachedUser
}

// IsLoggedIn is computed strictly from token presence. The cached user
// object can be evicted independently and its absence means "needs refetch",
// not "signed out".
func IsLoggedIn() bool {
	return GetToken() != ""
}
