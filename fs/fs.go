package fs

import (
	"os"
	"path/filepath"

	"ripple-cli/term"
)

var HomeDir string
var HomeRippleDir string

var AuthPath string
var UserCachePath string
var LogPath string

func init() {
	home, err := os.UserHomeDir()
	if err != nil {
		term.OutputErrorAndExit("Couldn't find home dir: %v", err.Error())
	}
	HomeDir = home

	if os.Getenv("RIPPLE_ENV") == "development" {
		HomeRippleDir = filepath.Join(home, ".ripple-home-dev")
	} else {
		HomeRippleDir = filepath.Join(home, ".ripple-home")
	}

	err = os.MkdirAll(HomeRippleDir, os.ModePerm)
	if err != nil {
		term.OutputErrorAndExit(err.Error())
	}

	AuthPath = filepath.Join(HomeRippleDir, "auth.json")
	UserCachePath = filepath.Join(HomeRippleDir, "user.json")
	LogPath = filepath.Join(HomeRippleDir, "ripple.log")
}
