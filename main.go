package main

import (
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"ripple-cli/api"
	"ripple-cli/auth"
	"ripple-cli/cmd"
	"ripple-cli/fs"
	"ripple-cli/term"
)

func init() {
	// inter-package dependency injections to avoid circular imports
	auth.SetApiClient(api.Client)

	api.SetSignedOutHandler(func() {
		term.OutputSimpleError("Your session is no longer valid.")
		term.PrintCmds("", "sign-in")
	})

	api.SetServerOutageHandler(func() {
		term.OutputSimpleError("Ripple is having trouble right now. Please try again in a bit.")
	})

	// set up a rotating file logger
	log.SetOutput(&lumberjack.Logger{
		Filename:   fsLogPath(),
		MaxSize:    10, // MB
		MaxBackups: 3,
	})
}

func main() {
	if err := auth.Init(); err != nil {
		term.OutputErrorAndExit("Error loading session: %v", err)
	}

	cmd.Execute()
}

func fsLogPath() string {
	if p := os.Getenv("RIPPLE_LOG_FILE"); p != "" {
		return p
	}
	return fs.LogPath
}
