package term

import (
	"fmt"
	"os"

	shared "ripple-shared"

	"github.com/fatih/color"
)

func OutputSimpleError(msg string, args ...interface{}) {
	msg = fmt.Sprintf(msg, args...)
	fmt.Fprintln(os.Stderr, color.New(ColorHiRed, color.Bold).Sprint("🚨 "+shared.Capitalize(msg)))
}

func OutputErrorAndExit(msg string, args ...interface{}) {
	StopSpinner()

	msg = fmt.Sprintf(msg, args...)
	fmt.Fprintln(os.Stderr, color.New(ColorHiRed, color.Bold).Sprint("🚨 "+shared.Capitalize(msg)))
	os.Exit(1)
}

// HandleApiError exits with a message appropriate to the failure category.
// Components never branch on raw status codes--the category set here mirrors
// the normalization done in the api package.
func HandleApiError(apiErr *shared.ApiError) {
	StopSpinner()

	switch apiErr.Type {
	case shared.ApiErrorTypeAuth:
		OutputSimpleError("Your session is no longer valid.")
		PrintCmds("", "sign-in")
		os.Exit(1)
	case shared.ApiErrorTypeForbidden:
		OutputErrorAndExit("You don't have permission to do that.")
	case shared.ApiErrorTypeConnectivity, shared.ApiErrorTypeServer:
		OutputErrorAndExit(apiErr.Msg)
	default:
		OutputErrorAndExit(apiErr.Msg)
	}
}
