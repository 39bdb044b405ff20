package term

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

func ClearCurrentLine() {
	fmt.Print("\033[2K")
}

func MoveUpLines(numLines int) {
	fmt.Printf("\033[%dA", numLines)
}

func GetDivisionLine() string {
	width := getTerminalWidth()
	return strings.Repeat("─", width)
}

func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
