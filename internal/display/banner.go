package display

import (
	"fmt"
	"os"

	"github.com/backmassage/zwrename/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Cyan if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Cyan)
	}
	fmt.Fprint(os.Stdout, `     __        __                              ___
 ___\ \      _|  |________ ____   ____ _____ /  _\ _____
|_  /\ \ /\ / /  __ \_  _ \/ __ \ /    \__  \|  |_// __ \
 / /  \ V  V /|  |  \/ |_\ \  ___/|  | \/ __ \|  | \  ___/
/___|  \_/\_/ |__|  |__| \_/\___/ |__| (____ /|__|  \___/
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
