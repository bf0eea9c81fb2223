package display

import (
	"fmt"
	"os"

	"github.com/backmassage/assetpress/internal/term"
)

// PrintBanner prints the ASCII art banner; cyan when colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Cyan)
	}
	fmt.Fprint(os.Stdout, `    _                 _
   / \   ___ ___  ___| |_ _ __  _ __ ___  ___ ___
  / _ \ / __/ __|/ _ \ __| '_ \| '__/ _ \/ __/ __|
 / ___ \__ \__ \  __/ |_| |_) | | |  __/\__ \__ \
/_/   \_\___/___/\___|\__| .__/|_|  \___||___/___/
                         |_|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
