//go:build !windows

package main

import (
	"fmt"
	"os"

	"github.com/ekeskin/globalhook"
)

func main() {
	fmt.Fprintln(os.Stderr, globalhook.ErrUnsupportedPlatform)
	os.Exit(1)
}
