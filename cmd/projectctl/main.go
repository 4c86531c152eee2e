// Command projectctl is a thin operator CLI over the project state core:
// import an ASR result, apply edit operations, project an EDL, and
// save/load project packages, without needing a UI or transport attached.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := RootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
