// Command promptsuite generates, transforms, formats and evaluates AI prompts.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		var blocked *blockedError
		if errors.As(err, &blocked) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
