// Command corpusprep builds text-correction training data from books.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithVersion(version), fang.WithNotifySignal(os.Interrupt)); err != nil {
		os.Exit(1)
	}
}
