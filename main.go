package main

import (
	"os"

	"github.com/debcf/disposable-email-blocker/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
