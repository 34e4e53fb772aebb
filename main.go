package main

import (
	"os"

	"github.com/go-randomstring/randomstring/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
