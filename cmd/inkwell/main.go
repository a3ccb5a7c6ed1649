package main

import (
	"os"

	"github.com/SoofabhMK1/ai-writing-system/internal/app"
)

func main() {
	os.Exit(app.Run())
}
