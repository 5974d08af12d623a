package main

import (
	"os"

	"nammai/backend/internal/app"
)

// @title        NammAI Backend API
// @version      1.0
// @description  Chat session, streaming turn and live preview API for the NammAI assistant.
// @BasePath     /api
func main() {
	os.Exit(app.Run())
}
