package main

import (
	"fmt"
	"os"

	"transcription-service/cmd/tsvc/cmd"
	"transcription-service/internal/config"
)

// @title          Transcription Service API
// @version        1.0
// @description    CRUD API for transcription jobs with a pluggable transcription engine.
// @host           localhost:8000
// @BasePath       /
// @schemes        http
func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration warning: %v\n", err)
		// Continue execution - environment variables may be set system-wide
	}

	cmd.Execute()
}
