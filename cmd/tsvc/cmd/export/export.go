package export

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"transcription-service/internal/api/dto"
	"transcription-service/internal/app/export"
)

var serverAddr string
var outputFilePath string

func init() {
	Cmd.Flags().StringVarP(&serverAddr, "addr", "a", "http://localhost:8000", "address of a running transcription service")
	Cmd.Flags().StringVarP(&outputFilePath, "output", "o", "", "set outputFilePath")

	Cmd.MarkFlagRequired("output")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export all transcription jobs to excel",
	Long: `Export all transcription jobs to excel

- Fetches every job from a running service instance and writes them to an xlsx file`,
	Run: func(cmd *cobra.Command, args []string) {
		client := &http.Client{Timeout: 30 * time.Second}

		resp, err := client.Get(serverAddr + "/transcriptions")
		if err != nil {
			log.Fatalf("Failed to reach service at %s: %v\n", serverAddr, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			log.Fatalf("Service returned unexpected status: %s\n", resp.Status)
		}

		var transcriptions []dto.TranscriptionResponse
		if err := json.NewDecoder(resp.Body).Decode(&transcriptions); err != nil {
			log.Fatalf("Failed to decode transcriptions: %v\n", err)
		}

		if err := export.ToExcel(transcriptions, outputFilePath); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("export finished, exported %d jobs to: %v\n", len(transcriptions), outputFilePath)
	},
}
