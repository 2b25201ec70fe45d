package export

import (
	"time"

	"github.com/tealeg/xlsx"

	"transcription-service/internal/api/dto"
)

// ToExcel writes the given transcription jobs to an xlsx file.
func ToExcel(transcriptions []dto.TranscriptionResponse, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcriptions")
	if err != nil {
		return err
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "Audio Filename"
	headerRow.AddCell().Value = "Status"
	headerRow.AddCell().Value = "Text"
	headerRow.AddCell().Value = "Created At"
	headerRow.AddCell().Value = "Updated At"

	for _, t := range transcriptions {
		row := sheet.AddRow()
		row.AddCell().Value = t.ID
		row.AddCell().Value = t.AudioFilename
		row.AddCell().Value = t.Status
		if t.Text != nil {
			row.AddCell().Value = *t.Text
		} else {
			row.AddCell().Value = ""
		}
		row.AddCell().Value = t.CreatedAt.Format(time.RFC3339)
		row.AddCell().Value = t.UpdatedAt.Format(time.RFC3339)
	}

	return file.Save(outputFilePath)
}
