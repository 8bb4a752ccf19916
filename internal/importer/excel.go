package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/prepdeck/prepdeck/internal/models"
)

// Column layout of an import sheet. Row 1 is a header and is skipped.
const (
	colCategory   = 0
	colDifficulty = 1
	colTitle      = 2
	colBody       = 3
	colAnswer     = 4
)

// Result summarizes one import run.
type Result struct {
	TotalRows int      `json:"total_rows"`
	Parsed    int      `json:"parsed"`
	Skipped   int      `json:"skipped"`
	Errors    []string `json:"errors,omitempty"`
}

// ParseWorkbook reads questions from the first sheet of an xlsx workbook.
// Expected columns: category, difficulty, title, body, answer. Rows without a
// title are skipped and reported in the result rather than failing the run.
func ParseWorkbook(r io.Reader) ([]models.Question, *Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	result := &Result{}
	var questions []models.Question
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		result.TotalRows++

		q := models.Question{
			Category:   cell(row, colCategory),
			Difficulty: cell(row, colDifficulty),
			Title:      cell(row, colTitle),
			Body:       cell(row, colBody),
			Answer:     cell(row, colAnswer),
		}
		if q.Title == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: missing title", i+1))
			continue
		}

		questions = append(questions, q)
		result.Parsed++
	}

	return questions, result, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
