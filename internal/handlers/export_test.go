package handlers

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contract-flow/internal/models"
)

func TestWriteContractsCSV(t *testing.T) {
	end := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	value := 12500.50

	contracts := []models.Contract{
		{
			Title:        "Hosting agreement",
			ContractType: "service",
			Status:       models.StatusInReview,
			Priority:     models.PriorityHigh,
			Department:   &models.Department{Name: "IT"},
			Creator:      &models.User{FullName: "Jane Smith"},
			EndDate:      &end,
			Value:        &value,
			CreatedAt:    time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			Title:        "NDA, \"Acme\" deal",
			ContractType: "nda",
			Status:       models.StatusDraft,
			Priority:     models.PriorityLow,
			CreatedBy:    uuid.New(),
			CreatedAt:    time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeContractsCSV(&buf, contracts))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Title", rows[0][0])
	assert.Equal(t, "Hosting agreement", rows[1][0])
	assert.Equal(t, "in_review", rows[1][2])
	assert.Equal(t, "IT", rows[1][4])
	assert.Equal(t, "Jane Smith", rows[1][5])
	assert.Equal(t, "2026-12-31", rows[1][7])
	assert.Equal(t, "12500.50", rows[1][8])

	// missing optional fields come out empty, quoting survives round-trip
	assert.Equal(t, `NDA, "Acme" deal`, rows[2][0])
	assert.Equal(t, "", rows[2][4])
	assert.Equal(t, "", rows[2][7])
	assert.Equal(t, "", rows[2][8])
}

func TestWriteContractsCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeContractsCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
