package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medroadmap/penalty-board-api/internal/models"
	"github.com/medroadmap/penalty-board-api/internal/service"
)

func newSummaryHandler(repo *penaltyRepoMock) *SummaryHandler {
	return NewSummaryHandler(
		service.NewPenaltyService(repo, &ruleReaderMock{}, nil, nil),
		service.NewExportService(repo, nil),
	)
}

func TestSummaryHandlerCumulative(t *testing.T) {
	repo := &penaltyRepoMock{summary: []models.StudentPoints{
		{Student: models.Student{ID: "s1", Name: "김철수"}, Points: 7},
		{Student: models.Student{ID: "s2", Name: "박영희"}, Points: 0},
	}}
	handler := newSummaryHandler(repo)

	w := performJSON(t, handler.Cumulative, http.MethodGet, "/summary/cumulative", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.True(t, envelope.OK)
	data, ok := envelope.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, data, 2)
	first, ok := data[0].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 7, first["points"])
}

func TestSummaryHandlerExportCSV(t *testing.T) {
	repo := &penaltyRepoMock{summary: []models.StudentPoints{
		{Student: models.Student{ID: "s1", Name: "김철수"}, Points: 7},
	}}
	handler := newSummaryHandler(repo)

	w := performJSON(t, handler.Export, http.MethodGet, "/summary/export?format=csv", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "cumulative_summary.csv")
	assert.Contains(t, w.Body.String(), "id,name,grade,points")
}

func TestSummaryHandlerExportDefaultsToCSV(t *testing.T) {
	handler := newSummaryHandler(&penaltyRepoMock{})

	w := performJSON(t, handler.Export, http.MethodGet, "/summary/export", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
}

func TestSummaryHandlerExportUnknownFormat(t *testing.T) {
	handler := newSummaryHandler(&penaltyRepoMock{})

	w := performJSON(t, handler.Export, http.MethodGet, "/summary/export?format=docx", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, decodeEnvelope(t, w).OK)
}
