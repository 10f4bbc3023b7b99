package handler

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medroadmap/penalty-board-api/internal/models"
	"github.com/medroadmap/penalty-board-api/internal/service"
	"github.com/medroadmap/penalty-board-api/pkg/config"
	"github.com/medroadmap/penalty-board-api/pkg/sms"
)

type studentReaderMock struct {
	students map[string]*models.Student
}

func (m *studentReaderMock) FindByID(ctx context.Context, id string) (*models.Student, error) {
	if student, ok := m.students[id]; ok {
		cp := *student
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

type senderMock struct {
	sent []string
}

func (m *senderMock) Send(ctx context.Context, to, from, text string) (sms.Result, error) {
	m.sent = append(m.sent, to)
	return sms.Result{To: to, MessageID: "M1", StatusCode: "2000"}, nil
}

type pointsReaderMock struct {
	points int
}

func (m *pointsReaderMock) PointsForStudent(ctx context.Context, studentID string) (int, error) {
	return m.points, nil
}

type thresholdRepoMock struct {
	thresholds []models.Threshold
}

func (m *thresholdRepoMock) List(ctx context.Context) ([]models.Threshold, error) {
	return m.thresholds, nil
}

func (m *thresholdRepoMock) Upsert(ctx context.Context, threshold *models.Threshold) error { return nil }
func (m *thresholdRepoMock) Delete(ctx context.Context, id string) error                   { return nil }

func smsTestConfig() config.SMSConfig {
	return config.SMSConfig{APIKey: "key", APISecret: "secret", Sender: "0299998888"}
}

func TestSMSHandlerSend(t *testing.T) {
	phone := "010-1234-5678"
	roster := &studentReaderMock{students: map[string]*models.Student{
		"s1": {ID: "s1", Name: "김철수", StudentPhone: &phone},
	}}
	sender := &senderMock{}
	handler := NewSMSHandler(
		service.NewNotificationService(roster, sender, smsTestConfig(), nil, nil),
		service.NewThresholdService(&thresholdRepoMock{}, roster, &pointsReaderMock{}, nil, nil),
		service.NewMetricsService(),
	)

	w := performJSON(t, handler.Send, http.MethodPost, "/sms/send", gin.H{
		"student_id": "s1",
		"target":     "student",
		"message":    "안내 문자",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.True(t, envelope.OK)
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 1, data["sent"])
	assert.Equal(t, []string{"01012345678"}, sender.sent)
}

func TestSMSHandlerSendWithoutCredentials(t *testing.T) {
	phone := "010-1234-5678"
	roster := &studentReaderMock{students: map[string]*models.Student{
		"s1": {ID: "s1", Name: "김철수", StudentPhone: &phone},
	}}
	handler := NewSMSHandler(
		service.NewNotificationService(roster, &senderMock{}, config.SMSConfig{}, nil, nil),
		service.NewThresholdService(&thresholdRepoMock{}, roster, &pointsReaderMock{}, nil, nil),
		service.NewMetricsService(),
	)

	w := performJSON(t, handler.Send, http.MethodPost, "/sms/send", gin.H{
		"student_id": "s1",
		"target":     "student",
		"message":    "안내 문자",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, decodeEnvelope(t, w).OK)
}

func TestSMSHandlerPreview(t *testing.T) {
	roster := &studentReaderMock{students: map[string]*models.Student{
		"s1": {ID: "s1", Name: "김철수"},
	}}
	thresholds := &thresholdRepoMock{thresholds: []models.Threshold{
		{ID: "th_5", MinPoints: 5, Label: "주의", MessageTemplate: "{name} {points}점 {label}"},
	}}
	handler := NewSMSHandler(
		service.NewNotificationService(roster, &senderMock{}, smsTestConfig(), nil, nil),
		service.NewThresholdService(thresholds, roster, &pointsReaderMock{points: 7}, nil, nil),
		service.NewMetricsService(),
	)

	w := performJSON(t, handler.Preview, http.MethodGet, "/sms/preview?studentId=s1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.True(t, envelope.OK)
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "김철수 7점 주의", data["message"])
	assert.EqualValues(t, 7, data["points"])
}

func TestSMSHandlerPreviewRequiresStudent(t *testing.T) {
	roster := &studentReaderMock{}
	handler := NewSMSHandler(
		service.NewNotificationService(roster, &senderMock{}, smsTestConfig(), nil, nil),
		service.NewThresholdService(&thresholdRepoMock{}, roster, &pointsReaderMock{}, nil, nil),
		service.NewMetricsService(),
	)

	w := performJSON(t, handler.Preview, http.MethodGet, "/sms/preview", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, decodeEnvelope(t, w).OK)
}
