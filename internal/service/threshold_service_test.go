package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medroadmap/penalty-board-api/internal/models"
	appErrors "github.com/medroadmap/penalty-board-api/pkg/errors"
)

type mockThresholdRepo struct {
	thresholds []models.Threshold
	listErr    error
	upserted   []*models.Threshold
	deleted    []string
}

func (m *mockThresholdRepo) List(ctx context.Context) ([]models.Threshold, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.thresholds, nil
}

func (m *mockThresholdRepo) Upsert(ctx context.Context, threshold *models.Threshold) error {
	m.upserted = append(m.upserted, threshold)
	return nil
}

func (m *mockThresholdRepo) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type mockStudentReader struct {
	students map[string]*models.Student
}

func (m *mockStudentReader) FindByID(ctx context.Context, id string) (*models.Student, error) {
	if student, ok := m.students[id]; ok {
		cp := *student
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

type mockPointsReader struct {
	points map[string]int
}

func (m *mockPointsReader) PointsForStudent(ctx context.Context, studentID string) (int, error) {
	return m.points[studentID], nil
}

func twoTiers() []models.Threshold {
	return []models.Threshold{
		{ID: "th_5", MinPoints: 5, Label: "주의", MessageTemplate: "{name} {points}점 {label}", SortOrder: 0},
		{ID: "th_10", MinPoints: 10, Label: "경고", MessageTemplate: "{name} {points}점 {label}", SortOrder: 1},
	}
}

func TestResolve(t *testing.T) {
	tiers := twoTiers()

	assert.Nil(t, Resolve(tiers, 4))

	got := Resolve(tiers, 5)
	require.NotNil(t, got)
	assert.Equal(t, "th_5", got.ID)

	got = Resolve(tiers, 12)
	require.NotNil(t, got)
	assert.Equal(t, "th_10", got.ID)

	assert.Nil(t, Resolve(nil, 100))
}

func TestResolveTieBreaksOnSortOrder(t *testing.T) {
	tiers := []models.Threshold{
		{ID: "b", MinPoints: 5, SortOrder: 2},
		{ID: "a", MinPoints: 5, SortOrder: 1},
	}
	got := Resolve(tiers, 7)
	require.NotNil(t, got)
	assert.Equal(t, "a", got.ID)
}

func TestThresholdServicePreview(t *testing.T) {
	repo := &mockThresholdRepo{thresholds: twoTiers()}
	students := &mockStudentReader{students: map[string]*models.Student{
		"s1": {ID: "s1", Name: "김철수"},
	}}
	points := &mockPointsReader{points: map[string]int{"s1": 12}}
	svc := NewThresholdService(repo, students, points, nil, nil)

	preview, err := svc.Preview(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 12, preview.Points)
	require.NotNil(t, preview.Threshold)
	assert.Equal(t, "th_10", preview.Threshold.ID)
	assert.Equal(t, "김철수 12점 경고", preview.Message)
}

func TestThresholdServicePreviewFallback(t *testing.T) {
	repo := &mockThresholdRepo{thresholds: twoTiers()}
	students := &mockStudentReader{students: map[string]*models.Student{
		"s1": {ID: "s1", Name: "김철수"},
	}}
	points := &mockPointsReader{points: map[string]int{"s1": 3}}
	svc := NewThresholdService(repo, students, points, nil, nil)

	preview, err := svc.Preview(context.Background(), "s1")
	require.NoError(t, err)
	assert.Nil(t, preview.Threshold)
	assert.Equal(t, "[메디컬로드맵] 김철수 학생 벌점 누적 3점입니다.", preview.Message)
}

func TestThresholdServicePreviewUnknownStudent(t *testing.T) {
	svc := NewThresholdService(&mockThresholdRepo{}, &mockStudentReader{}, &mockPointsReader{}, nil, nil)

	_, err := svc.Preview(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestThresholdServiceUpsertGeneratesID(t *testing.T) {
	repo := &mockThresholdRepo{}
	svc := NewThresholdService(repo, &mockStudentReader{}, &mockPointsReader{}, nil, nil)

	id, err := svc.Upsert(context.Background(), UpsertThresholdRequest{MinPoints: 15, Label: "최종 경고"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.Len(t, repo.upserted, 1)
	assert.Equal(t, id, repo.upserted[0].ID)
}

func TestThresholdServiceUpsertRequiresLabel(t *testing.T) {
	svc := NewThresholdService(&mockThresholdRepo{}, &mockStudentReader{}, &mockPointsReader{}, nil, nil)

	_, err := svc.Upsert(context.Background(), UpsertThresholdRequest{MinPoints: 5})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
