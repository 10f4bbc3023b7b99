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

type mockPenaltyRepo struct {
	penalties    []models.Penalty
	created      []*models.Penalty
	deleted      []string
	rangeDeletes []string
	rangeCount   int64
	summary      []models.StudentPoints

	lastFrom, lastTo string
}

func (m *mockPenaltyRepo) ListByStudent(ctx context.Context, studentID, from, to string) ([]models.Penalty, error) {
	m.lastFrom, m.lastTo = from, to
	return m.penalties, nil
}

func (m *mockPenaltyRepo) Create(ctx context.Context, penalty *models.Penalty) error {
	cp := *penalty
	m.created = append(m.created, &cp)
	return nil
}

func (m *mockPenaltyRepo) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockPenaltyRepo) DeleteRange(ctx context.Context, studentID, from, to string) (int64, error) {
	m.rangeDeletes = append(m.rangeDeletes, studentID)
	m.lastFrom, m.lastTo = from, to
	return m.rangeCount, nil
}

func (m *mockPenaltyRepo) CumulativeByStudent(ctx context.Context) ([]models.StudentPoints, error) {
	return m.summary, nil
}

type mockRuleReader struct {
	rules map[string]*models.Rule
}

func (m *mockRuleReader) FindByID(ctx context.Context, id string) (*models.Rule, error) {
	if rule, ok := m.rules[id]; ok {
		cp := *rule
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func newPenaltyService(repo *mockPenaltyRepo, rules *mockRuleReader) *PenaltyService {
	return NewPenaltyService(repo, rules, nil, nil)
}

func TestPenaltyServiceCreateSnapshotsRule(t *testing.T) {
	repo := &mockPenaltyRepo{}
	rules := &mockRuleReader{rules: map[string]*models.Rule{
		"rule_phone": {ID: "rule_phone", Title: "휴대폰 사용", Points: 2},
	}}
	svc := newPenaltyService(repo, rules)

	id, err := svc.Create(context.Background(), CreatePenaltyRequest{
		StudentID:  "s1",
		RuleID:     "rule_phone",
		OccurredOn: "2026-03-02",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "휴대폰 사용", repo.created[0].RuleTitle)
	assert.Equal(t, 2, repo.created[0].Points)

	// Mutating the catalog afterwards must not touch the stored snapshot.
	rules.rules["rule_phone"].Points = 99
	assert.Equal(t, 2, repo.created[0].Points)
}

func TestPenaltyServiceCreateUnknownRule(t *testing.T) {
	repo := &mockPenaltyRepo{}
	svc := newPenaltyService(repo, &mockRuleReader{})

	_, err := svc.Create(context.Background(), CreatePenaltyRequest{
		StudentID:  "s1",
		RuleID:     "missing",
		OccurredOn: "2026-03-02",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.created)
}

func TestPenaltyServiceCreateUnknownStudentAllowed(t *testing.T) {
	repo := &mockPenaltyRepo{}
	rules := &mockRuleReader{rules: map[string]*models.Rule{
		"rule_late": {ID: "rule_late", Title: "지각", Points: 1},
	}}
	svc := newPenaltyService(repo, rules)

	_, err := svc.Create(context.Background(), CreatePenaltyRequest{
		StudentID:  "ghost",
		RuleID:     "rule_late",
		OccurredOn: "2026-03-02",
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "ghost", repo.created[0].StudentID)
}

func TestPenaltyServiceCreateValidation(t *testing.T) {
	svc := newPenaltyService(&mockPenaltyRepo{}, &mockRuleReader{})

	_, err := svc.Create(context.Background(), CreatePenaltyRequest{
		StudentID:  "s1",
		RuleID:     "rule_late",
		OccurredOn: "03/02/2026",
	})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	fields, ok := appErr.Detail.([]appErrors.FieldError)
	require.True(t, ok)
	require.Len(t, fields, 1)
	assert.Equal(t, "OccurredOn", fields[0].Field)
}

func TestPenaltyServiceListDefaultsRange(t *testing.T) {
	repo := &mockPenaltyRepo{}
	svc := newPenaltyService(repo, &mockRuleReader{})

	_, err := svc.List(context.Background(), "s1", "", "")
	require.NoError(t, err)
	assert.Equal(t, "0000-01-01", repo.lastFrom)
	assert.Equal(t, "9999-12-31", repo.lastTo)

	_, err = svc.List(context.Background(), "", "", "")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestPenaltyServiceResetRejectsReversedRange(t *testing.T) {
	repo := &mockPenaltyRepo{rangeCount: 3}
	svc := newPenaltyService(repo, &mockRuleReader{})

	_, err := svc.Reset(context.Background(), ResetRequest{
		StudentID: "s1",
		From:      "2026-04-01",
		To:        "2026-03-01",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidRange.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.rangeDeletes)
}

func TestPenaltyServiceReset(t *testing.T) {
	repo := &mockPenaltyRepo{rangeCount: 3}
	svc := newPenaltyService(repo, &mockRuleReader{})

	deleted, err := svc.Reset(context.Background(), ResetRequest{
		StudentID: "s1",
		From:      "2026-03-01",
		To:        "2026-03-31",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, deleted)
	assert.Equal(t, []string{"s1"}, repo.rangeDeletes)
}

func TestPenaltyServiceResetEqualBounds(t *testing.T) {
	repo := &mockPenaltyRepo{rangeCount: 1}
	svc := newPenaltyService(repo, &mockRuleReader{})

	deleted, err := svc.Reset(context.Background(), ResetRequest{
		StudentID: "s1",
		From:      "2026-03-02",
		To:        "2026-03-02",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)
}
