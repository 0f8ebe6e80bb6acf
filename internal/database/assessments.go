package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"FitMetrics/internal/fitness"
	"FitMetrics/internal/utility"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// ErrNotFound is returned when a profile has no stored assessments.
var ErrNotFound = errors.New("no assessments for profile")

// StoredAssessment is one persisted evaluation together with the raw input
// that produced it.
type StoredAssessment struct {
	ID         string             `json:"assessment_id"`
	ProfileID  string             `json:"profile_id"`
	Input      fitness.RawInput   `json:"input"`
	Assessment fitness.Assessment `json:"assessment"`
	BMI        float64            `json:"bmi"`
	CreatedAt  time.Time          `json:"created_at"`
}

type AssessmentPage struct {
	Items []StoredAssessment `json:"items"`
	Total int64              `json:"total"`
}

const insertAssessment = `
INSERT INTO fitness_assessments (assessment_id, profile_id, raw_input, assessment, bmi, simple_category, sport)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING created_at`

func (s *service) SaveAssessment(ctx context.Context, profileID string, raw fitness.RawInput, a fitness.Assessment) (StoredAssessment, error) {
	// 1. Encode both documents
	rawJSON, err := json.Marshal(raw)
	if err != nil {
		return StoredAssessment{}, fmt.Errorf("encode raw input: %w", err)
	}
	resultJSON, err := json.Marshal(a)
	if err != nil {
		return StoredAssessment{}, fmt.Errorf("encode assessment: %w", err)
	}

	bmi, err := utility.FloatToNumeric(a.Metrics.BMI)
	if err != nil {
		return StoredAssessment{}, fmt.Errorf("encode bmi: %w", err)
	}

	// 2. Insert
	id := uuid.New()
	var createdAt time.Time
	err = s.pool.QueryRow(ctx, insertAssessment,
		utility.UUIDToPgtype(id),
		profileID,
		rawJSON,
		resultJSON,
		bmi,
		string(a.Classification.Simple),
		string(a.Profile.Sport),
	).Scan(&createdAt)
	if err != nil {
		return StoredAssessment{}, fmt.Errorf("insert assessment: %w", err)
	}

	return StoredAssessment{
		ID:         id.String(),
		ProfileID:  profileID,
		Input:      raw,
		Assessment: a,
		BMI:        a.Metrics.BMI,
		CreatedAt:  createdAt,
	}, nil
}

const listAssessments = `
SELECT assessment_id, profile_id, raw_input, assessment, bmi, created_at
FROM fitness_assessments
WHERE profile_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

const countAssessments = `SELECT count(*) FROM fitness_assessments WHERE profile_id = $1`

// ListAssessments returns a profile's history, newest first.
func (s *service) ListAssessments(ctx context.Context, profileID string, limit, offset int) (AssessmentPage, error) {
	var total int64
	if err := s.pool.QueryRow(ctx, countAssessments, profileID).Scan(&total); err != nil {
		return AssessmentPage{}, fmt.Errorf("count assessments: %w", err)
	}

	rows, err := s.pool.Query(ctx, listAssessments, profileID, limit, offset)
	if err != nil {
		return AssessmentPage{}, fmt.Errorf("list assessments: %w", err)
	}

	items, err := pgx.CollectRows(rows, scanAssessment)
	if err != nil {
		return AssessmentPage{}, fmt.Errorf("scan assessments: %w", err)
	}
	if items == nil {
		items = []StoredAssessment{}
	}

	return AssessmentPage{Items: items, Total: total}, nil
}

const latestInput = `
SELECT raw_input
FROM fitness_assessments
WHERE profile_id = $1
ORDER BY created_at DESC
LIMIT 1`

// LatestInput returns the raw values of the profile's most recent
// assessment, for prefilling the next one.
func (s *service) LatestInput(ctx context.Context, profileID string) (fitness.RawInput, error) {
	var rawJSON []byte
	err := s.pool.QueryRow(ctx, latestInput, profileID).Scan(&rawJSON)
	if errors.Is(err, pgx.ErrNoRows) {
		return fitness.RawInput{}, ErrNotFound
	}
	if err != nil {
		return fitness.RawInput{}, fmt.Errorf("query latest input: %w", err)
	}

	var raw fitness.RawInput
	if err := json.Unmarshal(rawJSON, &raw); err != nil {
		return fitness.RawInput{}, fmt.Errorf("decode raw input: %w", err)
	}
	return raw, nil
}

func scanAssessment(row pgx.CollectableRow) (StoredAssessment, error) {
	var (
		id         pgtype.UUID
		profileID  string
		rawJSON    []byte
		resultJSON []byte
		bmi        pgtype.Numeric
		createdAt  time.Time
	)
	if err := row.Scan(&id, &profileID, &rawJSON, &resultJSON, &bmi, &createdAt); err != nil {
		return StoredAssessment{}, err
	}

	idStr, err := utility.PgtypeUUIDToString(id)
	if err != nil {
		return StoredAssessment{}, err
	}

	out := StoredAssessment{
		ID:        idStr,
		ProfileID: profileID,
		BMI:       utility.NumericToFloat(bmi),
		CreatedAt: createdAt,
	}
	if err := json.Unmarshal(rawJSON, &out.Input); err != nil {
		return StoredAssessment{}, fmt.Errorf("decode raw input: %w", err)
	}
	if err := json.Unmarshal(resultJSON, &out.Assessment); err != nil {
		return StoredAssessment{}, fmt.Errorf("decode assessment: %w", err)
	}
	return out, nil
}
