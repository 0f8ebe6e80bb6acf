package server

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strings"

	"FitMetrics/internal/database"
	"FitMetrics/internal/fitness"
	"FitMetrics/internal/utility"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

/* ====================================================================
                   		Engine Handlers
==================================================================== */

func (s *Server) listSportsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, fitness.Sports())
}

type metricsResponse struct {
	Metrics        fitness.HealthMetrics  `json:"metrics"`
	Classification fitness.Classification `json:"classification"`
}

// computeMetricsHandler runs the calculator and classifier without the
// recommendation stage.
func (s *Server) computeMetricsHandler(c echo.Context) error {
	var raw fitness.RawInput
	if err := c.Bind(&raw); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	p, err := fitness.Normalize(raw)
	if err != nil {
		return s.engineError(c, err)
	}

	m, err := fitness.ComputeHealthMetrics(p.Anthropometric, p.Lifestyle, p.Sport)
	if err != nil {
		return s.engineError(c, err)
	}

	return c.JSON(http.StatusOK, metricsResponse{
		Metrics:        m,
		Classification: fitness.Classify(m.BMI, p.Sport),
	})
}

type lifestyleRequest struct {
	ActivityLevel      string  `json:"activity_level"`
	GymSessionsPerWeek int     `json:"gym_sessions_per_week"`
	TimeInGymHours     float64 `json:"time_in_gym_hours"`
	SleepHours         float64 `json:"sleep_hours"`
	DietPreference     string  `json:"diet_preference"`
	FitnessGoal        string  `json:"fitness_goal"`
}

type recommendationRequest struct {
	Metrics        fitness.HealthMetrics `json:"metrics"`
	Lifestyle      lifestyleRequest      `json:"lifestyle"`
	Sport          string                `json:"sport"`
	EmotionalState string                `json:"emotional_state"`
}

// recommendationsHandler re-runs the rule engine on metrics the caller
// already holds, e.g. after changing only the sport or mood.
func (s *Server) recommendationsHandler(c echo.Context) error {
	var req recommendationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if bmi := req.Metrics.BMI; bmi <= 0 || math.IsNaN(bmi) || math.IsInf(bmi, 0) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "metrics.bmi must be a positive number", "field": "bmi"})
	}

	l := fitness.LifestyleInput{
		ActivityLevel:      fitness.ParseActivityLevel(req.Lifestyle.ActivityLevel),
		GymSessionsPerWeek: req.Lifestyle.GymSessionsPerWeek,
		TimeInGymHours:     req.Lifestyle.TimeInGymHours,
		SleepHours:         req.Lifestyle.SleepHours,
		DietPreference:     fitness.ParseDietPreference(req.Lifestyle.DietPreference),
		FitnessGoal:        fitness.ParseFitnessGoal(req.Lifestyle.FitnessGoal),
	}
	if err := fitness.ValidateLifestyle(l); err != nil {
		return s.engineError(c, err)
	}

	recs := fitness.GenerateRecommendations(req.Metrics, l,
		fitness.ParseSport(req.Sport), fitness.ParseEmotionalState(req.EmotionalState))
	return c.JSON(http.StatusOK, recs)
}

/* ====================================================================
                   		Assessment Handlers
==================================================================== */

type assessmentRequest struct {
	// ProfileID, when set, stores the result in the profile's history.
	ProfileID string `json:"profile_id"`
	fitness.RawInput
}

type assessmentResponse struct {
	AssessmentID string             `json:"assessment_id,omitempty"`
	Cached       bool               `json:"cached"`
	Assessment   fitness.Assessment `json:"assessment"`
}

func (s *Server) createAssessmentHandler(c echo.Context) error {
	ctx := c.Request().Context()
	logger := requestLogger(c)

	// 1. Parse
	var req assessmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	req.ProfileID = strings.TrimSpace(req.ProfileID)

	// 2. Evaluate (cached)
	a, cached, err := s.assess(ctx, c, req.RawInput)
	if err != nil {
		return s.engineError(c, err)
	}

	resp := assessmentResponse{Cached: cached, Assessment: a}

	// 3. Persist when the caller identified a profile
	if req.ProfileID != "" && s.db != nil {
		stored, err := s.db.SaveAssessment(ctx, req.ProfileID, req.RawInput, a)
		if err != nil {
			logger.Error().Err(err).Str("profile_id", req.ProfileID).Msg("createAssessmentHandler: failed to store assessment")
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to store assessment"})
		}
		resp.AssessmentID = stored.ID
		logger.Info().Str("profile_id", req.ProfileID).Str("assessment_id", stored.ID).Msg("Assessment stored")
		return c.JSON(http.StatusCreated, resp)
	}

	return c.JSON(http.StatusOK, resp)
}

type batchRequest struct {
	Items []fitness.RawInput `json:"items"`
}

type batchItemResult struct {
	Index      int                 `json:"index"`
	Assessment *fitness.Assessment `json:"assessment,omitempty"`
	Error      string              `json:"error,omitempty"`
	Field      string              `json:"field,omitempty"`
}

// batchAssessmentHandler evaluates every item independently. An invalid item
// fails only its own slot.
func (s *Server) batchAssessmentHandler(c echo.Context) error {
	ctx := c.Request().Context()

	var req batchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if len(req.Items) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "items must not be empty"})
	}
	if len(req.Items) > s.batchLimit {
		return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{"error": "Too many items in batch"})
	}

	results := make([]batchItemResult, len(req.Items))

	g, grpCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchWorkers)

	for i, raw := range req.Items {
		i, raw := i, raw
		g.Go(func() error {
			if err := grpCtx.Err(); err != nil {
				return err
			}

			res := batchItemResult{Index: i}
			a, _, err := s.assess(grpCtx, c, raw)
			if err != nil {
				var inv *fitness.InvalidInputError
				if !errors.As(err, &inv) {
					return err
				}
				res.Error = inv.Error()
				res.Field = inv.Field
			} else {
				res.Assessment = &a
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		requestLogger(c).Error().Err(err).Msg("batchAssessmentHandler: batch aborted")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Batch evaluation failed"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"results": results})
}

func (s *Server) listAssessmentsHandler(c echo.Context) error {
	profileID := strings.TrimSpace(c.QueryParam("profile_id"))
	if profileID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "profile_id is required", "field": "profile_id"})
	}
	if s.db == nil {
		return historyDisabled(c)
	}

	page := utility.ParseIntParam(c.QueryParam("page"), 1)
	if page < 1 {
		page = 1
	}
	pageSize := utility.ParseIntParam(c.QueryParam("page_size"), defaultPageSize)
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	result, err := s.db.ListAssessments(c.Request().Context(), profileID, pageSize, (page-1)*pageSize)
	if err != nil {
		requestLogger(c).Error().Err(err).Str("profile_id", profileID).Msg("listAssessmentsHandler: query failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load assessments"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items":     result.Items,
		"total":     result.Total,
		"page":      page,
		"page_size": pageSize,
	})
}

// latestInputHandler returns the raw values behind the profile's newest
// assessment so a client can prefill its form.
func (s *Server) latestInputHandler(c echo.Context) error {
	profileID := strings.TrimSpace(c.QueryParam("profile_id"))
	if profileID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "profile_id is required", "field": "profile_id"})
	}
	if s.db == nil {
		return historyDisabled(c)
	}

	raw, err := s.db.LatestInput(c.Request().Context(), profileID)
	if errors.Is(err, database.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "No assessments for this profile"})
	}
	if err != nil {
		requestLogger(c).Error().Err(err).Str("profile_id", profileID).Msg("latestInputHandler: query failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load latest input"})
	}

	return c.JSON(http.StatusOK, raw)
}

/* ====================================================================
                   		Helpers
==================================================================== */

// assess normalizes raw and returns the cached assessment when one exists.
// Cache failures are logged and the result recomputed.
func (s *Server) assess(ctx context.Context, c echo.Context, raw fitness.RawInput) (fitness.Assessment, bool, error) {
	p, err := fitness.Normalize(raw)
	if err != nil {
		return fitness.Assessment{}, false, err
	}

	if s.cache == nil {
		a, err := fitness.AssessProfile(p)
		return a, false, err
	}

	key := p.CacheKey()
	if a, ok, err := s.cache.Get(ctx, key); err != nil {
		requestLogger(c).Warn().Err(err).Msg("assessment cache read failed")
	} else if ok {
		return a, true, nil
	}

	a, err := fitness.AssessProfile(p)
	if err != nil {
		return fitness.Assessment{}, false, err
	}

	if err := s.cache.Set(ctx, key, a); err != nil {
		requestLogger(c).Warn().Err(err).Msg("assessment cache write failed")
	}
	return a, false, nil
}

// engineError maps validation failures to 400 and anything else to 500.
func (s *Server) engineError(c echo.Context, err error) error {
	var inv *fitness.InvalidInputError
	if errors.As(err, &inv) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": inv.Error(), "field": inv.Field})
	}
	requestLogger(c).Error().Err(err).Msg("assessment failed")
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}

func historyDisabled(c echo.Context) error {
	return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Assessment history is not configured"})
}
