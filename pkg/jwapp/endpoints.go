package jwapp

import (
	"context"
	"net/http"

	"github.com/cczukit/cczukit-go/pkg/errx"
	"github.com/cczukit/cczukit-go/pkg/schedule"
)

// Grades fetches all graded course records for the logged-in student.
func (s *Session) Grades(ctx context.Context) ([]CourseGrade, error) {
	_, subjectID, err := s.authenticated()
	if err != nil {
		return nil, err
	}

	body, _, err := s.do(ctx, http.MethodPost, "/api/cj_xh", map[string]string{"xh": subjectID}, true)
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope[CourseGrade](body)
	if err != nil {
		return nil, err
	}
	return env.Items, nil
}

// CreditsAndRank fetches the grade-point summary.
func (s *Session) CreditsAndRank(ctx context.Context) ([]StudentPoint, error) {
	_, subjectID, err := s.authenticated()
	if err != nil {
		return nil, err
	}

	body, _, err := s.do(ctx, http.MethodPost, "/api/cj_xh_xfjd", map[string]string{"xh": subjectID}, true)
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope[StudentPoint](body)
	if err != nil {
		return nil, err
	}
	return env.Items, nil
}

// Terms lists all academic terms, newest first. The endpoint is public and
// needs no session token.
func (s *Session) Terms(ctx context.Context) ([]Term, error) {
	body, _, err := s.do(ctx, http.MethodGet, "/api/xqall", nil, false)
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope[Term](body)
	if err != nil {
		return nil, err
	}
	return env.Items, nil
}

// Schedule fetches the timetable for one term as a raw matrix, outer index
// time slot, inner index day of week. Feed it to schedule.ParseMatrix for
// structured courses.
func (s *Session) Schedule(ctx context.Context, term string) (schedule.Matrix, error) {
	_, subjectID, err := s.authenticated()
	if err != nil {
		return nil, err
	}

	payload := map[string]string{
		"xh":   s.credential.Username,
		"xq":   term,
		"yhid": subjectID,
	}
	body, _, err := s.do(ctx, http.MethodPost, "/api/kb_xq_xh", payload, true)
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope[ScheduleRow](body)
	if err != nil {
		return nil, err
	}

	matrix := make(schedule.Matrix, 0, len(env.Items))
	for _, row := range env.Items {
		matrix = append(matrix, row.Cells())
	}
	return matrix, nil
}

// CurrentSchedule fetches the timetable for the most recent term.
func (s *Session) CurrentSchedule(ctx context.Context) (schedule.Matrix, error) {
	terms, err := s.Terms(ctx)
	if err != nil {
		return nil, err
	}
	if len(terms) == 0 || terms[0].Term == "" {
		return nil, errx.MissingData("no term found")
	}
	return s.Schedule(ctx, terms[0].Term)
}

// Exams fetches the exam arrangements for the logged-in student.
func (s *Session) Exams(ctx context.Context) ([]ExamArrangement, error) {
	if _, _, err := s.authenticated(); err != nil {
		return nil, err
	}

	body, _, err := s.do(ctx, http.MethodPost, "/api/ks_xs_kslb", map[string]string{}, true)
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope[ExamArrangement](body)
	if err != nil {
		return nil, err
	}
	return env.Items, nil
}

// TrainingPlan fetches the raw plan items and aggregates them into a
// per-semester plan with credit totals by category.
func (s *Session) TrainingPlan(ctx context.Context) (*TrainingPlan, error) {
	if _, _, err := s.authenticated(); err != nil {
		return nil, err
	}

	body, _, err := s.do(ctx, http.MethodPost, s.planPath, map[string]string{"xh": s.credential.Username}, true)
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope[PlanItem](body)
	if err != nil {
		return nil, err
	}
	if len(env.Items) == 0 {
		return nil, errx.MissingData("no training plan items")
	}

	plan := AggregatePlan(env.Items)
	return &plan, nil
}
