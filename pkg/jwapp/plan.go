package jwapp

import (
	"strconv"
	"strings"
)

// PlanItem is one raw training-plan row as served by the portal.
type PlanItem struct {
	Grade         int     `json:"nj"`
	MajorCode     string  `json:"zydm"`
	DurationYears string  `json:"xz"`
	Semester      int     `json:"xq"`
	CourseID      string  `json:"kcdm"`
	CourseName    string  `json:"kcmc"`
	CategoryCode  string  `json:"lbdh"`
	Credits       float64 `json:"xf"`
	CategoryName  string  `json:"lbmc"`
	StudentID     string  `json:"xh"`
	Score         float64 `json:"kscj"`
	Category      string  `json:"lb"`
	MajorName     string  `json:"zymc"`
}

// PlanCourseType groups plan courses into the three buckets the curriculum
// distinguishes.
type PlanCourseType string

const (
	PlanRequired PlanCourseType = "required" // A1, B1, C1
	PlanElective PlanCourseType = "elective" // C3 and other electives
	PlanPractice PlanCourseType = "practice" // S*
)

// PlanCourse is one curriculum course after aggregation.
type PlanCourse struct {
	Code    string
	Name    string
	Credits float64
	Type    PlanCourseType
}

// TrainingPlan is the aggregated curriculum: credit totals per category and
// courses grouped by semester.
type TrainingPlan struct {
	MajorName       string
	DurationYears   int
	TotalCredits    float64
	RequiredCredits float64
	ElectiveCredits float64
	PracticeCredits float64

	// CoursesBySemester keys on the 1-based semester number.
	CoursesBySemester map[int][]PlanCourse
}

// AggregatePlan folds raw plan items into a TrainingPlan. Category codes
// map as: A1/B1/C1 required, codes starting with S practice, everything
// else (C3 included) elective.
func AggregatePlan(items []PlanItem) TrainingPlan {
	plan := TrainingPlan{
		CoursesBySemester: make(map[int][]PlanCourse),
	}

	if len(items) > 0 {
		plan.MajorName = strings.TrimSpace(items[0].MajorName)
		if years, err := strconv.Atoi(strings.TrimSpace(items[0].DurationYears)); err == nil {
			plan.DurationYears = years
		}
	}

	for _, item := range items {
		courseType := classifyPlanCourse(item.CategoryCode)
		switch courseType {
		case PlanRequired:
			plan.RequiredCredits += item.Credits
		case PlanPractice:
			plan.PracticeCredits += item.Credits
		default:
			plan.ElectiveCredits += item.Credits
		}

		plan.CoursesBySemester[item.Semester] = append(plan.CoursesBySemester[item.Semester], PlanCourse{
			Code:    item.CourseID,
			Name:    strings.TrimSpace(item.CourseName),
			Credits: item.Credits,
			Type:    courseType,
		})
	}

	plan.TotalCredits = plan.RequiredCredits + plan.ElectiveCredits + plan.PracticeCredits
	return plan
}

func classifyPlanCourse(categoryCode string) PlanCourseType {
	switch code := strings.TrimSpace(categoryCode); {
	case code == "A1" || code == "B1" || code == "C1":
		return PlanRequired
	case strings.HasPrefix(strings.ToUpper(code), "S"):
		return PlanPractice
	default:
		return PlanElective
	}
}
