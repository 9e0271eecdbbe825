package jwapp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregatePlanCreditTotals(t *testing.T) {
	items := []PlanItem{
		{CourseID: "MA101", CourseName: "高等数学", CategoryCode: "A1", Credits: 4, Semester: 1, MajorName: "软件工程", DurationYears: "4"},
		{CourseID: "PH102", CourseName: "大学物理", CategoryCode: "B1", Credits: 3, Semester: 2, MajorName: "软件工程", DurationYears: "4"},
		{CourseID: "EL201", CourseName: "艺术鉴赏", CategoryCode: "C3", Credits: 2, Semester: 3},
		{CourseID: "SE301", CourseName: "生产实习 ", CategoryCode: "S1", Credits: 2, Semester: 6},
		{CourseID: "EL202", CourseName: "创新创业", CategoryCode: "D9", Credits: 1, Semester: 4},
	}

	plan := AggregatePlan(items)

	require.Equal(t, "软件工程", plan.MajorName)
	require.Equal(t, 4, plan.DurationYears)
	require.EqualValues(t, 7, plan.RequiredCredits)
	require.EqualValues(t, 3, plan.ElectiveCredits)
	require.EqualValues(t, 2, plan.PracticeCredits)
	require.EqualValues(t, 12, plan.TotalCredits)

	require.Len(t, plan.CoursesBySemester, 5)
	require.Equal(t, []PlanCourse{{Code: "SE301", Name: "生产实习", Credits: 2, Type: PlanPractice}}, plan.CoursesBySemester[6])
}

func TestAggregatePlanEmpty(t *testing.T) {
	plan := AggregatePlan(nil)
	require.Zero(t, plan.TotalCredits)
	require.Empty(t, plan.CoursesBySemester)
}

func TestClassifyPlanCourse(t *testing.T) {
	require.Equal(t, PlanRequired, classifyPlanCourse("A1"))
	require.Equal(t, PlanRequired, classifyPlanCourse(" B1 "))
	require.Equal(t, PlanRequired, classifyPlanCourse("C1"))
	require.Equal(t, PlanElective, classifyPlanCourse("C3"))
	require.Equal(t, PlanPractice, classifyPlanCourse("S2"))
	require.Equal(t, PlanPractice, classifyPlanCourse("s1"))
	require.Equal(t, PlanElective, classifyPlanCourse(""))
}
