package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cczukit/cczukit-go/internal/app"
	"github.com/cczukit/cczukit-go/pkg/schedule"
	"github.com/urfave/cli"
)

// newApplication builds the application from the environment plus the
// command-line credential flags and logs it in.
func newApplication(ctx context.Context) (*app.Application, error) {
	cfg := app.LoadConfig()
	if username != "" {
		cfg.Username = username
	}
	if password != "" {
		cfg.Password = password
	}
	if cfg.Username == "" || cfg.Password == "" {
		return nil, errors.New("a username and password are required (flags or CCZU_USERNAME/CCZU_PASSWORD)")
	}

	application, err := app.New(cfg)
	if err != nil {
		return nil, err
	}
	if err := application.Login(ctx); err != nil {
		return nil, err
	}
	return application, nil
}

func login(*cli.Context) error {
	ctx := context.Background()
	application, err := newApplication(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("logged in (%s mode)\n", application.SSO().Mode())
	if identity := application.SSO().VPNIdentity(); identity != nil {
		fmt.Printf("vpn identity: %s\n", identity.UserID)
	}
	return nil
}

func grades(*cli.Context) error {
	ctx := context.Background()
	application, err := newApplication(ctx)
	if err != nil {
		return err
	}

	records, err := application.Session().Grades(application.Context(ctx))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TERM\tCOURSE\tCREDITS\tGRADE\tPOINTS")
	for _, r := range records {
		fmt.Fprintf(w, "%d\t%s\t%.1f\t%.1f\t%.2f\n", r.Term, r.CourseName, r.CourseCredits, r.Grade, r.GradePoints)
	}
	return w.Flush()
}

func rank(*cli.Context) error {
	ctx := context.Background()
	application, err := newApplication(ctx)
	if err != nil {
		return err
	}

	points, err := application.Session().CreditsAndRank(application.Context(ctx))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STUDENT\tCLASS\tGPA")
	for _, p := range points {
		fmt.Fprintf(w, "%s\t%s\t%.4f\n", p.StudentName, p.ClassName, p.GradePoints)
	}
	return w.Flush()
}

func terms(*cli.Context) error {
	ctx := context.Background()
	application, err := newApplication(ctx)
	if err != nil {
		return err
	}

	all, err := application.Session().Terms(application.Context(ctx))
	if err != nil {
		return err
	}
	for _, t := range all {
		fmt.Println(t.Term)
	}
	return nil
}

func scheduleCmd(*cli.Context) error {
	ctx := context.Background()
	application, err := newApplication(ctx)
	if err != nil {
		return err
	}

	session := application.Session()
	var matrix schedule.Matrix
	if term != "" {
		matrix, err = session.Schedule(application.Context(ctx), term)
	} else {
		matrix, err = session.CurrentSchedule(application.Context(ctx))
	}
	if err != nil {
		return err
	}

	courses := schedule.ParseMatrix(matrix)
	sort.SliceStable(courses, func(i, j int) bool {
		if courses[i].DayOfWeek != courses[j].DayOfWeek {
			return courses[i].DayOfWeek < courses[j].DayOfWeek
		}
		return courses[i].TimeSlot < courses[j].TimeSlot
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DAY\tSLOT\tCOURSE\tTEACHER\tLOCATION\tWEEKS")
	for _, c := range courses {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\n",
			c.DayOfWeek, c.TimeSlot, c.Name, c.Teacher, c.Location, formatWeeks(c.Weeks))
	}
	return w.Flush()
}

func exams(*cli.Context) error {
	ctx := context.Background()
	application, err := newApplication(ctx)
	if err != nil {
		return err
	}

	arrangements, err := application.Session().Exams(application.Context(ctx))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COURSE\tTIME\tLOCATION")
	for _, e := range arrangements {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.CourseName, e.Time, e.Location)
	}
	return w.Flush()
}

func plan(*cli.Context) error {
	ctx := context.Background()
	application, err := newApplication(ctx)
	if err != nil {
		return err
	}

	trainingPlan, err := application.Session().TrainingPlan(application.Context(ctx))
	if err != nil {
		return err
	}

	fmt.Printf("%s (%d years)\n", trainingPlan.MajorName, trainingPlan.DurationYears)
	fmt.Printf("credits: %.1f total, %.1f required, %.1f elective, %.1f practice\n",
		trainingPlan.TotalCredits, trainingPlan.RequiredCredits,
		trainingPlan.ElectiveCredits, trainingPlan.PracticeCredits)

	semesters := make([]int, 0, len(trainingPlan.CoursesBySemester))
	for semester := range trainingPlan.CoursesBySemester {
		semesters = append(semesters, semester)
	}
	sort.Ints(semesters)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, semester := range semesters {
		fmt.Fprintf(w, "semester %d\t\t\n", semester)
		for _, course := range trainingPlan.CoursesBySemester[semester] {
			fmt.Fprintf(w, "  %s\t%.1f\t%s\n", course.Name, course.Credits, course.Type)
		}
	}
	return w.Flush()
}

func formatWeeks(weeks []int) string {
	parts := make([]string, 0, len(weeks))
	for _, week := range weeks {
		parts = append(parts, fmt.Sprintf("%d", week))
	}
	return strings.Join(parts, ",")
}
