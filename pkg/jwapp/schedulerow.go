package jwapp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cczukit/cczukit-go/pkg/errx"
	"github.com/cczukit/cczukit-go/pkg/schedule"
)

// ScheduleRow is one time-slot row of the raw timetable payload. Its keys
// are dynamic: kc1..kc7 hold the packed course strings for the seven
// weekdays, and the parallel kcmc1..kcmc20 / skjs1..skjs20 families
// correlate course names to instructor names. Unknown or absent keys are
// not errors.
type ScheduleRow struct {
	Fields map[string]Value
}

func (r *ScheduleRow) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &r.Fields); err != nil {
		return errx.Decoding(err)
	}
	return nil
}

func (r ScheduleRow) stringField(key string) string {
	s, _ := r.Fields[key].String()
	return s
}

// teacherIndex builds the course-name → instructor map from the numbered
// field families. Only pairs where both sides decode as strings count.
const teacherFieldCount = 20

func (r ScheduleRow) teacherIndex() map[string]string {
	teachers := make(map[string]string)
	for i := 1; i <= teacherFieldCount; i++ {
		name, okName := r.Fields[fmt.Sprintf("kcmc%d", i)].String()
		teacher, okTeacher := r.Fields[fmt.Sprintf("skjs%d", i)].String()
		if okName && okTeacher && name != "" {
			teachers[name] = teacher
		}
	}
	return teachers
}

// Cells converts the row into the seven weekday cells of the schedule
// matrix. The packed teacher string keeps one ",/"-separated entry per
// "/"-separated course section, empty when the name has no instructor
// match, so the decoder can align the two positionally.
func (r ScheduleRow) Cells() []schedule.Cell {
	teachers := r.teacherIndex()

	cells := make([]schedule.Cell, 0, 7)
	for day := 1; day <= 7; day++ {
		course := r.stringField(fmt.Sprintf("kc%d", day))

		var entries []string
		if course != "" {
			for _, section := range strings.Split(course, "/") {
				name, _, _ := strings.Cut(strings.TrimSpace(section), " ")
				entries = append(entries, teachers[name])
			}
		}

		cells = append(cells, schedule.Cell{
			Course:  course,
			Teacher: strings.Join(entries, ",/"),
		})
	}
	return cells
}
