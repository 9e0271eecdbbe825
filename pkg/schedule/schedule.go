// Package schedule decodes the compact timetable format served by the
// academic-affairs portal into structured course entries.
//
// The raw payload is a matrix of packed strings. Each cell can carry up to
// seven co-scheduled course sections separated by "/", each section being a
// whitespace-separated run of a course name, week descriptors ("1-16周",
// "单", "2-8,11-14,") and location tokens, in no fixed order. The engine is
// a pure function of the matrix: malformed cells degrade to entries with
// empty week sets or locations, never an error, because partial timetable
// data is more useful than none.
package schedule

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Cell is one slot of the raw timetable matrix: a packed course string and
// its companion packed teacher string. Teacher entries are separated by ",/"
// and aligned positionally with the "/"-separated course sections.
type Cell struct {
	Course  string
	Teacher string
}

// Matrix is the raw weekly timetable. The outer index is the time slot and
// the inner index the day of week (kc1..kc7 are the seven weekday columns of
// one time-slot row); both are 0-based here and 1-based on Course.
type Matrix [][]Cell

// Course is one decoded course section.
type Course struct {
	Name      string
	Teacher   string
	Location  string
	Weeks     []int // ascending, de-duplicated
	DayOfWeek int   // 1..7, Monday = 1
	TimeSlot  int   // 1-based row of the timetable
}

const (
	weekGlyph = "周"
	oddGlyph  = "单"
	evenGlyph = "双"
)

// numericWeekPattern matches bare numeric week descriptors: "3", "2-8",
// "2-8,11-14" and the trailing-comma forms the portal pads cells with.
var numericWeekPattern = regexp.MustCompile(`^\d+(-\d+)?(,\d+(-\d+)?)*,?$`)

// ParseMatrix decodes every non-empty cell of the matrix. One cell may yield
// zero, one, or several courses.
func ParseMatrix(m Matrix) []Course {
	var courses []Course

	for slotIdx, row := range m {
		for dayIdx, cell := range row {
			courses = append(courses, parseCell(cell, dayIdx+1, slotIdx+1)...)
		}
	}

	return courses
}

// parseCell decodes a single cell into its course sections.
func parseCell(cell Cell, dayOfWeek, timeSlot int) []Course {
	if strings.TrimSpace(cell.Course) == "" {
		return nil
	}

	teachers := strings.Split(cell.Teacher, ",/")

	var courses []Course
	for i, segment := range strings.Split(cell.Course, "/") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		tokens := strings.Fields(segment)
		name := tokens[0]

		// Classification decides the week/location split. Padding and
		// ordering vary across server responses, so position cannot.
		var weekDesc strings.Builder
		var location []string
		for _, token := range tokens[1:] {
			if isWeekDescriptor(token) {
				weekDesc.WriteString(token)
			} else {
				location = append(location, token)
			}
		}

		courses = append(courses, Course{
			Name:      name,
			Teacher:   teacherFor(teachers, i),
			Location:  strings.Join(location, " "),
			Weeks:     ParseWeeks(weekDesc.String()),
			DayOfWeek: dayOfWeek,
			TimeSlot:  timeSlot,
		})
	}

	return courses
}

// isWeekDescriptor reports whether a token describes weeks rather than a
// location: it contains the week glyph, is exactly an odd/even modifier, or
// is a bare numeric/range/comma pattern.
func isWeekDescriptor(token string) bool {
	if strings.Contains(token, weekGlyph) {
		return true
	}
	if token == oddGlyph || token == evenGlyph {
		return true
	}
	return numericWeekPattern.MatchString(token)
}

// teacherFor picks the instructor for section i. Entries align positionally
// with course sections; a missing or empty entry falls back to the first
// listed instructor. An entry that itself joins several names with commas
// yields the first name.
func teacherFor(teachers []string, i int) string {
	pick := ""
	if i < len(teachers) {
		pick = strings.TrimSpace(teachers[i])
	}
	if pick == "" && len(teachers) > 0 {
		pick = strings.TrimSpace(teachers[0])
	}
	if head, _, found := strings.Cut(pick, ","); found {
		return head
	}
	return pick
}

// ParseWeeks expands a week descriptor into the ascending list of week
// numbers it denotes. Descriptors combine single weeks, inclusive ranges and
// comma-separated unions, optionally restricted to odd or even weeks:
// "1-16周" → 1..16, "单7-8,11-14," → 7, 11, 13. A descriptor with no numeric
// content yields nil.
func ParseWeeks(descriptor string) []int {
	cleaned := strings.ReplaceAll(descriptor, weekGlyph, "")

	odd := strings.Contains(cleaned, oddGlyph)
	even := strings.Contains(cleaned, evenGlyph)
	cleaned = strings.ReplaceAll(cleaned, oddGlyph, "")
	cleaned = strings.ReplaceAll(cleaned, evenGlyph, "")

	seen := make(map[int]bool)
	for segment := range strings.SplitSeq(cleaned, ",") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		start, end, ok := parseSpan(segment)
		if !ok {
			continue
		}
		for week := start; week <= end; week++ {
			if odd && week%2 == 0 {
				continue
			}
			if even && week%2 == 1 {
				continue
			}
			seen[week] = true
		}
	}

	if len(seen) == 0 {
		return nil
	}

	weeks := make([]int, 0, len(seen))
	for week := range seen {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)
	return weeks
}

// parseSpan parses "3" or "2-8" into an inclusive range.
func parseSpan(segment string) (int, int, bool) {
	first, second, found := strings.Cut(segment, "-")
	if !found {
		week, err := strconv.Atoi(segment)
		if err != nil {
			return 0, 0, false
		}
		return week, week, true
	}

	start, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0, 0, false
	}
	end, err := strconv.Atoi(strings.TrimSpace(second))
	if err != nil || end < start {
		return 0, 0, false
	}
	return start, end, true
}
