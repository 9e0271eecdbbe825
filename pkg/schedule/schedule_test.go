package schedule_test

import (
	"testing"

	"github.com/cczukit/cczukit-go/pkg/schedule"
	"github.com/stretchr/testify/require"
)

func TestParseWeeks(t *testing.T) {
	tests := []struct {
		name       string
		descriptor string
		want       []int
	}{
		{"inclusive range", "1-16周", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}},
		{"single week", "5周", []int{5}},
		{"bare range no glyph", "2-8", []int{2, 3, 4, 5, 6, 7, 8}},
		{"multi range union", "2-8,11-14", []int{2, 3, 4, 5, 6, 7, 8, 11, 12, 13, 14}},
		{"trailing comma", "2-8,11-14,", []int{2, 3, 4, 5, 6, 7, 8, 11, 12, 13, 14}},
		{"odd filter", "单7-8,11-14,", []int{7, 11, 13}},
		{"even filter", "双2-9周", []int{2, 4, 6, 8}},
		{"odd glyph with week glyph", "1-6单周", []int{1, 3, 5}},
		{"overlapping ranges deduplicate", "1-4,3-6", []int{1, 2, 3, 4, 5, 6}},
		{"mixed singles and ranges", "1,3,5-7", []int{1, 3, 5, 6, 7}},
		{"no numeric content", "周", nil},
		{"only modifier", "单", nil},
		{"empty", "", nil},
		{"inverted range ignored", "8-2", nil},
		{"garbage segment skipped", "abc,3-4", []int{3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, schedule.ParseWeeks(tt.descriptor))
		})
	}
}

func TestParseWeeksParity(t *testing.T) {
	// Every decoded week satisfies the parity and stays inside the range
	for _, week := range schedule.ParseWeeks("单3-15周") {
		require.Equal(t, 1, week%2)
		require.GreaterOrEqual(t, week, 3)
		require.LessOrEqual(t, week, 15)
	}
	for _, week := range schedule.ParseWeeks("双3-15周") {
		require.Equal(t, 0, week%2)
		require.GreaterOrEqual(t, week, 3)
		require.LessOrEqual(t, week, 15)
	}
}

func TestParseMatrixSingleCourse(t *testing.T) {
	m := schedule.Matrix{
		{{Course: "高等数学 1-16周 教学楼A101", Teacher: "张三"}},
	}

	courses := schedule.ParseMatrix(m)
	require.Len(t, courses, 1)

	c := courses[0]
	require.Equal(t, "高等数学", c.Name)
	require.Equal(t, "张三", c.Teacher)
	require.Equal(t, "教学楼A101", c.Location)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, c.Weeks)
	require.Equal(t, 1, c.DayOfWeek)
	require.Equal(t, 1, c.TimeSlot)
}

func TestParseMatrixCoScheduledSections(t *testing.T) {
	m := schedule.Matrix{
		{{Course: "课程甲 W2305 2-8,11-14,/课程乙 W10阶 15-18,/", Teacher: "李老师,/王老师"}},
	}

	courses := schedule.ParseMatrix(m)
	require.Len(t, courses, 2)

	require.Equal(t, "课程甲", courses[0].Name)
	require.Equal(t, "W2305", courses[0].Location)
	require.Equal(t, []int{2, 3, 4, 5, 6, 7, 8, 11, 12, 13, 14}, courses[0].Weeks)
	require.Equal(t, "李老师", courses[0].Teacher)

	require.Equal(t, "课程乙", courses[1].Name)
	require.Equal(t, "W10阶", courses[1].Location)
	require.Equal(t, []int{15, 16, 17, 18}, courses[1].Weeks)
	require.Equal(t, "王老师", courses[1].Teacher)
}

func TestParseMatrixOddWeekModifierToken(t *testing.T) {
	// The odd modifier arrives as its own token and combines with the
	// numeric descriptor that follows
	m := schedule.Matrix{
		{{Course: "课程丙 W1106 单 7-8,11-14,", Teacher: "赵老师"}},
	}

	courses := schedule.ParseMatrix(m)
	require.Len(t, courses, 1)
	require.Equal(t, []int{7, 11, 13}, courses[0].Weeks)
	require.Equal(t, "W1106", courses[0].Location)
}

func TestParseMatrixEmptyCells(t *testing.T) {
	m := schedule.Matrix{
		{{Course: "", Teacher: ""}, {Course: " ", Teacher: "张三"}},
		{{Course: "", Teacher: ""}},
	}
	require.Empty(t, schedule.ParseMatrix(m))
}

func TestParseMatrixCoordinates(t *testing.T) {
	// Outer index is the time slot, inner index the day of week
	m := schedule.Matrix{
		{{}, {}, {Course: "大学物理 1-8周 实验楼B202", Teacher: "钱老师"}},
		{{}, {Course: "大学英语 2-17周 外语楼301", Teacher: "孙老师"}},
	}

	courses := schedule.ParseMatrix(m)
	require.Len(t, courses, 2)

	require.Equal(t, 3, courses[0].DayOfWeek)
	require.Equal(t, 1, courses[0].TimeSlot)
	require.Equal(t, 2, courses[1].DayOfWeek)
	require.Equal(t, 2, courses[1].TimeSlot)
}

func TestParseMatrixDegradesGracefully(t *testing.T) {
	// No week descriptor and no location still produce an entry
	m := schedule.Matrix{
		{{Course: "形势与政策", Teacher: ""}},
	}

	courses := schedule.ParseMatrix(m)
	require.Len(t, courses, 1)
	require.Equal(t, "形势与政策", courses[0].Name)
	require.Empty(t, courses[0].Weeks)
	require.Empty(t, courses[0].Location)
	require.Empty(t, courses[0].Teacher)
}

func TestParseMatrixMultiTokenLocation(t *testing.T) {
	// Location tokens are joined with a single space, ordering preserved
	m := schedule.Matrix{
		{{Course: "体育 3-16周 南区 操场", Teacher: "周老师"}},
	}

	courses := schedule.ParseMatrix(m)
	require.Len(t, courses, 1)
	require.Equal(t, "南区 操场", courses[0].Location)
}

func TestTeacherFallbackToFirst(t *testing.T) {
	// Second section has no aligned teacher entry, falls back to the first
	m := schedule.Matrix{
		{{Course: "课程甲 1-8周 A101/课程乙 9-16周 A102", Teacher: "张三"}},
	}

	courses := schedule.ParseMatrix(m)
	require.Len(t, courses, 2)
	require.Equal(t, "张三", courses[0].Teacher)
	require.Equal(t, "张三", courses[1].Teacher)
}

func TestTeacherInternalSeparatorTakesFirst(t *testing.T) {
	m := schedule.Matrix{
		{{Course: "实验课 1-8周 C301", Teacher: "张三,李四"}},
	}

	courses := schedule.ParseMatrix(m)
	require.Len(t, courses, 1)
	require.Equal(t, "张三", courses[0].Teacher)
}
