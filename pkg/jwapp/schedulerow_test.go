package jwapp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeRow(t *testing.T, raw string) ScheduleRow {
	t.Helper()
	var row ScheduleRow
	require.NoError(t, json.Unmarshal([]byte(raw), &row))
	return row
}

func TestCellsMapsWeekdays(t *testing.T) {
	row := decodeRow(t, `{
		"kc1":"高等数学 1-16周 教学楼A101",
		"kc5":"大学物理 2-17周 理科楼B203",
		"kcmc1":"高等数学","skjs1":"张三",
		"kcmc2":"大学物理","skjs2":"王五",
		"jc":3
	}`)

	cells := row.Cells()
	require.Len(t, cells, 7)

	require.Equal(t, "高等数学 1-16周 教学楼A101", cells[0].Course)
	require.Equal(t, "张三", cells[0].Teacher)

	require.Empty(t, cells[1].Course)
	require.Empty(t, cells[1].Teacher)

	require.Equal(t, "大学物理 2-17周 理科楼B203", cells[4].Course)
	require.Equal(t, "王五", cells[4].Teacher)
}

func TestCellsAlignsMultiSectionTeachers(t *testing.T) {
	row := decodeRow(t, `{
		"kc2":"课程甲 W2305 2-8,/课程乙 W10阶 15-18,",
		"kcmc1":"课程甲","skjs1":"张三",
		"kcmc2":"课程乙","skjs2":"李四"
	}`)

	cells := row.Cells()
	require.Equal(t, "张三,/李四", cells[1].Teacher)
}

func TestCellsKeepsEmptyEntryForUnknownSection(t *testing.T) {
	// The first section has no instructor record; its slot stays empty so
	// the second section still lines up.
	row := decodeRow(t, `{
		"kc3":"课程甲 2-8,/课程乙 15-18,",
		"kcmc1":"课程乙","skjs1":"李四"
	}`)

	cells := row.Cells()
	require.Equal(t, ",/李四", cells[2].Teacher)
}

func TestTeacherIndexSkipsNonStringPairs(t *testing.T) {
	row := decodeRow(t, `{
		"kcmc1":"课程甲","skjs1":"张三",
		"kcmc2":7,"skjs2":"李四",
		"kcmc3":"课程丙","skjs3":null
	}`)

	teachers := row.teacherIndex()
	require.Equal(t, map[string]string{"课程甲": "张三"}, teachers)
}
