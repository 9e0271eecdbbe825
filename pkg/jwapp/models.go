package jwapp

// The academic-affairs service keys its JSON with abbreviated pinyin field
// names (xh = 学号 student number, kcmc = 课程名称 course name, ...). The
// structs below carry those wire keys in tags and readable names in Go.

// UserInfo is the subject record returned inside the login envelope.
type UserInfo struct {
	UserID         string `json:"yhdm"`
	Name           string `json:"yhmc"`
	Identity       string `json:"yhsf"`
	Term           string `json:"xq"`
	CurrentWeek    int    `json:"dqz"`
	Position       int    `json:"zc"`
	EmployeeNumber string `json:"gh"`
	SMSCode        string `json:"smscode"`
	Gender         string `json:"xb"`
	Permission     string `json:"yhqx"`

	// ID is the internal subject identifier every authenticated endpoint
	// keys on. The login endpoint answers 200 even for a wrong password;
	// an empty ID is the only signal that the credentials were bad.
	ID string `json:"yhid"`
}

// CourseGrade is one graded course record.
type CourseGrade struct {
	ClassID        string  `json:"bh"`
	ClassName      string  `json:"bj"`
	StudentID      string  `json:"xh"`
	StudentName    string  `json:"xm"`
	CourseID       string  `json:"kcdm"`
	CourseName     string  `json:"kcmc"`
	Term           int     `json:"xq"`
	CourseType     string  `json:"kclb"`
	CourseTypeName string  `json:"lbmc"`
	CourseHours    int     `json:"xs"`
	CourseCredits  float64 `json:"xf"`
	TeacherName    string  `json:"jsmc"`
	IsExamType     int     `json:"ksxzm"`
	ExamType       string  `json:"ksxz"`
	ExamGrade      string  `json:"kscj"`
	Ident          int     `json:"idn"`
	Grade          float64 `json:"cj"`
	GradePoints    float64 `json:"xfjd"`
}

// StudentPoint is the credit/grade-point summary with class ranking context.
type StudentPoint struct {
	ClassID         string  `json:"bh"`
	ClassName       string  `json:"bj"`
	StudentID       string  `json:"xh"`
	StudentName     string  `json:"xm"`
	StudentGender   string  `json:"xb"`
	StudentStatus   string  `json:"xjqk"`
	StudentBirthday string  `json:"csny"`
	StudentXID      string  `json:"xsid"`
	GradePoints     float64 `json:"pjxfjd"`
}

// Term names one academic term, e.g. "2025-2026-1".
type Term struct {
	Term string `json:"xq"`
}

// ExamArrangement is one scheduled exam.
type ExamArrangement struct {
	CourseID    string `json:"kcdm"`
	CourseName  string `json:"kcmc"`
	ClassID     string `json:"xsbh"`
	ClassName   string `json:"xsbj"`
	StudentID   string `json:"xh"`
	StudentName string `json:"xm"`
	Location    string `json:"jse"`
	Time        string `json:"kssj"`
	ExamType    string `json:"lb"`
	StudyType   string `json:"xklb"`
	Campus      string `json:"bmmc"`
	Remark      string `json:"bz"`
	Week        int    `json:"zc"`
	StartSlot   int    `json:"jc1"`
	EndSlot     int    `json:"jc2"`
	Term        string `json:"xq"`
	DayInfo     string `json:"sjxx"`
}
