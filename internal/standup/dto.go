package standup

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"

	// 開始から5分以内（ちょうど5分を含む）なら遅刻扱いにしない
	OnTimeGraceMinutes = 5

	// 参加区間が1つも取れなかったときの表示用プレースホルダ
	TimePlaceholder = "-"

	GuestTeam = "Guest"
)

type AnalyzeRequest struct {
	Token          string `json:"token" binding:"required"`
	StartDate      string `json:"start_date" binding:"required"` // "YYYY-MM-DD"
	EndDate        string `json:"end_date" binding:"required"`   // "YYYY-MM-DD"
	OrganizerEmail string `json:"organizer_email" binding:"required"`
	MeetingLink    string `json:"meeting_link" binding:"required"`
}

type AttendeeResponse struct {
	Name      string  `json:"name"`
	Email     *string `json:"email"`
	Team      string  `json:"team"`
	JoinTime  string  `json:"join_time"`  // "HH:MM:SS" or "-"
	LeaveTime string  `json:"leave_time"` // "HH:MM:SS" or "-"
	IsOnTime  bool    `json:"is_on_time"`
}

type DayReportResponse struct {
	Date           string             `json:"date"`     // YYYY-MM-DD
	Duration       float64            `json:"duration"` // 分（小数2桁）
	Attendees      []AttendeeResponse `json:"attendees"`
	TotalAttendees int                `json:"total_attendees"`
}
