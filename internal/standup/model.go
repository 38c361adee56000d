package standup

import (
	"encoding/json"
	"time"
)

// ===== Graph レスポンス（必要フィールドのみ） =====

// 1開催 = 1レポート
type attendanceReport struct {
	ID                   string `json:"id"`
	MeetingStartDateTime string `json:"meetingStartDateTime"`
	MeetingEndDateTime   string `json:"meetingEndDateTime"`
}

type reportPage struct {
	Value []attendanceReport `json:"value"`
}

// 1参加者 × 1開催 = 1レコード。切断→再参加で区間は複数になる
type attendanceInterval struct {
	JoinDateTime  string `json:"joinDateTime"`
	LeaveDateTime string `json:"leaveDateTime"`
}

type attendanceRecord struct {
	// 文字列とオブジェクト {address: ...} の両形で届く
	EmailAddress json.RawMessage `json:"emailAddress"`
	Identity     struct {
		DisplayName string `json:"displayName"`
	} `json:"identity"`
	Intervals []attendanceInterval `json:"attendanceIntervals"`
}

type recordPage struct {
	Value []attendanceRecord `json:"value"`
}

// email: emailAddress フィールドの揺れを吸収して取り出す
func (r attendanceRecord) email() (string, bool) {
	if len(r.EmailAddress) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(r.EmailAddress, &s); err == nil {
		return s, s != ""
	}
	var obj struct {
		Address string `json:"address"`
	}
	if err := json.Unmarshal(r.EmailAddress, &obj); err == nil && obj.Address != "" {
		return obj.Address, true
	}
	return "", false
}

// ===== Service 内部モデル =====

// フィルタを通過した開催1件分
type occurrence struct {
	report   attendanceReport
	start    time.Time // UTC
	date     string    // YYYY-MM-DD
	duration float64   // 分
}
