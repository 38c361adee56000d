package standup

import (
	"encoding/csv"
	"io"
	"strconv"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// WriteCSV: 日次レポートを参加者単位のフラットな行に展開して書き出す。
// sjis=true のときは Excel 向けに cp932 へ変換する（printLabels と同じ事情）。
func WriteCSV(w io.Writer, days []DayReportResponse, sjis bool) error {
	out := w
	var tw *transform.Writer
	if sjis {
		tw = transform.NewWriter(w, japanese.ShiftJIS.NewEncoder())
		out = tw
	}

	cw := csv.NewWriter(out)
	if err := cw.Write([]string{"date", "name", "email", "team", "join_time", "leave_time", "is_on_time"}); err != nil {
		return err
	}
	for _, day := range days {
		for _, a := range day.Attendees {
			email := ""
			if a.Email != nil {
				email = *a.Email
			}
			row := []string{day.Date, a.Name, email, a.Team, a.JoinTime, a.LeaveTime, strconv.FormatBool(a.IsOnTime)}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	if tw != nil {
		return tw.Close()
	}
	return nil
}
