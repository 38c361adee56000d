package standup

import (
	"context"
	"errors"
	"log"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"PULSE-backend/internal/directory"
	"PULSE-backend/internal/meetings"
	"PULSE-backend/internal/platform/auth"
	"PULSE-backend/internal/platform/graph"
)

const (
	// 開催ごとの出席レコード取得は独立しているので並行に投げる
	maxConcurrentFetches = 4

	// 解決→集計のパイプライン全体のデッドライン
	DefaultPipelineTimeout = 120 * time.Second
)

type Service struct {
	meetings  *meetings.Service
	directory *directory.Service
	store     *Store
	timeout   time.Duration
}

func NewService(g *graph.Client, dir *directory.Service, loc *meetings.Service) *Service {
	return &Service{
		meetings:  loc,
		directory: dir,
		store:     NewStore(g),
		timeout:   DefaultPipelineTimeout,
	}
}

func (s *Service) Timeout() time.Duration { return s.timeout }

// Analyze: 会議リンクと期間から日次の出席レポートを組み立てる。
// 主催者・会議の解決失敗だけが致命エラー。それ以降の取得失敗は
// その単位（開催・参加者）を空にして続行する。
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) ([]DayReportResponse, error) {
	startDate, err := time.ParseInLocation(DateLayout, req.StartDate, time.UTC)
	if err != nil {
		return nil, ErrInvalid("start_date must be YYYY-MM-DD")
	}
	endDate, err := time.ParseInLocation(DateLayout, req.EndDate, time.UTC)
	if err != nil {
		return nil, ErrInvalid("end_date must be YYYY-MM-DD")
	}
	if endDate.Before(startDate) {
		return nil, ErrInvalid("end_date must be >= start_date")
	}

	// 失効済みトークンは Graph に投げる前に弾く
	if err := auth.CheckNotExpired(req.Token, time.Now()); err != nil {
		return nil, ErrUnauthenticated("credential expired")
	}

	organizerID, err := s.meetings.ResolveOrganizer(ctx, req.Token, req.OrganizerEmail)
	if err != nil {
		return nil, mapMeetingsErr(err)
	}
	meetingID, err := s.meetings.LocateMeeting(ctx, req.Token, organizerID, req.MeetingLink)
	if err != nil {
		return nil, mapMeetingsErr(err)
	}

	reports, err := s.store.FetchReports(ctx, req.Token, organizerID, meetingID)
	if err != nil {
		// レポート一覧が取れなくてもリクエストは失敗させない
		log.Printf("[WARN] standup: attendance reports fetch failed: %v", err)
		return []DayReportResponse{}, nil
	}
	log.Printf("[DEBUG] standup: processing %d reports...", len(reports))

	occs := filterOccurrences(reports, startDate, endDate)

	out := make([]DayReportResponse, len(occs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, occ := range occs {
		i, occ := i, occ
		g.Go(func() error {
			attendees := s.reconcileOccurrence(gctx, req.Token, organizerID, meetingID, occ)
			out[i] = DayReportResponse{
				Date:           occ.date,
				Duration:       occ.duration,
				Attendees:      attendees,
				TotalAttendees: len(attendees),
			}
			return nil
		})
	}
	_ = g.Wait() // ワーカーは失敗を握って空リストにするので err は常に nil

	// Graph の返却順は日付順とは限らないので、日付昇順に揃える
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// filterOccurrences: 開始時刻の取れないレポートを捨て、期間（両端含む）と
// 平日（土日除外）で絞り込む
func filterOccurrences(reports []attendanceReport, startDate, endDate time.Time) []occurrence {
	occs := make([]occurrence, 0, len(reports))
	for _, rep := range reports {
		if rep.MeetingStartDateTime == "" {
			continue
		}
		st, err := time.Parse(time.RFC3339, rep.MeetingStartDateTime)
		if err != nil {
			continue
		}
		st = st.UTC()
		day := time.Date(st.Year(), st.Month(), st.Day(), 0, 0, 0, 0, time.UTC)
		if day.Before(startDate) || day.After(endDate) {
			continue
		}
		if wd := st.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		occs = append(occs, occurrence{
			report:   rep,
			start:    st,
			date:     day.Format(DateLayout),
			duration: occurrenceDuration(st, rep.MeetingEndDateTime),
		})
	}
	return occs
}

// occurrenceDuration: 終了 - 開始 を分に換算（小数2桁）。
// 終了時刻が壊れていれば 0。負値はそのまま通す（補正しない）。
func occurrenceDuration(start time.Time, endRaw string) float64 {
	end, err := time.Parse(time.RFC3339, endRaw)
	if err != nil {
		return 0
	}
	seconds := int64(end.Sub(start) / time.Second)
	return math.Round(float64(seconds)/60*100) / 100
}

func (s *Service) reconcileOccurrence(ctx context.Context, token, organizerID, meetingID string, occ occurrence) []AttendeeResponse {
	records, err := s.store.FetchRecords(ctx, token, organizerID, meetingID, occ.report.ID)
	if err != nil {
		// この開催だけ参加者なしで出力する
		log.Printf("[WARN] standup: attendance records fetch failed for %s: %v", occ.date, err)
		return []AttendeeResponse{}
	}

	attendees := make([]AttendeeResponse, 0, len(records))
	for _, rec := range records {
		if a, ok := s.reconcileRecord(ctx, token, rec, occ.start); ok {
			attendees = append(attendees, a)
		}
	}
	return attendees
}

// reconcileRecord: 1参加者分のレコードを出席事実に畳み込む。
// email があればディレクトリ解決、無ければ identity の表示名をゲスト扱いで使う。
// email も表示名も無いレコードは無効として捨てる。
func (s *Service) reconcileRecord(ctx context.Context, token string, rec attendanceRecord, occStart time.Time) (AttendeeResponse, bool) {
	var (
		name  string
		team  string
		email *string
	)
	if addr, ok := rec.email(); ok {
		info := s.directory.Resolve(ctx, token, addr)
		name, team = info.Name, info.Team
		email = &addr
	} else if rec.Identity.DisplayName != "" {
		name, team = rec.Identity.DisplayName, GuestTeam
	} else {
		return AttendeeResponse{}, false
	}

	joinTime, leaveTime, isOnTime := reconcileIntervals(rec.Intervals, occStart)
	return AttendeeResponse{
		Name:      name,
		Email:     email,
		Team:      team,
		JoinTime:  joinTime,
		LeaveTime: leaveTime,
		IsOnTime:  isOnTime,
	}, true
}

// reconcileIntervals: 全区間から最初の参加と最後の退出を求める。
// 区間が1つも解釈できなければプレースホルダのまま（遅刻扱い）。
// 定刻5分以内（ちょうど・定刻前を含む）なら on time。
func reconcileIntervals(intervals []attendanceInterval, occStart time.Time) (joinTime, leaveTime string, isOnTime bool) {
	joinTime, leaveTime = TimePlaceholder, TimePlaceholder

	var firstJoin, lastLeave time.Time
	for _, iv := range intervals {
		if t, err := time.Parse(time.RFC3339, iv.JoinDateTime); err == nil {
			if firstJoin.IsZero() || t.Before(firstJoin) {
				firstJoin = t
			}
		}
		if t, err := time.Parse(time.RFC3339, iv.LeaveDateTime); err == nil {
			if lastLeave.IsZero() || t.After(lastLeave) {
				lastLeave = t
			}
		}
	}

	if !firstJoin.IsZero() {
		joinTime = firstJoin.UTC().Format(TimeLayout)
		isOnTime = firstJoin.Sub(occStart) <= OnTimeGraceMinutes*time.Minute
	}
	if !lastLeave.IsZero() {
		leaveTime = lastLeave.UTC().Format(TimeLayout)
	}
	return joinTime, leaveTime, isOnTime
}

// mapMeetingsErr: meetings の typed error をこのパッケージの API エラーに写す
func mapMeetingsErr(err error) error {
	var de *meetings.DomainError
	if !errors.As(err, &de) {
		return ErrInternal(err.Error())
	}
	switch de.Code {
	case meetings.ErrCodeOrganizerNotFound, meetings.ErrCodeMeetingNotFound:
		return ErrNotFound(de.Message)
	case meetings.ErrCodeInvalidArgument:
		return ErrInvalid(de.Message)
	default:
		return ErrInternal(de.Message)
	}
}
