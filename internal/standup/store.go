package standup

import (
	"context"
	"net/url"

	"PULSE-backend/internal/platform/graph"
)

type Store struct{ graph *graph.Client }

func NewStore(g *graph.Client) *Store { return &Store{graph: g} }

func reportsPath(organizerID, meetingID string) string {
	return "/users/" + url.PathEscape(organizerID) +
		"/onlineMeetings/" + url.PathEscape(meetingID) + "/attendanceReports"
}

// FetchReports: 会議の開催ごとの出席レポート一覧
func (s *Store) FetchReports(ctx context.Context, token, organizerID, meetingID string) ([]attendanceReport, error) {
	var page reportPage
	if err := s.graph.Get(ctx, token, reportsPath(organizerID, meetingID), nil, &page); err != nil {
		return nil, err
	}
	return page.Value, nil
}

// FetchRecords: 1開催分の出席レコード一覧（参加者 × 開催）
func (s *Store) FetchRecords(ctx context.Context, token, organizerID, meetingID, reportID string) ([]attendanceRecord, error) {
	var page recordPage
	path := reportsPath(organizerID, meetingID) + "/" + url.PathEscape(reportID) + "/attendanceRecords"
	if err := s.graph.Get(ctx, token, path, nil, &page); err != nil {
		return nil, err
	}
	return page.Value, nil
}
