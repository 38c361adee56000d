package meetings

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"PULSE-backend/internal/platform/graph"
)

const encodedLink = "https://teams.microsoft.com/l/meetup-join/19%3ameeting_NzAx%40thread.v2/0?context=%7b%22Tid%22%3a%22t1%22%7d"

func newTestService(t *testing.T, handler http.Handler) *Service {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewService(graph.NewClient(ts.URL, time.Second))
}

func jsonResponse(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprint(w, body)
}

func TestResolveOrganizer(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/users/boss@example.com" {
				t.Errorf("path = %q", r.URL.Path)
			}
			jsonResponse(w, http.StatusOK, `{"id":"org-1"}`)
		}))
		id, err := svc.ResolveOrganizer(context.Background(), "tok", "boss@example.com")
		if err != nil || id != "org-1" {
			t.Fatalf("got (%q, %v)", id, err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			jsonResponse(w, http.StatusNotFound, `{}`)
		}))
		_, err := svc.ResolveOrganizer(context.Background(), "tok", "ghost@example.com")
		if !IsNotFound(err) {
			t.Fatalf("err = %v, want not-found", err)
		}
	})

	t.Run("empty email", func(t *testing.T) {
		svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("unexpected request")
		}))
		if _, err := svc.ResolveOrganizer(context.Background(), "tok", ""); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestLocateMeetingExactMatch(t *testing.T) {
	fallbackCalled := false
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("$filter") != "" {
			jsonResponse(w, http.StatusOK, `{"value":[{"id":"mtg-1","joinWebUrl":"x"},{"id":"mtg-2","joinWebUrl":"x"}]}`)
			return
		}
		fallbackCalled = true
		jsonResponse(w, http.StatusOK, `{"value":[]}`)
	}))

	id, err := svc.LocateMeeting(context.Background(), "tok", "org-1", encodedLink)
	if err != nil || id != "mtg-1" {
		t.Fatalf("got (%q, %v)", id, err)
	}
	// 完全一致でヒットしたら戦略2には進まない
	if fallbackCalled {
		t.Error("fallback was invoked despite exact match")
	}
}

func TestLocateMeetingFallback(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("$filter") != "" {
			jsonResponse(w, http.StatusOK, `{"value":[]}`)
			return
		}
		// スレッドIDがURLエンコードされたまま入っている会議一覧
		jsonResponse(w, http.StatusOK, `{"value":[
			{"id":"mtg-other","joinWebUrl":"https://teams.microsoft.com/l/meetup-join/19%3ameeting_XXX%40thread.v2/0?a=b"},
			{"id":"mtg-hit","joinWebUrl":"https://teams.microsoft.com/l/meetup-join/19%3ameeting_NzAx%40thread.v2/0?a=b"}
		]}`)
	}))

	id, err := svc.LocateMeeting(context.Background(), "tok", "org-1", encodedLink)
	if err != nil || id != "mtg-hit" {
		t.Fatalf("got (%q, %v)", id, err)
	}
}

func TestLocateMeetingFallbackPagination(t *testing.T) {
	var ts *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/users/org-1/onlineMeetings", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("$filter") != "" {
			jsonResponse(w, http.StatusOK, `{"value":[]}`)
			return
		}
		if r.URL.Query().Get("page") == "2" {
			jsonResponse(w, http.StatusOK, `{"value":[{"id":"mtg-page2","joinWebUrl":"https://t/meetup-join/19%3ameeting_NzAx%40thread.v2/0?a=b"}]}`)
			return
		}
		jsonResponse(w, http.StatusOK, fmt.Sprintf(
			`{"value":[{"id":"mtg-1","joinWebUrl":"nope"}],"@odata.nextLink":"%s/users/org-1/onlineMeetings?page=2"}`, ts.URL))
	})
	ts = httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	svc := NewService(graph.NewClient(ts.URL, time.Second))

	id, err := svc.LocateMeeting(context.Background(), "tok", "org-1", encodedLink)
	if err != nil || id != "mtg-page2" {
		t.Fatalf("got (%q, %v)", id, err)
	}
}

func TestLocateMeetingNoMarker(t *testing.T) {
	listCalled := false
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("$filter") != "" {
			jsonResponse(w, http.StatusOK, `{"value":[]}`)
			return
		}
		listCalled = true
		jsonResponse(w, http.StatusOK, `{"value":[]}`)
	}))

	_, err := svc.LocateMeeting(context.Background(), "tok", "org-1", "https://example.com/some-link")
	if !IsNotFound(err) {
		t.Fatalf("err = %v, want not-found", err)
	}
	// 目印が無ければ一覧取得のリクエストすら出さない
	if listCalled {
		t.Error("fallback listing was requested without marker")
	}
}

func TestLocateMeetingFallbackErrorsDegradeToNotFound(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("$filter") != "" {
			jsonResponse(w, http.StatusOK, `{"value":[]}`)
			return
		}
		jsonResponse(w, http.StatusInternalServerError, `{}`)
	}))

	_, err := svc.LocateMeeting(context.Background(), "tok", "org-1", encodedLink)
	if !IsNotFound(err) {
		t.Fatalf("err = %v, want not-found", err)
	}
}

func TestExtractThreadID(t *testing.T) {
	tests := []struct {
		name string
		link string
		want string
		ok   bool
	}{
		{"encoded teams link", encodedLink, "19:meeting_NzAx@thread.v2", true},
		{"plain link", "https://t/meetup-join/19:meeting_abc@thread.v2/0?x=y", "19:meeting_abc@thread.v2", true},
		{"no terminator", "https://t/meetup-join/19:meeting_abc@thread.v2", "19:meeting_abc@thread.v2", true},
		{"no marker", "https://example.com/whatever", "", false},
		{"empty thread id", "https://t/meetup-join//0?x=y", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractThreadID(tt.link)
			if got != tt.want || ok != tt.ok {
				t.Errorf("extractThreadID(%q) = (%q, %v), want (%q, %v)", tt.link, got, ok, tt.want, tt.ok)
			}
		})
	}
}
