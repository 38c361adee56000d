package graph

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const DefaultBaseURL = "https://graph.microsoft.com/v1.0"

// StatusError: Graph が 2xx 以外を返した場合。
// 呼び出し側はステータスを見て NotFound / 劣化継続を判断する。
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("graph: status %d: %s", e.Status, e.Body)
}

// AsStatus: err が StatusError ならステータスコードを返す
func AsStatus(err error) (int, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status, true
	}
	return 0, false
}

// Client: Microsoft Graph への共有クライアント。
// トークンは呼び出し元から都度渡す（こちらでは発行も更新もしない）。
type Client struct {
	rc *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{rc: rc}
}

// Get: path（ベースURL相対、または @odata.nextLink の絶対URL）へ GET し、
// 2xx なら out に JSON をデコードする。2xx 以外は StatusError。
func (c *Client) Get(ctx context.Context, token, path string, query map[string]string, out any) error {
	req := c.rc.R().SetContext(ctx).SetAuthToken(token)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("graph: request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return &StatusError{Status: resp.StatusCode(), Body: truncateBody(resp.String())}
	}
	return nil
}

func truncateBody(s string) string {
	const max = 256
	if len(s) > max {
		return s[:max]
	}
	return s
}
