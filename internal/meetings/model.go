package meetings

// Graph レスポンス（必要フィールドのみ）

type graphUser struct {
	ID string `json:"id"`
}

type onlineMeeting struct {
	ID         string `json:"id"`
	JoinWebURL string `json:"joinWebUrl"`
}

type meetingPage struct {
	Value    []onlineMeeting `json:"value"`
	NextLink string          `json:"@odata.nextLink"`
}
