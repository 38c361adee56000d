package directory

const (
	UnknownName = "Unknown"
	UnknownTeam = "Unknown"

	// Graph から displayName / department が取れなかったときのフォールバック
	TeamUnassigned = "Unassigned"
	// Graph が 2xx 以外を返したとき（組織外アドレスなど）
	TeamExternal = "External/Unknown"
	// 通信エラー
	TeamError = "Error"
)

// PersonInfo: email から引いた表示名とチーム（部署）。キャッシュ後は不変。
type PersonInfo struct {
	Name string `json:"name"`
	Team string `json:"team"`
}

// Graph /users/{email} レスポンス（必要フィールドのみ）
type graphUser struct {
	DisplayName string `json:"displayName"`
	Department  string `json:"department"`
}
