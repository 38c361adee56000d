package standup

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	// POST /standup/analyze
	r.POST("/standup/analyze", h.Analyze)
	// POST /standup/export (CSVダウンロード)
	r.POST("/standup/export", h.Export)
}

// ---------- handlers ----------

// Analyze godoc
// @Summary      スタンドアップの日次出席レポートを生成
// @Description  会議リンクと期間から開催を特定し、参加者ごとの出席・遅刻状況を返す
// @Tags         standup
// @Accept       json
// @Produce      json
// @Param        request body AnalyzeRequest true "分析条件"
// @Success      200 {array}  DayReportResponse
// @Failure      400 {object} errorDTO
// @Failure      401 {object} errorDTO
// @Failure      404 {object} errorDTO
// @Router       /standup/analyze [post]
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(CodeInvalidArgument, "invalid json or missing required fields"))
		return
	}

	// 外部APIの遅延でハンドラが無限に待たされないようデッドラインを切る
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.svc.Timeout())
	defer cancel()

	res, err := h.svc.Analyze(ctx, req)
	if err != nil {
		c.JSON(ToHTTPStatus(err), errorFromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// Export godoc
// @Summary      出席レポートをCSVで出力
// @Description  analyze と同じ入力。encoding=sjis で Excel 向け cp932 に変換する
// @Tags         standup
// @Accept       json
// @Produce      text/csv
// @Param        request  body  AnalyzeRequest true "分析条件"
// @Param        encoding query string         false "utf8 (default) | sjis"
// @Success      200 {string} string "CSV"
// @Failure      400 {object} errorDTO
// @Failure      401 {object} errorDTO
// @Failure      404 {object} errorDTO
// @Router       /standup/export [post]
func (h *Handler) Export(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(CodeInvalidArgument, "invalid json or missing required fields"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.svc.Timeout())
	defer cancel()

	days, err := h.svc.Analyze(ctx, req)
	if err != nil {
		c.JSON(ToHTTPStatus(err), errorFromErr(err))
		return
	}

	sjis := c.DefaultQuery("encoding", "utf8") == "sjis"
	var buf bytes.Buffer
	if err := WriteCSV(&buf, days, sjis); err != nil {
		c.JSON(http.StatusInternalServerError, errorFromErr(ErrInternal("csv generation failed")))
		return
	}

	filename := "standup_" + time.Now().UTC().Format("20060102") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	contentType := "text/csv; charset=utf-8"
	if sjis {
		contentType = "text/csv; charset=shift_jis"
	}
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
