package directory

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"PULSE-backend/internal/platform/auth"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	// ダッシュボードが主催者メールアドレスを事前確認するためのエンドポイント
	// GET /directory/users/:email
	r.GET("/directory/users/:email", h.GetUser)
}

// GetUser godoc
// @Summary      メールアドレスから表示名とチームを引く
// @Tags         directory
// @Produce      json
// @Param        email path string true "メールアドレス"
// @Security     BearerAuth
// @Success      200 {object} PersonInfo
// @Failure      401 {object} map[string]string
// @Router       /directory/users/{email} [get]
func (h *Handler) GetUser(c *gin.Context) {
	token, ok := auth.BearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
		return
	}
	info := h.svc.Resolve(c.Request.Context(), token, c.Param("email"))
	c.JSON(http.StatusOK, info)
}
