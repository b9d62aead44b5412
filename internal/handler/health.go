package handler

import (
	"net/http"

	"github.com/docbot/web/internal/model"
	"github.com/gin-gonic/gin"
)

// 헬스체크 엔드포인트
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, model.PingResponse{Message: "pong"})
}

// 프로세스 상태 (백엔드 연결 여부와 무관)
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, model.RootResponse{
		Status:  "ok",
		Message: "DocBot web server is running",
	})
}
