package handler

import (
	"github.com/docbot/web/internal/view"
	"github.com/gin-gonic/gin"
)

// 홈 화면
func Home(c *gin.Context) {
	renderPage(c, GetVisitor(c), "", "home.html", "Home", view.Home)
}

// 소개 화면
func About(c *gin.Context) {
	renderPage(c, GetVisitor(c), "", "about.html", "About", view.About)
}
