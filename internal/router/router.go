package router

import (
	"net/http"

	"frontsession/internal/blog"
	"frontsession/internal/frontendsession"
	"frontsession/internal/handlers"

	"github.com/gin-gonic/gin"
)

// Deps are the services the routes dispatch to
type Deps struct {
	Site     *handlers.Site
	Posts    *blog.Posts
	Comments *blog.Comments
	Session  *frontendsession.Handler
	Metrics  http.Handler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	postHandler := handlers.NewPostHandler(d.Site, d.Posts, d.Comments)

	// 公共路由 (Public Routes)
	r.GET("/", postHandler.List)                           // 首页 - 最新文章
	r.GET("/post/:id", postHandler.Detail)                 // 文章详情页
	r.POST("/post/:id/comment", postHandler.CreateComment) // 发表评论

	// 前台会话 (Frontend session)
	r.GET("/"+frontendsession.URLPath, d.Session.Show)    // 登录 / 账户页面
	r.POST("/"+frontendsession.URLPath, d.Session.Action) // 登录 / 退出
	r.StaticFS("/pf/"+frontendsession.ID, http.FS(frontendsession.Static))

	r.GET("/metrics", gin.WrapH(d.Metrics))
	r.NoRoute(d.Site.NotFound)
}
