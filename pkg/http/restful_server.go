package http

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"aquaview.xyz/water-quality-dashboard/pkg/dashboard"
	"aquaview.xyz/water-quality-dashboard/pkg/models"
)

const userKey = "current_user"

type RestfulServer struct {
	Server           *gin.Engine
	Dashboard        *dashboard.Dashboard
	RateLimiterStore *dashboard.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(username string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(username)
	}
}

func (rs *RestfulServer) CheckUserLimiter(username string) bool {
	limiter := rs.GetLimiter(username)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(username string, userRate float64, userBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(username, rate.Limit(userRate), userBurst)
}

// RequireSession is the route guard: it evaluates the local session on
// every request, records activity on success, and answers 401 with a
// login redirect otherwise. Only the auth service ever clears the
// session; this layer just reports where to go.
func (rs *RestfulServer) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		state := rs.Dashboard.Auth.CheckSession()
		if !state.LoggedIn {
			redirect := "/login"
			if state.Message != "" {
				redirect += "?message=" + url.QueryEscape(state.Message)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message":  state.Message,
				"redirect": redirect,
			})
			return
		}

		rs.Dashboard.Auth.RecordActivity()
		c.Set(userKey, state.User)
		c.Next()
	}
}

func (rs *RestfulServer) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "admin access required"})
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.User {
	value, exists := c.Get(userKey)
	if !exists {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	// marketing pages stay public even for logged-in users
	pages := rs.Server.Group("/pages")
	{
		pages.GET("/about", rs.StaticPage("about"))
		pages.GET("/pricing", rs.StaticPage("pricing"))
		pages.GET("/faqs", rs.StaticPage("faqs"))
	}

	auth := rs.Server.Group("/auth")
	{
		auth.POST("/login", rs.Login)
		auth.POST("/signup", rs.Signup)
		auth.POST("/logout", rs.Logout)
		auth.GET("/session", rs.SessionStatus)
	}

	theme := rs.Server.Group("/theme")
	{
		theme.GET("", rs.GetTheme)
		theme.POST("", rs.SetTheme)
		theme.POST("/toggle", rs.ToggleTheme)
	}

	board := rs.Server.Group("/dashboard", rs.RequireSession())
	{
		board.GET("/summary", rs.Summary)
		board.GET("/warnings", rs.Warnings)
		board.GET("/recent", rs.RecentData)
		board.GET("/correlation", rs.Correlation)
	}

	graphs := rs.Server.Group("/graphs", rs.RequireSession())
	{
		graphs.GET("/data", rs.GraphData)
		graphs.GET("/compare", rs.CompareGraphData)
	}

	admin := rs.Server.Group("/admin", rs.RequireSession(), rs.RequireAdmin())
	{
		admin.GET("/readings", rs.ListReadings)
		admin.POST("/readings", rs.CreateReading)
		admin.PUT("/readings/:id", rs.UpdateReading)
		admin.DELETE("/readings/:id", rs.DeleteReading)

		admin.GET("/users", rs.ListUsers)
		admin.POST("/users", rs.AddUser)
		admin.PUT("/users/:id", rs.UpdateUser)
		admin.DELETE("/users/:id", rs.DeleteUser)

		admin.POST("/limiter", rs.PostLimiter)
	}
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) StaticPage(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"page": name, "public": true})
	}
}
