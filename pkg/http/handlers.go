package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"aquaview.xyz/water-quality-dashboard/pkg/backend"
	"aquaview.xyz/water-quality-dashboard/pkg/chart"
	"aquaview.xyz/water-quality-dashboard/pkg/models"
	"aquaview.xyz/water-quality-dashboard/pkg/table"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

const msgUnreachable = "Unable to connect to server. Please check your connection."

// renderError maps service errors onto HTTP responses. Business errors
// reported by the backend keep their status and message; everything
// unexpected collapses to a 500.
func renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, backend.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{
			"message":  "Session expired. Please login again.",
			"redirect": "/login",
		})
	case errors.Is(err, backend.ErrUnreachable):
		c.JSON(http.StatusBadGateway, gin.H{"message": msgUnreachable})
	case errors.Is(err, chart.ErrNoData), errors.Is(err, chart.ErrBadShape):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
	default:
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.Status, gin.H{"message": apiErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"Username": z.String().Min(1).Required(),
	"Password": z.String().Min(1).Required(),
})

func (rs *RestfulServer) Login(c *gin.Context) {
	var req LoginRequest
	if err := loginRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	result, err := rs.Dashboard.Auth.Login(c.Request.Context(), models.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	if !result.Success {
		c.JSON(http.StatusUnauthorized, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

type SignupRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	UserType  string `json:"user_type"`
}

var signupRequestSchema = z.Struct(z.Shape{
	"Firstname": z.String().Min(1).Required(),
	"Lastname":  z.String().Min(1).Required(),
	"Username":  z.String().Min(1).Required(),
	"Password":  z.String().Min(8).Required(),
	"Email":     z.String().Email().Required(),
	"UserType":  z.String(),
})

// passwordOK enforces the minimum complexity rule: at least one letter
// and one digit.
func passwordOK(password string) bool {
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

func parseSignup(c *gin.Context) (*models.SignupRequest, bool) {
	var req SignupRequest
	if err := signupRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return nil, false
	}

	if !passwordOK(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Password must contain at least one letter and one number.",
		})
		return nil, false
	}

	userType := req.UserType
	if userType == "" {
		userType = string(models.UserTypeCustomer)
	}
	if userType != string(models.UserTypeCustomer) && userType != string(models.UserTypeAdmin) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user type"})
		return nil, false
	}

	return &models.SignupRequest{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		UserType:  userType,
	}, true
}

func (rs *RestfulServer) Signup(c *gin.Context) {
	req, ok := parseSignup(c)
	if !ok {
		return
	}

	result, err := rs.Dashboard.Auth.Signup(c.Request.Context(), *req)
	if err != nil {
		renderError(c, err)
		return
	}

	if !result.Success {
		c.JSON(http.StatusConflict, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (rs *RestfulServer) Logout(c *gin.Context) {
	rs.Dashboard.Auth.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// SessionStatus does the full re-validation round trip: local expiry
// checks first, then the backend token check.
func (rs *RestfulServer) SessionStatus(c *gin.Context) {
	state := rs.Dashboard.Auth.Revalidate(c.Request.Context())
	c.JSON(http.StatusOK, state)
}

func (rs *RestfulServer) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": rs.Dashboard.Theme.Current()})
}

type ThemeRequest struct {
	Theme string `json:"theme"`
}

var themeRequestSchema = z.Struct(z.Shape{
	"Theme": z.String().Min(1).Required(),
})

func (rs *RestfulServer) SetTheme(c *gin.Context) {
	var req ThemeRequest
	if err := themeRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Dashboard.Theme.Set(models.Theme(req.Theme)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to save theme"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": rs.Dashboard.Theme.Current()})
}

func (rs *RestfulServer) ToggleTheme(c *gin.Context) {
	theme, err := rs.Dashboard.Theme.Toggle()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to save theme"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

func (rs *RestfulServer) Summary(c *gin.Context) {
	insights, err := rs.Dashboard.Data.Summary(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, insights)
}

func (rs *RestfulServer) Warnings(c *gin.Context) {
	warnings, err := rs.Dashboard.Data.Warnings(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, warnings)
}

func (rs *RestfulServer) RecentData(c *gin.Context) {
	sortField := c.DefaultQuery("sort", "date")
	ascending := c.DefaultQuery("order", "desc") == "asc"

	rows, err := rs.Dashboard.Data.Recent(c.Request.Context(), sortField, ascending)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (rs *RestfulServer) Correlation(c *gin.Context) {
	location := c.DefaultQuery("location", "US")

	charts, err := rs.Dashboard.Data.Correlation(c.Request.Context(), location)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, charts)
}

func requireQuery(c *gin.Context, names ...string) (map[string]string, bool) {
	values := make(map[string]string, len(names))
	for _, name := range names {
		value := c.Query(name)
		if value == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "missing query parameter: " + name})
			return nil, false
		}
		values[name] = value
	}
	return values, true
}

func (rs *RestfulServer) GraphData(c *gin.Context) {
	params, ok := requireQuery(c, "start_date", "end_date", "location", "data_type")
	if !ok {
		return
	}

	points, err := rs.Dashboard.Charts.Series(c.Request.Context(),
		params["start_date"], params["end_date"], params["location"], params["data_type"])
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

func (rs *RestfulServer) CompareGraphData(c *gin.Context) {
	params, ok := requireQuery(c, "start_date", "end_date", "locations", "data_type")
	if !ok {
		return
	}
	locations := strings.Split(params["locations"], ",")

	comparison, err := rs.Dashboard.Charts.Comparison(c.Request.Context(),
		params["start_date"], params["end_date"], locations, params["data_type"])
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, comparison)
}

// ListReadings serves the admin table: the full dataset is fetched once,
// then filtering, pagination and the pager window are computed here.
func (rs *RestfulServer) ListReadings(c *gin.Context) {
	rows, err := rs.Dashboard.Data.AllReadings(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	filters := table.Filters{
		Date:     c.Query("date"),
		Location: c.Query("location"),
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	filtered := table.ApplyFilters(rows, filters)
	result := table.Paginate(filtered, page, table.PageSize)
	window := table.PageWindow(result.Number, result.TotalPages)

	c.JSON(http.StatusOK, gin.H{
		"rows":        result.Rows,
		"page":        result.Number,
		"total_rows":  result.TotalRows,
		"total_pages": result.TotalPages,
		"window":      window,
	})
}

var readingRequestSchema = z.Struct(z.Shape{
	"Location":    z.String().Min(1).Required(),
	"PhValue":     z.Float64().Required(),
	"Temperature": z.Float64().Required(),
	"Turbidity":   z.Float64().Required(),
})

func (rs *RestfulServer) checkLimiter(c *gin.Context) bool {
	user := currentUser(c)
	if user == nil {
		return true
	}
	if !rs.CheckUserLimiter(user.Username) {
		c.Status(http.StatusTooManyRequests)
		return false
	}
	return true
}

func (rs *RestfulServer) CreateReading(c *gin.Context) {
	if !rs.checkLimiter(c) {
		return
	}

	var req models.ReadingInput
	if err := readingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rows, err := rs.Dashboard.Data.CreateReading(c.Request.Context(), req)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"notice": table.NewNotice("Reading added successfully."),
		"rows":   rows,
	})
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return 0, false
	}
	return id, true
}

func (rs *RestfulServer) UpdateReading(c *gin.Context) {
	if !rs.checkLimiter(c) {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.ReadingInput
	if err := readingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rows, err := rs.Dashboard.Data.UpdateReading(c.Request.Context(), id, req)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"notice": table.NewNotice("Reading updated successfully."),
		"rows":   rows,
	})
}

// DeleteReading requires an explicit confirm=true; the confirmation
// dialog of the admin screen lives on the caller's side.
func (rs *RestfulServer) DeleteReading(c *gin.Context) {
	if !rs.checkLimiter(c) {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "confirmation required"})
		return
	}

	rows, err := rs.Dashboard.Data.DeleteReading(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"notice": table.NewNotice("Reading deleted successfully."),
		"rows":   rows,
	})
}

func (rs *RestfulServer) ListUsers(c *gin.Context) {
	users, err := rs.Dashboard.Users.List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (rs *RestfulServer) AddUser(c *gin.Context) {
	if !rs.checkLimiter(c) {
		return
	}

	req, ok := parseSignup(c)
	if !ok {
		return
	}

	if err := rs.Dashboard.Users.Add(c.Request.Context(), *req); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notice": table.NewNotice("User added successfully.")})
}

func (rs *RestfulServer) UpdateUser(c *gin.Context) {
	if !rs.checkLimiter(c) {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	req, ok := parseSignup(c)
	if !ok {
		return
	}

	if err := rs.Dashboard.Users.Update(c.Request.Context(), id, *req); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notice": table.NewNotice("User updated successfully.")})
}

func (rs *RestfulServer) DeleteUser(c *gin.Context) {
	if !rs.checkLimiter(c) {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "confirmation required"})
		return
	}

	if err := rs.Dashboard.Users.Delete(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notice": table.NewNotice("User deleted successfully.")})
}

type LimiterRequest struct {
	Username string  `json:"username"`
	Rate     float64 `json:"rate"`
	Burst    int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"Username": z.String().Min(1).Required(),
	"Rate":     z.Float64().Required(),
	"Burst":    z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(req.Username, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}
