package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyAQVDBType string = "AQV_DB_TYPE"
	EnvKeyAQVDbPath string = "AQV_DB_PATH"

	EnvKeyAQVHttpHostPort string = "AQV_HTTP_HOST_PORT"
	EnvKeyAQVBackendURL   string = "AQV_BACKEND_URL"

	EnvKeyAQVDefaultTheme    string = "AQV_DEFAULT_THEME"
	EnvKeyAQVRefreshInterval string = "AQV_REFRESH_INTERVAL"
	EnvKeyAQVSessionCheck    string = "AQV_SESSION_CHECK_INTERVAL"
	EnvKeyAQVRetryAttempts   string = "AQV_RETRY_ATTEMPTS"
	EnvKeyAQVRetryDelay      string = "AQV_RETRY_DELAY"
	EnvKeyAQVRequestTimeout  string = "AQV_REQUEST_TIMEOUT"
	EnvKeyAQVDefaultRate     string = "AQV_DEFAULT_RATE"
	EnvKeyAQVDefaultBurst    string = "AQV_DEFAULT_BURST"

	LoggerNameDashboardCore string = "dashboard_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameBackendClient string = "backend_client"
	LoggerFieldCategory     string = "category"
	LoggerCategoryAuth      string = "auth"
	LoggerCategorySession   string = "session"
	LoggerCategoryData      string = "data"
	LoggerCategoryCharts    string = "charts"
	LoggerCategoryTheme     string = "theme"
)
