package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeySurveyDBType string = "SURVEY_DB_TYPE"
	EnvKeySurveyDbPath string = "SURVEY_DB_PATH"

	EnvKeySurveyHttpHostPort string = "SURVEY_HTTP_HOST_PORT"

	EnvKeySurveyDefaultRate  string = "SURVEY_DEFAULT_RATE"
	EnvKeySurveyDefaultBurst string = "SURVEY_DEFAULT_BURST"

	LoggerNameSurveyCore         string = "survey_core"
	LoggerNameRestfulServer      string = "restful_server"
	LoggerFieldSurveyCategory    string = "category"
	LoggerCategorySurveyDrone    string = "drone"
	LoggerCategorySurveyMission  string = "mission"
	LoggerCategorySurveyMonitor  string = "monitor"
	LoggerCategorySurveyReport   string = "report"
	LoggerCategorySurveyAssign   string = "assignment"
	LoggerCategorySurveyDash     string = "dashboard"
)
