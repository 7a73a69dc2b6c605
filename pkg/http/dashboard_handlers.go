package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (rs *RestfulServer) GetStats(c *gin.Context) {
	stats, err := rs.Survey.Dashboard.GetStats()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, stats)
}

func (rs *RestfulServer) GetRecentMissions(c *gin.Context) {
	missions, err := rs.Survey.Dashboard.GetRecentMissions()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, missions)
}

func (rs *RestfulServer) GetMonthlyActivity(c *gin.Context) {
	activity, err := rs.Survey.Dashboard.GetMonthlyActivity()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, activity)
}
