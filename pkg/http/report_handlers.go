package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (rs *RestfulServer) GetReports(c *gin.Context) {
	reports, err := rs.Survey.Report.GetReports()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondList(c, len(reports), reports)
}

func (rs *RestfulServer) GetReportByMission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondFailure(c, http.StatusNotFound, "Mission not found")
		return
	}

	report, err := rs.Survey.Report.GetReportByMission(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, report)
}

func (rs *RestfulServer) GenerateReport(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondFailure(c, http.StatusNotFound, "Mission not found")
		return
	}

	report, err := rs.Survey.Report.GenerateReport(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, report)
}

func (rs *RestfulServer) DownloadReport(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondFailure(c, http.StatusNotFound, "Report not found")
		return
	}

	info, err := rs.Survey.Report.DownloadReport(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Report download initiated",
		"data":    info,
	})
}
