package survey

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/common"
	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/models"
)

// ReportView is a report formatted for the dashboard, with the mission and
// drone part of the row flattened in. When no report exists for a mission
// yet, GetReportByMission returns a placeholder view instead of an error:
// Status is "No Report Available" and Message says whether the mission is
// still active (monitoring data simulated) or completed without a report.
type ReportView struct {
	ID                       uint                `json:"id,omitempty"`
	MissionName              string              `json:"missionName"`
	MissionID                uint                `json:"missionId"`
	Location                 string              `json:"location"`
	DroneID                  string              `json:"droneId,omitempty"`
	DroneModel               string              `json:"droneModel,omitempty"`
	StartTime                time.Time           `json:"startTime,omitempty"`
	EndTime                  time.Time           `json:"endTime,omitempty"`
	Duration                 int                 `json:"duration,omitempty"`
	Distance                 int                 `json:"distance,omitempty"`
	DataPointsCollected      int                 `json:"dataPointsCollected,omitempty"`
	SurveyCoveragePercentage int                 `json:"surveyCoveragePercentage,omitempty"`
	Status                   string              `json:"status"`
	SensorType               models.SensorType   `json:"sensorType,omitempty"`
	FlightAltitude           float64             `json:"flightAltitude,omitempty"`
	CreatedAt                time.Time           `json:"createdAt,omitempty"`
	Message                  string              `json:"message,omitempty"`
}

// DownloadInfo is the simulated download payload. No document is actually
// produced; real generation would replace this stub.
type DownloadInfo struct {
	ReportID    uint   `json:"reportId"`
	MissionName string `json:"missionName"`
	Format      string `json:"format"`
	Size        string `json:"size"`
	DownloadURL string `json:"downloadUrl"`
}

const (
	reportStatusNone       = "No Report Available"
	msgMissionActive       = "Mission is still active; monitoring data is simulated."
	msgCompletedNoReport   = "No report has been generated for this mission yet."
	msgMissionNotCompleted = "Cannot generate report for a mission that is not completed"
	msgReportExists        = "A report already exists for this mission"
)

func (s *Survey) generateReport(missionID uint) (*models.Report, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameSurveyCore,
		zap.String(common.LoggerFieldSurveyCategory, common.LoggerCategorySurveyReport),
	)

	var report models.Report

	// existence check and insert are one transaction, two concurrent
	// generates cannot both pass the check
	err := s.Db.Conn.Transaction(func(tx *gorm.DB) error {
		mission, err := findMission(tx, missionID)
		if err != nil {
			return err
		}

		if mission.Status != models.MissionStatusCompleted {
			return NewConflictError(msgMissionNotCompleted)
		}

		var count int64
		if err := tx.Model(&models.Report{}).Where("mission_id = ?", mission.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return NewConflictError(msgReportExists)
		}

		duration := s.randIntn(61) + 30 // 30-90 minutes
		status := models.ReportStatusCompleted
		if s.randFloat() <= 0.2 {
			status = models.ReportStatusPartial
		}

		report = models.Report{
			MissionID:                mission.ID,
			DroneID:                  mission.AssignedDroneID,
			StartTime:                mission.StartTime,
			EndTime:                  mission.StartTime.Add(time.Duration(duration) * time.Minute),
			Duration:                 duration,
			Distance:                 s.randIntn(5001) + 1000, // 1-6 km
			DataPointsCollected:      s.randIntn(5001) + 1000,
			SurveyCoveragePercentage: s.randIntn(31) + 70, // 70-100%
			Status:                   status,
		}
		return tx.Create(&report).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Report generated",
		zap.Uint("report_id", report.ID), zap.Uint("mission_id", report.MissionID))
	return &report, nil
}

func (s *Survey) getReports() ([]ReportView, error) {
	var reports []models.Report
	if err := s.Db.Conn.Find(&reports).Error; err != nil {
		return nil, err
	}

	views := make([]ReportView, 0, len(reports))
	for i := range reports {
		views = append(views, s.formatReport(&reports[i]))
	}
	return views, nil
}

func (s *Survey) formatReport(report *models.Report) ReportView {
	view := ReportView{
		ID:                       report.ID,
		MissionID:                report.MissionID,
		MissionName:              "Unknown Mission",
		Location:                 "Unknown Location",
		StartTime:                report.StartTime,
		EndTime:                  report.EndTime,
		Duration:                 report.Duration,
		Distance:                 report.Distance,
		DataPointsCollected:      report.DataPointsCollected,
		SurveyCoveragePercentage: report.SurveyCoveragePercentage,
		Status:                   string(report.Status),
		CreatedAt:                report.CreatedAt,
	}

	var mission models.Mission
	if err := s.Db.Conn.First(&mission, report.MissionID).Error; err == nil {
		view.MissionName = mission.Name
		view.Location = mission.Location.Address
		view.SensorType = mission.SensorType
		view.FlightAltitude = mission.FlightAltitude
	}

	if report.DroneID != nil {
		var drone models.Drone
		if err := s.Db.Conn.First(&drone, *report.DroneID).Error; err == nil {
			view.DroneID = drone.DroneID
			view.DroneModel = drone.Model
		}
	}

	return view
}

func (s *Survey) getReportByMission(missionID uint) (*ReportView, error) {
	mission, err := findMission(s.Db.Conn, missionID)
	if err != nil {
		return nil, err
	}

	var report models.Report
	err = s.Db.Conn.Where("mission_id = ?", mission.ID).First(&report).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		placeholder := ReportView{
			MissionName: mission.Name,
			MissionID:   mission.ID,
			Location:    mission.Location.Address,
			Status:      reportStatusNone,
			Message:     msgMissionActive,
		}
		if mission.Status == models.MissionStatusCompleted {
			placeholder.Message = msgCompletedNoReport
		}
		return &placeholder, nil
	}

	view := s.formatReport(&report)
	return &view, nil
}

func (s *Survey) downloadReport(reportID uint) (*DownloadInfo, error) {
	var report models.Report
	if err := s.Db.Conn.First(&report, reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Report not found")
		}
		return nil, err
	}

	missionName := "Unknown Mission"
	var mission models.Mission
	if err := s.Db.Conn.First(&mission, report.MissionID).Error; err == nil {
		missionName = mission.Name
	}

	return &DownloadInfo{
		ReportID:    report.ID,
		MissionName: missionName,
		Format:      "PDF",
		Size:        "2.4 MB",
		DownloadURL: fmt.Sprintf("/api/reports/%d/download", report.ID),
	}, nil
}

type IReportImpl struct {
	survey *Survey
}

func (ir *IReportImpl) GenerateReport(missionID uint) (*models.Report, error) {
	return ir.survey.generateReport(missionID)
}

func (ir *IReportImpl) GetReports() ([]ReportView, error) {
	return ir.survey.getReports()
}

func (ir *IReportImpl) GetReportByMission(missionID uint) (*ReportView, error) {
	return ir.survey.getReportByMission(missionID)
}

func (ir *IReportImpl) DownloadReport(reportID uint) (*DownloadInfo, error) {
	return ir.survey.downloadReport(reportID)
}

func (s *Survey) GetIReport() IReport {
	return &IReportImpl{survey: s}
}
