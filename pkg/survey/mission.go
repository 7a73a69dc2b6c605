package survey

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/common"
	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/models"
)

// MissionSpec is the validated input for mission creation.
type MissionSpec struct {
	Name            string
	Location        models.MissionLocation
	StartTime       time.Time
	RecurrenceType  models.RecurrenceType
	FlightPath      []models.GeoPoint
	FlightAltitude  float64
	PatternType     models.PatternType
	SensorType      models.SensorType
	AssignedDroneID *uint
}

// MissionPatch carries only the fields the client provided. A nil field is
// left untouched; ClearAssignedDrone distinguishes "assignedDroneId: null"
// from the field being absent.
type MissionPatch struct {
	Name               *string
	Location           *models.MissionLocation
	StartTime          *time.Time
	RecurrenceType     *models.RecurrenceType
	FlightPath         []models.GeoPoint
	FlightAltitude     *float64
	PatternType        *models.PatternType
	SensorType         *models.SensorType
	Status             *models.MissionStatus
	AssignedDroneID    *uint
	ClearAssignedDrone bool
}

// MissionView is a mission with its assigned drone record expanded, the
// shape the dashboard renders from.
type MissionView struct {
	models.Mission
	AssignedDrone *models.Drone `json:"assignedDrone,omitempty"`
}

func validateMissionSpec(spec *MissionSpec) error {
	switch {
	case spec.Name == "":
		return NewValidationError("Please add a mission name")
	case len(spec.Location.Coordinates) < 2:
		return NewValidationError("Please add location coordinates")
	case spec.Location.Address == "":
		return NewValidationError("Please add an address")
	case spec.StartTime.IsZero():
		return NewValidationError("Please add a start time")
	case len(spec.FlightPath) == 0:
		return NewValidationError("Please add flight path coordinates")
	case spec.FlightAltitude <= 0:
		return NewValidationError("Please add flight altitude in meters")
	}

	switch spec.PatternType {
	case models.PatternGrid, models.PatternCrosshatch, models.PatternPerimeter:
	default:
		return NewValidationError("Please specify pattern type")
	}

	switch spec.SensorType {
	case models.SensorRGB, models.SensorThermal, models.SensorMultispectral, models.SensorLiDAR:
	default:
		return NewValidationError("Please specify sensor type")
	}

	if spec.RecurrenceType != "" {
		switch spec.RecurrenceType {
		case models.RecurrenceOnce, models.RecurrenceDaily, models.RecurrenceWeekly, models.RecurrenceMonthly:
		default:
			return NewValidationError("Invalid recurrence type")
		}
	}

	return nil
}

func (s *Survey) createMission(spec *MissionSpec) (*models.Mission, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameSurveyCore,
		zap.String(common.LoggerFieldSurveyCategory, common.LoggerCategorySurveyMission),
	)

	if err := validateMissionSpec(spec); err != nil {
		return nil, err
	}

	mission := models.Mission{
		Name:           spec.Name,
		Location:       spec.Location,
		StartTime:      spec.StartTime,
		RecurrenceType: spec.RecurrenceType,
		FlightPath:     spec.FlightPath,
		FlightAltitude: spec.FlightAltitude,
		PatternType:    spec.PatternType,
		SensorType:     spec.SensorType,
		Status:         models.MissionStatusScheduled,
	}
	if mission.RecurrenceType == "" {
		mission.RecurrenceType = models.RecurrenceOnce
	}

	err := s.Db.Conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&mission).Error; err != nil {
			return err
		}

		if spec.AssignedDroneID == nil {
			return nil
		}

		drone, err := findDrone(tx, *spec.AssignedDroneID, "Drone not found")
		if err != nil {
			return err
		}
		if err := s.assignDrone(tx, drone, mission.ID, msgDroneUnavailable); err != nil {
			return err
		}

		// a mission created with a drone attached goes straight to In
		// Progress, same as the reassignment path
		mission.AssignedDroneID = &drone.ID
		mission.Status = models.MissionStatusInProgress
		return tx.Save(&mission).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Mission created", zap.Uint("mission_id", mission.ID), zap.String("name", mission.Name))
	return &mission, nil
}

func (s *Survey) getMissions() ([]MissionView, error) {
	var missions []models.Mission
	if err := s.Db.Conn.Find(&missions).Error; err != nil {
		return nil, err
	}

	views := make([]MissionView, 0, len(missions))
	for i := range missions {
		view, err := s.expandMission(&missions[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *Survey) getMission(id uint) (*MissionView, error) {
	mission, err := findMission(s.Db.Conn, id)
	if err != nil {
		return nil, err
	}
	return s.expandMission(mission)
}

func (s *Survey) expandMission(mission *models.Mission) (*MissionView, error) {
	view := MissionView{Mission: *mission}
	if mission.AssignedDroneID != nil {
		var drone models.Drone
		err := s.Db.Conn.First(&drone, *mission.AssignedDroneID).Error
		if err == nil {
			view.AssignedDrone = &drone
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return &view, nil
}

func (s *Survey) updateMission(id uint, patch *MissionPatch) (*models.Mission, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameSurveyCore,
		zap.String(common.LoggerFieldSurveyCategory, common.LoggerCategorySurveyMission),
	)

	var mission *models.Mission

	err := s.Db.Conn.Transaction(func(tx *gorm.DB) error {
		var err error
		mission, err = findMission(tx, id)
		if err != nil {
			return err
		}

		if err := applyMissionPatch(mission, patch); err != nil {
			return err
		}

		switch {
		case patch.AssignedDroneID != nil:
			current := mission.AssignedDroneID
			if current == nil || *current != *patch.AssignedDroneID {
				// an explicit reassignment always frees the old drone,
				// whatever state it is in
				if current != nil {
					oldDrone, err := findDrone(tx, *current, "Drone not found")
					if err == nil {
						if err := s.releaseDrone(tx, oldDrone); err != nil {
							return err
						}
					} else if _, ok := err.(*NotFoundError); !ok {
						return err
					}
				}

				newDrone, err := findDrone(tx, *patch.AssignedDroneID, "New drone not found")
				if err != nil {
					return err
				}
				if err := s.assignDrone(tx, newDrone, mission.ID, msgNewDroneUnavailable); err != nil {
					return err
				}

				mission.AssignedDroneID = &newDrone.ID
				mission.Status = models.MissionStatusInProgress
			}
		case patch.ClearAssignedDrone:
			if err := s.releaseMissionDrone(tx, mission, true); err != nil {
				return err
			}
		}

		return tx.Save(mission).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Mission updated", zap.Uint("mission_id", mission.ID))
	return mission, nil
}

func applyMissionPatch(mission *models.Mission, patch *MissionPatch) error {
	if patch.Name != nil {
		if *patch.Name == "" {
			return NewValidationError("Please add a mission name")
		}
		mission.Name = *patch.Name
	}
	if patch.Location != nil {
		if len(patch.Location.Coordinates) < 2 {
			return NewValidationError("Please add location coordinates")
		}
		if patch.Location.Address == "" {
			return NewValidationError("Please add an address")
		}
		mission.Location = *patch.Location
	}
	if patch.StartTime != nil {
		if patch.StartTime.IsZero() {
			return NewValidationError("Please add a start time")
		}
		mission.StartTime = *patch.StartTime
	}
	if patch.RecurrenceType != nil {
		switch *patch.RecurrenceType {
		case models.RecurrenceOnce, models.RecurrenceDaily, models.RecurrenceWeekly, models.RecurrenceMonthly:
			mission.RecurrenceType = *patch.RecurrenceType
		default:
			return NewValidationError("Invalid recurrence type")
		}
	}
	if patch.FlightPath != nil {
		if len(patch.FlightPath) == 0 {
			return NewValidationError("Please add flight path coordinates")
		}
		mission.FlightPath = patch.FlightPath
	}
	if patch.FlightAltitude != nil {
		if *patch.FlightAltitude <= 0 {
			return NewValidationError("Please add flight altitude in meters")
		}
		mission.FlightAltitude = *patch.FlightAltitude
	}
	if patch.PatternType != nil {
		switch *patch.PatternType {
		case models.PatternGrid, models.PatternCrosshatch, models.PatternPerimeter:
			mission.PatternType = *patch.PatternType
		default:
			return NewValidationError("Please specify pattern type")
		}
	}
	if patch.SensorType != nil {
		switch *patch.SensorType {
		case models.SensorRGB, models.SensorThermal, models.SensorMultispectral, models.SensorLiDAR:
			mission.SensorType = *patch.SensorType
		default:
			return NewValidationError("Please specify sensor type")
		}
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return NewValidationError("Invalid status value")
		}
		mission.Status = *patch.Status
	}
	return nil
}

func (s *Survey) deleteMission(id uint) error {
	logger := common.GetLoggerWith(
		common.LoggerNameSurveyCore,
		zap.String(common.LoggerFieldSurveyCategory, common.LoggerCategorySurveyMission),
	)

	err := s.Db.Conn.Transaction(func(tx *gorm.DB) error {
		mission, err := findMission(tx, id)
		if err != nil {
			return err
		}

		// deletion frees the drone but does not rewrite mission status,
		// the record is going away
		if err := s.releaseMissionDrone(tx, mission, false); err != nil {
			return err
		}

		return tx.Delete(&models.Mission{}, id).Error
	})
	if err != nil {
		return err
	}

	logger.Info("Mission deleted", zap.Uint("mission_id", id))
	return nil
}

type IMissionImpl struct {
	survey *Survey
}

func (im *IMissionImpl) CreateMission(spec *MissionSpec) (*models.Mission, error) {
	return im.survey.createMission(spec)
}

func (im *IMissionImpl) GetMissions() ([]MissionView, error) {
	return im.survey.getMissions()
}

func (im *IMissionImpl) GetMission(id uint) (*MissionView, error) {
	return im.survey.getMission(id)
}

func (im *IMissionImpl) UpdateMission(id uint, patch *MissionPatch) (*models.Mission, error) {
	return im.survey.updateMission(id, patch)
}

func (im *IMissionImpl) DeleteMission(id uint) error {
	return im.survey.deleteMission(id)
}

func (s *Survey) GetIMission() IMission {
	return &IMissionImpl{survey: s}
}
