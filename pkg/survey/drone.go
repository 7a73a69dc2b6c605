package survey

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/common"
	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/models"
)

// StatusChangeOpts carries the extra input a status transition may need.
// Entering "In Mission" requires the target mission id.
type StatusChangeOpts struct {
	AssignedMissionID *uint
}

// DroneView is a drone with its assigned mission expanded for the dashboard.
type DroneView struct {
	models.Drone
	AssignedMission *models.Mission `json:"assignedMission,omitempty"`
}

func (s *Survey) createDrone(input *models.Drone) (*models.Drone, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameSurveyCore,
		zap.String(common.LoggerFieldSurveyCategory, common.LoggerCategorySurveyDrone),
	)

	if input.DroneID == "" {
		return nil, NewValidationError("Please add a drone ID")
	}
	if input.Model == "" {
		return nil, NewValidationError("Please add drone model")
	}
	if input.BatteryLevel < 0 || input.BatteryLevel > 100 {
		return nil, NewValidationError("Battery level must be between 0 and 100")
	}

	drone := models.Drone{
		DroneID:      input.DroneID,
		Model:        input.Model,
		BatteryLevel: input.BatteryLevel,
		Location:     input.Location,
		Status:       models.DroneStatusIdle,
	}

	err := s.Db.Conn.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Drone{}).Where("drone_id = ?", drone.DroneID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return NewConflictError("A drone with this ID already exists")
		}
		return tx.Create(&drone).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Drone registered", zap.Uint("id", drone.ID), zap.String("drone_id", drone.DroneID))
	return &drone, nil
}

func (s *Survey) getDrones() ([]DroneView, error) {
	var drones []models.Drone
	if err := s.Db.Conn.Find(&drones).Error; err != nil {
		return nil, err
	}

	views := make([]DroneView, 0, len(drones))
	for i := range drones {
		view, err := s.expandDrone(&drones[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *Survey) getDrone(id uint) (*DroneView, error) {
	drone, err := findDrone(s.Db.Conn, id, "Drone not found")
	if err != nil {
		return nil, err
	}
	return s.expandDrone(drone)
}

func (s *Survey) expandDrone(drone *models.Drone) (*DroneView, error) {
	view := DroneView{Drone: *drone}
	if drone.AssignedMissionID != nil {
		var mission models.Mission
		err := s.Db.Conn.First(&mission, *drone.AssignedMissionID).Error
		if err == nil {
			view.AssignedMission = &mission
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return &view, nil
}

func (s *Survey) updateDroneStatus(id uint, status models.DroneStatus, opts StatusChangeOpts) (*models.Drone, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameSurveyCore,
		zap.String(common.LoggerFieldSurveyCategory, common.LoggerCategorySurveyDrone),
	)

	if status == "" {
		return nil, NewValidationError("Please provide a status")
	}
	if !status.Valid() {
		return nil, NewValidationError("Invalid status value")
	}

	var drone *models.Drone

	err := s.Db.Conn.Transaction(func(tx *gorm.DB) error {
		var err error
		drone, err = findDrone(tx, id, "Drone not found")
		if err != nil {
			return err
		}

		if status == drone.Status {
			return nil
		}

		// leaving "In Mission": the mission the drone was flying reverts to
		// Scheduled and both link fields clear
		if drone.Status == models.DroneStatusInMission && drone.AssignedMissionID != nil {
			mission, err := findMission(tx, *drone.AssignedMissionID)
			if err == nil {
				drone.AssignedMissionID = nil
				drone.Status = status
				if err := tx.Save(drone).Error; err != nil {
					return err
				}

				mission.AssignedDroneID = nil
				mission.Status = models.MissionStatusScheduled
				return tx.Save(mission).Error
			}
			if _, ok := err.(*NotFoundError); !ok {
				return err
			}
			drone.AssignedMissionID = nil
		}

		// entering "In Mission": a target mission is mandatory and gets
		// cross-linked and set In Progress. The availability of the drone
		// itself was implied by it not already being In Mission.
		if status == models.DroneStatusInMission {
			if opts.AssignedMissionID == nil {
				return NewValidationError("Mission ID is required when setting status to In Mission")
			}

			mission, err := findMission(tx, *opts.AssignedMissionID)
			if err != nil {
				return err
			}

			// if the mission already had a different drone, free it inside
			// the same transaction so the invariant survives the steal
			if mission.AssignedDroneID != nil && *mission.AssignedDroneID != drone.ID {
				prev, err := findDrone(tx, *mission.AssignedDroneID, "Drone not found")
				if err == nil {
					if err := s.releaseDrone(tx, prev); err != nil {
						return err
					}
				} else if _, ok := err.(*NotFoundError); !ok {
					return err
				}
			}

			drone.AssignedMissionID = &mission.ID
			drone.Status = status
			if err := tx.Save(drone).Error; err != nil {
				return err
			}

			mission.AssignedDroneID = &drone.ID
			mission.Status = models.MissionStatusInProgress
			return tx.Save(mission).Error
		}

		// plain transition, no cross-entity effect
		drone.Status = status
		return tx.Save(drone).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Drone status updated",
		zap.Uint("drone_id", drone.ID), zap.String("status", string(drone.Status)))
	return drone, nil
}

type IDroneImpl struct {
	survey *Survey
}

func (id *IDroneImpl) CreateDrone(input *models.Drone) (*models.Drone, error) {
	return id.survey.createDrone(input)
}

func (id *IDroneImpl) GetDrones() ([]DroneView, error) {
	return id.survey.getDrones()
}

func (id *IDroneImpl) GetDrone(droneID uint) (*DroneView, error) {
	return id.survey.getDrone(droneID)
}

func (id *IDroneImpl) UpdateDroneStatus(droneID uint, status models.DroneStatus, opts StatusChangeOpts) (*models.Drone, error) {
	return id.survey.updateDroneStatus(droneID, status, opts)
}

func (s *Survey) GetIDrone() IDrone {
	return &IDroneImpl{survey: s}
}
