package repositories

import (
	"time"

	"ca-office-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaveRepository interface {
	CreateLeaveRequest(leave *models.LeaveRequest) (*models.LeaveRequest, error)
	UpdateLeaveRequest(leave *models.LeaveRequest) (*models.LeaveRequest, error)
	GetLeaveRequestByID(id uuid.UUID) (*models.LeaveRequest, error)
	GetFilteredLeaveRequests(pageSize, offset int, filters map[string]string) ([]models.LeaveRequest, int64, error)

	// GetApprovedLeavesByEmployee returns approved requests overlapping the
	// given calendar year.
	GetApprovedLeavesByEmployee(employeeID uuid.UUID, year int) ([]models.LeaveRequest, error)

	// HasOverlappingLeave reports whether the employee already has a
	// pending or approved request overlapping the date range.
	HasOverlappingLeave(employeeID uuid.UUID, from, to time.Time) (bool, error)
}

type leaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) CreateLeaveRequest(leave *models.LeaveRequest) (*models.LeaveRequest, error) {
	if err := r.db.Create(leave).Error; err != nil {
		return nil, err
	}
	return leave, nil
}

func (r *leaveRepository) UpdateLeaveRequest(leave *models.LeaveRequest) (*models.LeaveRequest, error) {
	if err := r.db.Save(leave).Error; err != nil {
		return nil, err
	}
	return leave, nil
}

func (r *leaveRepository) GetLeaveRequestByID(id uuid.UUID) (*models.LeaveRequest, error) {
	var leave models.LeaveRequest
	if err := r.db.First(&leave, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &leave, nil
}

func (r *leaveRepository) GetFilteredLeaveRequests(pageSize, offset int, filters map[string]string) ([]models.LeaveRequest, int64, error) {
	var leaves []models.LeaveRequest
	var total int64

	query := r.db.Model(&models.LeaveRequest{})

	if employeeID, ok := filters["employee_id"]; ok && employeeID != "" {
		query = query.Where("employee_id = ?", employeeID)
	}
	if status, ok := filters["status"]; ok && status != "" {
		query = query.Where("status = ?", status)
	}
	if leaveType, ok := filters["type"]; ok && leaveType != "" {
		query = query.Where("type = ?", leaveType)
	}
	if from, ok := filters["from"]; ok && from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			query = query.Where("to_date >= ?", t)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("from_date DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&leaves).Error; err != nil {
		return nil, 0, err
	}

	return leaves, total, nil
}

func (r *leaveRepository) GetApprovedLeavesByEmployee(employeeID uuid.UUID, year int) ([]models.LeaveRequest, error) {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	var leaves []models.LeaveRequest
	err := r.db.
		Where("employee_id = ? AND status = ? AND from_date <= ? AND to_date >= ?",
			employeeID, models.LeaveApproved, yearEnd, yearStart).
		Order("from_date ASC").
		Find(&leaves).Error
	if err != nil {
		return nil, err
	}
	return leaves, nil
}

func (r *leaveRepository) HasOverlappingLeave(employeeID uuid.UUID, from, to time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.LeaveRequest{}).
		Where("employee_id = ? AND status IN ? AND from_date <= ? AND to_date >= ?",
			employeeID, []models.LeaveStatus{models.LeavePending, models.LeaveApproved}, to, from).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
