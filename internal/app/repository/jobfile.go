package repository

import (
	"errors"
	"time"

	"backend/internal/app/ds"
)

// Методы для дел (job files)

// Статусы дела
const (
	JobFileStatusOpen       = "открыт"
	JobFileStatusInProgress = "в работе"
	JobFileStatusClosed     = "закрыт"
)

func (r *Repository) GetJobFiles(clientID *uint, status string) ([]ds.JobFile, error) {
	query := r.db.Preload("Client").Where("is_deleted = ?", false)

	if clientID != nil {
		query = query.Where("client_id = ?", *clientID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var jobFiles []ds.JobFile
	err := query.Order("id DESC").Find(&jobFiles).Error
	return jobFiles, err
}

func (r *Repository) GetJobFileByID(id uint) (*ds.JobFile, error) {
	var jobFile ds.JobFile
	err := r.db.Preload("Client").Preload("Creator").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&jobFile).Error
	if err != nil {
		return nil, err
	}
	return &jobFile, nil
}

func (r *Repository) CreateJobFile(jobFile *ds.JobFile) error {
	jobFile.Status = JobFileStatusOpen
	jobFile.CreatedAt = time.Now()
	return r.db.Create(jobFile).Error
}

func (r *Repository) UpdateJobFile(id uint, title, description, status *string) error {
	updates := map[string]interface{}{}
	if title != nil {
		updates["title"] = *title
	}
	if description != nil {
		updates["description"] = *description
	}
	if status != nil {
		updates["status"] = *status
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&ds.JobFile{}).Where("id = ? AND is_deleted = ?", id, false).Updates(updates).Error
}

// Обновить имя вложения (nil - вложение снято)
func (r *Repository) UpdateJobFileAttachment(id uint, filename *string) error {
	return r.db.Model(&ds.JobFile{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("attachment", filename).Error
}

// SQL операция для логического удаления
func (r *Repository) DeleteJobFile(id uint) error {
	result := r.db.Exec("UPDATE job_files SET is_deleted = true WHERE id = ? AND is_deleted = false", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("дело не найдено или уже удалено")
	}
	return nil
}
