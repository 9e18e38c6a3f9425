package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"task-manager.com/task-manager/internal/domain"
)

// TaskFilter narrows queries over tasks. Nil fields match everything.
type TaskFilter struct {
	Status     *domain.Status
	Priority   *domain.Priority
	AssignedTo *uuid.UUID
}

// TaskRepository is the persistence port the task use cases depend on.
type TaskRepository interface {
	Save(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindAll(ctx context.Context, filter TaskFilter, limit, offset int) ([]*domain.Task, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Count(ctx context.Context, filter TaskFilter) (int64, error)
	FindByAssignedUser(ctx context.Context, userID uuid.UUID, status *domain.Status) ([]*domain.Task, error)
}

// TaskRecord is the gorm row shape for tasks. Timestamps are owned by the
// entity, so gorm's auto-stamping is disabled.
type TaskRecord struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Title       string    `gorm:"size:200;not null"`
	Description string    `gorm:"size:2000"`
	Priority    string    `gorm:"type:varchar(10);not null"`
	Status      string    `gorm:"type:varchar(20);not null;index"`
	AssignedTo  *string   `gorm:"size:36;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false;index"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false"`
	CompletedAt *time.Time
}

func (TaskRecord) TableName() string {
	return "tasks"
}

type GormTaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *GormTaskRepository {
	return &GormTaskRepository{db: db}
}

func (r *GormTaskRepository) Save(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	rec := taskToRecord(task)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rec).Error
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (r *GormTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	var rec TaskRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id.String()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return taskFromRecord(&rec)
}

func (r *GormTaskRepository) FindAll(ctx context.Context, filter TaskFilter, limit, offset int) ([]*domain.Task, error) {
	var recs []TaskRecord
	err := applyTaskFilter(r.db.WithContext(ctx), filter).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return tasksFromRecords(recs)
}

func (r *GormTaskRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&TaskRecord{}, "id = ?", id.String())
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormTaskRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&TaskRecord{}).
		Where("id = ?", id.String()).
		Count(&count).Error
	return count > 0, err
}

func (r *GormTaskRepository) Count(ctx context.Context, filter TaskFilter) (int64, error) {
	var count int64
	err := applyTaskFilter(r.db.WithContext(ctx).Model(&TaskRecord{}), filter).
		Count(&count).Error
	return count, err
}

func (r *GormTaskRepository) FindByAssignedUser(ctx context.Context, userID uuid.UUID, status *domain.Status) ([]*domain.Task, error) {
	q := r.db.WithContext(ctx).Where("assigned_to = ?", userID.String())
	if status != nil {
		q = q.Where("status = ?", status.String())
	}
	var recs []TaskRecord
	if err := q.Order("created_at desc").Find(&recs).Error; err != nil {
		return nil, err
	}
	return tasksFromRecords(recs)
}

func applyTaskFilter(q *gorm.DB, filter TaskFilter) *gorm.DB {
	if filter.Status != nil {
		q = q.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		q = q.Where("priority = ?", filter.Priority.String())
	}
	if filter.AssignedTo != nil {
		q = q.Where("assigned_to = ?", filter.AssignedTo.String())
	}
	return q
}

func taskToRecord(task *domain.Task) TaskRecord {
	var assignedTo *string
	if id := task.AssignedTo(); id != nil {
		s := id.String()
		assignedTo = &s
	}
	return TaskRecord{
		ID:          task.ID().String(),
		Title:       task.Title(),
		Description: task.Description(),
		Priority:    task.Priority().String(),
		Status:      task.Status().String(),
		AssignedTo:  assignedTo,
		CreatedAt:   task.CreatedAt(),
		UpdatedAt:   task.UpdatedAt(),
		CompletedAt: task.CompletedAt(),
	}
}

func taskFromRecord(rec *TaskRecord) (*domain.Task, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return nil, err
	}
	var assignedTo *uuid.UUID
	if rec.AssignedTo != nil {
		uid, err := uuid.Parse(*rec.AssignedTo)
		if err != nil {
			return nil, err
		}
		assignedTo = &uid
	}
	return domain.RehydrateTask(
		id,
		rec.Title,
		rec.Description,
		domain.Priority(rec.Priority),
		domain.Status(rec.Status),
		assignedTo,
		rec.CreatedAt,
		rec.UpdatedAt,
		rec.CompletedAt,
	), nil
}

func tasksFromRecords(recs []TaskRecord) ([]*domain.Task, error) {
	tasks := make([]*domain.Task, 0, len(recs))
	for i := range recs {
		task, err := taskFromRecord(&recs[i])
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
