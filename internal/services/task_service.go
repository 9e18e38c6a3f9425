package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	dto "task-manager.com/task-manager/internal/data_models"
	"task-manager.com/task-manager/internal/domain"
	apperrors "task-manager.com/task-manager/internal/errors"
	repository "task-manager.com/task-manager/internal/repositories"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// Application-level policy, deliberately kept out of the entity: the entity
// guards its own invariants, the service guards what this application
// accepts.
var forbiddenTitleWords = []string{"spam", "test123"}

// TaskService carries the task use cases. Each method is one request-scoped
// operation against the repository port.
type TaskService struct {
	repo repository.TaskRepository
}

func NewTaskService(repo repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// Create validates application policy, builds the entity and persists it.
func (s *TaskService) Create(ctx context.Context, req dto.CreateTaskRequest, createdBy uuid.UUID) (*dto.TaskResponse, error) {
	title := strings.ToLower(req.Title)
	for _, word := range forbiddenTitleWords {
		if strings.Contains(title, word) {
			return nil, apperrors.Validationf("title contains forbidden word: %s", word)
		}
	}

	priority := domain.PriorityMedium
	if req.Priority != "" {
		p, err := domain.ParsePriority(req.Priority)
		if err != nil {
			return nil, err
		}
		priority = p
	}

	if priority == domain.PriorityUrgent && strings.TrimSpace(req.Description) == "" {
		return nil, apperrors.Validationf("urgent tasks must have a description")
	}

	task, err := domain.NewTask(req.Title, req.Description, priority)
	if err != nil {
		return nil, err
	}

	if req.AutoAssign {
		if err := task.AssignTo(createdBy); err != nil {
			return nil, err
		}
	}

	saved, err := s.repo.Save(ctx, task)
	if err != nil {
		return nil, err
	}

	resp := dto.NewTaskResponse(saved)
	return &resp, nil
}

func (s *TaskService) Get(ctx context.Context, id uuid.UUID) (*dto.TaskResponse, error) {
	task, err := s.loadTask(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewTaskResponse(task)
	return &resp, nil
}

// Update applies a partial update. Status changes go through the entity's
// transition operations, so illegal moves surface as domain errors.
func (s *TaskService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.loadTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if err := task.SetTitle(*req.Title); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		if err := task.SetDescription(*req.Description); err != nil {
			return nil, err
		}
	}
	if req.Priority != nil {
		priority, err := domain.ParsePriority(*req.Priority)
		if err != nil {
			return nil, err
		}
		if err := task.ChangePriority(priority); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := transitionTo(task, *req.Status); err != nil {
			return nil, err
		}
	}

	saved, err := s.repo.Save(ctx, task)
	if err != nil {
		return nil, err
	}

	resp := dto.NewTaskResponse(saved)
	return &resp, nil
}

func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) error {
	task, err := s.loadTask(ctx, id)
	if err != nil {
		return err
	}
	if !task.CanBeDeleted() {
		return apperrors.ErrDeletionNotAllowed.Withf("task with status %q cannot be deleted", task.Status())
	}
	_, err = s.repo.Delete(ctx, id)
	return err
}

// List returns one page of tasks plus the unpaginated total.
func (s *TaskService) List(ctx context.Context, req dto.ListTasksRequest) (*dto.TaskListResponse, error) {
	limit := req.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	if limit < 1 || limit > maxListLimit {
		return nil, apperrors.Validationf("limit must be between 1 and %d", maxListLimit)
	}
	if req.Offset < 0 {
		return nil, apperrors.Validationf("offset cannot be negative")
	}

	filter, err := buildTaskFilter(req)
	if err != nil {
		return nil, err
	}

	tasks, err := s.repo.FindAll(ctx, filter, limit, req.Offset)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, dto.NewTaskResponse(task))
	}
	return &dto.TaskListResponse{
		Tasks:  items,
		Total:  total,
		Limit:  limit,
		Offset: req.Offset,
	}, nil
}

func (s *TaskService) Assign(ctx context.Context, taskID, userID uuid.UUID) (*dto.TaskResponse, error) {
	task, err := s.loadTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := task.AssignTo(userID); err != nil {
		return nil, err
	}
	saved, err := s.repo.Save(ctx, task)
	if err != nil {
		return nil, err
	}
	resp := dto.NewTaskResponse(saved)
	return &resp, nil
}

func (s *TaskService) loadTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperrors.ErrTaskNotFound.Withf("task with id %s not found", id)
	}
	return task, nil
}

// transitionTo maps a target status onto the entity operation that reaches
// it.
func transitionTo(task *domain.Task, value string) error {
	status, err := domain.ParseStatus(value)
	if err != nil {
		return err
	}
	switch status {
	case domain.StatusInProgress:
		return task.Start()
	case domain.StatusDone:
		return task.Complete()
	case domain.StatusCancelled:
		return task.Cancel()
	default:
		return task.Reopen()
	}
}

func buildTaskFilter(req dto.ListTasksRequest) (repository.TaskFilter, error) {
	var filter repository.TaskFilter
	if req.Status != "" {
		status, err := domain.ParseStatus(req.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}
	if req.Priority != "" {
		priority, err := domain.ParsePriority(req.Priority)
		if err != nil {
			return filter, err
		}
		filter.Priority = &priority
	}
	if req.AssignedTo != "" {
		id, err := uuid.Parse(req.AssignedTo)
		if err != nil {
			return filter, apperrors.Validationf("invalid assigned_to: %q", req.AssignedTo)
		}
		filter.AssignedTo = &id
	}
	return filter, nil
}
