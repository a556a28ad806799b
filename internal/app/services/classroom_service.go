package services

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/vwings/eduadmin/internal/app/models"
	"github.com/vwings/eduadmin/internal/app/models/dto"
	"github.com/vwings/eduadmin/internal/app/repositories"
	"github.com/vwings/eduadmin/internal/pkg/apperrors"
	"github.com/vwings/eduadmin/internal/pkg/filestorage"
	"github.com/vwings/eduadmin/internal/pkg/logger"
)

// ClassroomService manages classrooms, their membership lists and chat.
type ClassroomService struct {
	classroomRepo *repositories.ClassroomRepository
	chatRepo      *repositories.ChatRepository
	userRepo      *repositories.UserRepository
	alloc         *repositories.Allocator
	storage       filestorage.FileStorage
}

// NewClassroomService creates a new ClassroomService.
func NewClassroomService(classroomRepo *repositories.ClassroomRepository, chatRepo *repositories.ChatRepository,
	userRepo *repositories.UserRepository, alloc *repositories.Allocator, storage filestorage.FileStorage) *ClassroomService {
	return &ClassroomService{
		classroomRepo: classroomRepo,
		chatRepo:      chatRepo,
		userRepo:      userRepo,
		alloc:         alloc,
		storage:       storage,
	}
}

// Create adds a classroom with an optional class photo.
func (s *ClassroomService) Create(ctx context.Context, req *dto.CreateClassroomRequest, photo *multipart.FileHeader) (*models.Classroom, error) {
	id, err := s.alloc.NextID(ctx, models.ClassroomIDSpec)
	if err != nil {
		return nil, err
	}

	classroom := &models.Classroom{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	}
	if photo != nil {
		path, err := s.storage.Save(photo, filestorage.ClassImage, "classrooms", id)
		if err != nil {
			return nil, err
		}
		classroom.Photo = &path
	}

	if err := s.classroomRepo.Create(ctx, classroom); err != nil {
		discardUpload(s.storage, classroom.Photo)
		return nil, err
	}
	logger.Info().Str("classroomID", classroom.ID).Msg("Classroom created")
	return classroom, nil
}

// Get retrieves one classroom.
func (s *ClassroomService) Get(ctx context.Context, id string) (*models.Classroom, error) {
	classroom, err := s.classroomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Classroom not found")
	}
	return classroom, nil
}

// List retrieves a page of classrooms.
func (s *ClassroomService) List(ctx context.Context, offset, limit uint64) ([]*models.Classroom, int64, error) {
	return s.classroomRepo.List(ctx, offset, limit)
}

// Update partially updates a classroom.
func (s *ClassroomService) Update(ctx context.Context, id string, req *dto.UpdateClassroomRequest, photo *multipart.FileHeader) (*models.Classroom, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["class_name"] = *req.Name
	}
	if req.Description != nil {
		fields["class_description"] = *req.Description
	}
	if photo != nil {
		path, err := s.storage.Save(photo, filestorage.ClassImage, "classrooms", id)
		if err != nil {
			return nil, err
		}
		fields["class_photo"] = path
	}

	if err := s.classroomRepo.Update(ctx, id, fields); err != nil {
		return nil, notFound(err, "Classroom not found")
	}
	return s.Get(ctx, id)
}

// Delete removes a classroom and its chat history.
func (s *ClassroomService) Delete(ctx context.Context, id string) error {
	return notFound(s.classroomRepo.Delete(ctx, id), "Classroom not found")
}

// AddMember adds a student to the classroom member list.
func (s *ClassroomService) AddMember(ctx context.Context, classroomID, studentID string) (*models.Classroom, error) {
	if _, err := s.userRepo.GetStudentByID(ctx, studentID); err != nil {
		return nil, notFound(err, "Student not found")
	}
	if err := s.classroomRepo.AddToList(ctx, classroomID, "members", studentID); err != nil {
		if errors.Is(err, repositories.ErrAlreadyMember) {
			return nil, apperrors.NewConflictError("Student is already a member of this classroom")
		}
		return nil, notFound(err, "Classroom not found")
	}
	return s.Get(ctx, classroomID)
}

// RemoveMember removes a student from the classroom member list.
func (s *ClassroomService) RemoveMember(ctx context.Context, classroomID, studentID string) (*models.Classroom, error) {
	if err := s.classroomRepo.RemoveFromList(ctx, classroomID, "members", studentID); err != nil {
		return nil, notFound(err, "Classroom not found")
	}
	return s.Get(ctx, classroomID)
}

// AddAdmin promotes a teacher onto the classroom admin list.
func (s *ClassroomService) AddAdmin(ctx context.Context, classroomID, teacherID string) (*models.Classroom, error) {
	if _, err := s.userRepo.GetTeacherByID(ctx, teacherID); err != nil {
		return nil, notFound(err, "Teacher not found")
	}
	if err := s.classroomRepo.AddToList(ctx, classroomID, "admins", teacherID); err != nil {
		if errors.Is(err, repositories.ErrAlreadyMember) {
			return nil, apperrors.NewConflictError("Teacher is already an admin of this classroom")
		}
		return nil, notFound(err, "Classroom not found")
	}
	return s.Get(ctx, classroomID)
}

// RemoveAdmin demotes a teacher from the classroom admin list.
func (s *ClassroomService) RemoveAdmin(ctx context.Context, classroomID, teacherID string) (*models.Classroom, error) {
	if err := s.classroomRepo.RemoveFromList(ctx, classroomID, "admins", teacherID); err != nil {
		return nil, notFound(err, "Classroom not found")
	}
	return s.Get(ctx, classroomID)
}

// PostMessage stores a chat message after checking the sender exists.
func (s *ClassroomService) PostMessage(ctx context.Context, classroomID string, req *dto.PostMessageRequest) (*models.ChatMessage, error) {
	if err := s.senderExists(ctx, models.UserRole(req.SenderRole), req.SenderID); err != nil {
		return nil, err
	}

	msg := &models.ChatMessage{
		ClassroomID: classroomID,
		SenderID:    req.SenderID,
		SenderRole:  models.UserRole(req.SenderRole),
		Content:     req.Content,
	}
	if err := s.chatRepo.Create(ctx, msg); err != nil {
		return nil, notFound(err, "Classroom not found")
	}
	return msg, nil
}

// ListMessages retrieves a page of a classroom's chat history.
func (s *ClassroomService) ListMessages(ctx context.Context, classroomID string, offset, limit uint64) ([]*models.ChatMessage, int64, error) {
	if _, err := s.classroomRepo.GetByID(ctx, classroomID); err != nil {
		return nil, 0, notFound(err, "Classroom not found")
	}
	return s.chatRepo.ListByClassroom(ctx, classroomID, offset, limit)
}

// RecentMessages retrieves the latest n messages for chat history replay.
func (s *ClassroomService) RecentMessages(ctx context.Context, classroomID string, n uint64) ([]*models.ChatMessage, error) {
	return s.chatRepo.GetRecent(ctx, classroomID, n)
}

// DeleteMessage removes one chat message.
func (s *ClassroomService) DeleteMessage(ctx context.Context, messageID string) error {
	return notFound(s.chatRepo.Delete(ctx, messageID), "Message not found")
}

func (s *ClassroomService) senderExists(ctx context.Context, role models.UserRole, id string) error {
	var err error
	switch role {
	case models.RoleStudent:
		_, err = s.userRepo.GetStudentByID(ctx, id)
	case models.RoleTeacher:
		_, err = s.userRepo.GetTeacherByID(ctx, id)
	case models.RoleAdmin:
		_, err = s.userRepo.GetAdminByID(ctx, id)
	default:
		return apperrors.NewBadRequestError("unknown sender role")
	}
	return notFound(err, "Sender not found")
}
