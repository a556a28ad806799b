package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Shared repository errors. Entity-specific repositories alias these so
// services can match on one sentinel per failure class.
var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert or update violates a unique
	// constraint (identifier, email, code).
	ErrDuplicate = errors.New("record already exists")
)

// Repositories holds all the repository instances.
type Repositories struct {
	Allocator           *Allocator
	UserRepository      *UserRepository
	CourseRepository    *CourseRepository
	ClassroomRepository *ClassroomRepository
	ChatRepository      *ChatRepository
	FinanceRepository   *FinanceRepository
	AdmissionRepository *AdmissionRepository
	ContentRepository   *ContentRepository
}

// NewRepositories initializes all repositories on a shared pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	alloc := NewAllocator(db)
	return &Repositories{
		Allocator:           alloc,
		UserRepository:      NewUserRepository(db, alloc),
		CourseRepository:    NewCourseRepository(db, alloc),
		ClassroomRepository: NewClassroomRepository(db, alloc),
		ChatRepository:      NewChatRepository(db, alloc),
		FinanceRepository:   NewFinanceRepository(db, alloc),
		AdmissionRepository: NewAdmissionRepository(db, alloc),
		ContentRepository:   NewContentRepository(db, alloc),
	}
}
