package instructor

import (
	"context"
	"errors"
	"strings"
)

var ErrInstructorNotFound = errors.New("instructor not found")

type Service interface {
	Create(ctx context.Context, req InstructorRequest) (*Instructor, error)
	Update(ctx context.Context, id int, req InstructorRequest) (*Instructor, error)
	Get(ctx context.Context, id int) (*Instructor, error)
	FindByName(ctx context.Context, name string) (*Instructor, error)
	List(ctx context.Context) ([]Instructor, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func normalize(req InstructorRequest) InstructorRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Specialty = strings.TrimSpace(req.Specialty)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	return req
}

func (s *service) Create(ctx context.Context, req InstructorRequest) (*Instructor, error) {
	return s.repo.Create(ctx, normalize(req))
}

func (s *service) Update(ctx context.Context, id int, req InstructorRequest) (*Instructor, error) {
	return s.repo.Update(ctx, id, normalize(req))
}

func (s *service) Get(ctx context.Context, id int) (*Instructor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) FindByName(ctx context.Context, name string) (*Instructor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInstructorNotFound
	}
	return s.repo.FindByName(ctx, name)
}

func (s *service) List(ctx context.Context) ([]Instructor, error) {
	return s.repo.List(ctx)
}
