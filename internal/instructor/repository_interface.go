package instructor

import "context"

type Repository interface {
	Create(ctx context.Context, req InstructorRequest) (*Instructor, error)
	Update(ctx context.Context, id int, req InstructorRequest) (*Instructor, error)
	GetByID(ctx context.Context, id int) (*Instructor, error)
	FindByName(ctx context.Context, name string) (*Instructor, error)
	List(ctx context.Context) ([]Instructor, error)
}
