package instructor

type Instructor struct {
	ID              int    `db:"id" json:"id"`
	Name            string `db:"name" json:"name"`
	Specialty       string `db:"specialty" json:"specialty"`
	Bio             string `db:"bio" json:"bio"`
	YearsExperience int    `db:"years_experience" json:"years_experience"`
	Certifications  string `db:"certifications" json:"certifications"`
	Email           string `db:"email" json:"email"`
	Photo           string `db:"photo" json:"photo"`
}

type InstructorRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	Specialty       string `json:"specialty" binding:"required,max=100"`
	Bio             string `json:"bio" binding:"required"`
	YearsExperience int    `json:"years_experience" binding:"gte=0,lte=80"`
	Certifications  string `json:"certifications"`
	Email           string `json:"email" binding:"omitempty,email,max=254"`
	Photo           string `json:"photo" binding:"max=255"`
}
