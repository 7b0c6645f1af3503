package domain

// EBDStudent is a Sunday-school (Escola Bíblica Dominical) student record.
type EBDStudent struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate,omitempty"`
	ClassName string `json:"className"`
	Guardian  string `json:"guardian,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Active    bool   `json:"active"`
}

// EBDStudentInput is the payload for creating or updating an EBD student.
type EBDStudentInput struct {
	Name      string `json:"name" validate:"required,min=2,max=120"`
	BirthDate string `json:"birthDate,omitempty"`
	ClassName string `json:"className" validate:"required,min=1,max=80"`
	Guardian  string `json:"guardian,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Active    bool   `json:"active"`
}
