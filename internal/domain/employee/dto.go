package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
	Role        string           `json:"role"`
	Department  string           `json:"department"`
	JoiningDate string           `json:"joining_date"`
	Status      string           `json:"status,omitempty"`
	Salary      *decimal.Decimal `json:"salary,omitempty"`
	AvatarURL   *string          `json:"avatar_url,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}
	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(strings.TrimSpace(r.Email)) {
		errs.Add("email", "invalid email format")
	}
	if validator.IsEmpty(r.Phone) {
		errs.Add("phone", "phone is required")
	}
	if validator.IsEmpty(r.Role) {
		errs.Add("role", "role is required")
	}
	if validator.IsEmpty(r.Department) {
		errs.Add("department", "department is required")
	}
	if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
		errs.Add("joining_date", "joining_date must be in YYYY-MM-DD format")
	}
	if r.Status != "" && !Status(r.Status).IsValid() {
		errs.Add("status", "status must be active or inactive")
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		errs.Add("salary", "salary must not be negative")
	}

	return errs.Err()
}

// ToEmployee maps a validated request onto a new Employee without an ID.
func (r *CreateEmployeeRequest) ToEmployee() Employee {
	joiningDate, _ := validator.IsValidDate(r.JoiningDate)
	status := StatusActive
	if r.Status != "" {
		status = Status(r.Status)
	}

	e := Employee{
		Name:        strings.TrimSpace(r.Name),
		Email:       strings.TrimSpace(r.Email),
		Phone:       strings.TrimSpace(r.Phone),
		RoleTitle:   strings.TrimSpace(r.Role),
		Department:  strings.TrimSpace(r.Department),
		JoiningDate: joiningDate,
		Status:      status,
		Salary:      r.Salary,
		AvatarURL:   r.AvatarURL,
	}
	if e.AvatarURL == nil || validator.IsEmpty(*e.AvatarURL) {
		avatar := DefaultAvatarURL(e.Name)
		e.AvatarURL = &avatar
	}
	return e
}

// UpdateEmployeeRequest is a patch: nil fields are left untouched.
type UpdateEmployeeRequest struct {
	ID          string           `json:"-"`
	Name        *string          `json:"name,omitempty"`
	Email       *string          `json:"email,omitempty"`
	Phone       *string          `json:"phone,omitempty"`
	Role        *string          `json:"role,omitempty"`
	Department  *string          `json:"department,omitempty"`
	JoiningDate *string          `json:"joining_date,omitempty"`
	Status      *string          `json:"status,omitempty"`
	Salary      *decimal.Decimal `json:"salary,omitempty"`
	AvatarURL   *string          `json:"avatar_url,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be empty")
	}
	if r.Email != nil {
		if validator.IsEmpty(*r.Email) {
			errs.Add("email", "email must not be empty")
		} else if !validator.IsValidEmail(strings.TrimSpace(*r.Email)) {
			errs.Add("email", "invalid email format")
		}
	}
	if r.Phone != nil && validator.IsEmpty(*r.Phone) {
		errs.Add("phone", "phone must not be empty")
	}
	if r.Role != nil && validator.IsEmpty(*r.Role) {
		errs.Add("role", "role must not be empty")
	}
	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs.Add("department", "department must not be empty")
	}
	if r.JoiningDate != nil {
		if _, ok := validator.IsValidDate(*r.JoiningDate); !ok {
			errs.Add("joining_date", "joining_date must be in YYYY-MM-DD format")
		}
	}
	if r.Status != nil && !Status(*r.Status).IsValid() {
		errs.Add("status", "status must be active or inactive")
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		errs.Add("salary", "salary must not be negative")
	}

	return errs.Err()
}

// Apply merges a validated patch into e. The ID is never touched.
// A blank avatar falls back to the generated one, which also follows renames.
func (r *UpdateEmployeeRequest) Apply(e *Employee) {
	regenerateAvatar := false
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		regenerateAvatar = name != e.Name && e.HasGeneratedAvatar()
		e.Name = name
	}
	if r.Email != nil {
		e.Email = strings.TrimSpace(*r.Email)
	}
	if r.Phone != nil {
		e.Phone = strings.TrimSpace(*r.Phone)
	}
	if r.Role != nil {
		e.RoleTitle = strings.TrimSpace(*r.Role)
	}
	if r.Department != nil {
		e.Department = strings.TrimSpace(*r.Department)
	}
	if r.JoiningDate != nil {
		e.JoiningDate, _ = validator.IsValidDate(*r.JoiningDate)
	}
	if r.Status != nil {
		e.Status = Status(*r.Status)
	}
	if r.Salary != nil {
		salary := *r.Salary
		e.Salary = &salary
	}
	if r.AvatarURL != nil {
		avatar := strings.TrimSpace(*r.AvatarURL)
		regenerateAvatar = avatar == ""
		if !regenerateAvatar {
			e.AvatarURL = &avatar
		}
	}
	if regenerateAvatar {
		avatar := DefaultAvatarURL(e.Name)
		e.AvatarURL = &avatar
	}
}

// EmployeeFilter holds the directory filters. "all" or empty disables a selector.
type EmployeeFilter struct {
	Search     string `json:"search,omitempty"`
	Department string `json:"department,omitempty"`
	Status     string `json:"status,omitempty"`
}

type EmployeeResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
	Role        string           `json:"role"`
	Department  string           `json:"department"`
	JoiningDate string           `json:"joining_date"`
	Status      string           `json:"status"`
	Salary      *decimal.Decimal `json:"salary,omitempty"`
	AvatarURL   *string          `json:"avatar_url,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// NewEmployeeResponse maps an Employee; salary is only exposed when withSalary is set.
func NewEmployeeResponse(e Employee, withSalary bool) EmployeeResponse {
	resp := EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		Phone:       e.Phone,
		Role:        e.RoleTitle,
		Department:  e.Department,
		JoiningDate: e.JoiningDate.Format(time.DateOnly),
		Status:      string(e.Status),
		AvatarURL:   e.AvatarURL,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if withSalary {
		resp.Salary = e.Salary
	}
	return resp
}

type ListEmployeeResponse struct {
	TotalCount  int                `json:"total_count"`
	Departments []string           `json:"departments"`
	Employees   []EmployeeResponse `json:"employees"`
}
