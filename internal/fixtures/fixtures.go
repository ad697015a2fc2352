package fixtures

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

//go:embed sample.yaml
var sampleYAML []byte

// Dataset is everything needed to seed the store.
type Dataset struct {
	Users         []user.User
	Employees     []employee.Employee
	Attendance    []attendance.Attendance
	LeaveRequests []leave.LeaveRequest
}

// Sample returns the built-in demo data, with dates relative to today.
func Sample(today time.Time, hashCost int) (Dataset, error) {
	return Load(bytes.NewReader(sampleYAML), today, hashCost)
}

// LoadFile reads a fixture file in the sample.yaml format.
func LoadFile(path string, today time.Time, hashCost int) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("fixtures: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, today, hashCost)
}

// Load parses fixtures from r. Plain-text passwords are bcrypt-hashed with hashCost.
func Load(r io.Reader, today time.Time, hashCost int) (Dataset, error) {
	var file fixtureFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
		return Dataset{}, fmt.Errorf("fixtures: parse yaml: %w", err)
	}

	b := builder{today: today, hashCost: hashCost}
	ds := Dataset{
		Users:         make([]user.User, 0, len(file.Users)),
		Employees:     make([]employee.Employee, 0, len(file.Employees)),
		Attendance:    make([]attendance.Attendance, 0, len(file.Attendance)),
		LeaveRequests: make([]leave.LeaveRequest, 0, len(file.LeaveRequests)),
	}

	for i, f := range file.Users {
		u, err := b.user(f)
		if err != nil {
			return Dataset{}, fmt.Errorf("fixtures: users[%d]: %w", i, err)
		}
		ds.Users = append(ds.Users, u)
	}
	for i, f := range file.Employees {
		e, err := b.employee(f)
		if err != nil {
			return Dataset{}, fmt.Errorf("fixtures: employees[%d]: %w", i, err)
		}
		ds.Employees = append(ds.Employees, e)
	}
	for i, f := range file.Attendance {
		a, err := b.attendance(f)
		if err != nil {
			return Dataset{}, fmt.Errorf("fixtures: attendance[%d]: %w", i, err)
		}
		ds.Attendance = append(ds.Attendance, a)
	}
	for i, f := range file.LeaveRequests {
		r, err := b.leaveRequest(f)
		if err != nil {
			return Dataset{}, fmt.Errorf("fixtures: leave_requests[%d]: %w", i, err)
		}
		ds.LeaveRequests = append(ds.LeaveRequests, r)
	}

	return ds, nil
}

type fixtureFile struct {
	Users         []userFixture         `yaml:"users"`
	Employees     []employeeFixture     `yaml:"employees"`
	Attendance    []attendanceFixture   `yaml:"attendance"`
	LeaveRequests []leaveRequestFixture `yaml:"leave_requests"`
}

type userFixture struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Email      string `yaml:"email"`
	Password   string `yaml:"password"`
	Role       string `yaml:"role"`
	EmployeeID string `yaml:"employee_id"`
}

type employeeFixture struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Email       string `yaml:"email"`
	Phone       string `yaml:"phone"`
	Role        string `yaml:"role"`
	Department  string `yaml:"department"`
	JoiningDate string `yaml:"joining_date"`
	Status      string `yaml:"status"`
	Salary      string `yaml:"salary"`
	AvatarURL   string `yaml:"avatar_url"`
}

type attendanceFixture struct {
	ID           string   `yaml:"id"`
	EmployeeID   string   `yaml:"employee_id"`
	Date         string   `yaml:"date"`
	PunchIn      string   `yaml:"punch_in"`
	PunchOut     string   `yaml:"punch_out"`
	Status       string   `yaml:"status"`
	WorkingHours *float64 `yaml:"working_hours"`
}

type leaveRequestFixture struct {
	ID           string `yaml:"id"`
	EmployeeID   string `yaml:"employee_id"`
	Type         string `yaml:"type"`
	StartDate    string `yaml:"start_date"`
	EndDate      string `yaml:"end_date"`
	Reason       string `yaml:"reason"`
	Status       string `yaml:"status"`
	AppliedDate  string `yaml:"applied_date"`
	ApprovedBy   string `yaml:"approved_by"`
	ApprovedDate string `yaml:"approved_date"`
}

type builder struct {
	today    time.Time
	hashCost int
}

func (b builder) user(f userFixture) (user.User, error) {
	role := user.Role(f.Role)
	if !role.IsValid() {
		return user.User{}, user.ErrInvalidRole
	}
	if validator.IsEmpty(f.Email) || validator.IsEmpty(f.Password) {
		return user.User{}, fmt.Errorf("email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(f.Password), b.hashCost)
	if err != nil {
		return user.User{}, fmt.Errorf("hash password: %w", err)
	}

	u := user.User{
		ID:           f.ID,
		Name:         f.Name,
		Email:        f.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if f.EmployeeID != "" {
		id := f.EmployeeID
		u.EmployeeID = &id
	}
	return u, nil
}

func (b builder) employee(f employeeFixture) (employee.Employee, error) {
	req := employee.CreateEmployeeRequest{
		Name:        f.Name,
		Email:       f.Email,
		Phone:       f.Phone,
		Role:        f.Role,
		Department:  f.Department,
		JoiningDate: f.JoiningDate,
		Status:      f.Status,
	}
	if f.Salary != "" {
		salary, err := decimal.NewFromString(f.Salary)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("salary: %w", err)
		}
		req.Salary = &salary
	}
	if f.AvatarURL != "" {
		avatar := f.AvatarURL
		req.AvatarURL = &avatar
	}
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	e := req.ToEmployee()
	e.ID = f.ID
	return e, nil
}

func (b builder) attendance(f attendanceFixture) (attendance.Attendance, error) {
	date, err := b.date(f.Date)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("date: %w", err)
	}
	status := attendance.Status(f.Status)
	if !status.IsValid() {
		return attendance.Attendance{}, fmt.Errorf("invalid status %q", f.Status)
	}

	a := attendance.Attendance{
		ID:           f.ID,
		EmployeeID:   f.EmployeeID,
		Date:         date,
		Status:       status,
		WorkingHours: f.WorkingHours,
	}
	if a.PunchIn, err = b.clockOn(date, f.PunchIn); err != nil {
		return attendance.Attendance{}, fmt.Errorf("punch_in: %w", err)
	}
	if a.PunchOut, err = b.clockOn(date, f.PunchOut); err != nil {
		return attendance.Attendance{}, fmt.Errorf("punch_out: %w", err)
	}
	if a.PunchOut != nil && (a.PunchIn == nil || a.PunchOut.Before(*a.PunchIn)) {
		return attendance.Attendance{}, attendance.ErrPunchOutBeforePunchIn
	}
	return a, nil
}

func (b builder) leaveRequest(f leaveRequestFixture) (leave.LeaveRequest, error) {
	start, err := b.date(f.StartDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("start_date: %w", err)
	}
	end, err := b.date(f.EndDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("end_date: %w", err)
	}
	applied, err := b.date(f.AppliedDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("applied_date: %w", err)
	}

	// Reuse the request validation for type, range and reason.
	req := leave.CreateLeaveRequestRequest{
		Type:      f.Type,
		StartDate: start.Format(time.DateOnly),
		EndDate:   end.Format(time.DateOnly),
		Reason:    f.Reason,
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}
	r := req.ToLeaveRequest(f.EmployeeID, applied)
	r.ID = f.ID

	status := leave.LeaveRequestStatus(f.Status)
	switch {
	case status == "" || status == leave.LeaveRequestStatusPending:
		return r, nil
	case status.IsTerminal():
		on := applied
		if f.ApprovedDate != "" {
			if on, err = b.date(f.ApprovedDate); err != nil {
				return leave.LeaveRequest{}, fmt.Errorf("approved_date: %w", err)
			}
		}
		if err := r.Decide(status, f.ApprovedBy, on); err != nil {
			return leave.LeaveRequest{}, err
		}
		return r, nil
	default:
		return leave.LeaveRequest{}, fmt.Errorf("invalid status %q", f.Status)
	}
}

// date resolves "YYYY-MM-DD", "today", "today+N" and "today-N".
func (b builder) date(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if d, ok := validator.IsValidDate(value); ok {
		return d, nil
	}

	rest, ok := strings.CutPrefix(value, "today")
	if !ok {
		return time.Time{}, fmt.Errorf("invalid date %q", value)
	}
	today := utils.DateOf(b.today)
	if rest == "" {
		return today, nil
	}
	offset, err := strconv.Atoi(rest)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date offset %q", value)
	}
	return today.AddDate(0, 0, offset), nil
}

// clockOn places an HH:MM time of day on date, in the location of today.
func (b builder) clockOn(date time.Time, hhmm string) (*time.Time, error) {
	if hhmm == "" {
		return nil, nil
	}
	offset, ok := validator.IsValidClock(hhmm)
	if !ok {
		return nil, fmt.Errorf("invalid time %q", hhmm)
	}
	y, m, d := date.Date()
	t := time.Date(y, m, d, 0, 0, 0, 0, b.today.Location()).Add(offset)
	return &t, nil
}
