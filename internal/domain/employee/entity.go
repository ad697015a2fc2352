package employee

import (
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	RoleTitle   string
	Department  string
	JoiningDate time.Time
	Status      Status
	Salary      *decimal.Decimal
	AvatarURL   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// Clone returns a deep copy so stored records never share pointers with callers.
func (e Employee) Clone() Employee {
	c := e
	if e.Salary != nil {
		salary := *e.Salary
		c.Salary = &salary
	}
	if e.AvatarURL != nil {
		avatar := *e.AvatarURL
		c.AvatarURL = &avatar
	}
	return c
}

const generatedAvatarBase = "https://ui-avatars.com/api/"

// DefaultAvatarURL builds the generated initials avatar used when none is uploaded.
func DefaultAvatarURL(name string) string {
	if name == "" {
		name = "User"
	}
	return generatedAvatarBase + "?name=" + url.QueryEscape(name) + "&background=FF715B&color=fff&size=150"
}

// HasGeneratedAvatar reports whether e has no avatar or only the synthesized one.
func (e Employee) HasGeneratedAvatar() bool {
	return e.AvatarURL == nil || strings.TrimSpace(*e.AvatarURL) == "" || strings.HasPrefix(*e.AvatarURL, generatedAvatarBase)
}
