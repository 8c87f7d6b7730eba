package user

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"deskflow/internal/shared/authorization"
)

var nameCaser = cases.Title(language.English)

// normalizeName trims surrounding whitespace and title-cases each name
// part, so "marc" and "MARC" both land as "Marc". Mention matching keys
// off the stored form, which keeps it deterministic across registrations.
func normalizeName(name string) string {
	parts := strings.Fields(name)
	for i, part := range parts {
		parts[i] = nameCaser.String(strings.ToLower(part))
	}
	return strings.Join(parts, " ")
}

type User struct {
	id           uint
	firstName    string
	lastName     string
	email        string
	passwordHash string
	role         authorization.UserRole
	parentID     *uint
	suspended    bool
	language     string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a user. The role determines whether a hierarchical parent
// is required: group leaders report to a project manager, developers to a
// group leader, testers to a responsible tester.
func NewUser(
	firstName, lastName, email, passwordHash string,
	role authorization.UserRole,
	parentID *uint,
	language string,
) (*User, error) {
	firstName = normalizeName(firstName)
	lastName = normalizeName(lastName)
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("first and last name are required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	if _, required := role.RequiredParentRole(); required {
		if parentID == nil || *parentID == 0 {
			return nil, fmt.Errorf("role %s requires a hierarchical parent", role)
		}
	} else {
		parentID = nil
	}

	if language == "" {
		language = "en"
	}

	now := time.Now()
	return &User{
		firstName:    firstName,
		lastName:     lastName,
		email:        strings.ToLower(email),
		passwordHash: passwordHash,
		role:         role,
		parentID:     parentID,
		language:     language,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	firstName, lastName, email, passwordHash string,
	role authorization.UserRole,
	parentID *uint,
	suspended bool,
	language string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		parentID:     parentID,
		suspended:    suspended,
		language:     language,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint                         { return u.id }
func (u *User) FirstName() string                { return u.firstName }
func (u *User) LastName() string                 { return u.lastName }
func (u *User) Email() string                    { return u.email }
func (u *User) PasswordHash() string             { return u.passwordHash }
func (u *User) Role() authorization.UserRole     { return u.role }
func (u *User) ParentID() *uint                  { return u.parentID }
func (u *User) Suspended() bool                  { return u.suspended }
func (u *User) Language() string                 { return u.language }
func (u *User) CreatedAt() time.Time             { return u.createdAt }
func (u *User) UpdatedAt() time.Time             { return u.updatedAt }

func (u *User) FullName() string {
	return u.firstName + " " + u.lastName
}

// MentionKey is the token a mention must match: first and last name
// concatenated with spaces removed. Matching is case-sensitive.
func (u *User) MentionKey() string {
	return strings.ReplaceAll(u.firstName+u.lastName, " ", "")
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) UpdateProfile(firstName, lastName, language string) error {
	firstName = normalizeName(firstName)
	lastName = normalizeName(lastName)
	if firstName == "" || lastName == "" {
		return fmt.Errorf("first and last name are required")
	}
	u.firstName = firstName
	u.lastName = lastName
	if language != "" {
		u.language = language
	}
	u.updatedAt = time.Now()
	return nil
}

func (u *User) ChangePasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = hash
	u.updatedAt = time.Now()
	return nil
}

func (u *User) Suspend() {
	u.suspended = true
	u.updatedAt = time.Now()
}

func (u *User) Unsuspend() {
	u.suspended = false
	u.updatedAt = time.Now()
}
