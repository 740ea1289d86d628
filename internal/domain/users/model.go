package users

import (
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleCoach  = "coach"
	RoleClient = "client"
)

type User struct {
	ID           uint `gorm:"primaryKey"`
	Name         string
	Lastname     string
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	Role         string  `gorm:"type:varchar(20);not null;default:'coach';index"`
	IsVerified   bool

	// Clients reference the coach that created them. Coaches and admins
	// never carry a coach reference; account creation enforces this.
	CoachID *uint `gorm:"column:coach_id;index"`
	Coach   *User `gorm:"foreignKey:CoachID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) IsCoach() bool  { return u.Role == RoleCoach }
func (u *User) IsClient() bool { return u.Role == RoleClient }
func (u *User) IsAdmin() bool  { return u.Role == RoleAdmin }
