package models

import (
	"time"

	"gorm.io/gorm"
)

// Role represents a portal user role
type Role struct {
	ID          int64     `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"size:50;not null;unique;index;column:name" json:"name"`
	Description string    `gorm:"type:text;column:description" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (Role) TableName() string {
	return "roles"
}

// SeedRoles inserts the portal roles into the database
func SeedRoles(db *gorm.DB) error {
	initialRoles := []Role{
		{Name: "Admin", Description: "Hospital administration portal access"},
		{Name: "Doctor", Description: "Doctor portal: appointments, prescriptions and patient records"},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, role := range initialRoles {
			if err := tx.FirstOrCreate(&role, Role{Name: role.Name}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// User represents a portal login. Doctor users carry the doctor and hospital
// ids that end up in the session snapshot handed to the client at login.
type User struct {
	ID         int64     `gorm:"primaryKey;column:id" json:"id"`
	Username   string    `gorm:"size:100;not null;unique;index;column:username" json:"username"`
	Email      string    `gorm:"size:255;not null;unique;index;column:email" json:"email"`
	Password   string    `gorm:"size:255;not null;column:password" json:"password"`
	RoleID     int64     `gorm:"index;not null;column:role_id" json:"role_id"`
	DoctorID   string    `gorm:"column:doctor_id;index" json:"doctor_id"`
	HospitalID string    `gorm:"column:hospital_id;index" json:"hospital_id"`
	Role       Role      `gorm:"foreignKey:RoleID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"role"`
	CreatedAt  time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
