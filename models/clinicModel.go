package models

import (
	"time"
)

// Hospital model
type Hospital struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name;not null;index" json:"name"`
	Address   string    `gorm:"column:address" json:"address"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Hospital) TableName() string {
	return "hospital"
}

// Doctor model
type Doctor struct {
	ID             string        `gorm:"primaryKey;column:id" json:"id"`
	HospitalID     string        `gorm:"column:hospital_id;not null;index" json:"hospital_id"`
	Name           string        `gorm:"column:name;not null;index" json:"name"`
	Specialization string        `gorm:"column:specialization" json:"specialization"`
	Email          string        `gorm:"column:email;unique" json:"email"`
	Phone          string        `gorm:"column:phone" json:"phone"`
	CreatedAt      time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Hospital       Hospital      `gorm:"foreignKey:HospitalID;references:ID" json:"-"`
	Appointments   []Appointment `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
}

func (Doctor) TableName() string {
	return "doctor"
}

// Patient model
type Patient struct {
	ID           string          `gorm:"primaryKey;column:id" json:"id"`
	Name         string          `gorm:"column:name;not null;index" json:"name"`
	Email        string          `gorm:"column:email;index" json:"email"`
	Contact      string          `gorm:"column:contact" json:"contact"`
	Age          int             `gorm:"column:age" json:"age"`
	Gender       string          `gorm:"column:gender;check:gender IN ('Male', 'Female', 'Other', '')" json:"gender"`
	DateOfBirth  string          `gorm:"column:date_of_birth" json:"date_of_birth"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Appointments []Appointment   `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Records      []PatientRecord `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Patient) TableName() string {
	return "patient"
}
