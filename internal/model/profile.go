package model

import "time"

// Profile 用户资料，ID 与 User.ID 相同
// swagger:model Profile
type Profile struct {
	ID               string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Username         string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	FullName         string    `gorm:"size:100" json:"fullName"`
	Age              int       `gorm:"not null" json:"age"`
	EducationLevel   string    `gorm:"size:50" json:"educationLevel"`
	CurrentEducation string    `gorm:"size:255" json:"currentEducation"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (Profile) TableName() string {
	return "profiles"
}
