package model

import "time"

// LearningProgress 某职业下某等级模块的完成状态，在首次定级时批量创建
// swagger:model LearningProgress
type LearningProgress struct {
	Record
	UserID           string     `gorm:"type:varchar(36);index:idx_user_career_module,unique;not null" json:"userId"`
	CareerPath       string     `gorm:"size:100;index:idx_user_career_module,unique;not null" json:"careerPath"`
	ModuleName       string     `gorm:"size:255;index:idx_user_career_module,unique;not null" json:"moduleName"`
	Level            string     `gorm:"size:20" json:"level"`
	CompletionStatus bool       `gorm:"default:false" json:"completionStatus"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
}

func (LearningProgress) TableName() string {
	return "learning_progress"
}
