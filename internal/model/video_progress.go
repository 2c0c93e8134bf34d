package model

import (
	"time"
)

// VideoProgress 记录用户对视频的完成状态
// swagger:model VideoProgress
type VideoProgress struct {
	Record
	UserID      string     `gorm:"type:varchar(36);index:idx_user_video,unique;not null" json:"userId"`
	VideoID     string     `gorm:"size:50;index:idx_user_video,unique;not null" json:"videoId"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func (VideoProgress) TableName() string {
	return "video_progress"
}
