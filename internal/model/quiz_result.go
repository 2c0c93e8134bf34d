package model

// QuizResult 视频测验的每次提交，分数只会是 0 或 100
type QuizResult struct {
	Record
	UserID     string `gorm:"type:varchar(36);index:idx_user_quiz_video;not null" json:"userId"`
	VideoID    string `gorm:"size:50;index:idx_user_quiz_video;not null" json:"videoId"`
	CareerPath string `gorm:"size:100" json:"careerPath"`
	Score      int    `gorm:"not null" json:"score"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}

// QuizPassScore 任一次得分达到该值即视为通过
const QuizPassScore = 70

func (q QuizResult) Passed() bool {
	return q.Score >= QuizPassScore
}
