package model

// MockTestResult 诊断测试结果，只追加
// swagger:model MockTestResult
type MockTestResult struct {
	Record
	UserID     string `gorm:"type:varchar(36);index:idx_user_career_test;not null" json:"userId"`
	CareerPath string `gorm:"size:100;index:idx_user_career_test;not null" json:"careerPath"`
	Score      int    `gorm:"not null" json:"score"`
}

func (MockTestResult) TableName() string {
	return "mock_test_results"
}
