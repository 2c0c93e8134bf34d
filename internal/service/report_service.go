package service

import (
	"career_path_backend/internal/catalog"
	"career_path_backend/internal/model"
	"career_path_backend/internal/repository"
	"career_path_backend/internal/util"
	"career_path_backend/pkg/logger"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	sheetTests   = "Tests"
	sheetModules = "Modules"
	sheetVideos  = "Videos"
)

type ReportFile struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// progressData 导出报表所需的全部记录
type progressData struct {
	tests   []model.MockTestResult
	modules []model.LearningProgress
	videos  []model.VideoProgress
	passed  map[string]bool
}

type ReportService struct {
	MockTestRepo *repository.MockTestRepository
	ProgressRepo *repository.LearningProgressRepository
	VideoRepo    *repository.VideoProgressRepository
	QuizRepo     *repository.QuizResultRepository
	Storage      *StorageService
	now          func() time.Time
}

func NewReportService(
	mockTestRepo *repository.MockTestRepository,
	progressRepo *repository.LearningProgressRepository,
	videoRepo *repository.VideoProgressRepository,
	quizRepo *repository.QuizResultRepository,
	storage *StorageService,
) *ReportService {
	return &ReportService{
		MockTestRepo: mockTestRepo,
		ProgressRepo: progressRepo,
		VideoRepo:    videoRepo,
		QuizRepo:     quizRepo,
		Storage:      storage,
		now:          time.Now,
	}
}

// ExportProgress 生成学习进度报表并上传，返回访问地址
func (s *ReportService) ExportProgress(ctx context.Context, userID string) (*ReportFile, error) {
	data, err := s.collect(ctx, userID)
	if err != nil {
		return nil, err
	}

	f, err := buildProgressWorkbook(data)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("reports/%s/progress-%s.xlsx", userID, s.now().Format("20060102150405"))
	url, err := s.Storage.Upload(ctx, filename, buf, int64(buf.Len()), util.MimeXLSX)
	if err != nil {
		logger.Log.Error("upload progress report failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &ReportFile{Filename: filename, URL: url}, nil
}

func (s *ReportService) collect(ctx context.Context, userID string) (*progressData, error) {
	tests, err := s.MockTestRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	modules, err := s.ProgressRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	videos, err := s.VideoRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	quizzes, err := s.QuizRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	passed := make(map[string]bool)
	for _, q := range quizzes {
		if q.Passed() {
			passed[q.VideoID] = true
		}
	}
	return &progressData{tests: tests, modules: modules, videos: videos, passed: passed}, nil
}

func buildProgressWorkbook(data *progressData) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetTests)
	for _, name := range []string{sheetModules, sheetVideos} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	tests := [][]interface{}{{"Career", "Score", "Level", "Taken At"}}
	for _, t := range data.tests {
		tests = append(tests, []interface{}{
			t.CareerPath,
			t.Score,
			string(catalog.LevelForScore(t.Score)),
			t.CreatedAt.Format(util.TimeFormat),
		})
	}

	modules := [][]interface{}{{"Career", "Module", "Level", "Completed", "Completed At"}}
	for _, m := range data.modules {
		modules = append(modules, []interface{}{
			m.CareerPath,
			m.ModuleName,
			m.Level,
			yesNo(m.CompletionStatus),
			formatTime(m.CompletedAt),
		})
	}

	videos := [][]interface{}{{"Video", "Title", "Career", "Level", "Completed At", "Quiz Passed"}}
	for _, v := range data.videos {
		row := []interface{}{v.VideoID, "", "", "", formatTime(v.CompletedAt), yesNo(data.passed[v.VideoID])}
		if ref, err := catalog.LookupVideo(v.VideoID); err == nil {
			row[1] = ref.Video.Title
			row[2] = ref.Career.String()
			row[3] = string(ref.Level)
		}
		videos = append(videos, row)
	}

	for sheet, rows := range map[string][][]interface{}{
		sheetTests:   tests,
		sheetModules: modules,
		sheetVideos:  videos,
	} {
		if err := writeRows(f, sheet, rows); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", "F", 24)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(util.TimeFormat)
}
