package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/interviewprep/practice-service/internal/events"
	"github.com/interviewprep/practice-service/internal/models"
	"github.com/interviewprep/practice-service/internal/repositories"
)

const (
	SheetProfiles  = "Profiles"
	SheetQuestions = "Questions"
	SheetSessions  = "Sessions"
	SheetSummary   = "Summary"

	exportTimeLayout = "2006-01-02 15:04:05"
)

// ExportService dumps backend tables into a spreadsheet
type ExportService interface {
	ExportWorkbook(ctx context.Context) (*ExportResult, error)
}

type ExportResult struct {
	Filename  string         `json:"filename"`
	Data      []byte         `json:"-"`
	RowCounts map[string]int `json:"row_counts"`
}

type exportService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func NewExportService(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger) ExportService {
	return &exportService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// ExportFilename names an export after its creation time
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("practice_data_%s.xlsx", now.UTC().Format("2006-01-02T15-04-05"))
}

type sheetData struct {
	name    string
	headers []string
	rows    [][]interface{}
}

func (s *exportService) ExportWorkbook(ctx context.Context) (*ExportResult, error) {
	s.logger.Info("Starting workbook export")

	var sheets []sheetData
	counts := map[string]int{SheetProfiles: 0, SheetQuestions: 0, SheetSessions: 0}

	// A failing source only drops its own sheet
	if profiles, err := s.repo.Profile().List(ctx); err != nil {
		s.logger.Error("Failed to load profiles for export", "error", err)
	} else {
		sheets = append(sheets, profileSheet(profiles))
		counts[SheetProfiles] = len(profiles)
	}

	if questions, err := s.repo.Question().List(ctx); err != nil {
		s.logger.Error("Failed to load questions for export", "error", err)
	} else {
		sheets = append(sheets, questionSheet(questions))
		counts[SheetQuestions] = len(questions)
	}

	if sessions, _, err := s.repo.Session().List(ctx, repositories.SessionFilters{SortBy: "created_at", SortOrder: "desc"}); err != nil {
		s.logger.Error("Failed to load practice sessions for export", "error", err)
	} else {
		sheets = append(sheets, sessionSheet(sessions))
		counts[SheetSessions] = len(sessions)
	}

	if len(sheets) == 0 {
		return nil, ErrNothingToExport
	}
	sheets = append(sheets, summarySheet(counts))

	data, err := writeWorkbook(sheets)
	if err != nil {
		return nil, err
	}

	result := &ExportResult{
		Filename:  ExportFilename(s.now()),
		Data:      data,
		RowCounts: counts,
	}

	s.logger.Info("Workbook export completed",
		"filename", result.Filename,
		"profiles", counts[SheetProfiles],
		"questions", counts[SheetQuestions],
		"sessions", counts[SheetSessions])

	event := events.NewEvent(events.EventExportCompleted, events.ExportCompletedEvent{
		Filename:  result.Filename,
		SizeBytes: len(data),
		RowCounts: counts,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish export event", "error", err)
	}

	return result, nil
}

func writeWorkbook(sheets []sheetData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	defaultSheet := f.GetSheetName(0)
	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet.name); err != nil {
				return nil, fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet.name); err != nil {
			return nil, fmt.Errorf("failed to create Excel sheet %s: %w", sheet.name, err)
		}

		headers := make([]interface{}, len(sheet.headers))
		for j, h := range sheet.headers {
			headers[j] = h
		}
		if err := f.SetSheetRow(sheet.name, "A1", &headers); err != nil {
			return nil, fmt.Errorf("failed to write header of %s: %w", sheet.name, err)
		}

		lastHeader, err := excelize.CoordinatesToCellName(len(sheet.headers), 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet.name, "A1", lastHeader, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to style header of %s: %w", sheet.name, err)
		}

		for r, row := range sheet.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(sheet.name, cell, &row); err != nil {
				return nil, fmt.Errorf("failed to write row %d of %s: %w", r+2, sheet.name, err)
			}
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

// ===== SHEET BUILDERS =====

func profileSheet(profiles []*models.Profile) sheetData {
	sheet := sheetData{
		name: SheetProfiles,
		headers: []string{
			"User ID", "Email", "Full Name", "Username", "Membership", "Current Stage",
			"Years of Experience", "LinkedIn URL", "Portfolio URL", "Resume URL", "Created At", "Updated At",
		},
	}
	for _, p := range profiles {
		sheet.rows = append(sheet.rows, []interface{}{
			p.ID,
			p.Email,
			str(p.FullName),
			str(p.Username),
			string(p.MembershipStatus),
			str(p.CurrentStage),
			intValue(p.YearsOfExperience),
			str(p.LinkedInURL),
			str(p.PortfolioURL),
			str(p.ResumeURL),
			p.CreatedAt.Format(exportTimeLayout),
			p.UpdatedAt.Format(exportTimeLayout),
		})
	}
	return sheet
}

func questionSheet(questions []*models.InterviewQuestion) sheetData {
	sheet := sheetData{
		name: SheetQuestions,
		headers: []string{
			"Question ID", "Question Text", "Category ID", "Stage ID", "Difficulty", "Expected Answer",
			"Answer Suggestion", "Keywords", "Time Limit (s)", "Created At", "Updated At",
		},
	}
	for _, q := range questions {
		sheet.rows = append(sheet.rows, []interface{}{
			q.ID,
			q.QuestionText,
			str(q.CategoryID),
			str(q.StageID),
			string(q.DifficultyLevel),
			str(q.ExpectedAnswer),
			str(q.AnswerSuggestion),
			strings.Join(q.KeywordList(), ", "),
			intValue(q.TimeLimit),
			q.CreatedAt.Format(exportTimeLayout),
			q.UpdatedAt.Format(exportTimeLayout),
		})
	}
	return sheet
}

func sessionSheet(sessions []*models.PracticeSession) sheetData {
	sheet := sheetData{
		name: SheetSessions,
		headers: []string{
			"Session ID", "User ID", "User Email", "User Name", "Question ID", "Question Text",
			"Stage ID", "Category ID", "User Answer", "Audio URL", "Overall Score", "Content Score",
			"Logic Score", "Expression Score", "AI Feedback", "Duration (s)", "Practice Group ID",
			"Session Summary", "Created At", "Updated At",
		},
	}
	for _, s := range sessions {
		var email, name, questionText interface{} = "", "", ""
		if s.Profile != nil {
			email = s.Profile.Email
			name = str(s.Profile.FullName)
		}
		if s.Question != nil {
			questionText = s.Question.QuestionText
		}

		sheet.rows = append(sheet.rows, []interface{}{
			s.ID,
			s.UserID,
			email,
			name,
			s.QuestionID,
			questionText,
			str(s.StageID),
			str(s.CategoryID),
			s.UserAnswer,
			str(s.AudioURL),
			floatValue(s.OverallScore),
			floatValue(s.ContentScore),
			floatValue(s.LogicScore),
			floatValue(s.ExpressionScore),
			str(s.AIFeedback),
			intValue(s.PracticeDuration),
			s.SessionID,
			str(s.SessionSummary),
			s.CreatedAt.Format(exportTimeLayout),
			s.UpdatedAt.Format(exportTimeLayout),
		})
	}
	return sheet
}

func summarySheet(counts map[string]int) sheetData {
	return sheetData{
		name:    SheetSummary,
		headers: []string{"Item", "Count"},
		rows: [][]interface{}{
			{"Total users", counts[SheetProfiles]},
			{"Total questions", counts[SheetQuestions]},
			{"Total practice sessions", counts[SheetSessions]},
		},
	}
}

func str(v *string) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func intValue(v *int) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func floatValue(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
