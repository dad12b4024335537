package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DularaDevinda/Happiness-Survey/backend/internal/dto"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/model"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/repository"
)

// ErrExportGenerateFail is returned when the workbook cannot be written.
var ErrExportGenerateFail = errors.New("failed to generate Excel file")

const (
	sheetSummary = "Summary"
	sheetRaw     = "Raw Data"

	headerFill = "#E6E6FA"
)

// ExportService renders survey results as an Excel workbook.
//
// The workbook has two sheets:
//   - "Summary": one row per question with a count column per emoji
//   - "Raw Data": one row per answer
//
// The buffer and a suggested filename are returned; the handler writes the
// HTTP headers.
type ExportService interface {
	Export(ctx context.Context, query *dto.HistoryQuery) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	clock  clock
}

// NewExportService creates an ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

func (s *exportService) Export(ctx context.Context, query *dto.HistoryQuery) (*bytes.Buffer, string, error) {
	filter, err := parseHistoryQuery(query)
	if err != nil {
		return nil, "", err
	}

	// 1. the filename names the filtered department
	scope := "All"
	if filter.DepartmentID != nil {
		dept, err := s.repo.Department.GetByID(ctx, *filter.DepartmentID, false)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, "", ErrDepartmentNotFound
			}
			s.logger.Error("get department failed", zap.Error(err))
			return nil, "", err
		}
		scope = unsafeFilenameChars.ReplaceAllString(dept.Name, "_")
	}

	// 2. questions ordered by department, newest first within each
	questions, err := s.repo.Question.List(ctx, filter)
	if err != nil {
		s.logger.Error("list questions failed", zap.Error(err))
		return nil, "", err
	}
	sort.SliceStable(questions, func(i, j int) bool {
		return departmentName(&questions[i]) < departmentName(&questions[j])
	})

	ids := questionIDsOf(questions)
	counts, err := s.repo.Answer.CountByQuestion(ctx, ids)
	if err != nil {
		s.logger.Error("count answers failed", zap.Error(err))
		return nil, "", err
	}
	answers, err := s.repo.Answer.ListByQuestions(ctx, ids)
	if err != nil {
		s.logger.Error("list answers failed", zap.Error(err))
		return nil, "", err
	}

	// 3. render
	buf, err := s.render(questions, counts, answers)
	if err != nil {
		s.logger.Error("write Excel failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("Survey_Report_%s_%s.xlsx", s.clock.now().Format(dateLayout), scope)
	return buf, filename, nil
}

func (s *exportService) render(questions []model.Question, counts map[int][]repository.EmojiCount, answers []model.Answer) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sheetRaw); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	// ── Summary ──
	summaryHeader := []interface{}{"Department", "Question", "Question Created", "Total Responses"}
	summaryWidths := []float64{25, 50, 20, 15}
	for _, e := range model.EmojiScale {
		summaryHeader = append(summaryHeader, fmt.Sprintf("%s (%s)", e.Label, e.Char))
		summaryWidths = append(summaryWidths, 15)
	}
	if err := writeHeader(f, sheetSummary, summaryHeader, summaryWidths, headerStyle); err != nil {
		return nil, err
	}

	for i := range questions {
		q := &questions[i]
		t := tallyCounts(counts[q.QuestionID])
		row := []interface{}{departmentName(q), q.QuestionText, formatDate(q.CreatedAt), t.total}
		for _, e := range model.EmojiScale {
			row = append(row, t.counts[e.ID])
		}
		if err := f.SetSheetRow(sheetSummary, cellName(1, i+2), &row); err != nil {
			return nil, err
		}
	}

	// ── Raw Data ──
	withEmojiID := s.repo.Features.AnswerEmojiID
	rawHeader := []interface{}{"Department", "Question", "Question Created", "Answer Emoji", "Answer Label", "Answered At"}
	rawWidths := []float64{25, 50, 20, 15, 15, 20}
	if withEmojiID {
		rawHeader = append(rawHeader, "Emoji ID")
		rawWidths = append(rawWidths, 10)
	}
	if err := writeHeader(f, sheetRaw, rawHeader, rawWidths, headerStyle); err != nil {
		return nil, err
	}

	byQuestion := make(map[int][]model.Answer, len(questions))
	for _, a := range answers {
		byQuestion[a.QuestionID] = append(byQuestion[a.QuestionID], a)
	}

	line := 2
	for i := range questions {
		q := &questions[i]
		for _, a := range byQuestion[q.QuestionID] {
			id := model.ResolveEmojiID(a.EmojiID, a.AnswerEmoji)
			e, known := model.EmojiByID(id)

			char := e.Char
			if a.AnswerEmoji != nil && *a.AnswerEmoji != "" {
				char = *a.AnswerEmoji
			}
			label := "Unknown"
			if known {
				label = e.Label
			}
			answeredAt := a.AnsweredAt
			if answeredAt == nil {
				answeredAt = a.CreatedAt
			}

			row := []interface{}{departmentName(q), q.QuestionText, formatDate(q.CreatedAt), char, label, formatDateTime(answeredAt)}
			if withEmojiID {
				if known {
					row = append(row, id)
				} else {
					row = append(row, nil)
				}
			}
			if err := f.SetSheetRow(sheetRaw, cellName(1, line), &row); err != nil {
				return nil, err
			}
			line++
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ── helpers ──

func writeHeader(f *excelize.File, sheet string, header []interface{}, widths []float64, style int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}
	return f.SetCellStyle(sheet, "A1", cellName(len(header), 1), style)
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format(dateLayout)
}

func formatDateTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
