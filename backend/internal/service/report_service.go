package service

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DularaDevinda/Happiness-Survey/backend/internal/dto"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/model"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/repository"
)

// ── report errors ──

var (
	ErrInvalidDate         = errors.New("dates must use the YYYY-MM-DD format")
	ErrInvalidDepartmentID = errors.New("departmentId must be a positive integer")
)

const dateLayout = "2006-01-02"

// ReportService aggregates answers onto the emoji scale.
type ReportService interface {
	// Reports breaks down the current question of every active department.
	Reports(ctx context.Context) ([]dto.DepartmentReport, error)
	// History breaks down every question matching the filter, newest first.
	History(ctx context.Context, query *dto.HistoryQuery) ([]dto.HistoryRow, error)
	// EmojiStats breaks down every stored answer.
	EmojiStats(ctx context.Context) ([]dto.EmojiBucket, error)
}

type reportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReportService creates a ReportService.
func NewReportService(repo *repository.Repository, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, logger: logger}
}

// ────────────────────── Reports ──────────────────────

func (s *reportService) Reports(ctx context.Context) ([]dto.DepartmentReport, error) {
	depts, err := s.repo.Department.List(ctx, true)
	if err != nil {
		s.logger.Error("list departments failed", zap.Error(err))
		return nil, err
	}

	// 1. current question per department; departments without one are skipped
	type current struct {
		dept     *model.Department
		question *model.Question
	}
	var rows []current
	questionIDs := make([]int, 0, len(depts))
	for i := range depts {
		q, err := s.repo.Question.GetActive(ctx, depts[i].DepartmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			s.logger.Error("get active question failed", zap.Int("department_id", depts[i].DepartmentID), zap.Error(err))
			return nil, err
		}
		rows = append(rows, current{dept: &depts[i], question: q})
		questionIDs = append(questionIDs, q.QuestionID)
	}

	// 2. one grouped count for all of them
	counts, err := s.repo.Answer.CountByQuestion(ctx, questionIDs)
	if err != nil {
		s.logger.Error("count answers failed", zap.Error(err))
		return nil, err
	}

	reports := make([]dto.DepartmentReport, 0, len(rows))
	for _, r := range rows {
		t := tallyCounts(counts[r.question.QuestionID])
		reports = append(reports, dto.DepartmentReport{
			DepartmentID:   r.dept.DepartmentID,
			Department:     r.dept.Name,
			QuestionID:     r.question.QuestionID,
			Question:       r.question.QuestionText,
			TotalResponses: t.total,
			Responses:      t.buckets(),
		})
	}
	return reports, nil
}

// ────────────────────── History ──────────────────────

func (s *reportService) History(ctx context.Context, query *dto.HistoryQuery) ([]dto.HistoryRow, error) {
	filter, err := parseHistoryQuery(query)
	if err != nil {
		return nil, err
	}

	questions, err := s.repo.Question.List(ctx, filter)
	if err != nil {
		s.logger.Error("list questions failed", zap.Error(err))
		return nil, err
	}

	counts, err := s.repo.Answer.CountByQuestion(ctx, questionIDsOf(questions))
	if err != nil {
		s.logger.Error("count answers failed", zap.Error(err))
		return nil, err
	}

	rows := make([]dto.HistoryRow, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		t := tallyCounts(counts[q.QuestionID])
		rows = append(rows, dto.HistoryRow{
			Department:     departmentName(q),
			Question:       q.QuestionText,
			QuestionID:     q.QuestionID,
			DepartmentID:   q.DepartmentID,
			CreatedAt:      q.CreatedAt,
			TotalResponses: t.total,
			EmojiData:      t.emojiData(),
		})
	}
	return rows, nil
}

// ────────────────────── EmojiStats ──────────────────────

func (s *reportService) EmojiStats(ctx context.Context) ([]dto.EmojiBucket, error) {
	counts, err := s.repo.Answer.CountAll(ctx)
	if err != nil {
		s.logger.Error("count answers failed", zap.Error(err))
		return nil, err
	}
	return tallyCounts(counts).buckets(), nil
}

// ── aggregation ──

// tally holds the answer counts of one question. counts is indexed by
// emoji id; index 0 collects answers that do not map onto the scale and
// only count toward total.
type tally struct {
	total  int64
	counts [len(model.EmojiScale) + 1]int64
}

func tallyCounts(rows []repository.EmojiCount) tally {
	var t tally
	for _, row := range rows {
		t.total += row.Count
		t.counts[model.ResolveEmojiID(row.EmojiID, row.AnswerEmoji)] += row.Count
	}
	return t
}

func (t tally) buckets() []dto.EmojiBucket {
	out := make([]dto.EmojiBucket, 0, len(model.EmojiScale))
	for _, e := range model.EmojiScale {
		out = append(out, dto.EmojiBucket{
			EmojiID:     e.ID,
			AnswerEmoji: e.Char,
			Label:       e.Label,
			Count:       t.counts[e.ID],
			Percentage:  percentage(t.counts[e.ID], t.total),
		})
	}
	return out
}

func (t tally) emojiData() []dto.EmojiDatum {
	out := make([]dto.EmojiDatum, 0, len(model.EmojiScale))
	for _, e := range model.EmojiScale {
		out = append(out, dto.EmojiDatum{
			Emoji: e.Char,
			Label: e.Label,
			Count: t.counts[e.ID],
			ID:    e.ID,
		})
	}
	return out
}

// percentage is count/total in percent, rounded to two decimals. A zero
// total yields 0.
func percentage(count, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)*10000/float64(total)) / 100
}

// ── filters ──

// parseHistoryQuery turns the query string into a repository filter. The
// end date includes the whole day up to 23:59:59.
func parseHistoryQuery(query *dto.HistoryQuery) (repository.QuestionFilter, error) {
	var filter repository.QuestionFilter
	if query == nil {
		return filter, nil
	}

	if v := strings.TrimSpace(query.DepartmentID); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil || id <= 0 {
			return filter, ErrInvalidDepartmentID
		}
		filter.DepartmentID = &id
	}
	if v := strings.TrimSpace(query.StartDate); v != "" {
		from, err := time.ParseInLocation(dateLayout, v, time.Local)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.From = &from
	}
	if v := strings.TrimSpace(query.EndDate); v != "" {
		day, err := time.ParseInLocation(dateLayout, v, time.Local)
		if err != nil {
			return filter, ErrInvalidDate
		}
		to := day.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		filter.To = &to
	}
	return filter, nil
}

func questionIDsOf(questions []model.Question) []int {
	ids := make([]int, 0, len(questions))
	for i := range questions {
		ids = append(ids, questions[i].QuestionID)
	}
	return ids
}

func departmentName(q *model.Question) string {
	if q.Department == nil {
		return ""
	}
	return q.Department.Name
}
