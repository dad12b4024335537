package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/DularaDevinda/Happiness-Survey/backend/internal/model"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/repository"
)

// ── Mock DepartmentRepository ──

type mockDeptRepo struct {
	depts     map[int]*model.Department
	nextID    int
	questions *mockQuestionRepo
	features  *repository.Features
	slugErr   error
}

func (m *mockDeptRepo) List(_ context.Context, activeOnly bool) ([]model.Department, error) {
	var result []model.Department
	for _, d := range m.depts {
		if activeOnly && d.IsActive != nil && !*d.IsActive {
			continue
		}
		result = append(result, *d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockDeptRepo) GetByID(_ context.Context, id int, activeOnly bool) (*model.Department, error) {
	d, ok := m.depts[id]
	if !ok || (activeOnly && d.IsActive != nil && !*d.IsActive) {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *mockDeptRepo) GetBySlug(_ context.Context, slug string, activeOnly bool) (*model.Department, error) {
	for _, d := range m.depts {
		if d.URLSlug() != slug {
			continue
		}
		if activeOnly && d.IsActive != nil && !*d.IsActive {
			continue
		}
		cp := *d
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDeptRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	if m.slugErr != nil {
		return false, m.slugErr
	}
	for _, d := range m.depts {
		if d.Slug != nil && *d.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockDeptRepo) Create(_ context.Context, dept *model.Department) error {
	m.nextID++
	dept.DepartmentID = m.nextID
	if !m.features.DepartmentSlug {
		dept.Slug = nil
	}
	if m.features.DepartmentIsActive {
		dept.IsActive = model.BoolPtr(true)
	}
	cp := *dept
	m.depts[dept.DepartmentID] = &cp
	return nil
}

func (m *mockDeptRepo) UpdateName(_ context.Context, id int, name string, at time.Time) error {
	d, ok := m.depts[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	d.Name = name
	d.UpdatedAt = model.TimePtr(at)
	return nil
}

func (m *mockDeptRepo) Delete(_ context.Context, id int, _ time.Time) error {
	d, ok := m.depts[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if m.features.DepartmentIsActive {
		d.IsActive = model.BoolPtr(false)
		return nil
	}
	delete(m.depts, id)
	return nil
}

func (m *mockDeptRepo) CountQuestions(_ context.Context, id int) (int64, error) {
	var n int64
	for _, q := range m.questions.questions {
		if q.DepartmentID == id {
			n++
		}
	}
	return n, nil
}

// ── Mock QuestionRepository ──

type mockQuestionRepo struct {
	questions map[int]*model.Question
	nextID    int
	depts     *mockDeptRepo
	features  *repository.Features
}

func (m *mockQuestionRepo) GetByID(_ context.Context, id int) (*model.Question, error) {
	q, ok := m.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *q
	return &cp, nil
}

// newestFirst orders by id, which follows creation order in the mocks.
func (m *mockQuestionRepo) newestFirst() []model.Question {
	var result []model.Question
	for _, q := range m.questions {
		cp := *q
		if d, ok := m.depts.depts[q.DepartmentID]; ok {
			dc := *d
			cp.Department = &dc
		}
		result = append(result, cp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].QuestionID > result[j].QuestionID })
	return result
}

func (m *mockQuestionRepo) List(_ context.Context, filter repository.QuestionFilter) ([]model.Question, error) {
	var result []model.Question
	for _, q := range m.newestFirst() {
		if filter.DepartmentID != nil && q.DepartmentID != *filter.DepartmentID {
			continue
		}
		if q.CreatedAt != nil {
			if filter.From != nil && q.CreatedAt.Before(*filter.From) {
				continue
			}
			if filter.To != nil && q.CreatedAt.After(*filter.To) {
				continue
			}
		}
		result = append(result, q)
	}
	return result, nil
}

func (m *mockQuestionRepo) ListByDepartment(ctx context.Context, departmentID int) ([]model.Question, error) {
	return m.List(ctx, repository.QuestionFilter{DepartmentID: &departmentID})
}

func (m *mockQuestionRepo) GetActive(_ context.Context, departmentID int) (*model.Question, error) {
	for _, q := range m.newestFirst() {
		if q.DepartmentID != departmentID {
			continue
		}
		if m.features.QuestionIsActive && (q.IsActive == nil || !*q.IsActive) {
			continue
		}
		return &q, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockQuestionRepo) CreateActive(_ context.Context, q *model.Question) error {
	if m.features.QuestionIsActive {
		for _, other := range m.questions {
			if other.DepartmentID == q.DepartmentID {
				other.IsActive = model.BoolPtr(false)
			}
		}
		q.IsActive = model.BoolPtr(true)
	}
	m.nextID++
	q.QuestionID = m.nextID
	cp := *q
	m.questions[q.QuestionID] = &cp
	return nil
}

// ── Mock AnswerRepository ──

type mockAnswerRepo struct {
	answers  []model.Answer
	features *repository.Features
	failErr  error
}

func (m *mockAnswerRepo) Create(_ context.Context, answer *model.Answer) error {
	if m.failErr != nil {
		return m.failErr
	}
	cp := *answer
	if !m.features.AnswerEmojiID {
		cp.EmojiID = nil
	}
	if !m.features.AnswerDepartmentID {
		cp.DepartmentID = nil
	}
	m.answers = append(m.answers, cp)
	return nil
}

type countKey struct {
	questionID int
	emojiID    int
	char       string
}

func (m *mockAnswerRepo) group(filter func(model.Answer) bool) []repository.EmojiCount {
	counts := map[countKey]int64{}
	var order []countKey
	for _, a := range m.answers {
		if !filter(a) {
			continue
		}
		k := countKey{questionID: a.QuestionID}
		if a.EmojiID != nil {
			k.emojiID = *a.EmojiID
		}
		if a.AnswerEmoji != nil {
			k.char = *a.AnswerEmoji
		}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	rows := make([]repository.EmojiCount, 0, len(order))
	for _, k := range order {
		row := repository.EmojiCount{QuestionID: k.questionID, Count: counts[k]}
		if k.emojiID != 0 {
			id := k.emojiID
			row.EmojiID = &id
		}
		if k.char != "" {
			c := k.char
			row.AnswerEmoji = &c
		}
		rows = append(rows, row)
	}
	return rows
}

func (m *mockAnswerRepo) CountByQuestion(_ context.Context, questionIDs []int) (map[int][]repository.EmojiCount, error) {
	wanted := map[int]bool{}
	for _, id := range questionIDs {
		wanted[id] = true
	}
	out := map[int][]repository.EmojiCount{}
	for _, row := range m.group(func(a model.Answer) bool { return wanted[a.QuestionID] }) {
		out[row.QuestionID] = append(out[row.QuestionID], row)
	}
	return out, nil
}

func (m *mockAnswerRepo) CountAll(_ context.Context) ([]repository.EmojiCount, error) {
	return m.group(func(model.Answer) bool { return true }), nil
}

func (m *mockAnswerRepo) ListByQuestions(_ context.Context, questionIDs []int) ([]model.Answer, error) {
	wanted := map[int]bool{}
	for _, id := range questionIDs {
		wanted[id] = true
	}
	var result []model.Answer
	for i := len(m.answers) - 1; i >= 0; i-- {
		if wanted[m.answers[i].QuestionID] {
			result = append(result, m.answers[i])
		}
	}
	return result, nil
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[int]*model.User
	nextID int
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	m.nextID++
	user.UserID = m.nextID
	cp := *user
	m.users[user.UserID] = &cp
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetActiveByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username && u.IsActive {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range m.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) TouchLastLogin(_ context.Context, id int, at time.Time) error {
	if u, ok := m.users[id]; ok {
		u.LastLogin = model.TimePtr(at)
	}
	return nil
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, id int, hash string, at time.Time) error {
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.PasswordHash = hash
	u.PasswordChangedAt = model.TimePtr(at)
	return nil
}

// ── Mock SchemaRepository ──

type mockSchemaRepo struct {
	pingErr error
	schema  map[string][]repository.ColumnInfo
}

func (m *mockSchemaRepo) HasColumn(_ context.Context, table, column string) bool {
	for _, c := range m.schema[table] {
		if c.Name == column {
			return true
		}
	}
	return false
}

func (m *mockSchemaRepo) Columns(_ context.Context, table string) (map[string]bool, error) {
	cols := map[string]bool{}
	for _, c := range m.schema[table] {
		cols[c.Name] = true
	}
	return cols, nil
}

func (m *mockSchemaRepo) Describe(_ context.Context) (map[string][]repository.ColumnInfo, error) {
	return m.schema, nil
}

func (m *mockSchemaRepo) Ping(_ context.Context) error { return m.pingErr }

// ── wiring ──

type mockRepos struct {
	repo      *repository.Repository
	depts     *mockDeptRepo
	questions *mockQuestionRepo
	answers   *mockAnswerRepo
	users     *mockUserRepo
	schema    *mockSchemaRepo
}

func newMockRepos(features repository.Features) *mockRepos {
	f := &features
	depts := &mockDeptRepo{depts: map[int]*model.Department{}, features: f}
	questions := &mockQuestionRepo{questions: map[int]*model.Question{}, depts: depts, features: f}
	depts.questions = questions
	m := &mockRepos{
		depts:     depts,
		questions: questions,
		answers:   &mockAnswerRepo{features: f},
		users:     &mockUserRepo{users: map[int]*model.User{}},
		schema:    &mockSchemaRepo{},
	}
	m.repo = &repository.Repository{
		Features:   features,
		Schema:     m.schema,
		User:       m.users,
		Department: m.depts,
		Question:   m.questions,
		Answer:     m.answers,
	}
	return m
}
