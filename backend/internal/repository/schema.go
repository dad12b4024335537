package repository

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DularaDevinda/Happiness-Survey/backend/pkg/database"
)

// Survey schema tables.
const (
	TableUsers       = "Users"
	TableDepartments = "Departments"
	TableQuestions   = "SurveyQuestions"
	TableAnswers     = "SurveyAnswers"
)

// Features records which optional columns the connected schema has.
// It is probed once at startup and never mutated afterwards.
type Features struct {
	DepartmentSlug      bool
	DepartmentIsActive  bool
	DepartmentCreatedAt bool
	DepartmentUpdatedAt bool

	QuestionIsActive  bool
	QuestionCreatedAt bool
	QuestionUpdatedAt bool

	AnswerDepartmentID bool
	AnswerEmoji        bool
	AnswerEmojiID      bool
	AnswerAnsweredAt   bool
	AnswerCreatedAt    bool

	UserCreatedAt         bool
	UserLastLogin         bool
	UserPasswordChangedAt bool
}

// FullFeatures is the feature set of the current schema (every optional
// column present), as created by the embedded migrations.
func FullFeatures() Features {
	return Features{
		DepartmentSlug:        true,
		DepartmentIsActive:    true,
		DepartmentCreatedAt:   true,
		DepartmentUpdatedAt:   true,
		QuestionIsActive:      true,
		QuestionCreatedAt:     true,
		QuestionUpdatedAt:     true,
		AnswerDepartmentID:    true,
		AnswerEmoji:           true,
		AnswerEmojiID:         true,
		AnswerAnsweredAt:      true,
		AnswerCreatedAt:       true,
		UserCreatedAt:         true,
		UserLastLogin:         true,
		UserPasswordChangedAt: true,
	}
}

// ColumnInfo describes one catalog column for GET /api/schema.
type ColumnInfo struct {
	Name       string `json:"COLUMN_NAME"`
	DataType   string `json:"DATA_TYPE"`
	IsNullable string `json:"IS_NULLABLE"`
}

// SchemaRepository exposes the column catalog.
type SchemaRepository interface {
	// HasColumn queries the catalog on every call. Catalog errors count as
	// "column does not exist".
	HasColumn(ctx context.Context, table, column string) bool
	Columns(ctx context.Context, table string) (map[string]bool, error)
	Describe(ctx context.Context) (map[string][]ColumnInfo, error)
	// Ping checks that the pool can still reach the database.
	Ping(ctx context.Context) error
}

// Introspector is the GORM migrator backed SchemaRepository. The migrator
// reads INFORMATION_SCHEMA.COLUMNS on Postgres, MySQL and SQL Server and the
// sqlite master table on SQLite.
type Introspector struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewIntrospector creates an Introspector.
func NewIntrospector(db *gorm.DB, logger *zap.Logger) *Introspector {
	return &Introspector{db: db, logger: logger}
}

func (i *Introspector) Ping(ctx context.Context) error {
	return database.Ping(ctx, i.db)
}

func (i *Introspector) Columns(ctx context.Context, table string) (map[string]bool, error) {
	types, err := i.db.WithContext(ctx).Migrator().ColumnTypes(table)
	if err != nil {
		return nil, err
	}
	cols := make(map[string]bool, len(types))
	for _, t := range types {
		cols[t.Name()] = true
	}
	return cols, nil
}

func (i *Introspector) HasColumn(ctx context.Context, table, column string) bool {
	cols, err := i.Columns(ctx, table)
	if err != nil {
		i.logger.Warn("column check failed, assuming column is absent",
			zap.String("table", table),
			zap.String("column", column),
			zap.Error(err),
		)
		return false
	}
	return cols[column]
}

func (i *Introspector) Describe(ctx context.Context) (map[string][]ColumnInfo, error) {
	migrator := i.db.WithContext(ctx).Migrator()

	tables, err := migrator.GetTables()
	if err != nil {
		return nil, err
	}
	sort.Strings(tables)

	schema := make(map[string][]ColumnInfo, len(tables))
	for _, table := range tables {
		if strings.HasPrefix(table, "sqlite_") {
			continue
		}
		types, err := migrator.ColumnTypes(table)
		if err != nil {
			return nil, err
		}
		cols := make([]ColumnInfo, 0, len(types))
		for _, t := range types {
			nullable := "YES"
			if n, ok := t.Nullable(); ok && !n {
				nullable = "NO"
			}
			cols = append(cols, ColumnInfo{
				Name:       t.Name(),
				DataType:   strings.ToLower(t.DatabaseTypeName()),
				IsNullable: nullable,
			})
		}
		schema[table] = cols
	}
	return schema, nil
}

// Probe reads the column set of every survey table once and derives the
// feature flags. A table that cannot be read yields the oldest shape for
// that table.
func Probe(ctx context.Context, schema SchemaRepository, logger *zap.Logger) Features {
	columns := func(table string) map[string]bool {
		cols, err := schema.Columns(ctx, table)
		if err != nil {
			logger.Warn("schema probe failed, assuming legacy columns",
				zap.String("table", table),
				zap.Error(err),
			)
			return map[string]bool{}
		}
		return cols
	}

	dept := columns(TableDepartments)
	question := columns(TableQuestions)
	answer := columns(TableAnswers)
	user := columns(TableUsers)

	f := Features{
		DepartmentSlug:      dept["Slug"],
		DepartmentIsActive:  dept["IsActive"],
		DepartmentCreatedAt: dept["CreatedAt"],
		DepartmentUpdatedAt: dept["UpdatedAt"],

		QuestionIsActive:  question["IsActive"],
		QuestionCreatedAt: question["CreatedAt"],
		QuestionUpdatedAt: question["UpdatedAt"],

		AnswerDepartmentID: answer["DepartmentID"],
		AnswerEmoji:        answer["AnswerEmoji"],
		AnswerEmojiID:      answer["EmojiID"],
		AnswerAnsweredAt:   answer["AnsweredAt"],
		AnswerCreatedAt:    answer["CreatedAt"],

		UserCreatedAt:         user["CreatedAt"],
		UserLastLogin:         user["LastLogin"],
		UserPasswordChangedAt: user["PasswordChangedAt"],
	}

	logger.Info("schema probed",
		zap.Bool("department_slug", f.DepartmentSlug),
		zap.Bool("department_is_active", f.DepartmentIsActive),
		zap.Bool("question_is_active", f.QuestionIsActive),
		zap.Bool("answer_emoji_id", f.AnswerEmojiID),
		zap.Bool("answer_department_id", f.AnswerDepartmentID),
		zap.Bool("user_password_changed_at", f.UserPasswordChangedAt),
	)

	return f
}

// EnsureEmojiIDColumn adds the nullable SurveyAnswers.EmojiID column to
// schemas that predate it. It must run before Probe.
func EnsureEmojiIDColumn(ctx context.Context, db *gorm.DB, schema SchemaRepository, logger *zap.Logger) error {
	if schema.HasColumn(ctx, TableAnswers, "EmojiID") {
		return nil
	}

	logger.Info("adding EmojiID column", zap.String("table", TableAnswers))
	err := db.WithContext(ctx).Exec("ALTER TABLE ? ADD ? INT NULL",
		clause.Table{Name: TableAnswers},
		clause.Column{Name: "EmojiID"},
	).Error
	if err != nil {
		return err
	}

	logger.Info("EmojiID column added")
	return nil
}
