package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DularaDevinda/Happiness-Survey/backend/internal/repository"
)

// legacySchema is the oldest table shape still seen in the field: no slugs,
// no activity flags, no timestamps, character-only answers.
var legacySchema = []string{
	`CREATE TABLE "Users" ("UserID" INTEGER PRIMARY KEY AUTOINCREMENT, "Username" TEXT NOT NULL, "PasswordHash" TEXT NOT NULL, "UserLevel" INTEGER NOT NULL, "IsActive" INTEGER NOT NULL DEFAULT 1)`,
	`CREATE TABLE "Departments" ("DepartmentID" INTEGER PRIMARY KEY AUTOINCREMENT, "Name" TEXT NOT NULL)`,
	`CREATE TABLE "SurveyQuestions" ("QuestionID" INTEGER PRIMARY KEY AUTOINCREMENT, "DepartmentID" INTEGER NOT NULL, "QuestionText" TEXT NOT NULL)`,
	`CREATE TABLE "SurveyAnswers" ("AnswerID" INTEGER PRIMARY KEY AUTOINCREMENT, "QuestionID" INTEGER NOT NULL, "AnswerEmoji" TEXT)`,
}

// fullSchema carries every optional column.
var fullSchema = []string{
	`CREATE TABLE "Users" ("UserID" INTEGER PRIMARY KEY AUTOINCREMENT, "Username" TEXT NOT NULL UNIQUE, "PasswordHash" TEXT NOT NULL, "UserLevel" INTEGER NOT NULL, "IsActive" INTEGER NOT NULL DEFAULT 1, "CreatedAt" DATETIME, "LastLogin" DATETIME, "PasswordChangedAt" DATETIME)`,
	`CREATE TABLE "Departments" ("DepartmentID" INTEGER PRIMARY KEY AUTOINCREMENT, "Name" TEXT NOT NULL, "Slug" TEXT UNIQUE, "IsActive" INTEGER NOT NULL DEFAULT 1, "CreatedAt" DATETIME, "UpdatedAt" DATETIME)`,
	`CREATE TABLE "SurveyQuestions" ("QuestionID" INTEGER PRIMARY KEY AUTOINCREMENT, "DepartmentID" INTEGER NOT NULL, "QuestionText" TEXT NOT NULL, "IsActive" INTEGER NOT NULL DEFAULT 1, "CreatedAt" DATETIME, "UpdatedAt" DATETIME)`,
	`CREATE TABLE "SurveyAnswers" ("AnswerID" INTEGER PRIMARY KEY AUTOINCREMENT, "QuestionID" INTEGER NOT NULL, "DepartmentID" INTEGER, "AnswerEmoji" TEXT, "EmojiID" INTEGER, "AnsweredAt" DATETIME, "CreatedAt" DATETIME)`,
}

// newTestDB opens a private in-memory SQLite database with the given DDL.
func newTestDB(t *testing.T, ddl []string) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a fresh database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

// newTestRepo opens a database with ddl and probes it.
func newTestRepo(t *testing.T, ddl []string) (*repository.Repository, *gorm.DB) {
	t.Helper()

	db := newTestDB(t, ddl)
	logger := zap.NewNop()
	features := repository.Probe(context.Background(), repository.NewIntrospector(db, logger), logger)
	return repository.NewRepository(db, features, logger), db
}

func at(s string) time.Time {
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return ts.UTC()
}
