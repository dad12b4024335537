package repository

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repository aggregates every data access interface.
type Repository struct {
	Features   Features
	Schema     SchemaRepository
	User       UserRepository
	Department DepartmentRepository
	Question   QuestionRepository
	Answer     AnswerRepository
}

// NewRepository creates the repositories for a schema with the given
// optional columns.
func NewRepository(db *gorm.DB, features Features, logger *zap.Logger) *Repository {
	return &Repository{
		Features:   features,
		Schema:     NewIntrospector(db, logger),
		User:       NewUserRepo(db, features),
		Department: NewDepartmentRepo(db, features),
		Question:   NewQuestionRepo(db, features),
		Answer:     NewAnswerRepo(db, features),
	}
}
