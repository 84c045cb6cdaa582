package repos

import (
	"learnhub/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ContentRepo struct{ db *sqlx.DB }

func NewContentRepo(db *sqlx.DB) *ContentRepo { return &ContentRepo{db: db} }

func (r *ContentRepo) Courses() ([]domain.Course, error) {
	var out []domain.Course
	err := r.db.Select(&out, `SELECT id,title,description,lessons,duration,level,image FROM courses ORDER BY id`)
	return out, err
}

func (r *ContentRepo) Articles() ([]domain.Article, error) {
	var out []domain.Article
	err := r.db.Select(&out, `SELECT id,title,summary,date,author,read_time FROM articles ORDER BY date DESC`)
	return out, err
}

func (r *ContentRepo) Videos() ([]domain.Video, error) {
	var out []domain.Video
	err := r.db.Select(&out, `SELECT id,title,duration,views,image FROM videos ORDER BY views DESC`)
	return out, err
}

// Exercises lists practice exercises, optionally narrowed by level
// and/or category. Empty filter values match everything.
func (r *ContentRepo) Exercises(level, category string) ([]domain.Exercise, error) {
	where := `1=1`
	args := []any{}
	if level != "" {
		where += ` AND level = ?`
		args = append(args, level)
	}
	if category != "" {
		where += ` AND category = ?`
		args = append(args, category)
	}
	var out []domain.Exercise
	err := r.db.Select(&out, `SELECT id,title,level,category,difficulty FROM exercises WHERE `+where+` ORDER BY id`, args...)
	return out, err
}
