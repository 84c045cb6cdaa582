package services

import (
	"learnhub/internal/domain"
	"learnhub/internal/repos"
)

type ContentService struct {
	Content *repos.ContentRepo
}

func NewContentService(content *repos.ContentRepo) *ContentService {
	return &ContentService{Content: content}
}

// All reads tolerate an unwired repo (no DATABASE_URL): pages render
// empty instead of failing.

func (s *ContentService) Courses() ([]domain.Course, error) {
	if s.Content == nil {
		return nil, nil
	}
	return s.Content.Courses()
}

func (s *ContentService) Articles() ([]domain.Article, error) {
	if s.Content == nil {
		return nil, nil
	}
	return s.Content.Articles()
}

func (s *ContentService) Videos() ([]domain.Video, error) {
	if s.Content == nil {
		return nil, nil
	}
	return s.Content.Videos()
}

func (s *ContentService) Exercises(level, category string) ([]domain.Exercise, error) {
	if s.Content == nil {
		return nil, nil
	}
	switch level {
	case "beginner", "intermediate", "advanced":
	default:
		level = ""
	}
	switch category {
	case "frontend", "backend", "database", "algorithms", "ml":
	default:
		category = ""
	}
	return s.Content.Exercises(level, category)
}
