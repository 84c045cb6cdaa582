package handlers

import (
	"learnhub/internal/repos"
	"learnhub/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	AuthHandler  *AuthHandler
	PageHandler  *PageHandler
	AdminHandler *AdminHandler
}

// NewDeps wires repos, services and handlers. db may be nil when the
// store connection string is absent; auth APIs then answer 500.
func NewDeps(db *sqlx.DB) *Deps {
	var userRepo *repos.UserRepo
	var contentRepo *repos.ContentRepo
	if db != nil {
		userRepo = repos.NewUserRepo(db)
		contentRepo = repos.NewContentRepo(db)
	}

	authSvc := &services.AuthService{Users: userRepo}
	contentSvc := services.NewContentService(contentRepo)

	return &Deps{
		AuthHandler:  &AuthHandler{Auth: authSvc},
		PageHandler:  &PageHandler{Content: contentSvc},
		AdminHandler: &AdminHandler{Users: userRepo},
	}
}
