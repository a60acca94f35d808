package http

import (
	"git-telegram-bridge/internal/registration"
)

// --- Request DTOs ---

type setupReq struct {
	GitHubRepo string `json:"github_repo" binding:"required,min=3,max=255"`
	ChatID     int64  `json:"chat_id"     binding:"required"`
}

func (r setupReq) validate() error { return nil }

func (r setupReq) toInput() registration.SetupInput {
	return registration.SetupInput{
		GitHubRepo: r.GitHubRepo,
		ChatID:     r.ChatID,
	}
}

// --- Response DTOs ---

type setupResp struct {
	Status  string `json:"status"`
	APIKey  string `json:"api_key"`
	Message string `json:"message"`
}

func (h *handler) newSetupResp(out registration.SetupOutput) setupResp {
	return setupResp{
		Status:  "success",
		APIKey:  out.Registration.Secret,
		Message: "Integration setup complete. Add the API key to your GitHub repository secrets.",
	}
}
