package job

import (
	"context"
	"log/slog"
	"time"

	"socialpulse/internal/repository"
)

type TokenExpiryJob struct {
	sr repository.SocialAccountRepository
}

func NewTokenExpiryJob(sr repository.SocialAccountRepository) *TokenExpiryJob {
	return &TokenExpiryJob{sr: sr}
}

// DeactivateExpiring marks accounts whose tokens are already expired or
// expire within the next window as inactive so they stop receiving
// scheduled posts.
func (c *TokenExpiryJob) DeactivateExpiring() {
	ctx := context.Background()

	currentTime := time.Now()
	timeIn10Minutes := currentTime.Add(10 * time.Minute)

	accounts, err := c.sr.ListExpiringTokens(ctx, currentTime, timeIn10Minutes)
	if err != nil {
		slog.Info(err.Error())
		return
	}

	for _, acc := range accounts {
		if err := c.sr.MarkInactive(ctx, acc.ID); err != nil {
			slog.Info(err.Error())
		}
	}
}
