package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"socialpulse/internal/models"
)

func (j *Queue) HandlePublishPostTask(ctx context.Context, task *asynq.Task) error {
	var payload PublishPostPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	return j.PublishPost(ctx, payload.PostID)
}

// PublishPost flips a scheduled post to published at its due time. A post
// that was deleted or manually moved out of the scheduled state in the
// meantime is skipped.
func (j *Queue) PublishPost(ctx context.Context, postID int64) error {
	post, err := j.pr.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		log.Printf("Post %d no longer exists, skipping publish", postID)
		return nil
	}
	if post.Status != models.PostStatusScheduled {
		log.Printf("Post %d is %s, skipping publish", postID, post.Status)
		return nil
	}

	now := time.Now()
	return j.pr.UpdateStatus(ctx, postID, models.PostStatusPublished, &now)
}
