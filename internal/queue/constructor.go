package queue

import (
	"socialpulse/internal/repository"
)

type Queue struct {
	pr repository.PostRepository
}

func NewQueue(pr repository.PostRepository) *Queue {
	return &Queue{pr: pr}
}

const TaskTypePublishPost = "post:publish"

type PublishPostPayload struct {
	PostID int64 `json:"post_id"`
}
