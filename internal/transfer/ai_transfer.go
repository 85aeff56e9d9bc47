package transfer

type GeneratePostRequest struct {
	Topic    string `json:"topic" validate:"required"`
	Tone     string `json:"tone" validate:"required"`
	Platform string `json:"platform" validate:"required"`
	Length   string `json:"length" validate:"required"`
	Keywords string `json:"keywords"`
}

type GenerateHashtagsRequest struct {
	Content  string `json:"content" validate:"required"`
	Platform string `json:"platform" validate:"required"`
}

type GenerateCaptionRequest struct {
	Content  string `json:"content" validate:"required"`
	Platform string `json:"platform" validate:"required"`
	Tone     string `json:"tone" validate:"required"`
}

type GenerateCommentRequest struct {
	PostContent    string `json:"postContent" validate:"required"`
	CommentContext string `json:"commentContext"`
	Tone           string `json:"tone" validate:"required"`
}

type ContentSuggestionsRequest struct {
	Platform       string `json:"platform" validate:"required"`
	Industry       string `json:"industry" validate:"required"`
	TargetAudience string `json:"targetAudience" validate:"required"`
}

type AnalyzePerformanceRequest struct {
	PostContent       string         `json:"postContent" validate:"required"`
	EngagementMetrics map[string]int `json:"engagementMetrics"`
}

type AnalyzePostRequest struct {
	PostText string `json:"postText" validate:"required"`
}
