package dto

// ReplyNodeDTO is one node of the materialized reply tree. Children are in
// creation order. A tombstone (IsDeleted) keeps its surviving descendants
// reachable but carries no content.
type ReplyNodeDTO struct {
	ID            uint64          `json:"id"`
	EntityID      uint64          `json:"entity_id"`
	AuthorID      uint64          `json:"author_id"`
	AuthorName    string          `json:"author_name"`
	AvatarURL     string          `json:"avatar_url"`
	ParentReplyID *uint64         `json:"parent_reply_id"`
	Depth         int             `json:"depth"`
	Content       string          `json:"content"`
	UpvoteCount   int             `json:"upvote_count"`
	ReplyCount    int             `json:"reply_count"`
	IsEdited      bool            `json:"is_edited"`
	IsDeleted     bool            `json:"is_deleted"`
	IsBestAnswer  bool            `json:"is_best_answer"`
	HasUpvoted    bool            `json:"has_upvoted"`
	CreatedAt     string          `json:"created_at"`
	Children      []*ReplyNodeDTO `json:"children"`
}

// ReplyCreateDTO is the add-reply request body.
type ReplyCreateDTO struct {
	Content       string  `json:"content" binding:"required,max=4000"`
	ParentReplyID *uint64 `json:"parent_reply_id"`
}

// EntityStateDTO is the thread-state payload for the detail page.
type EntityStateDTO struct {
	ReplyCount    int64   `json:"reply_count"`
	UpvoteCount   int64   `json:"upvote_count"`
	ViewCount     int64   `json:"view_count"`
	SaveCount     int64   `json:"save_count"`
	FollowerCount int64   `json:"follower_count"`
	HasUpvoted    bool    `json:"has_upvoted"`
	IsFollowing   bool    `json:"is_following"`
	IsBookmarked  bool    `json:"is_bookmarked"`
	Resolved      bool    `json:"resolved"`
	BestAnswerID  *uint64 `json:"best_answer_id"`
}
