package dto

// ToggleReq flips one reaction. Kind: 1 reply upvote, 2 entity upvote,
// 3 follow, 4 bookmark.
type ToggleReq struct {
	TargetID   uint64 `json:"target_id" binding:"required"`
	TargetKind int8   `json:"target_kind" binding:"required,oneof=1 2 3 4"`
}

// ToggleDTO is the post-flip state.
type ToggleDTO struct {
	Active bool  `json:"active"`
	Count  int64 `json:"count"`
}
