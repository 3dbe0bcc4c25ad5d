package consts

const (
	EntityReplyCountKey    = "entity:reply:count:"
	EntityUpvoteCountKey   = "entity:upvote:count:"
	EntityFollowerCountKey = "entity:follower:count:"
	EntitySaveCountKey     = "entity:save:count:"
	EntityViewCountKey     = "entity:view:count:"
	EntityDirtyKey         = "entity:counter:dirty"
	ReplyUpvoteCountKey    = "reply:upvote:count:"
	ReplyDirtyKey          = "reply:counter:dirty"
)
