package consts

const (
	EntityKindDiscussion int8 = 1
	EntityKindPost       int8 = 2
)

// MaxReplyDepth caps nesting at four levels, the root reply counting as one.
const MaxReplyDepth = 4

const MaxReplyContentLength = 4000
