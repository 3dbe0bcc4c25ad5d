package service

import (
	"Lexnet/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeReply(id, entityID uint64, parentID *uint64, depth int, createdAt time.Time) *model.Reply {
	return &model.Reply{
		ID:            id,
		EntityID:      entityID,
		AuthorID:      100 + id,
		ParentReplyID: parentID,
		Depth:         depth,
		Content:       "reply content",
		CreatedAt:     createdAt,
		Author:        model.User{ID: 100 + id, DisplayName: "user", AvatarURL: "http://a/u.png"},
	}
}

func ptr(v uint64) *uint64 { return &v }

func TestBuildReplyTree_Empty(t *testing.T) {
	forest := BuildReplyTree(nil, nil, nil)
	require.NotNil(t, forest)
	assert.Empty(t, forest)
}

func TestBuildReplyTree_NestingAndSiblingOrder(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	replies := []*model.Reply{
		makeReply(1, 7, nil, 1, base),
		makeReply(2, 7, nil, 1, base.Add(time.Minute)),
		makeReply(3, 7, ptr(1), 2, base.Add(2*time.Minute)),
		makeReply(4, 7, ptr(1), 2, base.Add(3*time.Minute)),
		makeReply(5, 7, ptr(3), 3, base.Add(4*time.Minute)),
	}

	forest := BuildReplyTree(replies, nil, nil)

	require.Len(t, forest, 2)
	assert.Equal(t, uint64(1), forest[0].ID)
	assert.Equal(t, uint64(2), forest[1].ID)

	require.Len(t, forest[0].Children, 2)
	assert.Equal(t, uint64(3), forest[0].Children[0].ID)
	assert.Equal(t, uint64(4), forest[0].Children[1].ID)

	require.Len(t, forest[0].Children[0].Children, 1)
	assert.Equal(t, uint64(5), forest[0].Children[0].Children[0].ID)
	assert.Empty(t, forest[1].Children)
}

func TestBuildReplyTree_Annotations(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	replies := []*model.Reply{
		makeReply(1, 7, nil, 1, base),
		makeReply(2, 7, nil, 1, base.Add(time.Minute)),
	}
	upvoted := map[uint64]bool{2: true}

	forest := BuildReplyTree(replies, upvoted, ptr(1))

	require.Len(t, forest, 2)
	assert.True(t, forest[0].IsBestAnswer)
	assert.False(t, forest[0].HasUpvoted)
	assert.False(t, forest[1].IsBestAnswer)
	assert.True(t, forest[1].HasUpvoted)
	assert.Equal(t, "2025-03-01 10:00:00", forest[0].CreatedAt)
	assert.Equal(t, "user", forest[0].AuthorName)
}

func TestBuildReplyTree_AnonymousLeavesFlagsFalse(t *testing.T) {
	base := time.Now()
	replies := []*model.Reply{
		makeReply(1, 7, nil, 1, base),
		makeReply(2, 7, ptr(1), 2, base.Add(time.Second)),
	}

	forest := BuildReplyTree(replies, nil, nil)

	require.Len(t, forest, 1)
	assert.False(t, forest[0].HasUpvoted)
	assert.False(t, forest[0].Children[0].HasUpvoted)
}

func TestBuildReplyTree_TombstoneKeepsDescendants(t *testing.T) {
	base := time.Now()
	deleted := makeReply(1, 7, nil, 1, base)
	deleted.IsDeleted = true
	child := makeReply(2, 7, ptr(1), 2, base.Add(time.Second))

	forest := BuildReplyTree([]*model.Reply{deleted, child}, map[uint64]bool{1: true}, nil)

	require.Len(t, forest, 1)
	tomb := forest[0]
	assert.True(t, tomb.IsDeleted)
	assert.Empty(t, tomb.Content)
	assert.Empty(t, tomb.AuthorName)
	assert.False(t, tomb.HasUpvoted)

	require.Len(t, tomb.Children, 1)
	assert.Equal(t, uint64(2), tomb.Children[0].ID)
	assert.Equal(t, "reply content", tomb.Children[0].Content)
}

func TestBuildReplyTree_PrunesChildlessTombstones(t *testing.T) {
	base := time.Now()
	live := makeReply(1, 7, nil, 1, base)
	deletedLeaf := makeReply(2, 7, nil, 1, base.Add(time.Second))
	deletedLeaf.IsDeleted = true
	deletedParent := makeReply(3, 7, nil, 1, base.Add(2*time.Second))
	deletedParent.IsDeleted = true
	deletedChild := makeReply(4, 7, ptr(3), 2, base.Add(3*time.Second))
	deletedChild.IsDeleted = true

	forest := BuildReplyTree([]*model.Reply{live, deletedLeaf, deletedParent, deletedChild}, nil, nil)

	// the whole deleted branch collapses once no visible descendant remains
	require.Len(t, forest, 1)
	assert.Equal(t, uint64(1), forest[0].ID)
}

func TestBuildReplyTree_DropsOrphanedSubtree(t *testing.T) {
	base := time.Now()
	replies := []*model.Reply{
		makeReply(1, 7, nil, 1, base),
		makeReply(2, 7, ptr(99), 2, base.Add(time.Second)),
		makeReply(3, 7, ptr(2), 3, base.Add(2*time.Second)),
	}

	forest := BuildReplyTree(replies, nil, nil)

	require.Len(t, forest, 1)
	assert.Equal(t, uint64(1), forest[0].ID)
	assert.Empty(t, forest[0].Children)
}
