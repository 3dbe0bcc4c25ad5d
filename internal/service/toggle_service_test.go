package service

import (
	"Lexnet/internal/api/dto"
	"Lexnet/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newToggleFixture() (*fakeStore, ToggleService) {
	store := newFakeStore()
	svc := NewToggleService(store, store, store, noopCache{})
	return store, svc
}

func TestToggle_Involution(t *testing.T) {
	store, svc := newToggleFixture()
	store.addEntity(discussion(1, 10))
	ctx := context.Background()

	on, err := svc.Toggle(ctx, 20, 1, model.ReactionUpvoteEntity)
	require.NoError(t, err)
	assert.True(t, on.Active)
	assert.Equal(t, int64(1), on.Count)

	off, err := svc.Toggle(ctx, 20, 1, model.ReactionUpvoteEntity)
	require.NoError(t, err)
	assert.False(t, off.Active)
	assert.Equal(t, int64(0), off.Count)

	exists, err := store.Exists(ctx, 20, 1, model.ReactionUpvoteEntity)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, 0, store.entities[1].UpvoteCount)
}

func TestToggle_CounterMatchesMembership(t *testing.T) {
	store, svc := newToggleFixture()
	store.addEntity(discussion(1, 10))
	ctx := context.Background()

	users := []uint64{20, 21, 22}
	for _, u := range users {
		res, err := svc.Toggle(ctx, u, 1, model.ReactionFollow)
		require.NoError(t, err)
		assert.True(t, res.Active)
	}

	res, err := svc.Toggle(ctx, 21, 1, model.ReactionFollow)
	require.NoError(t, err)
	assert.False(t, res.Active)
	assert.Equal(t, int64(2), res.Count)

	members, err := store.CountByTarget(ctx, 1, model.ReactionFollow)
	require.NoError(t, err)
	assert.Equal(t, members, int64(store.entities[1].FollowerCount))
}

func TestToggle_KindsAreIndependent(t *testing.T) {
	store, svc := newToggleFixture()
	store.addEntity(discussion(1, 10))
	ctx := context.Background()

	_, err := svc.Toggle(ctx, 20, 1, model.ReactionUpvoteEntity)
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, 20, 1, model.ReactionBookmark)
	require.NoError(t, err)

	res, err := svc.Toggle(ctx, 20, 1, model.ReactionBookmark)
	require.NoError(t, err)
	assert.False(t, res.Active)

	assert.Equal(t, 1, store.entities[1].UpvoteCount)
	assert.Equal(t, 0, store.entities[1].SaveCount)
	assert.Equal(t, 0, store.entities[1].FollowerCount)
}

func TestToggle_ReplyUpvote(t *testing.T) {
	store, svc := newToggleFixture()
	store.addEntity(discussion(1, 10))
	threadSvc := NewThreadService(store, store, store, noopCache{})
	ctx := context.Background()

	node, err := threadSvc.AddReply(ctx, 1, 20, &dto.ReplyCreateDTO{Content: "answer"})
	require.NoError(t, err)

	res, err := svc.Toggle(ctx, 30, node.ID, model.ReactionUpvoteReply)
	require.NoError(t, err)
	assert.True(t, res.Active)
	assert.Equal(t, int64(1), res.Count)
	assert.Equal(t, 1, store.replies[node.ID].UpvoteCount)
	// the entity's own upvote counter is untouched
	assert.Equal(t, 0, store.entities[1].UpvoteCount)
}

func TestToggle_ParamValidation(t *testing.T) {
	store, svc := newToggleFixture()
	store.addEntity(discussion(1, 10))
	ctx := context.Background()

	_, err := svc.Toggle(ctx, 0, 1, model.ReactionUpvoteEntity)
	assert.ErrorIs(t, err, ErrParamInvalid)

	_, err = svc.Toggle(ctx, 20, 0, model.ReactionUpvoteEntity)
	assert.ErrorIs(t, err, ErrParamInvalid)

	_, err = svc.Toggle(ctx, 20, 1, model.ReactionKind(9))
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestToggle_TargetNotFound(t *testing.T) {
	_, svc := newToggleFixture()
	ctx := context.Background()

	_, err := svc.Toggle(ctx, 20, 404, model.ReactionFollow)
	assert.ErrorIs(t, err, ErrEntityNotFound)

	_, err = svc.Toggle(ctx, 20, 404, model.ReactionUpvoteReply)
	assert.ErrorIs(t, err, ErrReplyNotFound)
}

func TestToggle_DeletedEntityRejected(t *testing.T) {
	store, svc := newToggleFixture()
	e := discussion(1, 10)
	e.IsDeleted = true
	store.addEntity(e)

	_, err := svc.Toggle(context.Background(), 20, 1, model.ReactionBookmark)
	assert.ErrorIs(t, err, ErrEntityNotFound)
	// counters on the dead row never move
	assert.Equal(t, 0, store.entities[1].SaveCount)
}
