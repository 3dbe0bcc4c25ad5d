package service

import (
	"Lexnet/internal/model"
	"context"
	"sort"
	"time"
)

// fakeStore backs the repo interfaces in memory with the same semantics the
// SQL layer provides: membership uniqueness per (user, target, kind), floored
// counter decrements and tombstoning soft deletes.
type fakeStore struct {
	entities    map[uint64]*model.Entity
	replies     map[uint64]*model.Reply
	reactions   map[reactionKey]struct{}
	nextReplyID uint64
}

type reactionKey struct {
	userID   uint64
	targetID uint64
	kind     model.ReactionKind
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		entities:    make(map[uint64]*model.Entity),
		replies:     make(map[uint64]*model.Reply),
		reactions:   make(map[reactionKey]struct{}),
		nextReplyID: 1,
	}
}

func (f *fakeStore) addEntity(e *model.Entity) *model.Entity {
	f.entities[e.ID] = e
	return e
}

// EntityRepo

func (f *fakeStore) GetEntity(_ context.Context, id uint64) (*model.Entity, error) {
	e, ok := f.entities[id]
	if !ok || e.IsDeleted {
		return nil, nil
	}
	return e, nil
}

func (f *fakeStore) CreateEntity(_ context.Context, entity *model.Entity) error {
	f.entities[entity.ID] = entity
	return nil
}

func (f *fakeStore) MarkBestAnswer(_ context.Context, entityID, replyID uint64) error {
	e := f.entities[entityID]
	id := replyID
	e.BestAnswerID = &id
	e.Resolved = true
	return nil
}

func (f *fakeStore) MarkResolved(_ context.Context, entityID uint64) error {
	f.entities[entityID].Resolved = true
	return nil
}

func (f *fakeStore) IncrementViewCount(_ context.Context, entityID uint64) error {
	f.entities[entityID].ViewCount++
	return nil
}

func (f *fakeStore) SyncCounters(_ context.Context, entityID uint64, replyCount, upvoteCount, followerCount, saveCount int64) error {
	e := f.entities[entityID]
	e.ReplyCount = int(replyCount)
	e.UpvoteCount = int(upvoteCount)
	e.FollowerCount = int(followerCount)
	e.SaveCount = int(saveCount)
	return nil
}

// ReplyRepo

func (f *fakeStore) GetReplyByID(_ context.Context, id uint64) (*model.Reply, error) {
	r, ok := f.replies[id]
	if !ok || r.IsDeleted {
		return nil, nil
	}
	return r, nil
}

func (f *fakeStore) GetThreadReplies(_ context.Context, entityID uint64) ([]*model.Reply, error) {
	var out []*model.Reply
	for _, r := range f.replies {
		if r.EntityID == entityID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeStore) CreateReply(_ context.Context, reply *model.Reply) error {
	reply.ID = f.nextReplyID
	f.nextReplyID++
	f.replies[reply.ID] = reply

	e := f.entities[reply.EntityID]
	e.ReplyCount++
	e.LastActivityAt = time.Now()

	if reply.ParentReplyID != nil {
		f.replies[*reply.ParentReplyID].ReplyCount++
	}
	return nil
}

func (f *fakeStore) SoftDeleteReply(_ context.Context, reply *model.Reply) error {
	r := f.replies[reply.ID]
	if r.IsDeleted {
		return nil
	}
	r.IsDeleted = true

	e := f.entities[r.EntityID]
	if e.ReplyCount > 0 {
		e.ReplyCount--
	}
	if r.ParentReplyID != nil {
		p := f.replies[*r.ParentReplyID]
		if p.ReplyCount > 0 {
			p.ReplyCount--
		}
	}
	return nil
}

func (f *fakeStore) CountByEntity(_ context.Context, entityID uint64) (int64, error) {
	var count int64
	for _, r := range f.replies {
		if r.EntityID == entityID && !r.IsDeleted {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) SyncUpvoteCount(_ context.Context, replyID uint64, count int64) error {
	f.replies[replyID].UpvoteCount = int(count)
	return nil
}

// ReactionRepo

func (f *fakeStore) Toggle(_ context.Context, userID, targetID uint64, kind model.ReactionKind) (bool, int64, error) {
	key := reactionKey{userID: userID, targetID: targetID, kind: kind}
	counter := f.counterFor(targetID, kind)

	if _, ok := f.reactions[key]; ok {
		delete(f.reactions, key)
		if *counter > 0 {
			*counter = *counter - 1
		}
		return false, int64(*counter), nil
	}

	f.reactions[key] = struct{}{}
	*counter = *counter + 1
	return true, int64(*counter), nil
}

func (f *fakeStore) counterFor(targetID uint64, kind model.ReactionKind) *int {
	switch kind {
	case model.ReactionUpvoteReply:
		return &f.replies[targetID].UpvoteCount
	case model.ReactionUpvoteEntity:
		return &f.entities[targetID].UpvoteCount
	case model.ReactionFollow:
		return &f.entities[targetID].FollowerCount
	default:
		return &f.entities[targetID].SaveCount
	}
}

func (f *fakeStore) Exists(_ context.Context, userID, targetID uint64, kind model.ReactionKind) (bool, error) {
	_, ok := f.reactions[reactionKey{userID: userID, targetID: targetID, kind: kind}]
	return ok, nil
}

func (f *fakeStore) CountByTarget(_ context.Context, targetID uint64, kind model.ReactionKind) (int64, error) {
	var count int64
	for key := range f.reactions {
		if key.targetID == targetID && key.kind == kind {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) GetUserReactions(_ context.Context, userID uint64, kind model.ReactionKind, targetIDs []uint64) (map[uint64]bool, error) {
	result := make(map[uint64]bool, len(targetIDs))
	for _, id := range targetIDs {
		if _, ok := f.reactions[reactionKey{userID: userID, targetID: id, kind: kind}]; ok {
			result[id] = true
		}
	}
	return result, nil
}

// noopCache keeps counter reads on the fallback path.
type noopCache struct{}

func (noopCache) GetCount(context.Context, string) (int64, bool) { return 0, false }
func (noopCache) SetCount(context.Context, string, int64)        {}
func (noopCache) Invalidate(context.Context, ...string)          {}
func (noopCache) MarkDirty(context.Context, string, uint64)      {}
