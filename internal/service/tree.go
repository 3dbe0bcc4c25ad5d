package service

import (
	"Lexnet/internal/api/dto"
	"Lexnet/internal/model"

	"github.com/jinzhu/copier"
)

// BuildReplyTree materializes the complete flat, creation-ordered reply list
// of one entity into a forest of root nodes. Sibling order follows input
// order. Each node is annotated with the requesting user's upvote state and
// the best-answer marking; an empty upvoted map (anonymous read) leaves every
// HasUpvoted false.
//
// Soft-deleted replies arrive in the input and become tombstones so their
// surviving descendants stay reachable; tombstones sheltering no visible
// descendant are pruned. A node whose parent is missing from the input is
// dropped silently together with its subtree.
func BuildReplyTree(replies []*model.Reply, upvoted map[uint64]bool, bestAnswerID *uint64) []*dto.ReplyNodeDTO {
	roots := make([]*dto.ReplyNodeDTO, 0, len(replies))
	if len(replies) == 0 {
		return roots
	}

	nodes := make(map[uint64]*dto.ReplyNodeDTO, len(replies))
	for _, r := range replies {
		isBest := bestAnswerID != nil && *bestAnswerID == r.ID
		nodes[r.ID] = convertReplyNode(r, upvoted[r.ID], isBest)
	}

	for _, r := range replies {
		node := nodes[r.ID]
		if r.ParentReplyID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*r.ParentReplyID]
		if !ok {
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	return pruneDeleted(roots)
}

// pruneDeleted drops tombstones without visible descendants, keeping sibling
// order intact.
func pruneDeleted(nodes []*dto.ReplyNodeDTO) []*dto.ReplyNodeDTO {
	kept := make([]*dto.ReplyNodeDTO, 0, len(nodes))
	for _, n := range nodes {
		n.Children = pruneDeleted(n.Children)
		if n.IsDeleted && len(n.Children) == 0 {
			continue
		}
		kept = append(kept, n)
	}
	return kept
}

func convertReplyNode(reply *model.Reply, hasUpvoted, isBestAnswer bool) *dto.ReplyNodeDTO {
	node := &dto.ReplyNodeDTO{}
	_ = copier.Copy(node, reply)

	node.CreatedAt = reply.CreatedAt.Format("2006-01-02 15:04:05")
	node.Children = make([]*dto.ReplyNodeDTO, 0)
	node.HasUpvoted = hasUpvoted
	node.IsBestAnswer = isBestAnswer

	if reply.Author.ID != 0 {
		node.AuthorName = reply.Author.DisplayName
		node.AvatarURL = reply.Author.AvatarURL
	}

	if reply.IsDeleted {
		node.Content = ""
		node.AuthorName = ""
		node.AvatarURL = ""
		node.HasUpvoted = false
	}

	return node
}
