package render

import (
	"context"
	"strings"

	"github.com/bornholm/notionhtml/internal/core/model"
	"github.com/pkg/errors"
)

// Fragment is the markup of one block, tagged with the block type.
type Fragment struct {
	Type model.BlockType
	HTML string
}

type boundary struct {
	closing string
	opening string
}

// mergeable lists the block types whose consecutive siblings are merged
// into a single container.
var mergeable = map[model.BlockType]boundary{
	model.BlockTypeBulletedList: {closing: "</ul>", opening: "<ul>"},
	model.BlockTypeNumberedList: {closing: "</ol>", opening: "<ol>"},
	model.BlockTypeToDo:         {closing: "</div>", opening: `<div class="checklist">`},
}

// RenderChildren renders sibling blocks in order and joins them with
// JoinSiblings.
func (r *Renderer) RenderChildren(ctx context.Context, ids []model.BlockID) (string, error) {
	fragments := make([]Fragment, 0, len(ids))

	for _, id := range ids {
		markup, err := r.RenderBlock(ctx, id)
		if err != nil {
			return "", errors.WithStack(err)
		}

		fragment := Fragment{HTML: markup}
		if block, exists := r.source.Block(id); exists {
			fragment.Type = block.Type
		}

		fragments = append(fragments, fragment)
	}

	return JoinSiblings(fragments), nil
}

// JoinSiblings concatenates sibling fragments, removing the boundary
// between consecutive list items of the same kind and between consecutive
// to-do items so that they share one container. Empty fragments are
// ignored.
func JoinSiblings(fragments []Fragment) string {
	parts := make([]string, 0, len(fragments))
	var previous model.BlockType

	for _, fragment := range fragments {
		if fragment.HTML == "" {
			continue
		}

		markup := fragment.HTML

		if b, ok := mergeable[fragment.Type]; ok && fragment.Type == previous && len(parts) > 0 {
			last := parts[len(parts)-1]
			if strings.HasSuffix(last, b.closing) && strings.HasPrefix(markup, b.opening) {
				parts[len(parts)-1] = strings.TrimSuffix(last, b.closing)
				markup = strings.TrimPrefix(markup, b.opening)
			}
		}

		parts = append(parts, markup)
		previous = fragment.Type
	}

	return strings.Join(parts, "")
}
