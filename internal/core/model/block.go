package model

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

type BlockType string

const (
	BlockTypePage         BlockType = "page"
	BlockTypeHeader       BlockType = "header"
	BlockTypeSubHeader    BlockType = "sub_header"
	BlockTypeSubSubHeader BlockType = "sub_sub_header"
	BlockTypeText         BlockType = "text"
	BlockTypeNumberedList BlockType = "numbered_list"
	BlockTypeBulletedList BlockType = "bulleted_list"
	BlockTypeToDo         BlockType = "to_do"
	BlockTypeCode         BlockType = "code"
	BlockTypeCallout      BlockType = "callout"
	BlockTypeQuote        BlockType = "quote"
	BlockTypeDivider      BlockType = "divider"
	BlockTypeImage        BlockType = "image"
	BlockTypeEquation     BlockType = "equation"
	BlockTypeToggle       BlockType = "toggle"
)

const (
	PropertyTitle    = "title"
	PropertyLanguage = "language"
	PropertyChecked  = "checked"
	PropertySource   = "source"

	FormatBlockColor    = "block_color"
	FormatPageIcon      = "page_icon"
	FormatDisplaySource = "display_source"
)

// Block is a node of a document tree as returned by the store. The set of
// types is open: unknown types decode fine and are left to the renderer.
type Block struct {
	ID             BlockID                    `json:"id"`
	Type           BlockType                  `json:"type"`
	Properties     map[string]json.RawMessage `json:"properties,omitempty"`
	Format         map[string]any             `json:"format,omitempty"`
	Content        []BlockID                  `json:"content,omitempty"`
	ParentID       BlockID                    `json:"parent_id,omitempty"`
	Alive          bool                       `json:"alive,omitempty"`
	CreatedTime    int64                      `json:"created_time,omitempty"`
	LastEditedTime int64                      `json:"last_edited_time,omitempty"`
}

// RichText decodes the named property as rich text. Runs that cannot be
// decoded are skipped and logged, the others are kept.
func (b *Block) RichText(name string) RichText {
	raw, exists := b.Properties[name]
	if !exists {
		return nil
	}

	var runs []json.RawMessage
	if err := json.Unmarshal(raw, &runs); err != nil {
		slog.Warn("could not decode rich text property", slog.String("block_id", string(b.ID)), slog.String("property", name), slogx.Error(errors.WithStack(err)))
		return nil
	}

	text := make(RichText, 0, len(runs))

	for idx, rawRun := range runs {
		var run TextRun
		if err := json.Unmarshal(rawRun, &run); err != nil {
			slog.Warn("could not decode text run", slog.String("block_id", string(b.ID)), slog.String("property", name), slog.Int("index", idx), slogx.Error(errors.WithStack(err)))
			continue
		}

		text = append(text, run)
	}

	return text
}

func (b *Block) Title() RichText {
	return b.RichText(PropertyTitle)
}

// Checked reports whether a to_do block is ticked. The store encodes it
// as [["Yes"]] but a plain JSON boolean is accepted too.
func (b *Block) Checked() bool {
	raw, exists := b.Properties[PropertyChecked]
	if !exists {
		return false
	}

	var checked bool
	if err := json.Unmarshal(raw, &checked); err == nil {
		return checked
	}

	return strings.EqualFold(b.RichText(PropertyChecked).PlainText(), "yes")
}

// FormatString returns the named format hint when it is a string.
func (b *Block) FormatString(name string) string {
	value, exists := b.Format[name]
	if !exists {
		return ""
	}

	str, _ := value.(string)

	return str
}

// CreatedAt returns the zero time when the store did not send a creation
// timestamp.
func (b *Block) CreatedAt() time.Time {
	return unixMilli(b.CreatedTime)
}

func (b *Block) UpdatedAt() time.Time {
	return unixMilli(b.LastEditedTime)
}

func unixMilli(msec int64) time.Time {
	if msec == 0 {
		return time.Time{}
	}

	return time.UnixMilli(msec)
}
