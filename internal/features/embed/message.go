package embed

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MessageKind tags the cross-frame message variants. Only resize exists
// today; the tag keeps the channel extensible without breaking hosts that
// match exhaustively on kind.
type MessageKind string

const MessageKindResize MessageKind = "resize"

type Message interface {
	Kind() MessageKind
}

// ResizeMessage is posted by an embedded frame to its host page every time
// the frame's rendered content height changes, including the first paint.
// The channel is one-way and unacknowledged; for a given embed id the last
// message wins.
type ResizeMessage struct {
	Type    MessageKind `json:"type"`
	Height  int         `json:"height"`
	EmbedID string      `json:"embedId"`
}

func (ResizeMessage) Kind() MessageKind {
	return MessageKindResize
}

func NewResizeMessage(height int, embedID string) ResizeMessage {
	return ResizeMessage{
		Type:    MessageKindResize,
		Height:  height,
		EmbedID: embedID,
	}
}

var ErrUnknownMessageKind = errors.New("unknown embed message kind")

// DecodeMessage parses a raw cross-frame payload into a typed variant. Host
// pages use it to discard traffic from other widgets sharing the parent
// window before matching on kind.
func DecodeMessage(data []byte) (Message, error) {
	var envelope struct {
		Type MessageKind `json:"type"`
	}

	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("malformed embed message: %w", err)
	}

	switch envelope.Type {
	case MessageKindResize:
		var message ResizeMessage
		if err := json.Unmarshal(data, &message); err != nil {
			return nil, fmt.Errorf("malformed resize message: %w", err)
		}
		if message.EmbedID == "" {
			return nil, errors.New("resize message missing embed id")
		}
		return message, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessageKind, envelope.Type)
	}
}
