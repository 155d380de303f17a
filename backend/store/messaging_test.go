package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessageAppendsAndRepointsLastMessage(t *testing.T) {
	s := newSeededSignedInStore(t)

	result := s.SendMessage("conv-1", "Hello there", nil)
	require.True(t, result.Success)

	messages := s.GetConversationMessages("conv-1")
	require.NotEmpty(t, messages)
	last := messages[len(messages)-1]
	assert.Equal(t, "Hello there", last.Content)
	assert.Equal(t, "student-1", last.SenderID)

	for _, c := range s.Conversations() {
		if c.ID == "conv-1" {
			require.NotNil(t, c.LastMessage)
			assert.Equal(t, last.ID, c.LastMessage.ID)
		}
	}
}

func TestSendMessageDoesNotTouchUnread(t *testing.T) {
	s := newSeededSignedInStore(t)
	before := s.TotalUnreadMessages()

	require.True(t, s.SendMessage("conv-1", "No unread change", nil).Success)

	assert.Equal(t, before, s.TotalUnreadMessages())
}

func TestSendMessageRejectsBlankContent(t *testing.T) {
	s := newSeededSignedInStore(t)

	result := s.SendMessage("conv-1", "   ", nil)
	assert.False(t, result.Success)
	assert.Equal(t, "Message content cannot be empty.", result.Error)
}

func TestSendMessageRejectsUnknownConversation(t *testing.T) {
	s := newSeededSignedInStore(t)

	result := s.SendMessage("conv-nope", "hi", nil)
	assert.False(t, result.Success)
	assert.Equal(t, "Conversation not found.", result.Error)
}

func TestSendMessageRequiresSignIn(t *testing.T) {
	s := newSeededSignedInStore(t)
	s.Logout()

	result := s.SendMessage("conv-1", "hi", nil)
	assert.False(t, result.Success)
}

func TestMarkConversationReadResetsUnread(t *testing.T) {
	s := newSeededSignedInStore(t)

	// Seed: conv-1 carries 2 unread, conv-2 carries 5.
	assert.Equal(t, 7, s.TotalUnreadMessages())

	s.MarkConversationRead("conv-1")
	assert.Equal(t, 5, s.TotalUnreadMessages())

	for _, m := range s.GetConversationMessages("conv-1") {
		assert.True(t, m.Read)
	}
}

func TestStartConversation(t *testing.T) {
	s := newSeededSignedInStore(t)

	conv, result := s.StartConversation([]string{"student-1", "teacher-1"}, "direct", "")
	require.True(t, result.Success)
	assert.NotEmpty(t, conv.ID)
	assert.Equal(t, "direct", conv.Type)

	found := false
	for _, c := range s.Conversations() {
		if c.ID == conv.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestStartConversationRejectsBadType(t *testing.T) {
	s := newSeededSignedInStore(t)

	_, result := s.StartConversation([]string{"student-1"}, "broadcast", "")
	assert.False(t, result.Success)
}
