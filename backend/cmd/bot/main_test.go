package main

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestMessageFiltering(t *testing.T) {
	botUserID := "bot-123"
	otherUserID := "user-456"
	prefix := "^"

	tests := []struct {
		name        string
		message     *discordgo.MessageCreate
		shouldReact bool
	}{
		{
			name: "Bot's own message - should ignore",
			message: &discordgo.MessageCreate{
				Message: &discordgo.Message{
					Author:  &discordgo.User{ID: botUserID},
					Content: "^id sonia",
				},
			},
			shouldReact: false,
		},
		{
			name: "Other bot's message - should ignore",
			message: &discordgo.MessageCreate{
				Message: &discordgo.Message{
					Author:  &discordgo.User{ID: otherUserID, Bot: true},
					Content: "^id sonia",
				},
			},
			shouldReact: false,
		},
		{
			name: "Prefixed command - should react",
			message: &discordgo.MessageCreate{
				Message: &discordgo.Message{
					Author:  &discordgo.User{ID: otherUserID},
					Content: "^id sonia",
				},
			},
			shouldReact: true,
		},
		{
			name: "Plain chatter - should ignore",
			message: &discordgo.MessageCreate{
				Message: &discordgo.Message{
					Author:  &discordgo.User{ID: otherUserID},
					Content: "has anyone pulled sonia yet",
				},
			},
			shouldReact: false,
		},
		{
			name: "Bare prefix - should ignore",
			message: &discordgo.MessageCreate{
				Message: &discordgo.Message{
					Author:  &discordgo.User{ID: otherUserID},
					Content: "^",
				},
			},
			shouldReact: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Simulate the filtering logic
			isSelf := tt.message.Author.ID == botUserID
			isBot := tt.message.Author.Bot
			isCommand := strings.HasPrefix(tt.message.Content, prefix) &&
				len(strings.Fields(strings.TrimPrefix(tt.message.Content, prefix))) > 0

			shouldReact := !isSelf && !isBot && isCommand
			assert.Equal(t, tt.shouldReact, shouldReact, "Message filtering logic failed")
		})
	}
}
