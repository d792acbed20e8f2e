package handlers

import (
	"errors"
	"net/http"

	"pairchat-backend/internal/models"
	"pairchat-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// ListChatsHandler returns the caller's chats with the other participant's
// info and the denormalized last-message summary.
func ListChatsHandler(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(int)

		chats, err := st.ListChats(c.Context(), userID)
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load chats"})
		}

		items := make([]models.ChatListItem, 0, len(chats))
		for _, chat := range chats {
			item := models.ChatListItem{
				ID:              chat.ID,
				LastMessage:     chat.LastMessage,
				LastMessageTime: chat.LastMessageTime,
			}
			if other, err := st.GetUserByID(c.Context(), chat.OtherParticipant(userID)); err == nil {
				item.Other = other
			}
			items = append(items, item)
		}
		return c.JSON(items)
	}
}

// CreateChatHandler is the idempotent get-or-create keyed on the participant
// pair; both orders of the pair return the same chat.
func CreateChatHandler(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(int)

		var req models.CreateChatRequest
		if err := c.BodyParser(&req); err != nil || req.ParticipantID == 0 {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "participant_id required"})
		}
		if req.ParticipantID == userID {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "cannot chat with yourself"})
		}

		if _, err := st.GetUserByID(c.Context(), req.ParticipantID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
			}
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to get or create chat"})
		}

		chat, created, err := st.GetOrCreateChat(c.Context(), userID, req.ParticipantID)
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to get or create chat"})
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		return c.Status(status).JSON(chat)
	}
}

// ListMessagesHandler returns a chat's full history, oldest first. Only
// participants may read it.
func ListMessagesHandler(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(int)
		chatID := c.Params("chat_id")

		chat, err := st.FindChatByID(c.Context(), chatID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "chat not found"})
			}
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load messages"})
		}
		if !chat.HasParticipant(userID) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "chat not found"})
		}

		messages, err := st.ListMessages(c.Context(), chatID)
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load messages"})
		}
		if messages == nil {
			messages = []models.Message{}
		}
		return c.JSON(messages)
	}
}

// ListUsersHandler lists every other non-blocked user with their current
// online status from the relay's session registry.
func ListUsersHandler(st store.Store, relay *Relay) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(int)

		users, err := st.ListUsers(c.Context(), userID)
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch users"})
		}

		resp := make([]fiber.Map, 0, len(users))
		for _, u := range users {
			resp = append(resp, fiber.Map{
				"id":     u.ID,
				"name":   u.Name,
				"email":  u.Email,
				"avatar": u.Avatar,
				"status": relay.OnlineStatus(u.ID),
			})
		}
		return c.JSON(resp)
	}
}
