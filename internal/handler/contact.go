package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ContactHandler serves the contact-form endpoint.
type ContactHandler struct {
	Contacts ContactStore
	Notifier Notifier
}

// NewContactHandler constructs a ContactHandler.  The store must be
// non-nil; the notifier may be nil.
func NewContactHandler(store ContactStore, n Notifier) *ContactHandler {
	if store == nil {
		panic("nil store passed to NewContactHandler")
	}
	return &ContactHandler{Contacts: store, Notifier: n}
}

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Create handles POST /v1/contact.  It requires name, email and
// message; phone is optional and defaults to an empty string.  The
// stored row's id is returned and a Telegram notification is sent
// best-effort.
func (h *ContactHandler) Create(c echo.Context) error {
	var body contactReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msgRequiredFields})
	}
	if body.Name == "" || body.Email == "" || body.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msgRequiredFields})
	}

	ctx := c.Request().Context()
	messageID, err := h.Contacts.Create(ctx, body.Name, body.Email, body.Phone, body.Message)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	if h.Notifier != nil {
		phone := body.Phone
		if phone == "" {
			phone = phoneNotProvided
		}
		text := fmt.Sprintf("💬 Новое сообщение!\n\nИмя: %s\nEmail: %s\nТелефон: %s\n\nСообщение:\n%s",
			body.Name, body.Email, phone, body.Message)
		_ = h.Notifier.Send(ctx, text) // best-effort by contract
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"messageId": messageID,
	})
}
