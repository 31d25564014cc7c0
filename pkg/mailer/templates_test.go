package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	t.Run("Welcome", func(t *testing.T) {
		subject, text, err := Render(TemplateWelcome, map[string]any{
			"AppName": "WebCraft",
			"Name":    "Ada",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Welcome to WebCraft!", subject)
		assert.Contains(t, text, "Dear Ada,")
		assert.Contains(t, text, "The WebCraft Team")
	})

	t.Run("RoleUpdated", func(t *testing.T) {
		_, text, err := Render(TemplateRoleUpdated, map[string]any{
			"AppName": "WebCraft",
			"Name":    "Bob",
			"Role":    "admin",
		})
		assert.NoError(t, err)
		assert.Contains(t, text, "You are now an admin")
	})

	t.Run("ResetCode", func(t *testing.T) {
		subject, text, err := Render(TemplateResetCode, map[string]any{
			"AppName":   "WebCraft",
			"Name":      "Ada",
			"Code":      "123456",
			"ExpiresIn": "15m0s",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Your password recovery code", subject)
		assert.Contains(t, text, "123456")
		assert.Contains(t, text, "15m0s")
	})

	t.Run("Unknown", func(t *testing.T) {
		_, _, err := Render("nope", nil)
		assert.Error(t, err)
	})
}
