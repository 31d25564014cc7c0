package mailer

import (
	"bytes"
	"fmt"
	texttpl "text/template"
)

// Notification template names used across the application.
const (
	TemplateWelcome        = "welcome"
	TemplateLogin          = "login_notification"
	TemplateLogout         = "logout_notification"
	TemplateRoleUpdated    = "role_updated"
	TemplateResetCode      = "reset_code"
	TemplateProfileUpdated = "profile_updated"
)

var subjects = map[string]string{
	TemplateWelcome:        "Welcome to {{.AppName}}!",
	TemplateLogin:          "Welcome back to {{.AppName}}!",
	TemplateLogout:         "Logout Notification",
	TemplateRoleUpdated:    "Role Update Notification",
	TemplateResetCode:      "Your password recovery code",
	TemplateProfileUpdated: "Your profile was updated",
}

var bodies = map[string]string{
	TemplateWelcome: "Dear {{.Name}},\n\n" +
		"Thank you for creating an account with {{.AppName}}. We're excited to have you on board!\n\n" +
		"Regards,\nThe {{.AppName}} Team",
	TemplateLogin: "Dear {{.Name}},\n\n" +
		"You have successfully logged in to your {{.AppName}} account. Welcome back!\n\n" +
		"If this was not you, please contact our support team immediately.\n\n" +
		"Regards,\nThe {{.AppName}} Team",
	TemplateLogout: "Dear {{.Name}},\n\n" +
		"You have successfully logged out from your {{.AppName}} account.\n\n" +
		"Regards,\nThe {{.AppName}} Team",
	TemplateRoleUpdated: "Dear {{.Name}},\n\n" +
		"Your role has been updated. You are now {{if eq .Role \"admin\"}}an admin{{else}}a user{{end}}.\n\n" +
		"Regards,\nThe {{.AppName}} Team",
	TemplateResetCode: "Dear {{.Name}},\n\n" +
		"Your password recovery code is {{.Code}}. It expires in {{.ExpiresIn}}.\n\n" +
		"If you did not request this, you can safely ignore this email.\n\n" +
		"Regards,\nThe {{.AppName}} Team",
	TemplateProfileUpdated: "Dear {{.Name}},\n\n" +
		"Your {{.AppName}} profile was updated successfully.\n\n" +
		"If this was not you, please contact our support team immediately.\n\n" +
		"Regards,\nThe {{.AppName}} Team",
}

// Render produces subject and text body for a named template.
func Render(name string, data map[string]any) (subject, text string, err error) {
	st, ok := subjects[name]
	bt, ok2 := bodies[name]
	if !ok || !ok2 {
		return "", "", fmt.Errorf("unknown email template %q", name)
	}
	subject, err = execute(name+"_subject", st, data)
	if err != nil {
		return "", "", err
	}
	text, err = execute(name+"_body", bt, data)
	if err != nil {
		return "", "", err
	}
	return subject, text, nil
}

func execute(name, tpl string, data map[string]any) (string, error) {
	t, err := texttpl.New(name).Parse(tpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
