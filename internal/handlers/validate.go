package handlers

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// Validation limits for tool form fields.
const (
	maxNameLen        = 200
	maxDescriptionLen = 2_000
	maxWebsiteLen     = 500
)

// validateTool checks the required tool fields and returns the first
// error found, or "" when the form is acceptable.
func validateTool(name, description, website string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}

	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return "Description is too long (max 2,000 characters)."
	}

	website = strings.TrimSpace(website)
	if website == "" {
		return "Website is required."
	}
	if utf8.RuneCountInString(website) > maxWebsiteLen {
		return "Website URL is too long (max 500 characters)."
	}
	u, err := url.Parse(website)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "Website must be a valid http or https URL."
	}
	return ""
}

// validateRegistration checks the password pair on the register form.
func validateRegistration(password, confirm string) string {
	if password == "" {
		return "Password is required."
	}
	if password != confirm {
		return "Passwords do not match."
	}
	return ""
}
