package main

import (
	"strings"
	"testing"

	"github.com/tomz197/dodgeordie/internal/config"
)

func TestRenderPage(t *testing.T) {
	settings := config.Defaults()
	settings.Web.DisplayHost = "dodge.example.com"

	settings.SSH.Port = "2222"
	page := renderPage(settings)
	if !strings.Contains(page, "ssh -p 2222 dodge.example.com") {
		t.Error("page missing ssh command with port")
	}
	if strings.Contains(page, "{{.") {
		t.Error("page has unreplaced placeholders")
	}

	settings.SSH.Port = "22"
	if page := renderPage(settings); !strings.Contains(page, "<code>ssh dodge.example.com</code>") {
		t.Error("default port should be left out of the command")
	}
}
