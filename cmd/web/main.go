package main

import (
	_ "embed"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/tomz197/dodgeordie/internal/config"
	"github.com/tomz197/dodgeordie/internal/logging"
)

//go:embed index.html
var htmlPage string

func main() {
	settings, err := config.Load(config.GetEnv("DODGE_CONFIG", ""))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(settings.Log.Level)

	page := renderPage(settings)
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})

	addr := net.JoinHostPort(settings.Web.Host, settings.Web.Port)
	logger.Info("Starting web server", "url", "http://"+addr)
	if err := http.ListenAndServe(addr, nil); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", "err", err)
	}
}

// renderPage fills the SSH connection details into the landing page.
func renderPage(settings config.Settings) string {
	command := "ssh " + settings.Web.DisplayHost
	if settings.SSH.Port != "22" {
		command = fmt.Sprintf("ssh -p %s %s", settings.SSH.Port, settings.Web.DisplayHost)
	}
	return strings.NewReplacer(
		"{{.SSHHost}}", settings.Web.DisplayHost,
		"{{.SSHCommand}}", command,
	).Replace(htmlPage)
}
