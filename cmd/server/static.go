package main

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

// fallbackHTML is served when no index.html can be found in any of the
// expected locations, so the service still answers something useful at /.
const fallbackHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Excuse Email Draft Tool</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; }
        .error { color: red; }
    </style>
</head>
<body>
    <h1>Excuse Email Draft Tool</h1>
    <p class="error">Error: Could not find the application files.</p>
    <p>Please ensure the public/index.html file exists.</p>
</body>
</html>
`

// staticIndexPath returns the path to the front-end index.html, trying
// the configured static directory first and falling back through the
// deployment layouts the service has been run under.
func (app *application) staticIndexPath() string {
	candidates := []string{
		filepath.Join("public", "index.html"),
		"index.html",
	}

	if dir := app.config.Server.StaticDir; dir != "" {
		candidates = append([]string{filepath.Join(dir, "index.html")}, candidates...)
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			app.logger.Debug("serving static index", "path", path)
			return path
		}
	}

	app.logger.Error("could not find index.html in any expected location")
	return ""
}

// serveIndex handles GET / by serving the front-end page.
func (app *application) serveIndex(w http.ResponseWriter, r *http.Request) {
	if path := app.staticIndexPath(); path != "" {
		http.ServeFile(w, r, path)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(fallbackHTML)); err != nil {
		app.logger.Error("failed to write fallback page", "error", err)
	}
}

// mountStatic exposes the asset directory under /static when it exists.
func (app *application) mountStatic(r chi.Router) {
	dir := app.config.Server.StaticDir
	if dir == "" {
		dir = "public"
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		app.logger.Warn("static directory not found, skipping /static mount", "dir", dir)
		return
	}

	fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(dir)))
	r.Get("/static/*", fileServer.ServeHTTP)
}
