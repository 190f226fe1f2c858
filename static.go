package hello

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const immutableCache = "public, max-age=31536000, immutable"

func setupDevStaticRoutes(mux *http.ServeMux, publicDir string) {
	fileServer := http.FileServer(http.Dir(publicDir))
	mux.Handle("/static/", http.StripPrefix("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		fileServer.ServeHTTP(w, r)
	})))

	for _, name := range []string{"favicon.ico", "robots.txt"} {
		file := filepath.Join(publicDir, name)
		mux.HandleFunc("/"+name, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-store")
			http.ServeFile(w, r, file)
		})
	}
}

func setupProdStaticRoutes(mux *http.ServeMux, publicDir, cacheDir string) {
	mux.Handle("/static/", makeStaticHandler(publicDir, cacheDir))

	for _, name := range []string{"favicon.ico", "robots.txt"} {
		file := filepath.Join(publicDir, name)
		mux.HandleFunc("/"+name, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", immutableCache)
			http.ServeFile(w, r, file)
		})
	}
}

// makeStaticHandler serves /static/ from the asset cache, preferring the
// precompressed copy, and falls back to publicDir.
func makeStaticHandler(publicDir, cacheDir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		trimmed := strings.TrimPrefix(r.URL.Path, "/static/")
		if trimmed == "" || strings.Contains(trimmed, "..") {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		cachedFile := filepath.Join(cacheDir, trimmed)

		if acceptsGzip(r) {
			gzipFile := cachedFile + ".gz"
			if fileExists(gzipFile) {
				w.Header().Set("Content-Type", detectMimeType(cachedFile))
				w.Header().Set("Content-Encoding", "gzip")
				w.Header().Set("Vary", "Accept-Encoding")
				w.Header().Set("Cache-Control", immutableCache)
				http.ServeFile(w, r, gzipFile)
				return
			}
		}

		if fileExists(cachedFile) {
			serveFileWithHeaders(w, r, cachedFile, immutableCache)
			return
		}

		publicFile := filepath.Join(publicDir, trimmed)
		if fileExists(publicFile) {
			serveFileWithHeaders(w, r, publicFile, immutableCache)
			return
		}

		http.NotFound(w, r)
	})
}

func serveFileWithHeaders(w http.ResponseWriter, r *http.Request, path, cacheControl string) {
	w.Header().Set("Content-Type", detectMimeType(path))
	w.Header().Set("Cache-Control", cacheControl)
	http.ServeFile(w, r, path)
}

func detectMimeType(path string) string {
	switch filepath.Ext(path) {
	case ".css":
		return "text/css"
	case ".js":
		return "application/javascript"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".woff":
		return "font/woff"
	case ".woff2":
		return "font/woff2"
	case ".html":
		return "text/html; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func acceptsGzip(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
}
