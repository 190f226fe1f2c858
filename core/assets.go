package core

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/sprig/v3"
	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
	minjs "github.com/tdewolff/minify/v2/js"
)

// MinifyAsset minifies a /static/ stylesheet or script from publicDir into
// cacheDir/static and returns its versioned URL. Outside prod, without a
// cache dir, or on any failure, the original path is returned.
func MinifyAsset(env, path, publicDir, cacheDir string) string {
	if env != "prod" || cacheDir == "" {
		return path
	}

	ext := filepath.Ext(path)
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, ext)

	if ext != ".css" && ext != ".js" {
		return path
	}

	if strings.Contains(name, ".min") {
		return path
	}

	src := filepath.Join(publicDir, strings.TrimPrefix(path, "/static/"))
	minName := fmt.Sprintf("%s.min%s", name, ext)

	original, err := os.ReadFile(src)
	if err != nil {
		return path
	}

	m := minify.New()
	m.AddFunc("text/css", mincss.Minify)
	m.AddFunc("application/javascript", minjs.Minify)

	mediaType := "text/css"
	if ext == ".js" {
		mediaType = "application/javascript"
	}

	var buf bytes.Buffer
	if err := m.Minify(mediaType, &buf, bytes.NewReader(original)); err != nil {
		return path
	}
	minified := buf.Bytes()

	if cached, ok := GetCachedAsset(cacheDir, minName); !ok || !bytes.Equal(cached, minified) {
		if err := SaveCachedAsset(cacheDir, minName, minified); err != nil {
			return path
		}
	}

	return fmt.Sprintf("/static/%s?v=%s", minName, shortHash(minified))
}

// VersionedAsset appends a content hash to a /static/ path so browsers
// refetch it after edits. Unknown files keep their path.
func VersionedAsset(path, publicDir, cacheDir string) string {
	if !strings.HasPrefix(path, "/static/") {
		return path
	}

	rel := strings.TrimPrefix(path, "/static/")
	if content, err := os.ReadFile(filepath.Join(publicDir, rel)); err == nil {
		return fmt.Sprintf("/static/%s?v=%s", rel, shortHash(content))
	}
	if content, ok := GetCachedAsset(cacheDir, rel); ok {
		return fmt.Sprintf("/static/%s?v=%s", rel, shortHash(content))
	}

	return path
}

func shortHash(content []byte) string {
	sum := md5.Sum(content)
	return hex.EncodeToString(sum[:])[:6]
}

// TemplateFuncs is sprig's html func map plus the asset helpers used by the
// page templates. An empty cacheDir turns off minification.
func TemplateFuncs(env, publicDir, cacheDir string) template.FuncMap {
	funcs := sprig.HtmlFuncMap()

	funcs["minify"] = func(path string) string {
		return MinifyAsset(env, path, publicDir, cacheDir)
	}
	funcs["versioned"] = func(path string) string {
		return VersionedAsset(path, publicDir, cacheDir)
	}
	funcs["asset"] = func(path string) string {
		if env == "prod" && cacheDir != "" {
			return MinifyAsset(env, path, publicDir, cacheDir)
		}
		return VersionedAsset(path, publicDir, cacheDir)
	}
	funcs["props"] = func(values ...interface{}) map[string]interface{} {
		if len(values)%2 != 0 {
			panic("props must be called with even number of arguments")
		}
		m := make(map[string]interface{}, len(values)/2)
		for i := 0; i < len(values); i += 2 {
			key, ok := values[i].(string)
			if !ok {
				panic("props keys must be strings")
			}
			m[key] = values[i+1]
		}
		return m
	}

	return funcs
}
