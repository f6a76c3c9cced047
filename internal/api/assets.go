package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// AssetDirName is the dashboard bundle directory next to the executable.
const AssetDirName = "dist"

const notFoundText = "Not Found"

// contentTypes maps file extensions to the Content-Type served for them.
var contentTypes = map[string]string{
	"png":  "image",
	"jpg":  "image/jpeg",
	"json": "application/json",
	"js":   "text/javascript",
	"html": "text/html",
	"css":  "text/css",
	"wasm": "application/wasm",
}

// ContentType returns the Content-Type for name based on the text after its
// last dot. Unknown or missing extensions are text/plain.
func ContentType(name string) string {
	base := path.Base(name)
	i := strings.LastIndexByte(base, '.')
	if i < 0 {
		return "text/plain"
	}
	if ct, ok := contentTypes[base[i+1:]]; ok {
		return ct
	}
	return "text/plain"
}

// AssetPath maps a request path to a file name relative to the asset root:
// "/" is index.html, anything else loses its leading slash.
func AssetPath(urlPath string) string {
	if urlPath == "/" || urlPath == "" {
		return "index.html"
	}
	return strings.TrimPrefix(urlPath, "/")
}

// DefaultAssetRoot returns the dist directory next to the running executable.
func DefaultAssetRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), AssetDirName), nil
}

// Assets serves the dashboard bundle from a local directory.
type Assets struct {
	root   string
	fs     static.ServeFileSystem
	logger *slog.Logger
}

// NewAssets serves files below root. Directory listings are never produced.
func NewAssets(root string, logger *slog.Logger) *Assets {
	return &Assets{
		root:   root,
		fs:     static.LocalFile(root, false),
		logger: logger,
	}
}

// Root returns the asset directory.
func (a *Assets) Root() string {
	return a.root
}

// Read returns the full contents of the asset for urlPath.
// The path is cleaned by the underlying http.Dir and cannot leave the root.
func (a *Assets) Read(urlPath string) ([]byte, error) {
	f, err := a.fs.Open(AssetPath(urlPath))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, errors.New("asset is a directory")
	}
	return io.ReadAll(f)
}

// Serve answers a static asset request: the file with its content type, or
// 404 text/plain "Not Found" when it cannot be read.
func (a *Assets) Serve(c *gin.Context) {
	urlPath := c.Request.URL.Path
	body, err := a.Read(urlPath)
	if err != nil {
		if a.logger != nil {
			a.logger.Debug("asset not served", "path", urlPath, "err", err)
		}
		c.Data(http.StatusNotFound, "text/plain", []byte(notFoundText))
		return
	}
	c.Data(http.StatusOK, ContentType(AssetPath(urlPath)), body)
}
