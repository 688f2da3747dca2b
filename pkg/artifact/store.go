package artifact

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/plumstack/plum/pkg/log"
	"github.com/plumstack/plum/pkg/metrics"
	"github.com/plumstack/plum/pkg/transport"
)

// Error kinds surfaced to the reconciler. All of them abort the current
// instance start and are retried on the next tick.
var (
	ErrDownload  = errors.New("artifact download failed")
	ErrTruncated = errors.New("artifact write truncated")
	ErrUnpack    = errors.New("artifact unpack failed")
)

const downloadTimeout = 60 * time.Second

// Store lays out downloaded artifacts on disk, one directory per instance:
//
//	<baseDir>/<instanceId>/pkg.zip   downloaded archive
//	<baseDir>/<instanceId>/app/      extracted contents
//
// app/start.sh is the canonical entry point and doubles as the extraction
// sentinel: its presence means unpack already completed.
type Store struct {
	baseDir    string
	controller string
	client     *transport.Client
}

// NewStore creates an artifact store rooted at baseDir. controller is the
// base URL relative artifact paths are resolved against.
func NewStore(baseDir, controller string, client *transport.Client) *Store {
	return &Store{baseDir: baseDir, controller: controller, client: client}
}

// InstanceDir returns the directory owned by one instance.
func (s *Store) InstanceDir(instanceID string) string {
	return filepath.Join(s.baseDir, instanceID)
}

// AppDir returns the extracted application directory for one instance.
func (s *Store) AppDir(instanceID string) string {
	return filepath.Join(s.baseDir, instanceID, "app")
}

// MetaPath returns the optional meta.ini path for one instance.
func (s *Store) MetaPath(instanceID string) string {
	return filepath.Join(s.AppDir(instanceID), "meta.ini")
}

// Ensure makes the instance's application directory ready and returns it.
// Every step is idempotent: an existing pkg.zip is never re-downloaded, an
// existing app/start.sh suppresses re-extraction. A failed unzip leaves
// pkg.zip in place so the next tick re-attempts the unpack step only.
func (s *Store) Ensure(instanceID, artifactURL string) (string, error) {
	instDir := s.InstanceDir(instanceID)
	if err := os.MkdirAll(instDir, 0755); err != nil {
		return "", fmt.Errorf("create instance dir: %w", err)
	}

	zipPath := filepath.Join(instDir, "pkg.zip")
	if !fileExists(zipPath) {
		if err := s.download(artifactURL, zipPath); err != nil {
			metrics.ArtifactDownloadsTotal.WithLabelValues("error").Inc()
			return "", err
		}
		metrics.ArtifactDownloadsTotal.WithLabelValues("ok").Inc()
	}

	appDir := s.AppDir(instanceID)
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", fmt.Errorf("create app dir: %w", err)
	}

	startSh := filepath.Join(appDir, "start.sh")
	if !fileExists(startSh) {
		if err := unzip(zipPath, appDir); err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnpack, err)
		}
	}

	logger := log.WithInstanceID(instanceID)
	if fileExists(startSh) {
		if err := os.Chmod(startSh, 0755); err != nil {
			logger.Warn().Err(err).Msg("chmod start.sh")
		}
	}
	if err := repairExecBits(appDir); err != nil {
		logger.Warn().Err(err).Msg("repair exec permissions")
	}

	return appDir, nil
}

// download fetches url into path. The body is written only after a 200
// response with a non-empty payload; a short write removes the file so no
// partial archive is left behind.
func (s *Store) download(url, path string) error {
	resolved := NormalizeURL(url, s.controller)
	status, body := s.client.Get(resolved, downloadTimeout)
	if status != http.StatusOK {
		return fmt.Errorf("%w: status %d url=%s", ErrDownload, status, resolved)
	}
	if len(body) == 0 {
		return fmt.Errorf("%w: empty body url=%s", ErrDownload, resolved)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDownload, err)
	}
	n, werr := f.Write(body)
	cerr := f.Close()
	if werr != nil || cerr != nil || n != len(body) {
		os.Remove(path)
		return fmt.Errorf("%w: wrote %d of %d bytes", ErrTruncated, n, len(body))
	}

	log.Logger.Info().Str("path", path).Int("size", n).Msg("saved artifact")
	return nil
}

// NormalizeURL resolves an artifact URL against the controller base.
// Absolute http(s) URLs pass through verbatim; a leading slash appends to
// the base; anything else is joined with a slash separator.
func NormalizeURL(artifactURL, controller string) string {
	if strings.HasPrefix(artifactURL, "http://") || strings.HasPrefix(artifactURL, "https://") {
		return artifactURL
	}
	if strings.HasPrefix(artifactURL, "/") {
		return controller + artifactURL
	}
	return controller + "/" + artifactURL
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
