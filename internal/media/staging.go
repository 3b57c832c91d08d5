package media

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StagedFile is an incoming upload persisted to transient local storage.
type StagedFile struct {
	Name string
	Path string
}

// PublicURL is the path under which the staged file is served if it becomes
// a local fallback image.
func (f StagedFile) PublicURL(resource string) string {
	return "/uploads/" + resource + "/" + f.Name
}

// Stager writes incoming multipart files under <dir>/<resource>/ with a
// time-ordered unique name. There is no collision detection beyond the
// random suffix.
type Stager struct {
	dir string
}

// NewStager creates the staging root if needed.
func NewStager(dir string) (*Stager, error) {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Stager{dir: dir}, nil
}

// Dir returns the staging root, used for static file serving.
func (s *Stager) Dir() string {
	return s.dir
}

// Save persists the uploaded file for the given resource.
func (s *Stager) Save(file *multipart.FileHeader, resource string) (StagedFile, error) {
	targetDir := filepath.Join(s.dir, resource)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return StagedFile{}, fmt.Errorf("create staging dir: %w", err)
	}

	name := stagedName(file.Filename, resource)
	path := filepath.Join(targetDir, name)

	src, err := file.Open()
	if err != nil {
		return StagedFile{}, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return StagedFile{}, fmt.Errorf("create staged file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return StagedFile{}, fmt.Errorf("write staged file: %w", err)
	}
	return StagedFile{Name: name, Path: path}, nil
}

// Remove deletes a staged file, ignoring files already gone.
func (s *Stager) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// RemoveByURL deletes a local fallback file addressed by its /uploads URL.
func (s *Stager) RemoveByURL(url string) error {
	rel, ok := strings.CutPrefix(url, "/uploads/")
	if !ok {
		return nil
	}
	return s.Remove(filepath.Join(s.dir, filepath.FromSlash(rel)))
}

func stagedName(original, resource string) string {
	ext := strings.ToLower(filepath.Ext(original))
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%s-%d-%s%s", resource, time.Now().UnixMilli(), suffix, ext)
}
