// Package storage manages the on-disk upload layout:
// uploads/ticket/<number>/, uploads/ticket/<number>/comments/,
// uploads/companies/<name>/, uploads/tasks/<number>/ and
// uploads/test-tasks/<number>/. Attachment metadata stores paths relative
// to the upload root.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"deskflow/internal/shared/constants"
	"deskflow/internal/shared/errors"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)

// SanitizeName flattens a ticket number or company name into a safe
// directory name. The ticket number pattern contains slashes, so this is
// not optional.
func SanitizeName(name string) string {
	sanitized := unsafeChars.ReplaceAllString(name, "_")
	return strings.Trim(sanitized, "._")
}

type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if root == "" {
		return nil, fmt.Errorf("upload root is required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve upload root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload root: %w", err)
	}
	return &LocalStore{root: abs}, nil
}

func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) TicketDir(number string) string {
	return filepath.Join(constants.UploadDirTickets, SanitizeName(number))
}

func (s *LocalStore) TicketCommentDir(number string) string {
	return filepath.Join(s.TicketDir(number), constants.UploadSubdirComment)
}

func (s *LocalStore) CompanyDir(name string) string {
	return filepath.Join(constants.UploadDirCompanies, SanitizeName(name))
}

func (s *LocalStore) TaskDir(number string) string {
	return filepath.Join(constants.UploadDirTasks, SanitizeName(number))
}

func (s *LocalStore) TestTaskDir(number string) string {
	return filepath.Join(constants.UploadDirTestTasks, SanitizeName(number))
}

// SaveFile writes the stream under relDir and returns the relative path
// and byte count. A partially written file is removed before the error is
// returned.
func (s *LocalStore) SaveFile(relDir, filename string, r io.Reader) (string, int64, error) {
	relPath := filepath.Join(relDir, SanitizeName(filename))
	absPath, err := s.resolve(relPath)
	if err != nil {
		return "", 0, err
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", 0, fmt.Errorf("failed to create upload directory: %w", err)
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create file: %w", err)
	}

	size, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(absPath)
		return "", 0, fmt.Errorf("failed to write file: %w", err)
	}

	return relPath, size, nil
}

// Open resolves a stored relative path and opens the file. Metadata can
// outlive the file on disk; that drift surfaces as a not found error.
func (s *LocalStore) Open(relPath string) (*os.File, error) {
	absPath, err := s.resolve(relPath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("file not found on storage", relPath)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

// AbsolutePath resolves a stored relative path, verifying the file exists.
func (s *LocalStore) AbsolutePath(relPath string) (string, error) {
	absPath, err := s.resolve(relPath)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewNotFoundError("file not found on storage", relPath)
		}
		return "", fmt.Errorf("failed to stat file: %w", err)
	}
	return absPath, nil
}

func (s *LocalStore) Remove(relPath string) error {
	absPath, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(absPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

// resolve joins the relative path under the root and rejects traversal
// outside of it.
func (s *LocalStore) resolve(relPath string) (string, error) {
	absPath := filepath.Join(s.root, relPath)
	if !strings.HasPrefix(absPath, s.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("path escapes upload root: %s", relPath)
	}
	return absPath, nil
}
