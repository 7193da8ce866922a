// Package drive pulls inventory spreadsheet exports from a shared Google
// Drive folder into the local input directory.
package drive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

type Service struct {
	srv *drive.Service
}

// NewService builds a read-only Drive client from service-account JSON.
func NewService(ctx context.Context, credentialsJSON string) (*Service, error) {
	config, err := google.JWTConfigFromJSON(
		[]byte(credentialsJSON),
		drive.DriveReadonlyScope,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to parse drive credentials: %w", err)
	}

	client := config.Client(ctx)
	srv, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create drive client: %w", err)
	}

	return &Service{srv: srv}, nil
}

type File struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MimeType     string `json:"mimeType"`
	ModifiedTime string `json:"modifiedTime,omitempty"`
	Size         int64  `json:"size,string,omitempty"`
}

// ListSpreadsheets lists the CSV and XLSX files in a folder.
func (s *Service) ListSpreadsheets(folderID string) ([]*File, error) {
	if folderID == "" {
		folderID = "root"
	}

	result, err := s.srv.Files.List().
		Q(fmt.Sprintf("'%s' in parents and trashed=false", folderID)).
		Fields("files(id, name, mimeType, modifiedTime, size)").
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to list drive folder %s: %w", folderID, err)
	}

	files := make([]*File, 0, len(result.Files))
	for _, f := range result.Files {
		if !isSpreadsheet(f.Name) {
			continue
		}
		files = append(files, &File{
			ID:           f.Id,
			Name:         f.Name,
			MimeType:     f.MimeType,
			ModifiedTime: f.ModifiedTime,
			Size:         f.Size,
		})
	}
	return files, nil
}

// Download fetches one file into destDir and returns the local path.
func (s *Service) Download(fileID, name, destDir string) (string, error) {
	resp, err := s.srv.Files.Get(fileID).Download()
	if err != nil {
		return "", fmt.Errorf("unable to download drive file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	destPath := filepath.Join(destDir, filepath.Base(name))
	out, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("unable to create %s: %w", destPath, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("unable to write %s: %w", destPath, err)
	}
	return destPath, nil
}

// FetchAll downloads every spreadsheet in the folder and returns the local
// paths.
func (s *Service) FetchAll(folderID, destDir string) ([]string, error) {
	files, err := s.ListSpreadsheets(folderID)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path, err := s.Download(f.ID, f.Name, destDir)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func isSpreadsheet(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".xlsx":
		return true
	default:
		return false
	}
}
