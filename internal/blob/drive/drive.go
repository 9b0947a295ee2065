// Package drive uploads proof files to a Google Drive folder and shares
// them read-only with anyone holding the link.
package drive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"rentledger/internal/blob"

	gdrive "google.golang.org/api/drive/v3"
	goption "google.golang.org/api/option"
)

type Uploader struct {
	svc      *gdrive.Service
	folderID string
}

var _ blob.Uploader = (*Uploader)(nil)

// New creates a Drive uploader targeting one folder, authenticated with
// the same service-account JSON the Sheets client uses.
func New(ctx context.Context, folderID string, credentialsJSON []byte) (*Uploader, error) {
	if strings.TrimSpace(folderID) == "" {
		return nil, errors.New("missing drive folder ID")
	}
	svc, err := gdrive.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gdrive.DriveScope))
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	return &Uploader{svc: svc, folderID: folderID}, nil
}

// Upload stores the file in the configured folder, grants anyone-reader
// access, and returns the shareable view URL.
func (u *Uploader) Upload(ctx context.Context, name, mimeType string, data []byte) (string, error) {
	if u.svc == nil {
		return "", errors.New("drive service not initialized")
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	meta := &gdrive.File{
		Name:    name,
		Parents: []string{u.folderID},
	}
	created, err := u.svc.Files.Create(meta).
		Media(bytes.NewReader(data)).
		Fields("id").
		SupportsAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("create drive file %q: %w", name, err)
	}

	_, err = u.svc.Permissions.Create(created.Id, &gdrive.Permission{
		Type: "anyone",
		Role: "reader",
	}).SupportsAllDrives(true).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("share drive file %q: %w", name, err)
	}

	url := fmt.Sprintf("https://drive.google.com/file/d/%s/view?usp=sharing", created.Id)
	slog.InfoContext(ctx, "Uploaded proof file", "name", name, "mime", mimeType, "size", len(data))
	return url, nil
}
