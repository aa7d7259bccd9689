package trello

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"tro/internal/domain"
)

// ListAttachments returns the attachments of a card
func (c *Client) ListAttachments(ctx context.Context, cardID string) ([]domain.Attachment, error) {
	var attachments []domain.Attachment
	err := c.get(ctx, "/1/cards/"+segment(cardID)+"/attachments/", &attachments,
		Param{"fields", "id,name,url"},
	)
	return attachments, err
}

// AttachFile uploads the file at path to a card
func (c *Client) AttachFile(ctx context.Context, cardID, path string) (*domain.Attachment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open attachment: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	name := filepath.Base(path)
	if err := mw.WriteField("name", name); err != nil {
		return nil, err
	}
	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("read attachment: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	var attachment domain.Attachment
	req := request{
		method:      http.MethodPost,
		path:        "/1/cards/" + segment(cardID) + "/attachments",
		body:        &buf,
		contentType: mw.FormDataContentType(),
	}
	if err := c.do(ctx, req, &attachment); err != nil {
		return nil, err
	}
	return &attachment, nil
}
