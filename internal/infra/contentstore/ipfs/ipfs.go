// Package ipfs uploads notification envelopes to an IPFS node through its
// HTTP API and returns their CID.
package ipfs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gabapcia/chainnotify/internal/notify"
	transporthttp "github.com/gabapcia/chainnotify/internal/pkg/transport/http"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrEmptyHash is returned when the node answers without a CID.
var ErrEmptyHash = errors.New("ipfs returned no hash")

type store struct {
	endpoint string
	http     *retryablehttp.Client
}

var _ notify.ContentStore = (*store)(nil)

// Upload adds content with pinning enabled.
func (s *store) Upload(ctx context.Context, content []byte) (notify.ContentRef, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("file", "notification.json")
	if err != nil {
		return "", err
	}
	if _, err := part.Write(content); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+"/api/v0/add?pin=true", body.Bytes())
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	res, err := s.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return "", fmt.Errorf("%w: %d: %s", transporthttp.ErrStatus, res.StatusCode, bytes.TrimSpace(msg))
	}

	var out struct {
		Hash string `json:"Hash"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode add response: %w", err)
	}

	if out.Hash == "" {
		return "", ErrEmptyHash
	}

	return notify.ContentRef(out.Hash), nil
}

// New creates a content store for the IPFS API at endpoint, e.g.
// http://localhost:5001.
func New(endpoint string, opts ...transporthttp.Option) *store {
	return &store{
		endpoint: strings.TrimRight(endpoint, "/"),
		http:     transporthttp.NewClient(opts...),
	}
}
