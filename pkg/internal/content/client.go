package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"git.solsynth.dev/hypernet/votechain/pkg/internal/models"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
)

var (
	ErrNoFileSelected    = errors.New("No File Selected")
	ErrCategoryMissing   = errors.New("Category Missing")
	ErrCurrentCIDMissing = errors.New("Current CID of Image Missing")
)

// Client talks to the upload endpoints of a running server.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: http.DefaultClient}
}

func (v *Client) Put(ctx context.Context, file []byte, filename, category string) (models.UploadedImage, error) {
	if len(file) == 0 {
		return models.UploadedImage{}, ErrNoFileSelected
	}
	if len(category) == 0 {
		return models.UploadedImage{}, ErrCategoryMissing
	}
	return v.post(ctx, "/api/uploadToPinata", "Upload failed!", file, filename, map[string]string{
		"category": category,
	})
}

func (v *Client) Update(ctx context.Context, file []byte, filename, category, prevCID string) (models.UploadedImage, error) {
	if len(file) == 0 {
		return models.UploadedImage{}, ErrNoFileSelected
	}
	if len(category) == 0 {
		return models.UploadedImage{}, ErrCategoryMissing
	}
	if len(prevCID) == 0 {
		return models.UploadedImage{}, ErrCurrentCIDMissing
	}
	return v.post(ctx, "/api/updateToPinata", "Update failed!", file, filename, map[string]string{
		"category": category,
		"prevCID":  prevCID,
	})
}

func (v *Client) post(ctx context.Context, path, fallback string, file []byte, filename string, fields map[string]string) (models.UploadedImage, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return models.UploadedImage{}, err
	}
	if _, err := part.Write(file); err != nil {
		return models.UploadedImage{}, err
	}
	for key, val := range fields {
		if err := writer.WriteField(key, val); err != nil {
			return models.UploadedImage{}, err
		}
	}
	if err := writer.Close(); err != nil {
		return models.UploadedImage{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.BaseURL+path, &buf)
	if err != nil {
		return models.UploadedImage{}, err
	}
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())

	client := v.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("An error occurred when uploading image...")
		return models.UploadedImage{}, fmt.Errorf("failed to reach upload endpoint: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.UploadedImage{}, fmt.Errorf("failed to read response body: %v", err)
	}

	if resp.StatusCode != fiber.StatusOK {
		var failure struct {
			Error string `json:"error"`
		}
		if err := jsoniter.Unmarshal(body, &failure); err != nil || len(failure.Error) == 0 {
			return models.UploadedImage{}, errors.New(fallback)
		}
		return models.UploadedImage{}, errors.New(failure.Error)
	}

	var image models.UploadedImage
	if err := jsoniter.Unmarshal(body, &image); err != nil {
		return models.UploadedImage{}, fmt.Errorf("failed to parse upload JSON: %v", err)
	}
	return image, nil
}
