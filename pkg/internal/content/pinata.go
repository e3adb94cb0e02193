package content

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ipfs/go-cid"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	DefaultUploadURL = "https://uploads.pinata.cloud/v3"
	DefaultAPIURL    = "https://api.pinata.cloud/v3"
)

// PinnedFile is one object held by the pinning service.
type PinnedFile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CID       string    `json:"cid"`
	Size      int64     `json:"size"`
	GroupID   string    `json:"group_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Pinner stores image bytes on IPFS and manages the pinned objects.
type Pinner interface {
	Upload(ctx context.Context, name, groupID string, data []byte) (PinnedFile, error)
	FindByCID(ctx context.Context, cid string) ([]PinnedFile, error)
	Delete(ctx context.Context, ids []string) error
}

type PinataPinner struct {
	JWT       string
	UploadURL string
	APIURL    string
	Client    *http.Client
}

func NewPinataPinner(jwt string) *PinataPinner {
	return &PinataPinner{
		JWT:       jwt,
		UploadURL: DefaultUploadURL,
		APIURL:    DefaultAPIURL,
		Client:    &http.Client{Timeout: 60 * time.Second},
	}
}

// ReadPinataConfig builds the pinner from the pinata section of the settings.
func ReadPinataConfig() *PinataPinner {
	pinner := NewPinataPinner(viper.GetString("pinata.jwt"))
	if val := viper.GetString("pinata.upload_url"); len(val) > 0 {
		pinner.UploadURL = strings.TrimRight(val, "/")
	}
	if val := viper.GetString("pinata.api_url"); len(val) > 0 {
		pinner.APIURL = strings.TrimRight(val, "/")
	}
	return pinner
}

type pinataEnvelope[T any] struct {
	Data T `json:"data"`
}

type pinataList struct {
	Files         []PinnedFile `json:"files"`
	NextPageToken string       `json:"next_page_token"`
}

func (v *PinataPinner) do(req *http.Request, out any) error {
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+v.JWT)

	client := v.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach pinata: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %v", err)
	}

	if resp.StatusCode != fiber.StatusOK {
		return fmt.Errorf("unexpected status code: %d, response: %s", resp.StatusCode, body)
	}

	if out == nil {
		return nil
	}
	if err := jsoniter.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse pinata JSON: %v", err)
	}
	return nil
}

func (v *PinataPinner) Upload(ctx context.Context, name, groupID string, data []byte) (PinnedFile, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return PinnedFile{}, err
	}
	if _, err := part.Write(data); err != nil {
		return PinnedFile{}, err
	}
	fields := map[string]string{"network": "public", "name": name}
	if len(groupID) > 0 {
		fields["group_id"] = groupID
	}
	for key, val := range fields {
		if err := writer.WriteField(key, val); err != nil {
			return PinnedFile{}, err
		}
	}
	if err := writer.Close(); err != nil {
		return PinnedFile{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.UploadURL+"/files", &buf)
	if err != nil {
		return PinnedFile{}, err
	}
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())

	log.Debug().Str("name", name).Int("size", len(data)).Msg("Uploading file to pinata...")

	var resp pinataEnvelope[PinnedFile]
	if err := v.do(req, &resp); err != nil {
		return PinnedFile{}, err
	}
	if _, err := cid.Decode(resp.Data.CID); err != nil {
		return PinnedFile{}, fmt.Errorf("pinata returned malformed cid %q: %v", resp.Data.CID, err)
	}

	log.Debug().Str("name", name).Str("cid", resp.Data.CID).Msg("Uploaded file to pinata...")
	return resp.Data, nil
}

func (v *PinataPinner) FindByCID(ctx context.Context, target string) ([]PinnedFile, error) {
	query := url.Values{}
	query.Set("cid", target)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.APIURL+"/files/public?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var resp pinataEnvelope[pinataList]
	if err := v.do(req, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Files, nil
}

func (v *PinataPinner) Delete(ctx context.Context, ids []string) error {
	for _, id := range ids {
		req, err := http.NewRequestWithContext(ctx, http.MethodDelete, v.APIURL+"/files/public/"+url.PathEscape(id), nil)
		if err != nil {
			return err
		}
		if err := v.do(req, nil); err != nil {
			return fmt.Errorf("failed to delete %s: %v", id, err)
		}
	}
	return nil
}
