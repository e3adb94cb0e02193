package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"git.solsynth.dev/hypernet/votechain/pkg/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/ipfs/go-cid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

const DefaultGatewayURL = "https://ivory-famous-cardinal-181.mypinata.cloud"

var (
	ErrNoFile          = errors.New("No file !")
	ErrNoCategory      = errors.New("Provide Image Category !")
	ErrUnknownCategory = errors.New("Unknown image category !")
	ErrNoPrevCID       = errors.New("Provide Image CID !")
	ErrNotImage        = errors.New("Only valid image formats are allowed!")
)

var validationErrors = []error{
	ErrNoFile,
	ErrNoCategory,
	ErrUnknownCategory,
	ErrNoPrevCID,
	ErrNotImage,
}

// IsValidation reports whether err was caused by the request rather than the pinning service.
func IsValidation(err error) bool {
	return lo.SomeBy(validationErrors, func(item error) bool {
		return errors.Is(err, item)
	})
}

var validate = validator.New(validator.WithRequiredStructEnabled())

var categoryRule = "oneof=" + strings.Join(models.ImageCategories, " ")

var C *Service

type Service struct {
	Pinner     Pinner
	GatewayURL string
	GroupID    string

	now func() time.Time
}

func NewService(pinner Pinner, gatewayURL, groupID string) *Service {
	if len(gatewayURL) == 0 {
		gatewayURL = DefaultGatewayURL
	}
	return &Service{
		Pinner:     pinner,
		GatewayURL: strings.TrimRight(gatewayURL, "/"),
		GroupID:    groupID,
		now:        time.Now,
	}
}

// NewServiceFromConfig reads the pinata section and sets the package level service.
func NewServiceFromConfig() *Service {
	C = NewService(
		ReadPinataConfig(),
		viper.GetString("pinata.gateway_url"),
		viper.GetString("pinata.group_id"),
	)
	return C
}

func checkCategory(category string) error {
	if len(category) == 0 {
		return ErrNoCategory
	}
	if err := validate.Var(category, categoryRule); err != nil {
		return ErrUnknownCategory
	}
	return nil
}

// Put stores a new image and returns its gateway address.
func (v *Service) Put(ctx context.Context, data []byte, category string) (models.UploadedImage, error) {
	if len(data) == 0 {
		return models.UploadedImage{}, ErrNoFile
	}
	if err := checkCategory(category); err != nil {
		return models.UploadedImage{}, err
	}
	if !IsImage(data) {
		return models.UploadedImage{}, ErrNotImage
	}
	return v.upload(ctx, data, category)
}

// Update stores a replacement image and retires every object pinned under prevCID.
// Retiring is best effort, the new image is returned either way.
func (v *Service) Update(ctx context.Context, data []byte, category, prevCID string) (models.UploadedImage, error) {
	if len(data) == 0 {
		return models.UploadedImage{}, ErrNoFile
	}
	if err := checkCategory(category); err != nil {
		return models.UploadedImage{}, err
	}
	if len(prevCID) == 0 {
		return models.UploadedImage{}, ErrNoPrevCID
	}
	if !IsImage(data) {
		return models.UploadedImage{}, ErrNotImage
	}

	image, err := v.upload(ctx, data, category)
	if err != nil {
		return image, err
	}

	v.retire(ctx, prevCID)
	return image, nil
}

func (v *Service) upload(ctx context.Context, data []byte, category string) (models.UploadedImage, error) {
	name := fmt.Sprintf("%s_%d", category, v.now().UnixMilli())
	file, err := v.Pinner.Upload(ctx, name, v.GroupID, data)
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("An error occurred when uploading image to pinata...")
		return models.UploadedImage{}, fmt.Errorf("failed to upload image: %w", err)
	}
	return models.UploadedImage{
		Success: true,
		CID:     file.CID,
		URL:     fmt.Sprintf("%s/ipfs/%s", v.GatewayURL, file.CID),
	}, nil
}

func (v *Service) retire(ctx context.Context, prevCID string) {
	if _, err := cid.Decode(prevCID); err != nil {
		log.Debug().Err(err).Str("cid", prevCID).Msg("Old image reference is not a CID, looking it up anyway...")
	}
	files, err := v.Pinner.FindByCID(ctx, prevCID)
	if err != nil {
		log.Warn().Err(err).Str("cid", prevCID).Msg("An error occurred when looking up old image...")
		return
	} else if len(files) == 0 {
		log.Debug().Str("cid", prevCID).Msg("Old image not found, nothing to delete...")
		return
	}

	ids := lo.Map(files, func(item PinnedFile, _ int) string {
		return item.ID
	})
	if err := v.Pinner.Delete(ctx, ids); err != nil {
		log.Warn().Err(err).Str("cid", prevCID).Msg("An error occurred when deleting old image...")
		return
	}
	log.Info().Str("cid", prevCID).Int("count", len(ids)).Msg("Deleted old image.")
}
