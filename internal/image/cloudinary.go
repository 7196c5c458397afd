package image

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const (
	avatarFolder         = "avatars"
	avatarTransformation = "w_150,c_scale"
)

// Upload is the reference pair returned by the asset host.
type Upload struct {
	PublicID string
	URL      string
}

// Uploader abstracts the external image-hosting service.
type Uploader interface {
	UploadAvatar(ctx context.Context, payload string) (*Upload, error)
	Destroy(ctx context.Context, publicID string) error
}

// CloudinaryUploader hosts avatars on Cloudinary.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader creates an uploader from a CLOUDINARY_URL style URL.
func NewCloudinaryUploader(url string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

// UploadAvatar uploads an image payload (base64 data URI or URL) scaled to
// avatar size and returns its hosted reference.
func (u *CloudinaryUploader) UploadAvatar(ctx context.Context, payload string) (*Upload, error) {
	result, err := u.cld.Upload.Upload(ctx, payload, uploader.UploadParams{
		Folder:         avatarFolder,
		Transformation: avatarTransformation,
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	return &Upload{
		PublicID: result.PublicID,
		URL:      result.SecureURL,
	}, nil
}

// Destroy removes a hosted image by its public id.
func (u *CloudinaryUploader) Destroy(ctx context.Context, publicID string) error {
	if _, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	return nil
}
