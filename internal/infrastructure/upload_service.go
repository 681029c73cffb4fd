package infrastructure

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"golang.org/x/time/rate"

	"realty-server/internal/apperr"
)

// UploadService pushes images to Cloudinary and hands back the public URL.
// Outbound calls are throttled to stay inside the store's API courtesy
// limits; the inbound request path itself carries no backpressure.
type UploadService struct {
	cld     *cloudinary.Cloudinary
	folder  string
	limiter *rate.Limiter
}

func NewUploadService(cloudinaryURL, folder string, ratePerSec, burst int) (*UploadService, error) {
	if cloudinaryURL == "" {
		return nil, nil
	}

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}

	return &UploadService{
		cld:     cld,
		folder:  folder,
		limiter: rate.NewLimiter(rate.Limit(ratePerSec), burst),
	}, nil
}

func (u *UploadService) UploadImage(ctx context.Context, file io.Reader) (string, error) {
	if u == nil {
		return "", apperr.New(apperr.KindInternal, "image storage is not configured")
	}

	if err := u.limiter.Wait(ctx); err != nil {
		return "", apperr.Internal(err)
	}

	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       u.folder,
		ResourceType: "image",
	})
	if err != nil {
		return "", apperr.Internal(err)
	}

	return resp.SecureURL, nil
}
