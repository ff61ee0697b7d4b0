package util

import (
	"context"
	"time"

	"github.com/cloudinary/cloudinary-go"
	"github.com/cloudinary/cloudinary-go/api/uploader"

	"jarin-io/api/pkg/apperror"
	"jarin-io/api/pkg/models"
)

func initCloudinary() (*cloudinary.Cloudinary, error) {
	cloudName := LoadEnvFor("CLOUDINARY_CLOUDNAME")
	apiKey := LoadEnvFor("CLOUDINARY_API_KEY")
	apiSecret := LoadEnvFor("CLOUDINARY_API_SECRET")

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return &cloudinary.Cloudinary{}, err
	}

	return cld, nil
}

func ImageUploadHelper(input interface{}) (uploader.UploadResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Second)
	defer cancel()

	cld, err := initCloudinary()
	if err != nil {
		return uploader.UploadResult{}, &apperror.NetworkError{Op: "cloudinary init", Err: err}
	}

	uploadFolder := LoadEnvFor("CLOUDINARY_UPLOAD_FOLDER")
	uploadRes, err := cld.Upload.Upload(ctx, input, uploader.UploadParams{Folder: uploadFolder})
	if err != nil {
		return uploader.UploadResult{}, &apperror.NetworkError{Op: "cloudinary upload", Err: err}
	}

	return *uploadRes, nil
}

func ImageDeletionHelper(params uploader.DestroyParams) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Second)
	defer cancel()

	cld, err := initCloudinary()
	if err != nil {
		return "", &apperror.NetworkError{Op: "cloudinary init", Err: err}
	}

	res, err := cld.Upload.Destroy(ctx, params)
	if err != nil {
		return "", &apperror.NetworkError{Op: "cloudinary destroy", Err: err}
	}

	return res.Result, nil
}

func FileUpload(file models.File) (uploader.UploadResult, error) {
	return ImageUploadHelper(file.File)
}
