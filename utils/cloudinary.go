package utils

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var cld *cloudinary.Cloudinary

// InitCloudinary initializes the Cloudinary connection used for plan pictures
func InitCloudinary() error {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return fmt.Errorf("the Cloudinary environment variables are not set")
	}

	var err error
	cld, err = cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return fmt.Errorf("error initializing Cloudinary: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err = cld.Admin.Ping(ctx); err != nil {
		return fmt.Errorf("error checking the Cloudinary connection: %v", err)
	}

	LogSuccess("Cloudinary initialized")
	return nil
}

func isValidImageType(filename string) bool {
	validExtensions := []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	lowerFilename := strings.ToLower(filename)

	for _, ext := range validExtensions {
		if strings.HasSuffix(lowerFilename, ext) {
			return true
		}
	}
	return false
}

// UploadPlanPicture uploads a membership plan picture to Cloudinary and
// returns its public URL
func UploadPlanPicture(file *multipart.FileHeader) (string, error) {
	if cld == nil {
		return "", fmt.Errorf("cloudinary is not initialized")
	}

	if !isValidImageType(file.Filename) {
		return "", fmt.Errorf("unsupported image format, use JPG, PNG, GIF or WEBP")
	}

	// 10MB max
	if file.Size > 10*1024*1024 {
		return "", fmt.Errorf("image too large, maximum 10MB allowed")
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("error opening the file: %v", err)
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	overwrite := true
	result, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:    "plans",
		Overwrite: &overwrite,
	})
	if err != nil {
		return "", fmt.Errorf("error uploading the image: %v", err)
	}

	return result.SecureURL, nil
}
