package service

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	xdraw "golang.org/x/image/draw"
)

const baseDir = "media"

func InArray[T comparable](val T, array []T) bool {
	for _, v := range array {
		if val == v {
			return true
		}
	}
	return false
}

// Upload - uploads file to the specified folder
func Upload(file *multipart.FileHeader, folder string) (path string, err error) {
	targetPath := filepath.Join(baseDir, folder)
	if file == nil {
		return "", nil
	}

	expectedContentType := []string{
		"image/jpeg",
		"image/png",
	}

	incomeContentType := file.Header.Get("Content-Type")
	if !InArray(incomeContentType, expectedContentType) {
		return "", fmt.Errorf("invalid file type, expected: %v, got: %s", expectedContentType, incomeContentType)
	}

	if _, err := os.Stat(targetPath); errors.Is(err, os.ErrNotExist) {
		err = os.MkdirAll(targetPath, os.ModePerm)
		if err != nil {
			return "", err
		}
	}

	target := filepath.Join(targetPath, time.Now().Format(time.RFC3339)+"-"+file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			log.Println("file upload src.Close() error:", closeErr)
		}
	}()

	out, err := os.Create(target)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil {
			log.Println("file upload out.Close() error:", closeErr)
		}
	}()

	if _, err = io.Copy(out, src); err != nil {
		return "", err
	}

	return target, nil
}

const thumbnailWidth = 256

// Thumbnail writes a scaled-down copy next to the original and returns its
// path. Punch photos arrive at camera resolution; the admin list only needs
// a small preview.
func Thumbnail(path string) (string, error) {
	in, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer in.Close()

	img, format, err := image.Decode(in)
	if err != nil {
		return "", err
	}

	bounds := img.Bounds()
	if bounds.Dx() <= thumbnailWidth {
		return path, nil
	}

	height := bounds.Dy() * thumbnailWidth / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, thumbnailWidth, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)

	ext := filepath.Ext(path)
	thumbPath := path[:len(path)-len(ext)] + "_thumb" + ext

	out, err := os.Create(thumbPath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	switch format {
	case "png":
		err = png.Encode(out, dst)
	default:
		err = jpeg.Encode(out, dst, &jpeg.Options{Quality: 80})
	}
	if err != nil {
		return "", err
	}

	return thumbPath, nil
}
