package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"Gardener-Assistant-Backend/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var AllowImage = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

type (
	AwsS3 interface {
		UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error)
		UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error)
		DeleteFile(objectKey string) error
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

func NewAwsS3() AwsS3 {
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	region := utils.GetConfig("AWS_S3_REGION")
	accessKey := utils.GetConfig("AWS_ACCESS_KEY")
	secretKey := utils.GetConfig("AWS_SECRET_KEY")

	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		return &awsS3{bucket: bucket, region: region}
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}
}

func (a *awsS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	contentType := file.Header.Get("Content-Type")
	if len(allowedTypes) > 0 && !contains(allowedTypes, contentType) {
		return "", fmt.Errorf("content type %s not allowed", contentType)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	objectKey := fmt.Sprintf("%s/%s%s", folder, fileName, filepath.Ext(file.Filename))

	_, err = a.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return objectKey, nil
}

func (a *awsS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	contentType := file.Header.Get("Content-Type")
	if len(allowedTypes) > 0 && !contains(allowedTypes, contentType) {
		return "", fmt.Errorf("content type %s not allowed", contentType)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	_, err = a.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return objectKey, nil
}

func (a *awsS3) DeleteFile(objectKey string) error {
	_, err := a.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, objectKey)
}

func (a *awsS3) GetObjectKeyFromLink(link string) string {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", a.bucket, a.region)
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
