package blob

import (
	"context"
	"mime/multipart"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/launchlabs/leo-backend/internal/config"
)

// S3Store uploads images to an S3-compatible bucket and returns
// publicURL-based links instead of the local /uploads path.
type S3Store struct {
	uploader  *manager.Uploader
	bucket    string
	publicURL string
}

func NewS3Store(ctx context.Context, cfg *config.Config) (*S3Store, error) {
	s3cfg := cfg.Storage.S3

	loadOpts := []func(*awsCfg.LoadOptions) error{
		awsCfg.WithRegion(s3cfg.Region),
	}
	if s3cfg.AccessKey != "" && s3cfg.SecretKey != "" {
		loadOpts = append(loadOpts, awsCfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s3cfg.AccessKey, s3cfg.SecretKey, ""),
		))
	}

	acfg, err := awsCfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(acfg, func(o *s3.Options) {
		if ep := strings.TrimSpace(s3cfg.Endpoint); ep != "" {
			if !strings.HasPrefix(ep, "http://") && !strings.HasPrefix(ep, "https://") {
				ep = "https://" + ep
			}
			if u, uerr := url.Parse(ep); uerr == nil {
				o.BaseEndpoint = aws.String(u.String())
			}
		}
		o.UsePathStyle = s3cfg.UsePathStyle
	})

	return &S3Store{
		uploader:  manager.NewUploader(client),
		bucket:    s3cfg.Bucket,
		publicURL: strings.TrimRight(s3cfg.PublicURL, "/"),
	}, nil
}

func (s *S3Store) Save(ctx context.Context, name string, fh *multipart.FileHeader) (string, error) {
	file, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	key := path.Join("images", name)
	_, err = s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(fh.Header.Get("Content-Type")),
		Metadata: map[string]string{
			"name": fh.Filename,
		},
	})
	if err != nil {
		return "", err
	}

	if s.publicURL != "" {
		return s.publicURL + "/" + key, nil
	}
	return "/" + key, nil
}
