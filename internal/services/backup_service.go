package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	appconfig "dj-backend/internal/config"
	"dj-backend/internal/models"
	"dj-backend/internal/repositories"
	"dj-backend/internal/timeutil"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// BackupService writes JSON snapshots of the business data to S3-compatible
// storage (R2 in production). A snapshot always runs before a system cleanup.
type BackupService struct {
	cfg         *appconfig.Config
	UserRepo    *repositories.UserRepository
	BookingRepo *repositories.BookingRepository
	FinanceRepo *repositories.FinanceRepository
}

func NewBackupService(cfg *appconfig.Config, userRepo *repositories.UserRepository, bookingRepo *repositories.BookingRepository, financeRepo *repositories.FinanceRepository) *BackupService {
	return &BackupService{cfg: cfg, UserRepo: userRepo, BookingRepo: bookingRepo, FinanceRepo: financeRepo}
}

func (s *BackupService) Enabled() bool {
	return s.cfg.Backup.Enabled
}

func (s *BackupService) client(ctx context.Context) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.Backup.AccessKey,
			s.cfg.Backup.SecretKey,
			"",
		)),
		awsconfig.WithRegion(s.cfg.Backup.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("configure S3 client: %w", err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.Backup.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.Backup.Endpoint)
		}
	}), nil
}

type snapshot struct {
	TakenAt        time.Time               `json:"taken_at"`
	Users          []*models.User          `json:"users"`
	Bookings       []*models.Booking       `json:"bookings"`
	FinanceRecords []*models.FinanceRecord `json:"finance_records"`
}

// Snapshot uploads the current business data as one JSON object and returns
// the object key.
func (s *BackupService) Snapshot(ctx context.Context) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("backups not configured")
	}

	users, err := s.UserRepo.List(ctx, "")
	if err != nil {
		return "", fmt.Errorf("collect users: %w", err)
	}
	bookings, err := s.BookingRepo.List(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("collect bookings: %w", err)
	}
	records, err := s.FinanceRepo.List(ctx, "")
	if err != nil {
		return "", fmt.Errorf("collect finance records: %w", err)
	}

	data, err := json.Marshal(&snapshot{
		TakenAt:        timeutil.Now(),
		Users:          users,
		Bookings:       bookings,
		FinanceRecords: records,
	})
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	client, err := s.client(ctx)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("backups/snapshot-%s.json", timeutil.Now().Format("20060102-150405"))
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Backup.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("upload snapshot: %w", err)
	}

	log.Printf("[Backup] snapshot uploaded: %s (%d bytes)", key, len(data))
	return key, nil
}

// ListBackups lists the stored snapshot keys, newest first.
func (s *BackupService) ListBackups(ctx context.Context) ([]string, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("backups not configured")
	}

	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	result, err := client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.cfg.Backup.Bucket),
		Prefix: aws.String("backups/"),
	})
	if err != nil {
		return nil, fmt.Errorf("list backups: %w", err)
	}

	keys := make([]string, 0, len(result.Contents))
	for i := len(result.Contents) - 1; i >= 0; i-- {
		keys = append(keys, *result.Contents[i].Key)
	}
	return keys, nil
}
