package s3blob

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tradex-app/tradex/internal/domain"
)

// multipartThreshold is the payload size above which uploads switch to the
// multipart manager.
const multipartThreshold = 5 * 1024 * 1024

// WatchlistSource provides the items to snapshot.
type WatchlistSource interface {
	Items() []domain.MarketItem
}

// Archiver periodically exports the watchlist as timestamped JSON objects.
type Archiver struct {
	client   *Client
	source   WatchlistSource
	interval time.Duration
	logger   *slog.Logger
}

// NewArchiver creates an Archiver snapshotting source every interval.
func NewArchiver(client *Client, source WatchlistSource, interval time.Duration, logger *slog.Logger) *Archiver {
	return &Archiver{
		client:   client,
		source:   source,
		interval: interval,
		logger:   logger.With(slog.String("component", "archiver")),
	}
}

// Run archives on every tick until ctx is done. Failed exports are logged
// and retried on the next tick.
func (a *Archiver) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := a.Archive(ctx); err != nil {
				a.logger.Warn("archiver: snapshot failed",
					slog.String("error", err.Error()))
			}
		}
	}
}

// Archive uploads one snapshot of the current watchlist.
func (a *Archiver) Archive(ctx context.Context) error {
	items := a.source.Items()

	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("s3blob: marshal snapshot: %w", err)
	}

	now := time.Now().UTC()
	key := fmt.Sprintf("watchlist/%s/snapshot-%s.json",
		now.Format("2006/01/02"), now.Format("150405"))

	if len(payload) >= multipartThreshold {
		uploader := manager.NewUploader(a.client.S3())
		_, err = uploader.Upload(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(a.client.Bucket()),
			Key:         aws.String(key),
			Body:        bytes.NewReader(payload),
			ContentType: aws.String("application/json"),
		})
	} else {
		_, err = a.client.S3().PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(a.client.Bucket()),
			Key:         aws.String(key),
			Body:        bytes.NewReader(payload),
			ContentType: aws.String("application/json"),
		})
	}
	if err != nil {
		return fmt.Errorf("s3blob: put snapshot %s: %w", key, err)
	}

	a.logger.Info("archiver: snapshot uploaded",
		slog.String("key", key),
		slog.Int("markets", len(items)),
	)
	return nil
}
