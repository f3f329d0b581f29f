// Package notify turns a Payload into a delivered notification: it renders
// the protocol envelope, stores it in a content-addressed store and submits
// the on-chain call that references it.
//
// Failures never escape as panics or errors from Send. They are reported on
// the returned Outcome so a runner can account for each item independently.
package notify

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/chainnotify/internal/ledger"
	"github.com/gabapcia/chainnotify/internal/metrics"
	"github.com/gabapcia/chainnotify/internal/pkg/logger"
	"github.com/gabapcia/chainnotify/internal/pkg/resilience/retry"
	"github.com/gabapcia/chainnotify/internal/pkg/validator"

	"golang.org/x/crypto/sha3"
)

var (
	// ErrInvalidPayload is reported when a payload fails validation.
	ErrInvalidPayload = errors.New("invalid notification payload")

	// ErrUpload is reported when the content store rejects the envelope.
	ErrUpload = errors.New("content upload failed")

	// ErrDelivery is reported when the notification transaction fails.
	ErrDelivery = errors.New("notification delivery failed")
)

// CoreABI is the minimal ABI of the notification core contract.
const CoreABI = `[{"type":"function","name":"sendNotification","stateMutability":"nonpayable","inputs":[{"name":"_recipient","type":"address"},{"name":"_identity","type":"bytes"}],"outputs":[]}]`

// ContentRef is the content address returned by a ContentStore.
type ContentRef string

// ContentStore stores envelopes and returns their content address.
type ContentStore interface {
	Upload(ctx context.Context, content []byte) (ContentRef, error)
}

// Publisher submits signed contract calls.
type Publisher interface {
	SubmitTransaction(ctx context.Context, call ledger.ContractCall, senderKey string) (ledger.TxHash, error)
}

// Delivery is one request to the dispatcher.
type Delivery struct {
	Channel   string
	Payload   Payload
	SenderKey string
	DryRun    bool
}

// Outcome records what happened to one Delivery.
type Outcome struct {
	Payload    Payload
	ContentRef ContentRef
	TxHash     ledger.TxHash
	Simulated  bool
	Err        error
}

// Dispatcher delivers notifications.
type Dispatcher interface {
	Send(ctx context.Context, d Delivery) Outcome
}

type config struct {
	storageType string
	uploadRetry retry.Retry
}

// Option configures the dispatcher.
type Option func(*config)

// WithStorageType sets the storage type prefix of the on-chain identity.
// Default: "1" (IPFS).
func WithStorageType(t string) Option {
	return func(c *config) {
		c.storageType = t
	}
}

// WithUploadRetry sets the retry policy applied to content uploads.
func WithUploadRetry(r retry.Retry) Option {
	return func(c *config) {
		c.uploadRetry = r
	}
}

type service struct {
	cfg config

	coreAddress  string
	contentStore ContentStore
	publisher    Publisher
}

var _ Dispatcher = (*service)(nil)

// placeholderRef derives a deterministic content address for dry runs.
func placeholderRef(content []byte) ContentRef {
	h := sha3.NewLegacyKeccak256()
	h.Write(content)
	return ContentRef("sim-" + hex.EncodeToString(h.Sum(nil)))
}

// identity builds the bytes argument of sendNotification.
func (s *service) identity(ref ContentRef) []byte {
	return []byte(s.cfg.storageType + "+" + string(ref))
}

func (s *service) upload(ctx context.Context, content []byte) (ContentRef, error) {
	var ref ContentRef
	err := s.cfg.uploadRetry.Execute(ctx, func() error {
		var err error
		ref, err = s.contentStore.Upload(ctx, content)
		return err
	})

	return ref, err
}

func (s *service) fail(ctx context.Context, d Delivery, out Outcome, err error) Outcome {
	out.Err = err
	metrics.DispatchesTotal.WithLabelValues(d.Channel, "failed").Inc()
	logger.Warn(ctx, "notification dispatch failed", "recipient", d.Payload.Recipient, "error", err)
	return out
}

func (s *service) Send(ctx context.Context, d Delivery) Outcome {
	out := Outcome{Payload: d.Payload}

	if err := validator.Validate(d.Payload); err != nil {
		return s.fail(ctx, d, out, errors.Join(ErrInvalidPayload, err))
	}

	content, err := d.Payload.Envelope()
	if err != nil {
		return s.fail(ctx, d, out, fmt.Errorf("%w: %w", ErrInvalidPayload, err))
	}

	if d.DryRun {
		out.ContentRef = placeholderRef(content)
		out.Simulated = true
		metrics.DispatchesTotal.WithLabelValues(d.Channel, "simulated").Inc()
		logger.Info(ctx, "notification simulated", "recipient", d.Payload.Recipient, "content_ref", out.ContentRef)
		return out
	}

	start := time.Now()

	ref, err := s.upload(ctx, content)
	if err != nil {
		return s.fail(ctx, d, out, fmt.Errorf("%w: %w", ErrUpload, err))
	}
	out.ContentRef = ref

	call := ledger.ContractCall{
		Address: s.coreAddress,
		ABI:     CoreABI,
		Method:  "sendNotification",
		Args:    []any{d.Payload.Recipient, s.identity(ref)},
	}

	tx, err := s.publisher.SubmitTransaction(ctx, call, d.SenderKey)
	if err != nil {
		return s.fail(ctx, d, out, fmt.Errorf("%w: %w", ErrDelivery, err))
	}
	out.TxHash = tx

	metrics.DispatchesTotal.WithLabelValues(d.Channel, "sent").Inc()
	logger.Info(ctx, "notification sent",
		"recipient", d.Payload.Recipient,
		"kind", d.Payload.Kind.String(),
		"content_ref", ref,
		"tx_hash", tx,
		"elapsed", time.Since(start),
	)

	return out
}

// New creates a Dispatcher delivering through the core contract at
// coreAddress.
func New(coreAddress string, cs ContentStore, p Publisher, opts ...Option) *service {
	cfg := config{
		storageType: "1",
		uploadRetry: retry.New(retry.WithAttempts(3), retry.WithDelay(500*time.Millisecond)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		cfg:          cfg,
		coreAddress:  coreAddress,
		contentStore: cs,
		publisher:    p,
	}
}
