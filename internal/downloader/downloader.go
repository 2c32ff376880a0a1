// Package downloader fetches files over HTTP(S) for the agent, e.g.
// kernel probe objects. Transport debugging and TLS material come from
// the resolved configuration; the TLS sub-object is decoded here, at the
// consumer boundary, never by the configuration resolver.
package downloader

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/hostmon/collector/internal/logger"
)

const (
	defaultRetryCount = 3
	defaultRetryWait  = 1 * time.Second
)

// tlsOptions is the shape of the opaque tlsConfig sub-object of the user
// configuration.
type tlsOptions struct {
	CACertPath     string `json:"caCertPath"`
	ClientCertPath string `json:"clientCertPath"`
	ClientKeyPath  string `json:"clientKeyPath"`
}

// Config is the slice of the resolved agent configuration the
// downloader cares about.
type Config interface {
	CurlVerbose() bool
	TLSConfig() json.RawMessage
}

// Downloader is a retrying HTTP file downloader built on resty.
type Downloader struct {
	client *resty.Client
	log    *logger.Logger
}

// New builds a Downloader from the resolved configuration. An error is
// returned only when the TLS material is present but unusable.
func New(cfg Config, log *logger.Logger) (*Downloader, error) {
	if log == nil {
		log = logger.Nop()
	}

	client := resty.New().
		SetRetryCount(defaultRetryCount).
		SetRetryWaitTime(defaultRetryWait).
		SetDebug(cfg.CurlVerbose())

	if raw := cfg.TLSConfig(); len(raw) > 0 {
		tlsConfig, err := buildTLSConfig(raw)
		if err != nil {
			return nil, err
		}

		client.SetTLSClientConfig(tlsConfig)
	}

	return &Downloader{client: client, log: log}, nil
}

// Download fetches url into dest. The body is written to a temporary
// file first and renamed into place, so dest is never left half
// written.
func (d *Downloader) Download(ctx context.Context, url, dest string) error {
	tmp := fmt.Sprintf("%s.%s.part", dest, uuid.NewString())

	resp, err := d.client.R().
		SetContext(ctx).
		SetOutput(tmp).
		Get(url)
	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("error downloading %s: %w", url, err)
	}

	if resp.IsError() {
		_ = os.Remove(tmp)
		return fmt.Errorf("error downloading %s: HTTP status %d", url, resp.StatusCode())
	}

	if err := os.Rename(tmp, dest); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("error moving download into place: %w", err)
	}

	d.log.Info().Str("url", url).Str("dest", dest).Msg("download complete")
	return nil
}

func buildTLSConfig(raw json.RawMessage) (*tls.Config, error) {
	var opts tlsOptions
	if err := json.Unmarshal(raw, &opts); err != nil {
		return nil, fmt.Errorf("error decoding tlsConfig: %w", err)
	}

	tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}

	if opts.CACertPath != "" {
		pem, err := os.ReadFile(opts.CACertPath)
		if err != nil {
			return nil, fmt.Errorf("error reading CA certificate: %w", err)
		}

		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no usable certificates in %s", opts.CACertPath)
		}

		tlsConfig.RootCAs = pool
	}

	if opts.ClientCertPath != "" || opts.ClientKeyPath != "" {
		cert, err := tls.LoadX509KeyPair(opts.ClientCertPath, opts.ClientKeyPath)
		if err != nil {
			return nil, fmt.Errorf("error loading client certificate: %w", err)
		}

		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	return tlsConfig, nil
}
