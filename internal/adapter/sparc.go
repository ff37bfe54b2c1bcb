package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/MKhiriev/reva-widget/internal/config"
	"github.com/MKhiriev/reva-widget/internal/logger"
	"github.com/MKhiriev/reva-widget/internal/utils"
)

type sparcAdapter struct {
	client *utils.HTTPClient
	source ConfigSource

	logger *logger.Logger
}

// NewSparcAdapter constructs the resty-backed [SparcAdapter]. source is read
// on every call; cfg.RequestTimeout bounds each request.
func NewSparcAdapter(source ConfigSource, cfg config.Sparc, l *logger.Logger) (SparcAdapter, error) {
	if source == nil {
		return nil, errors.New("sparc adapter needs a config source")
	}
	if l == nil {
		l = logger.Nop()
	}

	return &sparcAdapter{
		client: utils.NewHTTPClient(cfg.RequestTimeout),
		source: source,
		logger: l.WithComponent("sparc"),
	}, nil
}

// Get implements [SparcAdapter].
func (a *sparcAdapter) Get(ctx context.Context, p string, query url.Values) (Response, error) {
	baseURL, err := normalizeBaseURL(a.source.UseConfig().SparcAPI())
	if err != nil {
		return Response{}, err
	}

	rel, err := cleanPath(p)
	if err != nil {
		return Response{}, err
	}
	target := baseURL + "/" + rel

	start := time.Now()
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		Get(target)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %w", ErrSparcUnreachable, err)
	}

	a.logger.Debug().
		Str("url", target).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("sparc request")

	return Response{
		StatusCode:  resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
		Body:        resp.Body(),
	}, nil
}

// cleanPath resolves dot segments in p relative to the base URL. Paths that
// climb above the base, in plain or percent-encoded form, are rejected.
func cleanPath(p string) (string, error) {
	decoded, err := url.PathUnescape(p)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSparcPath, err)
	}
	if escapesBase(decoded) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSparcPath, p)
	}

	rel := strings.TrimLeft(p, "/")
	if rel == "" {
		return "", nil
	}

	cleaned := path.Clean(rel)
	if cleaned == "." {
		return "", nil
	}
	if strings.HasSuffix(rel, "/") {
		cleaned += "/"
	}
	return cleaned, nil
}

func escapesBase(p string) bool {
	c := path.Clean(strings.TrimLeft(p, "/"))
	return c == ".." || strings.HasPrefix(c, "../")
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrSparcAPINotConfigured
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSparcAPI, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q must be an absolute http(s) url", ErrInvalidSparcAPI, raw)
	}

	return strings.TrimRight(u.String(), "/"), nil
}
