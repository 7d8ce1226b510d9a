package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/skyfield-labs/mission-client/config"
)

const instrumentationName = "github.com/skyfield-labs/mission-client/client"

// Client talks to the mission API. It holds no per-request state and no
// cache, so a single instance is safe to share across callers; every read is
// a fresh round trip.
type Client struct {
	baseURL    string
	httpClient *http.Client

	tracer      trace.Tracer
	requests    metric.Int64Counter
	uploadBytes metric.Int64Counter

	Organizations *OrganizationClient
	Projects      *ProjectClient
	Missions      *MissionClient
	Assets        *AssetClient
	Tasks         *TaskClient
}

func InitClient(cfg *config.EnvConfig) *Client {
	if cfg.API.BaseURL == "" {
		panic("Mission API base URL is not configured")
	}

	// Timeout defaults to 0 (none); a hanging request blocks its caller
	// until the passed context is cancelled.
	var timeout time.Duration
	if cfg.API.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.API.TimeoutSeconds) * time.Second
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.API.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tracer:     otel.Tracer(instrumentationName),
	}

	meter := otel.Meter(instrumentationName)
	c.requests, _ = meter.Int64Counter("mission.client.requests")
	c.uploadBytes, _ = meter.Int64Counter("mission.client.upload.bytes")

	c.Organizations = &OrganizationClient{api: c}
	c.Projects = &ProjectClient{api: c}
	c.Missions = &MissionClient{api: c}
	c.Assets = &AssetClient{api: c}
	c.Tasks = &TaskClient{api: c}

	return c
}

// doJSON performs one JSON round trip against path and decodes the response
// envelope into out. No retries.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return newDecodeError(err, "failed to encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	ctx, span := c.tracer.Start(ctx, fmt.Sprintf("%s %s", method, path))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return newTransportError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return newTransportError(err)
	}
	defer resp.Body.Close()

	c.countRequest(ctx, method, resp.StatusCode)
	return c.finish(span, decodeResponse(resp, out))
}

// doMultipart performs one multipart round trip carrying exactly one binary
// part named "file", streamed through an io.Pipe so large observation files
// are never buffered in memory.
func (c *Client) doMultipart(ctx context.Context, path string, file UploadFile, out any) error {
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	pr, pw := io.Pipe()
	w := multipart.NewWriter(pw)

	errChan := make(chan error, 1)
	go func() {
		defer pw.Close()
		defer w.Close()

		h := make(map[string][]string)
		h["Content-Disposition"] = []string{
			fmt.Sprintf(`form-data; name="file"; filename="%s"`, file.Name),
		}
		h["Content-Type"] = []string{contentType}

		fw, err := w.CreatePart(h)
		if err != nil {
			errChan <- fmt.Errorf("failed to create form file: %w", err)
			return
		}

		if _, err := io.Copy(fw, file.Reader); err != nil {
			errChan <- fmt.Errorf("failed to stream file data: %w", err)
			return
		}

		errChan <- nil
	}()

	ctx, span := c.tracer.Start(ctx, fmt.Sprintf("%s %s", http.MethodPost, path),
		trace.WithAttributes(attribute.String("mission.upload.file", file.Name)))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, pr)
	if err != nil {
		pr.Close()
		return newTransportError(err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)

	// Wait for the writer goroutine so a mid-stream failure does not go
	// unnoticed. A received response always wins over the pipe error: a
	// server rejecting the upload early closes the body without draining
	// it, which breaks the pipe, but the error envelope it sent is the
	// failure the caller needs. The stream error stands on its own only
	// when there is no response at all.
	writeErr := <-errChan
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		if writeErr != nil {
			return c.finish(span, newTransportError(writeErr))
		}
		return newTransportError(err)
	}
	defer resp.Body.Close()

	c.countRequest(ctx, http.MethodPost, resp.StatusCode)
	if file.Size > 0 {
		c.uploadBytes.Add(ctx, file.Size)
	}
	return c.finish(span, decodeResponse(resp, out))
}

func (c *Client) countRequest(ctx context.Context, method string, status int) {
	c.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("http.request.method", method),
		attribute.Int("http.response.status_code", status),
	))
}

func (c *Client) finish(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
