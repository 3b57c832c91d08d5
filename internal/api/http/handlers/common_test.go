package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/vedavayu/clinic-backend/internal/media"
	apperrors "github.com/vedavayu/clinic-backend/pkg/util"
)

// newTestApp wires the error rendering the real middleware stack provides so
// handlers can be exercised end to end.
func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			domainErr := apperrors.ToDomainError(err)
			c.Status(domainErr.HTTPStatus)
			return c.JSON(fiber.Map{"error": fiber.Map{
				"code":    domainErr.Code,
				"message": domainErr.Message,
			}})
		}
		return nil
	})
	return app
}

// fiberApp adds a fatal-on-error request helper.
type fiberApp struct{ *fiber.App }

func (a *fiberApp) test(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := a.App.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	return resp
}

type fakeMediaStore struct {
	uploadFn func(ctx context.Context, localPath, folder string) (media.Asset, error)
	deleteFn func(ctx context.Context, publicID string) error
	deletes  []string
}

func (f *fakeMediaStore) Upload(ctx context.Context, localPath, folder string) (media.Asset, error) {
	if f.uploadFn != nil {
		return f.uploadFn(ctx, localPath, folder)
	}
	return media.Asset{
		PublicID:  folder + "/asset-1",
		SecureURL: "https://cdn.example.com/" + folder + "/asset-1",
	}, nil
}

func (f *fakeMediaStore) Delete(ctx context.Context, publicID string) error {
	f.deletes = append(f.deletes, publicID)
	if f.deleteFn != nil {
		return f.deleteFn(ctx, publicID)
	}
	return nil
}

func (f *fakeMediaStore) OptimizedURL(publicID string, width, height int) string {
	return "https://cdn.example.com/" + publicID
}

func newTestCoordinator(t *testing.T, store media.Store) *media.Coordinator {
	t.Helper()
	stager, err := media.NewStager(t.TempDir())
	if err != nil {
		t.Fatalf("new stager: %v", err)
	}
	return media.NewCoordinator(store, stager, zap.NewNop(), nil)
}

func multipartRequest(t *testing.T, method, target string, fields map[string]string, files map[string][]byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	for field, content := range files {
		part, err := w.CreateFormFile(field, field+".jpg")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	return body
}

func errorCode(t *testing.T, body map[string]any) string {
	t.Helper()
	errObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object, got %v", body)
	}
	code, _ := errObj["code"].(string)
	return code
}
