// Package render is the rendering backend: it paints layout payloads onto
// A4 pages by converting embedded HTML templates through Gotenberg, and
// produces the supplementary XLSX workbook.
package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/dampeche/seadoc/web"
)

// Exporter wraps Gotenberg interactions for document PDF generation.
type Exporter struct {
	Endpoint  string
	Client    *http.Client
	templates *template.Template
}

// NewExporter parses the embedded document templates.
func NewExporter(endpoint string, client *http.Client) (*Exporter, error) {
	funcMap := template.FuncMap{
		"upper": strings.ToUpper,
	}
	tpl, err := template.New("documents").Funcs(funcMap).ParseFS(web.Templates, "templates/documents/*.html")
	if err != nil {
		return nil, fmt.Errorf("render: parse templates: %w", err)
	}
	return &Exporter{Endpoint: endpoint, Client: client, templates: tpl}, nil
}

// Render executes the named template and converts the HTML to PDF bytes.
func (e *Exporter) Render(ctx context.Context, templateName string, data any) ([]byte, error) {
	if e == nil {
		return nil, fmt.Errorf("render: exporter not initialized")
	}
	endpoint := strings.TrimRight(e.Endpoint, "/")
	if endpoint == "" {
		return nil, fmt.Errorf("render: gotenberg endpoint required")
	}
	client := e.Client
	if client == nil {
		client = http.DefaultClient
	}

	html, err := e.buildHTML(templateName, data)
	if err != nil {
		return nil, err
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("files", "index.html")
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(part, html); err != nil {
		return nil, err
	}

	// A4 in inches.
	fields := map[string]string{
		"paperWidth":   "8.27",
		"paperHeight":  "11.69",
		"marginTop":    "0.4",
		"marginBottom": "0.4",
		"marginLeft":   "0.4",
		"marginRight":  "0.4",
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"/forms/chromium/convert/html", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("render: gotenberg response %d: %s", resp.StatusCode, string(data))
	}
	return io.ReadAll(resp.Body)
}

func (e *Exporter) buildHTML(templateName string, data any) (string, error) {
	if e.templates == nil {
		return "", fmt.Errorf("render: templates not initialized")
	}
	buf := &bytes.Buffer{}
	if err := e.templates.ExecuteTemplate(buf, templateName, data); err != nil {
		return "", fmt.Errorf("render: execute %s: %w", templateName, err)
	}
	return buf.String(), nil
}
