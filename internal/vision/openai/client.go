package openai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/closingdesk/contract-extract/internal/extract"
	"github.com/closingdesk/contract-extract/internal/vision"
)

// ExtractGroup implements vision.FieldExtractor using vision-capable
// chat/completions: one page raster plus the group's declared instruction,
// structured JSON back. Failures are classified for the retry policy: HTTP
// and transport errors by status, anything wrong with the payload itself as
// terminal.
func (c *Client) ExtractGroup(ctx context.Context, req vision.GroupRequest) ([]extract.Attempt, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("vision.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"page", req.Page,
		"group", req.Group,
		"image_bytes", len(req.ImagePNG),
		"fields", len(req.Specs),
	)

	groupSchema := vision.BuildGroupJSONSchema(req.Specs)
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(req.ImagePNG)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": systemPrompt(groupSchema)},
			{"role": "user", "content": []map[string]any{
				{"type": "text", "text": req.Instruction + "\n\nReturn ONLY JSON that matches the provided schema. Omit any field you cannot read."},
				{"type": "image_url", "image_url": map[string]any{"url": dataURL, "detail": c.cfg.Detail}},
			}},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, status, httpErr := vision.SendJSON(ctx, c.httpClient, endpoint, body, map[string]string{
		"Authorization": "Bearer " + c.cfg.APIKey,
	}, c.log)
	if httpErr != nil {
		c.log.Error("vision.extract.http_error",
			"req_id", rid, "status", status, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		if status != 0 && vision.ClassifyStatus(status) == vision.KindTerminal {
			return nil, raw, vision.Terminal("chat_completions", status, httpErr)
		}
		return nil, raw, vision.Transient("chat_completions", status, httpErr)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("vision.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, raw, vision.Terminal("decode_envelope", 0, err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("vision.extract.no_choices",
			"req_id", rid, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, raw, vision.Terminal("decode_envelope", 0, fmt.Errorf("no choices in response"))
	}
	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	cleaned, _, err := vision.NormalizeAndSanitizeJSON(content, req.Specs, c.log)
	if err != nil {
		c.log.Error("vision.extract.sanitize_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, content, vision.Terminal("sanitize", 0, err)
	}
	if err := vision.ValidateJSONAgainstSchema(groupSchema, cleaned); err != nil {
		c.log.Error("vision.extract.schema_validation_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, cleaned, vision.Terminal("schema_validation", 0, err)
	}

	attempts, err := vision.ParseAttempts(req.Page, req.Specs, cleaned)
	if err != nil {
		return nil, cleaned, vision.Terminal("parse_fields", 0, err)
	}

	c.log.Info("vision.extract.ok",
		"req_id", rid,
		"page", req.Page,
		"group", req.Group,
		"fields_returned", len(attempts),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return attempts, cleaned, nil
}

func systemPrompt(schemaMap map[string]any) string {
	parts := []string{
		"You read scanned real-estate purchase agreement pages.",
		"Return ONLY JSON that matches the JSON Schema provided.",
		"Use ISO-8601 dates (YYYY-MM-DD) when a date is unambiguous; otherwise return it exactly as written.",
		"Report checkbox selections by the printed option letter.",
		"Never output null. If a field is not legible on this page, omit it.",
		"JSON Schema:\n" + mustJSON(schemaMap),
	}
	return strings.Join(parts, " ")
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
