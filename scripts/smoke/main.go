package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

var baseURL = "http://localhost:3001/api"

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func prettyPrint(raw []byte) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		fmt.Println(string(raw))
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, nil, err
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

// step sends one request, prints the result and decodes data into out.
func step(title, method, url string, body, out interface{}) {
	color.Yellow("\n%s", title)
	resp, raw, err := sendRequest(method, url, body)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	if resp.StatusCode >= 400 {
		color.Red("Status: %s", resp.Status)
	} else {
		color.Green("Status: %s", resp.Status)
	}
	prettyPrint(raw)

	if out == nil || resp.StatusCode >= 400 {
		return
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		color.Red("Failed to decode envelope: %v", err)
		os.Exit(1)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		color.Red("Failed to decode data: %v", err)
		os.Exit(1)
	}
}

type idOnly struct {
	Id int64 `json:"id"`
}

type generateData struct {
	Ep struct {
		Id     int64  `json:"id"`
		Status string `json:"status"`
	} `json:"ep"`
	Prompt string `json:"prompt"`
}

func main() {
	if v := os.Getenv("SMOKE_BASE_URL"); v != "" {
		baseURL = v
	}
	suffix := time.Now().Format("150405")

	color.Cyan("Starting brand kit admin API walkthrough against %s\n", baseURL)

	step("1. Ping", "GET", "/ping", nil, nil)

	var topic idOnly
	step("2. Create topic", "POST", "/topics", map[string]interface{}{
		"name": "Smoke " + suffix,
	}, &topic)

	var subtopic idOnly
	step("3. Create subtopic", "POST", "/subtopics", map[string]interface{}{
		"topic_id": topic.Id,
		"name":     "Smoke subtopic",
	}, &subtopic)

	var ent idOnly
	step("4. Create entity", "POST", "/entities", map[string]interface{}{
		"subtopic_id": subtopic.Id,
		"name":        "Smoke Entity " + suffix,
		"colors":      "black, orange",
		"style":       "flat",
	}, &ent)

	var pt idOnly
	step("5. Create product type", "POST", "/product_types", map[string]interface{}{
		"name": "Smoke Mug " + suffix,
	}, &pt)

	var gen generateData
	step("6. Request generation", "POST", "/generate", map[string]interface{}{
		"entityId":      ent.Id,
		"productTypeId": pt.Id,
	}, &gen)
	color.Cyan("Row %d is %s", gen.Ep.Id, gen.Ep.Status)

	step("7. Mark as succeeded", "PUT", fmt.Sprintf("/entity_products/%d", gen.Ep.Id), map[string]interface{}{
		"status":              "succeeded",
		"image_generated":     true,
		"generated_image_url": "https://example.com/smoke.png",
	}, nil)

	step("8. Free-text status is stored as sent", "PUT", fmt.Sprintf("/entity_products/%d", gen.Ep.Id), map[string]interface{}{
		"status":       "awaiting review",
		"design_notes": "check the crest colors",
	}, nil)

	step("9. List entity products", "GET", fmt.Sprintf("/entities/%d/products", ent.Id), nil, nil)

	color.Cyan("\nWalkthrough completed.")
}
