package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adscope/adkit/textproc"
)

func TestRenderFeatureTable(t *testing.T) {
	features := textproc.ExtractFeatures("BUY NOW!!!")
	rendered := renderFeatureTable(features)

	if !strings.Contains(rendered, "exclamation_count") {
		t.Fatalf("expected feature keys in table, got:\n%s", rendered)
	}
	if !strings.Contains(rendered, "0.6000") {
		t.Fatalf("expected caps_ratio with four decimals, got:\n%s", rendered)
	}
}

func TestAnalyzeCommand_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "copy.txt")
	if err := os.WriteFile(path, []byte("Sign up today and save 50% on tickets, only $20!"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cmd := newAnalyzeCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	rendered := out.String()
	for _, want := range []string{"word_count", "percentage_mentions", "Sentiment:", "CTA phrases: Sign up"} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, rendered)
		}
	}
}

func TestAnalyzeCommand_HTML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	page := `<html><head><title>Deal Page</title></head>
	<body><main><p>Act now and get 30% off.</p></main></body></html>`
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cmd := newAnalyzeCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path, "--html"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	rendered := out.String()
	if !strings.Contains(rendered, "Title: Deal Page") {
		t.Fatalf("expected page title in output, got:\n%s", rendered)
	}
	if !strings.Contains(rendered, "CTA phrases: Act now") {
		t.Fatalf("expected CTA phrase in output, got:\n%s", rendered)
	}
}

func TestCleanCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "raw.txt")
	if err := os.WriteFile(path, []byte("<b>Big</b>   sale at https://x.example/now"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cmd := newCleanCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "Big sale at" {
		t.Fatalf("unexpected cleaned output %q", got)
	}
}
