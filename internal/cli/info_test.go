package cli

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestInfoJSON_WritesToCommandWriter(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"info", "--json"})
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		infoJSON = false
	}()

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute info --json: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected JSON on the command writer, got nothing")
	}
	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if got["platform"] == "" || got["go_version"] == "" {
		t.Fatalf("missing fields in info output: %v", got)
	}
}

func TestServeFlags_Registered(t *testing.T) {
	addr := serveCmd.Flags().Lookup("addr")
	if addr == nil || addr.DefValue != "127.0.0.1:8787" {
		t.Fatalf("unexpected addr flag: %+v", addr)
	}
	open := serveCmd.Flags().Lookup("open")
	if open == nil || open.DefValue != "false" {
		t.Fatalf("unexpected open flag: %+v", open)
	}
}
