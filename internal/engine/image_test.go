package engine

import (
	"strings"
	"testing"
)

func TestProcessPullOutput(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		wantErr string
	}{
		{
			name: "successful pull",
			output: `{"status":"Pulling from library/mysql"}
{"status":"Downloading","progress":"[=>   ] 1MB/50MB"}
{"status":"Extracting","progress":"[====>] 50MB/50MB"}
{"status":"Status: Downloaded newer image for mysql:8"}`,
		},
		{
			name:    "pull error surfaced",
			output:  `{"error":"manifest for mysql:99 not found"}`,
			wantErr: "manifest for mysql:99 not found",
		},
		{
			name:   "garbage lines skipped",
			output: "not json\n{\"status\":\"Pulling\"}\n",
		},
		{
			name:   "empty output",
			output: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := processPullOutput(strings.NewReader(tt.output))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("processPullOutput() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("processPullOutput() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	e := ErrDockerNotRunning(nil)
	msg := e.FormatUserError()
	if !strings.Contains(msg, "Next Steps") {
		t.Fatalf("FormatUserError() = %q, want next steps section", msg)
	}
}
