package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armdeck/armdeck/internal/runner"
)

func TestStatusBeforeFirstUpIsNotAnError(t *testing.T) {
	var buf bytes.Buffer
	fake := &runner.FakeCommandRunner{}
	composeFile := filepath.Join(t.TempDir(), "docker-compose.yml")

	err := printServiceStatus(context.Background(), composeFile, "armdeck", fake, &buf)

	require.NoError(t, err)
	assert.Empty(t, fake.Calls, "no compose invocation without a compose file")
	assert.Contains(t, buf.String(), "Stack not created yet")
}

func TestStatusListsServicesWhenComposeFileExists(t *testing.T) {
	var buf bytes.Buffer
	fake := &runner.FakeCommandRunner{}
	composeFile := filepath.Join(t.TempDir(), "docker-compose.yml")
	require.NoError(t, os.WriteFile(composeFile, []byte("services: {}\n"), 0644))

	err := printServiceStatus(context.Background(), composeFile, "armdeck", fake, &buf)

	require.NoError(t, err)
	require.Len(t, fake.Calls, 1)
	assert.Equal(t,
		"docker compose -f "+composeFile+" -p armdeck ps -a",
		fake.Calls[0].String())
}

func TestRelevantImage(t *testing.T) {
	tests := []struct {
		ref  string
		want bool
	}{
		{"mysql:8", true},
		{"arm64v8/mysql:8", true},
		{"eclipse-temurin:17-jdk", true},
		{"arm64v8/openjdk:17-jdk", true},
		{"nginx:latest", false},
		{"postgres:16", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, relevantImage(tt.ref), tt.ref)
	}
}

func TestPrintImageTable(t *testing.T) {
	var buf bytes.Buffer
	printImageTable(&buf, []string{"mysql:8", "nginx:latest", "eclipse-temurin:17-jdk"})

	out := buf.String()
	assert.Contains(t, out, "REPOSITORY")
	assert.Contains(t, out, "mysql")
	assert.Contains(t, out, "17-jdk")
	assert.NotContains(t, out, "nginx")
}

func TestPrintImageTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	printImageTable(&buf, []string{"nginx:latest"})
	assert.True(t, strings.Contains(buf.String(), "(none)"))
}
