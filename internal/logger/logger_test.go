// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerQuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	InitLogger(&buf, false)

	Debug("hidden")
	assert.Empty(t, buf.String())

	Warn("shown", "arg", "2D99")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "2D99", rec["arg"])
}

func TestInitLoggerVerbose(t *testing.T) {
	var buf bytes.Buffer
	InitLogger(&buf, true)
	buf.Reset()

	Debug("rolled", "count", 2)
	assert.Contains(t, buf.String(), `"msg":"rolled"`)
	assert.Contains(t, buf.String(), `"level":"DEBUG"`)
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	InitLogger(&buf, false)

	Error("Command failed.", "error", "unsupported shell")
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"error":"unsupported shell"`)
}

func TestCheckLoggerInitializes(t *testing.T) {
	defaultLogger = nil
	assert.NotPanics(t, func() { Debug("no logger yet") })
	assert.NotNil(t, defaultLogger)
}
