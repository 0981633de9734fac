package notify

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workspace-grid/pkg/logger"
)

func quietService(notifyCommand string) (*NotifyService, *bytes.Buffer) {
	var buf bytes.Buffer
	n := NewNotifyService(notifyCommand, logger.Nop())
	n.tools = nil
	n.terminal.out = &buf
	return n, &buf
}

func TestShowFallsBackToTerminal(t *testing.T) {
	color.NoColor = true
	n, buf := quietService("")

	require.NoError(t, n.Show("no focused workspace", Error))
	assert.Equal(t, "workspace-grid - Error: no focused workspace\n", buf.String())

	buf.Reset()
	require.NoError(t, n.Show("hello", Info))
	assert.Equal(t, "workspace-grid - Info: hello\n", buf.String())
}

func TestShowUsesNotifyCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")
	n, buf := quietService("printf '%s|%s' > " + out)

	require.NoError(t, n.Show("it's broken", Error))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "ERROR|it's broken", string(data))
	assert.Zero(t, buf.Len())
}

func TestShowFailingNotifyCommandFallsBack(t *testing.T) {
	color.NoColor = true
	n, buf := quietService("false")

	require.NoError(t, n.Show("boom", Error))
	assert.Contains(t, buf.String(), "boom")
}
