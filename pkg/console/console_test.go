package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorMode(t *testing.T) {
	for _, value := range []string{"auto", "always", "never"} {
		mode, err := ParseColorMode(value)
		require.NoError(t, err)
		assert.Equal(t, ColorMode(value), mode)
	}

	mode, err := ParseColorMode("")
	require.NoError(t, err)
	assert.Equal(t, ColorAuto, mode)

	_, err = ParseColorMode("sometimes")
	require.Error(t, err)
}

func TestPrinter(t *testing.T) {
	t.Run("Plain", func(t *testing.T) {
		out := new(bytes.Buffer)
		p := New(out, ColorNever)

		p.Usage("run_bot")
		p.Starting("demo.py")
		p.Finished()

		assert.Equal(
			t,
			"ERROR: No script specified.\n"+
				"Usage: run_bot your_script.py [arguments]\n"+
				"Running demo.py...\n"+
				"Script execution finished.\n",
			out.String(),
		)
	})

	t.Run("AutoOnABufferIsPlain", func(t *testing.T) {
		out := new(bytes.Buffer)
		p := New(out, ColorAuto)

		p.Finished()

		assert.Equal(t, "Script execution finished.\n", out.String())
	})

	t.Run("Always", func(t *testing.T) {
		out := new(bytes.Buffer)
		p := New(out, ColorAlways)

		p.Starting("demo.py")

		assert.Contains(t, out.String(), "\x1b[")
		assert.Contains(t, out.String(), "Running demo.py...")
	})
}
