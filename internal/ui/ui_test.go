package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tuido/internal/model"
)

func TestProgressBar(t *testing.T) {
	require.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	require.Equal(t, "░░░░░   0%", ProgressBar(0, 0, 1))
	require.Equal(t, "█████ 300%", ProgressBar(9, 3, 5))
}

func TestPanelMono(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var buf bytes.Buffer
	Panel(&buf, []string{"ab", "é wide"})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, []string{
		"+--------+",
		"| ab     |",
		"| é wide |",
		"+--------+",
	}, lines)
}

func TestPanelIgnoresNonColourEscapes(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	link := "\x1b]8;;http://x\x07ab\x1b]8;;\x07"
	var buf bytes.Buffer
	Panel(&buf, []string{link, "abcd", fgRed + "é" + reset})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, []string{
		"+------+",
		"| " + link + "   |",
		"| abcd |",
		"| " + fgRed + "é" + reset + "    |",
		"+------+",
	}, lines)
}

func TestThemes(t *testing.T) {
	defer SetTheme("classic")
	for _, name := range Themes {
		require.True(t, HasTheme(name))
	}
	require.True(t, HasTheme("Mono"))
	require.False(t, HasTheme("solarized"))

	SetTheme("solarized")
	require.Equal(t, themes["classic"], Current())

	SetTheme("mono")
	require.Equal(t, "[x]", Current().BoxChecked)
	require.Equal(t, "x", C(fgRed, "x"))
}

func TestStatusColor(t *testing.T) {
	th := themes["classic"]
	require.Equal(t, fgYellow, th.StatusColor(model.Pending))
	require.Equal(t, fgBlue, th.StatusColor(model.InProgress))
	require.Equal(t, fgGreen, th.StatusColor(model.Completed))
	require.Empty(t, themes["mono"].StatusColor(model.Completed))
}

func TestColorDisabled(t *testing.T) {
	SetColorForcing(true, true)
	defer SetColorForcing(false, false)
	require.Equal(t, "x", C(fgRed, "x"))
}

func TestColorForced(t *testing.T) {
	SetColorForcing(true, false)
	defer SetColorForcing(false, false)
	require.Equal(t, fgRed+"x"+reset, C(fgRed, "x"))
	require.Equal(t, "x", C("", "x"))
}

func TestOKFail(t *testing.T) {
	SetColorForcing(false, true)
	defer SetColorForcing(false, false)

	var buf bytes.Buffer
	OK(&buf, "saved")
	Fail(&buf, "nope")
	require.Equal(t, "✔ saved\n✖ nope\n", buf.String())
}
