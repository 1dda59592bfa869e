package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInput_TrimsLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("  TELAAHAN \n"))
	var out bytes.Buffer

	got, err := GetInput(r, "Document type:", &out)
	require.NoError(t, err)
	assert.Equal(t, "TELAAHAN", got)
	assert.Contains(t, out.String(), "Document type:")
}

func TestGetFields_CollectsUntilBlank(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("tempatTujuan=Samarinda\nperihal = Telaahan staf \n\n"))
	var out bytes.Buffer

	got, err := GetFields(r, "Fields:", &out)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"tempatTujuan": "Samarinda",
		"perihal":      "Telaahan staf",
	}, got)
}

func TestGetFields_ReportsMalformedLines(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("no-equals-here\na=1\n\n"))
	var out bytes.Buffer

	got, err := GetFields(r, "Fields:", &out)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1"}, got)
	assert.Contains(t, out.String(), "no-equals-here")
}
