package numbering

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		all      bool
		nonblank bool
		want     Policy
		wantErr  error
	}{
		{name: "neither", want: Plain},
		{name: "number", all: true, want: All},
		{name: "number nonblank", nonblank: true, want: NonBlank},
		{name: "both", all: true, nonblank: true, wantErr: ErrConflict},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Parse(test.all, test.nonblank)
			if test.wantErr != nil {
				require.ErrorIs(t, err, test.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func writeAll(t *testing.T, p Policy, n *Counter, lines ...string) string {
	var buf bytes.Buffer
	for _, line := range lines {
		require.NoError(t, p.Write(&buf, line, n))
	}
	return buf.String()
}

func TestPlain(t *testing.T) {
	var n Counter
	got := writeAll(t, Plain, &n, "hello", "", "world")
	assert.Equal(t, "hello\n\nworld\n", got)
	assert.Equal(t, Counter(0), n)
}

func TestAll(t *testing.T) {
	var n Counter
	got := writeAll(t, All, &n, "hello", "", "world")
	assert.Equal(t, "     1\thello\n     2\t\n     3\tworld\n", got)
	assert.Equal(t, Counter(3), n)
}

func TestNonBlank(t *testing.T) {
	var n Counter
	got := writeAll(t, NonBlank, &n, "hello", "", "world")
	assert.Equal(t, "     1\thello\n\n     2\tworld\n", got)
	assert.Equal(t, Counter(2), n)
}

func TestNonBlankKeepsWhitespaceLines(t *testing.T) {
	var n Counter
	got := writeAll(t, NonBlank, &n, " ", "\t")
	assert.Equal(t, "     1\t \n     2\t\t\n", got)
}

func TestCounterContinues(t *testing.T) {
	n := Counter(41)
	got := writeAll(t, All, &n, "x")
	assert.Equal(t, "    42\tx\n", got)
}

func TestWideCounter(t *testing.T) {
	n := Counter(999999)
	got := writeAll(t, All, &n, "a", "b")
	assert.Equal(t, "1000000\ta\n1000001\tb\n", got)
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "plain", Plain.String())
	assert.Equal(t, "all", All.String())
	assert.Equal(t, "nonblank", NonBlank.String())
	assert.Equal(t, "Policy(7)", Policy(7).String())
}
