package timeline

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(content string, shift int64) []string {
	return slices.Collect(Lines(Replay([]byte(content), shift)))
}

func TestParseEntry(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   Entry
		wantOK bool
	}{
		{name: "completed", line: "100,hello", want: Entry{Timestamp: 100, Message: "hello", HasMessage: true}, wantOK: true},
		{name: "open", line: "100,", want: Entry{Timestamp: 100, Message: "", HasMessage: true}, wantOK: true},
		{name: "no comma", line: "100", want: Entry{Timestamp: 100}, wantOK: true},
		{name: "comma in message", line: "100,a,b", want: Entry{Timestamp: 100, Message: "a,b", HasMessage: true}, wantOK: true},
		{name: "bad timestamp", line: "abc,hello", wantOK: false},
		{name: "empty", line: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseEntry(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReplay_SingleAppend(t *testing.T) {
	got := collect("1700000000,hello\n1700000000,", 0)
	assert.Equal(t, []string{"0:00:00 hello"}, got)
}

func TestReplay_TwoAppends61SecondsApart(t *testing.T) {
	content := "1700000000,first\n1700000061,second\n1700000070,"

	assert.Equal(t, []string{
		"0:00:00 first",
		"0:01:01 second",
	}, collect(content, 0))

	shift, ok := ParseShift("01:00:00")
	require.True(t, ok)
	assert.Equal(t, []string{
		"1:00:00 first",
		"1:01:01 second",
	}, collect(content, shift))
}

func TestReplay_OnlyOpenEntry(t *testing.T) {
	assert.Empty(t, collect("1700000000,", 0))
	assert.Empty(t, collect("", 0))
}

func TestReplay_SkipsUnparseableLines(t *testing.T) {
	content := "junk\n1700000000,a\nnot,a,timestamp\n1700000010,b\n1700000020,"
	assert.Equal(t, []string{"0:00:00 a", "0:00:10 b"}, collect(content, 0))
}

func TestReplay_ReferenceFromFirstParsedLine(t *testing.T) {
	// A line with a timestamp but no message still anchors the timeline.
	content := "1700000000\n1700000030,late start\n1700000040,"
	assert.Equal(t, []string{"0:00:30 late start"}, collect(content, 0))
}

func TestReplay_CompletedEmptyMessageIsKept(t *testing.T) {
	content := "1700000000,\n1700000005,next\n1700000009,"
	assert.Equal(t, []string{"0:00:00 ", "0:00:05 next"}, collect(content, 0))
}

func TestReplay_UnterminatedMessageIsKept(t *testing.T) {
	assert.Equal(t, []string{"0:00:00 a", "0:00:03 tail"}, collect("100,a\n103,tail", 0))
}

func TestReplay_CRLF(t *testing.T) {
	assert.Equal(t, []string{"0:00:00 a", "0:00:02 b"}, collect("100,a\r\n102,b\r\n105,", 0))
}

func TestReplay_InvalidUTF8Replaced(t *testing.T) {
	got := collect("100,caf\xe9\n101,", 0)
	assert.Equal(t, []string{"0:00:00 caf\uFFFD"}, got)
}

func TestReplay_StampFields(t *testing.T) {
	stamps := slices.Collect(Replay([]byte("100,a\n190,b\n200,"), 10))
	assert.Equal(t, []Stamp{
		{Timestamp: 100, Elapsed: 10, Message: "a"},
		{Timestamp: 190, Elapsed: 100, Message: "b"},
	}, stamps)
}

func TestReplay_Idempotent(t *testing.T) {
	seq := Lines(Replay([]byte("100,a\n161,b\n170,"), 0))
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}

func TestReplay_EarlyStop(t *testing.T) {
	var got []string
	for line := range Lines(Replay([]byte("100,a\n101,b\n102,c\n103,"), 0)) {
		got = append(got, line)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"0:00:00 a", "0:00:01 b"}, got)
}

func TestReplay_Golden(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("testdata", "fixtures", "session.csv"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		shift string
	}{
		{name: "session_shift_0", shift: ""},
		{name: "session_shift_1h", shift: "01:00:00"},
		{name: "session_shift_minus_30s", shift: "-30"},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			for line := range Lines(Replay(content, ShiftOrZero(tt.shift))) {
				buf.WriteString(line)
				buf.WriteByte('\n')
			}
			g.Assert(t, tt.name, buf.Bytes())
		})
	}
}
