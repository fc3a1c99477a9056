package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesainslie/go-juritok/sentence"
	"github.com/jamesainslie/go-juritok/tokenizer"
)

func testSentences() []sentence.Sentence {
	return []sentence.Sentence{
		{Start: 0, Tokens: []tokenizer.Token{
			{Text: "M.", Start: 0},
			{Text: "Dupont", Start: 3},
			{Text: ".", Start: 9},
		}},
		{Start: 11, Tokens: []tokenizer.Token{
			{Text: "Ch.", Start: 11},
			{Text: "sociale", Start: 15},
		}},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"", FormatText, false},
		{"JSON", FormatJSON, false},
		{"proto", FormatProto, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, testSentences()))
	assert.Equal(t, "M. Dupont .\nCh. sociale\n", buf.String())
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, testSentences()))
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))

	records, err := ReadJSON(&buf)
	require.NoError(t, err)
	require.Len(t, records, 2)

	fields := records[1].GetFields()
	assert.Equal(t, float64(1), fields["index"].GetNumberValue())
	assert.Equal(t, float64(11), fields["start"].GetNumberValue())
	assert.Equal(t, float64(22), fields["end"].GetNumberValue())

	tokens := fields["tokens"].GetListValue().GetValues()
	require.Len(t, tokens, 2)
	assert.Equal(t, "Ch.", tokens[0].GetStringValue())
	assert.Equal(t, "sociale", tokens[1].GetStringValue())
}

func TestWrite_ProtoMatchesJSON(t *testing.T) {
	var protoBuf, jsonBuf bytes.Buffer
	require.NoError(t, Write(&protoBuf, FormatProto, testSentences()))
	require.NoError(t, Write(&jsonBuf, FormatJSON, testSentences()))

	fromProto, err := ReadProto(&protoBuf)
	require.NoError(t, err)
	fromJSON, err := ReadJSON(&jsonBuf)
	require.NoError(t, err)

	require.Len(t, fromProto, 2)
	assert.True(t, Equal(fromProto, fromJSON))
}

func TestWriteTokens(t *testing.T) {
	tokens := testSentences()[0].Tokens

	var text bytes.Buffer
	require.NoError(t, WriteTokens(&text, FormatText, tokens))
	assert.Equal(t, "0\t2\t\"M.\"\n3\t9\t\"Dupont\"\n9\t10\t\".\"\n", text.String())

	var pb bytes.Buffer
	require.NoError(t, WriteTokens(&pb, FormatProto, tokens))
	records, err := ReadProto(&pb)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Dupont", records[1].GetFields()["text"].GetStringValue())
	assert.Equal(t, float64(9), records[1].GetFields()["end"].GetNumberValue())
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatProto, nil))
	assert.Zero(t, buf.Len())

	records, err := ReadProto(&buf)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadProto_Truncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatProto, testSentences()))

	data := buf.Bytes()
	_, err := ReadProto(bytes.NewReader(data[:len(data)-3]))
	assert.Error(t, err)
}
