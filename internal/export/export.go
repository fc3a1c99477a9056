// Package export writes tokens and sentences as plain text, JSON lines or
// length-delimited protobuf records.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/jamesainslie/go-juritok/sentence"
	"github.com/jamesainslie/go-juritok/tokenizer"
)

// Format selects the output encoding.
type Format string

// Supported formats.
const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatProto Format = "proto"
)

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatProto:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("export: unknown format %q", s)
	}
}

// Write encodes sentences to w, one record per sentence. Text output has the
// sentence tokens separated by spaces, one sentence per line.
func Write(w io.Writer, format Format, sentences []sentence.Sentence) error {
	bw := bufio.NewWriter(w)
	for i, s := range sentences {
		var err error
		if format == FormatText {
			_, err = fmt.Fprintln(bw, strings.Join(s.Texts(), " "))
		} else {
			err = writeRecord(bw, format, map[string]any{
				"index":  i,
				"start":  s.Start,
				"end":    s.End(),
				"tokens": lo.ToAnySlice(s.Texts()),
			})
		}
		if err != nil {
			return fmt.Errorf("writing sentence %d: %w", i, err)
		}
	}
	return bw.Flush()
}

// WriteTokens encodes tokens to w, one record per token.
func WriteTokens(w io.Writer, format Format, tokens []tokenizer.Token) error {
	bw := bufio.NewWriter(w)
	for i, tok := range tokens {
		var err error
		if format == FormatText {
			_, err = fmt.Fprintf(bw, "%d\t%d\t%q\n", tok.Start, tok.End(), tok.Text)
		} else {
			err = writeRecord(bw, format, map[string]any{
				"text":  tok.Text,
				"start": tok.Start,
				"end":   tok.End(),
			})
		}
		if err != nil {
			return fmt.Errorf("writing token %d: %w", i, err)
		}
	}
	return bw.Flush()
}

func writeRecord(w io.Writer, format Format, fields map[string]any) error {
	rec, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("building record: %w", err)
	}

	switch format {
	case FormatJSON:
		data, err := protojson.Marshal(rec)
		if err != nil {
			return err
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return err
		}
		return nil
	case FormatProto:
		_, err := protodelim.MarshalTo(w, rec)
		return err
	default:
		return fmt.Errorf("export: unsupported record format %q", format)
	}
}

// ReadProto decodes a stream written with FormatProto.
func ReadProto(r io.Reader) ([]*structpb.Struct, error) {
	br := bufio.NewReader(r)
	var records []*structpb.Struct
	for {
		rec := &structpb.Struct{}
		err := protodelim.UnmarshalFrom(br, rec)
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading record %d: %w", len(records), err)
		}
		records = append(records, rec)
	}
}

// ReadJSON decodes a stream written with FormatJSON.
func ReadJSON(r io.Reader) ([]*structpb.Struct, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var records []*structpb.Struct
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		rec := &structpb.Struct{}
		if err := protojson.Unmarshal(line, rec); err != nil {
			return nil, fmt.Errorf("reading record %d: %w", len(records), err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return records, nil
}

// Equal reports whether two record streams hold the same records.
func Equal(a, b []*structpb.Struct) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !proto.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
