// Copyright (C) 2026 The json17 Authors. All Rights Reserved.

package json17_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/tpsoete/json17"
)

// benchInput generates a synthetic document of nested records.
func benchInput() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i := range 500 {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `{"id": %d,"name": "record-%04d","score": %g,"tags": ["a","b","c"],"ok": %v,"meta": {"depth": [%d,[%d]],"note": null}}`,
			i, i, float64(i)*1.5, i%2 == 0, i, i*i)
	}
	sb.WriteString("]")
	return sb.String()
}

func BenchmarkLoad(b *testing.B) {
	input := benchInput()
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Stdlib", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v any
			if err := json.Unmarshal([]byte(input), &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Parse", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := json17.ParseString[json17.Unique](input); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}

func BenchmarkDump(b *testing.B) {
	input := benchInput()

	var sv any
	if err := json.Unmarshal([]byte(input), &sv); err != nil {
		b.Fatalf("Unexpected error: %v", err)
	}
	v, err := json17.ParseString[json17.Unique](input)
	if err != nil {
		b.Fatalf("Unexpected error: %v", err)
	}

	b.Run("Stdlib", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := json.Marshal(sv); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Dump", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v.DumpString()
		}
	})

	b.Run("DumpIndent", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v.DumpString(json17.DumpOptions{Indent: 2})
		}
	})
}
