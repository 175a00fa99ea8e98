// SPDX-License-Identifier: Apache-2.0

package jsonld

import (
	"iter"
	"regexp"
	"strings"
)

// blockPattern matches a JSON-LD script element. The body is non-greedy, so a
// literal "</script>" inside a JSON string ends the block early; the JSON is
// then reported as invalid rather than silently repaired.
var blockPattern = regexp.MustCompile(`(?s)<script type=["']application/ld\+json["']>(.*?)</script>`)

// Blocks returns the JSON-LD blocks of content in document order.
// The sequence is lazy and can be ranged over any number of times; each
// iteration scans content from the start.
func Blocks(content string) iter.Seq[Block] {
	return func(yield func(Block) bool) {
		pos := 0
		for index := 1; pos < len(content); index++ {
			loc := blockPattern.FindStringSubmatchIndex(content[pos:])
			if loc == nil {
				return
			}
			body := content[pos+loc[2] : pos+loc[3]]
			block := Block{
				Index:  index,
				Offset: pos + loc[2],
				Body:   strings.TrimSpace(body),
			}
			if !yield(block) {
				return
			}
			pos += loc[1]
		}
	}
}
