package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const offsetTokenKind = "offset"

// Cursor marks where the next page of a list starts. AnchorID is the ID of the
// last item already returned, so a list that shifted between requests can be
// resumed after that item instead of at a stale offset.
type Cursor struct {
	Offset   int
	AnchorID string
}

// EncodeOffsetToken creates an opaque token for the page starting at offset.
func EncodeOffsetToken(offset int, anchorID string) string {
	return EncodeMultiFieldToken(offsetTokenKind, strconv.Itoa(offset), anchorID)
}

// DecodeOffsetToken parses a token created by EncodeOffsetToken.
func DecodeOffsetToken(token string) (Cursor, error) {
	fields, err := DecodeMultiFieldToken(token)
	if err != nil {
		return Cursor{}, err
	}
	if len(fields) != 3 || fields[0] != offsetTokenKind {
		return Cursor{}, fmt.Errorf("invalid pagination token format (fields)")
	}
	offset, err := strconv.Atoi(fields[1])
	if err != nil || offset < 0 {
		return Cursor{}, fmt.Errorf("invalid pagination token format (offset parse)")
	}
	return Cursor{Offset: offset, AnchorID: fields[2]}, nil
}

// Resolve returns the index at which the next page starts within ids.
// When the anchor is no longer at Offset-1 the list changed since the token was
// issued; the page then starts right after the anchor, or at Offset when the
// anchor is gone.
func (c Cursor) Resolve(ids []string) int {
	if c.AnchorID != "" {
		if c.Offset > 0 && c.Offset <= len(ids) && ids[c.Offset-1] == c.AnchorID {
			return c.Offset
		}
		for i, id := range ids {
			if id == c.AnchorID {
				return i + 1
			}
		}
	}
	if c.Offset > len(ids) {
		return len(ids)
	}
	return c.Offset
}

// EncodeMultiFieldToken creates a token with any number of string fields
// This provides flexibility for different pagination strategies
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}
