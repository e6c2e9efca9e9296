package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/Gunvolt24/bidsvc/internal/domain"
)

func TestValidateJSONLStream_Mixed(t *testing.T) {
	ctx := context.Background()
	validator := NewAuctionValidator()

	id1, id3 := uuid.New(), uuid.New()
	line1 := oneLineJSONL(minimalValidAuctionJSON(id1, "Active"))
	line2 := oneLineJSONL(minimalValidAuctionJSON(uuid.New(), "Paused")) // неизвестный статус
	line3 := ""                                                          // пустая строка — ок
	line4 := oneLineJSONL(minimalValidAuctionJSON(id3, "Closed"))

	input := strings.Join([]string{line1, line2, line3, line4}, "\n")
	var out bytes.Buffer

	res, err := ValidateJSONLStream(ctx, validator, strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 2 || res.InvalidLinesCount != 1 {
		t.Fatalf("unexpected counters: %+v", res)
	}

	outLines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(outLines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(outLines))
	}
	var a1, a2 domain.Auction
	if err := json.Unmarshal([]byte(outLines[0]), &a1); err != nil {
		t.Fatalf("unmarshal line1: %v", err)
	}
	if err := json.Unmarshal([]byte(outLines[1]), &a2); err != nil {
		t.Fatalf("unmarshal line2: %v", err)
	}
	wantSet := map[uuid.UUID]bool{id1: true, id3: true}
	for _, id := range []uuid.UUID{a1.ID, a2.ID} {
		if !wantSet[id] {
			t.Fatalf("unexpected id in output: %s", id)
		}
	}
}

// ------ функции-помощники ------

func oneLineJSONL(s string) string {
	var b bytes.Buffer
	_ = json.Compact(&b, []byte(s))
	return b.String()
}
