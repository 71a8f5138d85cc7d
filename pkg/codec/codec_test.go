package codec_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-weft/weft/pkg/codec"
)

type meshPayload struct {
	Positions []float32 `cbor:"positions"`
	Normals   []float32 `cbor:"normals"`
	Indices   []uint32  `cbor:"indices"`
}

func TestPayloadRoundTrip(t *testing.T) {
	in := meshPayload{
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Normals:   []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		Indices:   []uint32{0, 1, 2},
	}

	encoded, err := codec.EncodePayload(in)
	if err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}

	var out meshPayload
	if err := codec.DecodePayload(encoded, &out); err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDeterministicEncoding(t *testing.T) {
	payload := map[string]any{"b": 2, "a": 1, "c": []int{3, 2, 1}}
	first, err := codec.Marshal(payload)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	second, err := codec.Marshal(payload)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(first) != string(second) {
		t.Error("same payload produced different bytes")
	}
}

func TestDecodePayloadRejectsGarbage(t *testing.T) {
	var out map[string]any
	if err := codec.DecodePayload("not base64!!", &out); err == nil {
		t.Error("expected error for invalid base64")
	}
	if err := codec.DecodePayload("AAAA", &out); err == nil {
		t.Error("expected error for non-zstd payload")
	}
}
