// Package codec encodes binary view payloads (meshes, rendered frames)
// for transport to sessions. Payloads are CBOR with Core Deterministic
// Encoding, zstd-compressed, and carried inside JSON-RPC notifications
// as base64.
package codec

import (
	"encoding/base64"
	"reflect"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items. Same logical payload always
// produces identical bytes, which keeps push deduplication cheap.
var encMode cbor.EncMode

// decMode is the CBOR decoder configured to accept standard CBOR.
// Unknown fields are silently ignored for forward compatibility.
var decMode cbor.DecMode

// zstd encoder/decoder instances are stateless in the EncodeAll /
// DecodeAll mode and safe for concurrent use, so one of each is shared.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// When decoding into any-typed targets, pick map[string]any so
		// decoded payloads interoperate with encoding/json consumers.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}

	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("codec: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("codec: zstd decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to deterministic CBOR.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// EncodePayload marshals v to CBOR, compresses it, and returns the
// base64 text form carried in JSON-RPC notifications.
func EncodePayload(v any) (string, error) {
	raw, err := Marshal(v)
	if err != nil {
		return "", err
	}
	compressed := zstdEncoder.EncodeAll(raw, make([]byte, 0, len(raw)/2))
	return base64.StdEncoding.EncodeToString(compressed), nil
}

// DecodePayload reverses EncodePayload into v.
func DecodePayload(payload string, v any) error {
	compressed, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return err
	}
	raw, err := zstdDecoder.DecodeAll(compressed, nil)
	if err != nil {
		return err
	}
	return Unmarshal(raw, v)
}
