package protocol

import (
	"errors"
	"testing"
)

func TestDecodeMessageMetadataRequest(t *testing.T) {
	msg, err := DecodeMessage([]byte(`{"type":"metadata_request"}`))
	if err != nil {
		t.Fatalf("DecodeMessage() error: %v", err)
	}
	if _, ok := msg.(*MetadataRequest); !ok {
		t.Fatalf("message type = %T, want *MetadataRequest", msg)
	}
}

func TestDecodeMessageSliceRequest(t *testing.T) {
	data := []byte(`{"type":"slice_request","screenWidth":1920,"screenHeight":1080,
		"horizontalBuffer":2,"verticalBuffer":5,"defaultColumnWidth":100,
		"defaultRowHeight":20,"scrollLeft":400,"scrollTop":12345678901}`)

	msg, err := DecodeMessage(data)
	if err != nil {
		t.Fatalf("DecodeMessage() error: %v", err)
	}
	req, ok := msg.(*SliceRequest)
	if !ok {
		t.Fatalf("message type = %T, want *SliceRequest", msg)
	}
	if req.ScreenWidth != 1920 || req.ScreenHeight != 1080 {
		t.Errorf("screen = %dx%d, want 1920x1080", req.ScreenWidth, req.ScreenHeight)
	}
	if req.ScrollTop != 12345678901 {
		t.Errorf("ScrollTop = %d, want 12345678901", req.ScrollTop)
	}
}

func TestDecodeMessageInvalidJSON(t *testing.T) {
	for _, data := range []string{"not json", "{", `{"type":`} {
		if _, err := DecodeMessage([]byte(data)); !errors.Is(err, ErrInvalidJSON) {
			t.Errorf("DecodeMessage(%q) error = %v, want ErrInvalidJSON", data, err)
		}
	}
}

func TestDecodeMessageValidJSONWithoutUsableType(t *testing.T) {
	// Parseable JSON that is not an object with a string "type" counts as an
	// unknown message, not malformed JSON.
	for _, data := range []string{`"just a string"`, `[1,2,3]`, `{"type":1}`, `null`} {
		if _, err := DecodeMessage([]byte(data)); !errors.Is(err, ErrUnknownType) {
			t.Errorf("DecodeMessage(%q) error = %v, want ErrUnknownType", data, err)
		}
	}
}

func TestDecodeMessageUnknownType(t *testing.T) {
	for _, data := range []string{`{"type":"resize_request"}`, `{"foo":1}`, `{}`} {
		if _, err := DecodeMessage([]byte(data)); !errors.Is(err, ErrUnknownType) {
			t.Errorf("DecodeMessage(%q) error = %v, want ErrUnknownType", data, err)
		}
	}
}

func TestDecodeMessageNegativeField(t *testing.T) {
	data := []byte(`{"type":"slice_request","screenWidth":-5,"screenHeight":100,
		"defaultColumnWidth":100,"defaultRowHeight":20}`)

	_, err := DecodeMessage(data)
	var bad *BadRequestError
	if !errors.As(err, &bad) {
		t.Fatalf("error = %v, want *BadRequestError", err)
	}
	if bad.Field != "screenWidth" {
		t.Errorf("Field = %q, want screenWidth", bad.Field)
	}
}

func TestDecodeMessageFractionalField(t *testing.T) {
	data := []byte(`{"type":"slice_request","screenHeight":99.5,
		"defaultColumnWidth":100,"defaultRowHeight":20}`)

	_, err := DecodeMessage(data)
	var bad *BadRequestError
	if !errors.As(err, &bad) {
		t.Fatalf("error = %v, want *BadRequestError", err)
	}
	if bad.Field != "screenHeight" {
		t.Errorf("Field = %q, want screenHeight", bad.Field)
	}
}

func TestDecodeMessageWrongFieldType(t *testing.T) {
	data := []byte(`{"type":"slice_request","scrollTop":"very far down",
		"defaultColumnWidth":100,"defaultRowHeight":20}`)

	_, err := DecodeMessage(data)
	var bad *BadRequestError
	if !errors.As(err, &bad) {
		t.Fatalf("error = %v, want *BadRequestError", err)
	}
	if bad.Field != "scrollTop" {
		t.Errorf("Field = %q, want scrollTop", bad.Field)
	}
}
