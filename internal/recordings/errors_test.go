package recordings

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
)

func TestClassifyUploadAuthCodes(t *testing.T) {
	for _, code := range []string{"ExpiredToken", "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch"} {
		err := &smithy.GenericAPIError{Code: code, Message: "denied"}
		werr := classifyUpload(fmt.Errorf("put object: %w", err))
		if werr.Kind != KindAuth {
			t.Errorf("code %s classified as %s, want %s", code, werr.Kind, KindAuth)
		}
	}
}

func TestClassifyUploadTransient(t *testing.T) {
	werr := classifyUpload(errors.New("connection reset by peer"))
	if werr.Kind != KindTransfer {
		t.Errorf("transient failure classified as %s, want %s", werr.Kind, KindTransfer)
	}
}

func TestClassifyUploadUnknownAPIError(t *testing.T) {
	err := &smithy.GenericAPIError{Code: "SlowDown", Message: "reduce request rate"}
	werr := classifyUpload(err)
	if werr.Kind != KindTransfer {
		t.Errorf("SlowDown classified as %s, want %s", werr.Kind, KindTransfer)
	}
}

func TestErrKindUnwraps(t *testing.T) {
	inner := &Error{Kind: KindPublish, Message: "presign failed"}
	wrapped := fmt.Errorf("workflow: %w", inner)
	if got := ErrKind(wrapped); got != KindPublish {
		t.Errorf("ErrKind = %s, want %s", got, KindPublish)
	}
	if got := ErrKind(errors.New("plain")); got != KindTransfer {
		t.Errorf("ErrKind(plain) = %s, want %s", got, KindTransfer)
	}
}

func TestErrorMessage(t *testing.T) {
	e := &Error{Kind: KindAuth, Message: "denied", Err: errors.New("AccessDenied")}
	if e.Error() == "" {
		t.Fatal("empty error string")
	}
	if !errors.Is(e, e.Err) {
		t.Error("Unwrap does not expose the underlying error")
	}
}
