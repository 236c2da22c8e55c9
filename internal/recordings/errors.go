package recordings

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// Kind classifies workflow failures. The UI words its message per kind:
// a publish failure means the object IS stored, so the user must not be
// told to re-record.
type Kind string

const (
	// KindAuth covers expired/missing credentials and bucket policy denials.
	KindAuth Kind = "auth"
	// KindTransfer covers network/transport failures during the upload itself.
	KindTransfer Kind = "transfer"
	// KindPublish covers signed-URL generation failure after a successful upload.
	KindPublish Kind = "publish"
	// KindConfig covers missing required configuration; fatal at startup only.
	KindConfig Kind = "config"
)

// Error is a classified workflow failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// ErrKind returns the Kind of err if it is (or wraps) a workflow Error,
// defaulting to KindTransfer for unclassified failures.
func ErrKind(err error) Kind {
	var we *Error
	if errors.As(err, &we) {
		return we.Kind
	}
	return KindTransfer
}

// S3 error codes that indicate a credential or permission problem rather than
// a transport fault. Expired SSO sessions surface as ExpiredToken variants.
var authErrorCodes = map[string]bool{
	"AccessDenied":                true,
	"AccessDeniedException":       true,
	"ExpiredToken":                true,
	"ExpiredTokenException":       true,
	"InvalidAccessKeyId":          true,
	"InvalidToken":                true,
	"SignatureDoesNotMatch":       true,
	"TokenRefreshRequired":        true,
	"UnrecognizedClientException": true,
}

// classifyUpload maps a storage put failure onto the error taxonomy.
func classifyUpload(err error) *Error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && authErrorCodes[apiErr.ErrorCode()] {
		return &Error{Kind: KindAuth, Message: "credential or permission failure; refresh your session", Err: err}
	}
	return &Error{Kind: KindTransfer, Message: "upload failed", Err: err}
}
