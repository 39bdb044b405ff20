package shared

type ApiErrorType string

const (
	ApiErrorTypeAuth         ApiErrorType = "auth"
	ApiErrorTypeForbidden    ApiErrorType = "forbidden"
	ApiErrorTypeNotFound     ApiErrorType = "not_found"
	ApiErrorTypeConnectivity ApiErrorType = "connectivity"
	ApiErrorTypeServer       ApiErrorType = "server"

	ApiErrorTypeOther ApiErrorType = "other"
)

type ApiError struct {
	Type   ApiErrorType `json:"type"`
	Status int          `json:"status"`
	Msg    string       `json:"msg"`

	// true when Msg was supplied by the server rather than synthesized
	// client-side
	FromServer bool `json:"-"`
}

func (e *ApiError) Error() string {
	return e.Msg
}

// ClientAuth is the persisted session. Token presence is the sole source of
// truth for "signed in"--the cached user object is stored separately and can
// be missing while a valid token exists.
type ClientAuth struct {
	Token string `json:"token"`
	Host  string `json:"host,omitempty"`
}
