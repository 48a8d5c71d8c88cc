package response

const (
	// DateFormat is the wire format for Date fields.
	DateFormat = "2006-01-02"
	// DateTimeFormat is the wire format for DateTime fields.
	DateTimeFormat = "2006-01-02 15:04:05"
)

const (
	codeSuccess      = 0
	codeInternal     = 500
	codeUnauthorized = 401
)

const (
	msgSuccess      = "Success"
	msgInternal     = "Internal server error"
	msgUnauthorized = "Unauthorized"
)
