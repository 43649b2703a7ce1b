package constvars

const (
	MethodGet  = "GET"
	MethodPost = "POST"
)

const (
	HeaderAccept      = "Accept"
	HeaderContentType = "Content-Type"
)

const (
	MIMEApplicationJSON = "application/json"
	MIMEApplicationForm = "application/x-www-form-urlencoded"
)

const (
	StatusOK = 200

	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusNotFound            = 404
	StatusUnprocessableEntity = 422

	StatusInternalServerError = 500
	StatusBadGateway          = 502
)
