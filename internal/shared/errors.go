package shared

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// auth errors
const (
	ErrInvalidCredentials = Error("invalid credentials")
	ErrAccountPending     = Error("account pending approval")
	ErrTokenInvalid       = Error("invalid token")
	ErrUserNotApproved    = Error("user not found or not approved")
)

// repository errors
const (
	ErrUserExists     = Error("username or email already exists")
	ErrUserNotFound   = Error("user not found")
	ErrNameExists     = Error("name already exists in this category")
	ErrHymnExists     = Error("hymn number already exists")
	ErrAgendaNotFound = Error("agenda not found")
)

// validation errors
const (
	ErrInvalidCategory    = Error("invalid category")
	ErrInvalidRole        = Error("invalid role")
	ErrSelfDelete         = Error("cannot delete your own account")
	ErrNameRequired       = Error("name is required")
	ErrHymnFieldsRequired = Error("number and title are required")
	ErrDateRequired       = Error("date is required")
	ErrAgendaDataInvalid  = Error("agenda data must be valid json")
)
