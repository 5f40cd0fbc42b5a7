package domain

// Role is the access level derived from a session.
type Role int

const (
	RoleAnonymous Role = iota
	RoleUser
	RoleBusiness
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleBusiness:
		return "business"
	case RoleAdmin:
		return "admin"
	default:
		return "anonymous"
	}
}

// Claims are the user claims carried by the access token.
type Claims struct {
	UserID     string `json:"_id"`
	IsBusiness bool   `json:"isBusiness"`
	IsAdmin    bool   `json:"isAdmin"`
	IssuedAt   int64  `json:"iat,omitempty"`
}

// Session is the authentication state of one visitor. It is derived from the
// persisted token and never verified or refreshed locally.
type Session struct {
	IsAuthenticated bool
	Claims          Claims
}

// Anonymous is the zero session.
var Anonymous = Session{}

// UserID returns the authenticated user's id, or "" when anonymous.
func (s Session) UserID() string {
	if !s.IsAuthenticated {
		return ""
	}
	return s.Claims.UserID
}

// Role derives the access level. Admin wins over business.
func (s Session) Role() Role {
	switch {
	case !s.IsAuthenticated:
		return RoleAnonymous
	case s.Claims.IsAdmin:
		return RoleAdmin
	case s.Claims.IsBusiness:
		return RoleBusiness
	default:
		return RoleUser
	}
}
