package auth

import "github.com/nfrund/bcard/internal/domain"

// CanLike reports whether the session may like cards and see favorites.
func CanLike(s domain.Session) bool {
	return s.IsAuthenticated
}

// CanViewFavorites reports whether the favorites page is available.
func CanViewFavorites(s domain.Session) bool {
	return s.IsAuthenticated
}

// CanManageOwnCards reports whether the my-cards page and card creation are available.
func CanManageOwnCards(s domain.Session) bool {
	r := s.Role()
	return r == domain.RoleBusiness || r == domain.RoleAdmin
}

// CanEditCard reports whether the session may edit or delete card: admins may
// touch any card, everyone else only their own.
func CanEditCard(s domain.Session, card domain.Card) bool {
	if !s.IsAuthenticated {
		return false
	}
	if s.Role() == domain.RoleAdmin {
		return true
	}
	return card.UserID != "" && card.UserID == s.UserID()
}

// CanAdmin reports whether the sandbox is available.
func CanAdmin(s domain.Session) bool {
	return s.Role() == domain.RoleAdmin
}

// CanModifyUser reports whether sandbox actions apply to target. Admin
// accounts are never actionable.
func CanModifyUser(s domain.Session, target domain.User) bool {
	return CanAdmin(s) && !target.IsAdmin
}

// NavItem is one navbar link.
type NavItem struct {
	Label string
	Href  string
}

// NavItems lists the navbar links visible to the session, in display order.
func NavItems(s domain.Session) []NavItem {
	items := []NavItem{{Label: "About", Href: "/about"}}
	if CanViewFavorites(s) {
		items = append(items, NavItem{Label: "Fav Cards", Href: "/favorites"})
	}
	if CanManageOwnCards(s) {
		items = append(items, NavItem{Label: "My Cards", Href: "/my-cards"})
	}
	if CanAdmin(s) {
		items = append(items, NavItem{Label: "Sandbox", Href: "/sandbox"})
	}
	return items
}

// AccountItems lists the right-hand navbar links: login and register for
// visitors, profile for authenticated users. Logout is a form, not a link.
func AccountItems(s domain.Session) []NavItem {
	if !s.IsAuthenticated {
		return []NavItem{
			{Label: "Signup", Href: "/register"},
			{Label: "Login", Href: "/login"},
		}
	}
	return []NavItem{{Label: "Profile", Href: "/profile"}}
}
